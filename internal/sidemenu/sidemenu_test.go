package sidemenu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"trf/navmenu/internal/activation"
	"trf/navmenu/internal/domain"
	"trf/navmenu/internal/menu"
)

var baseURLs = domain.AppBaseURLs{
	domain.AppPortal: "https://portal.trf.test",
	domain.AppLedger: "https://ledger.trf.test/",
	domain.AppCRM:    "https://crm.trf.test",
}

func newMenu(app domain.AppID, path string) *SideMenu {
	s := New(menu.Structure(), app, baseURLs, activation.DefaultConfig())
	s.Navigate(path)
	return s
}

func TestNewOpensDefaultSection(t *testing.T) {
	s := New(menu.Structure(), domain.AppHR, baseURLs, activation.DefaultConfig())
	assert.Equal(t, "hr", s.OpenSection())
	assert.True(t, s.IsOpen("hr"))
	assert.False(t, s.IsOpen(""))
}

func TestNavigateOpensActiveSection(t *testing.T) {
	s := newMenu(domain.AppCRM, "/app/admin/relation-types/4")
	assert.Equal(t, "crm", s.OpenSection())

	s.SetApplication(domain.AppLedger)
	assert.Equal(t, "bookkeeping", s.OpenSection())
	assert.Equal(t, domain.AppLedger, s.App())
}

func TestToggleAccordion(t *testing.T) {
	s := newMenu(domain.AppCRM, "/app/contacts")
	assert.Equal(t, "crm", s.OpenSection())

	assert.True(t, s.Toggle("hr"))
	assert.Equal(t, "hr", s.OpenSection())
	assert.False(t, s.IsOpen("crm"))

	assert.True(t, s.Toggle("hr"))
	assert.Equal(t, "", s.OpenSection())

	assert.True(t, s.Toggle("assets"))
	assert.Equal(t, "assets", s.OpenSection())
}

func TestToggleIgnoresDisabledAndNested(t *testing.T) {
	tree := []domain.MenuItem{
		{ID: "open", Children: []domain.MenuItem{{ID: "open-a", Path: "/a"}}},
		{ID: "locked", Disabled: true, Children: []domain.MenuItem{{ID: "locked-a", Path: "/b"}}},
		{ID: "leaf", Path: "/c"},
	}
	s := New(tree, domain.AppCRM, nil, activation.Config{DefaultOpen: map[domain.AppID]string{domain.AppCRM: "open"}})
	s.Navigate("/nowhere")

	before := s.OpenSection()
	assert.False(t, s.Toggle("locked"))
	assert.Equal(t, before, s.OpenSection())

	assert.False(t, s.Toggle("open-a"))
	assert.False(t, s.Toggle("leaf"))
	assert.False(t, s.Toggle("missing"))
	assert.Equal(t, "open", s.OpenSection())
}

func TestManualToggleLastsUntilNextChange(t *testing.T) {
	s := newMenu(domain.AppCRM, "/app/contacts")
	s.Toggle("hr")

	s.Navigate("/app/contacts")
	assert.Equal(t, "hr", s.OpenSection(), "same location is not a change")

	s.Navigate("/app/contacts/new")
	assert.Equal(t, "crm", s.OpenSection())

	s.Toggle("crm")
	s.SetApplication(domain.AppCRM)
	assert.Equal(t, "", s.OpenSection())

	s.SetApplication(domain.AppHR)
	assert.Equal(t, "hr", s.OpenSection())
}

func TestCloseMobile(t *testing.T) {
	s := newMenu(domain.AppCRM, "/app")

	s.CloseMobile()
	assert.False(t, s.MobileOpen())

	s.ToggleMobile()
	s.CloseMobile()
	assert.False(t, s.MobileOpen())
}

func TestClickDismissesOverlayOnlyForInternal(t *testing.T) {
	s := newMenu(domain.AppCRM, "/app")

	s.ToggleMobile()
	assert.True(t, s.MobileOpen())

	intent := s.Click("bk-ledger-accounts")
	assert.Equal(t, domain.ExternalIntent("https://ledger.trf.test/app/accounts"), intent)
	assert.True(t, s.MobileOpen())

	intent = s.Click("org-users")
	assert.Equal(t, domain.NoIntent, intent)
	assert.True(t, s.MobileOpen())

	intent = s.Click("hr-overview")
	assert.Equal(t, domain.NoIntent, intent, "hr has no base url")
	assert.True(t, s.MobileOpen())

	intent = s.Click("crm-contacts")
	assert.Equal(t, domain.InternalIntent("/app/contacts"), intent)
	assert.False(t, s.MobileOpen())

	assert.Equal(t, domain.NoIntent, s.Click("missing"))
}

func TestPress(t *testing.T) {
	s := newMenu(domain.AppCRM, "/app/contacts")

	assert.Equal(t, domain.NoIntent, s.Press("hr"))
	assert.Equal(t, "hr", s.OpenSection())

	assert.Equal(t, domain.InternalIntent("/app/contacts/new"), s.Press("crm-add-contact"))

	// Nested containers without a path are not links.
	assert.Equal(t, domain.NoIntent, s.Press("crm-admin"))
	assert.Equal(t, "hr", s.OpenSection())

	assert.Equal(t, domain.NoIntent, s.Press("missing"))
}

func TestPressTopLevelLeafNavigates(t *testing.T) {
	tree := []domain.MenuItem{
		{ID: "discovery-ledger-home", AppID: domain.AppLedger, Path: "/app/accounts"},
	}
	s := New(tree, domain.AppCRM, baseURLs, activation.DefaultConfig())

	assert.Equal(t, domain.ExternalIntent("https://ledger.trf.test/app/accounts"), s.Press("discovery-ledger-home"))
}

func TestInstancesAreIndependent(t *testing.T) {
	a := newMenu(domain.AppCRM, "/app/contacts")
	b := newMenu(domain.AppCRM, "/app/contacts")

	a.Toggle("hr")
	a.ToggleMobile()

	assert.Equal(t, "crm", b.OpenSection())
	assert.False(t, b.MobileOpen())
}
