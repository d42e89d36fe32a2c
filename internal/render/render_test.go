package render

import (
	"bytes"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trf/navmenu/internal/activation"
	"trf/navmenu/internal/domain"
	"trf/navmenu/internal/menu"
	"trf/navmenu/internal/sidemenu"
)

func renderDoc(t *testing.T, s *sidemenu.SideMenu) *goquery.Document {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, SideMenu(&buf, s, DefaultBrand))

	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}

func button(doc *goquery.Document, id string) *goquery.Selection {
	return doc.Find(`button[data-id="` + id + `"]`)
}

func newMenu(app domain.AppID, path string) *sidemenu.SideMenu {
	s := sidemenu.New(menu.Structure(), app, domain.AppBaseURLs{
		domain.AppLedger: "https://ledger.trf.test/",
	}, activation.DefaultConfig())
	s.Navigate(path)
	return s
}

func TestSideMenuRendersOnlyOpenTopLevelSection(t *testing.T) {
	doc := renderDoc(t, newMenu(domain.AppCRM, "/app/contacts/12"))

	assert.Equal(t, 5, doc.Find(`button[data-depth="0"]`).Length())

	crm := button(doc, "crm")
	assert.Equal(t, "true", crm.AttrOr("data-open", ""))
	assert.Equal(t, "-", crm.Find(".toggle").Text())
	assert.Equal(t, "true", crm.AttrOr("data-active", ""))

	hr := button(doc, "hr")
	assert.Equal(t, "false", hr.AttrOr("data-open", ""))
	assert.Equal(t, "+", hr.Find(".toggle").Text())
	assert.Equal(t, 0, button(doc, "hr-overview").Length())

	assert.Equal(t, 1, button(doc, "crm-contacts").Length())
	// Nested containers are always expanded.
	assert.Equal(t, 1, button(doc, "crm-admin-relation-types").Length())
	assert.Equal(t, 1, button(doc, "crm-reports-debtors").Length())
}

func TestSideMenuItemState(t *testing.T) {
	doc := renderDoc(t, newMenu(domain.AppCRM, "/app/contacts/12"))

	contacts := button(doc, "crm-contacts")
	assert.Equal(t, "true", contacts.AttrOr("data-active", ""))
	assert.True(t, contacts.HasClass("active"))
	assert.Equal(t, "internal", contacts.AttrOr("data-intent", ""))
	assert.Equal(t, "/app/contacts", contacts.AttrOr("data-href", ""))
	assert.True(t, contacts.HasClass("pl-4"))

	dashboard := button(doc, "crm-dashboard")
	assert.Equal(t, "false", dashboard.AttrOr("data-active", ""))

	debtors := button(doc, "crm-reports-debtors")
	assert.Equal(t, "true", debtors.AttrOr("data-disabled", ""))
	assert.True(t, debtors.HasClass("disabled"))
	_, hasDisabled := debtors.Attr("disabled")
	assert.True(t, hasDisabled)
	assert.Equal(t, "none", debtors.AttrOr("data-intent", ""))
	_, hasHref := debtors.Attr("data-href")
	assert.False(t, hasHref)
}

func TestSideMenuCrossApplicationLinks(t *testing.T) {
	s := newMenu(domain.AppCRM, "/app")
	s.Toggle("bookkeeping")
	doc := renderDoc(t, s)

	accounts := button(doc, "bk-ledger-accounts")
	assert.Equal(t, "external", accounts.AttrOr("data-intent", ""))
	assert.Equal(t, "https://ledger.trf.test/app/accounts", accounts.AttrOr("data-href", ""))
	assert.True(t, accounts.HasClass("pl-8"))

	assert.Equal(t, 0, button(doc, "crm-contacts").Length())
}

func TestSideMenuHeader(t *testing.T) {
	s := newMenu(domain.AppHR, "/overview")
	s.ToggleMobile()
	doc := renderDoc(t, s)

	nav := doc.Find("nav.side-menu")
	assert.Equal(t, "hr", nav.AttrOr("data-app", ""))
	assert.Equal(t, "HR", nav.AttrOr("data-app-name", ""))
	assert.Equal(t, "HR", doc.Find(".brand-app").Text())
	assert.Equal(t, "/overview", nav.AttrOr("data-path", ""))
	assert.Equal(t, "true", nav.AttrOr("data-mobile-open", ""))
	assert.Equal(t, "TRF.is", doc.Find(".brand-name").Text())
	assert.Equal(t, "Business tools in one place.", doc.Find(".brand-tagline").Text())
}

func TestSideMenuEscapesLabels(t *testing.T) {
	tree := []domain.MenuItem{{ID: "x", Label: `<script>alert(1)</script>`, Path: "/x"}}
	s := sidemenu.New(tree, domain.AppCRM, nil, activation.DefaultConfig())

	var buf bytes.Buffer
	require.NoError(t, SideMenu(&buf, s, DefaultBrand))
	assert.NotContains(t, buf.String(), "<script>")
	assert.Contains(t, buf.String(), "&lt;script&gt;")
}
