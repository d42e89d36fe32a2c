package sidemenu

import (
	"trf/navmenu/internal/activation"
	"trf/navmenu/internal/domain"
	"trf/navmenu/internal/link"
	"trf/navmenu/internal/menu"
)

// SideMenu is the UI state of one menu instance. It is not safe for concurrent use;
// each rendered menu owns its own instance.
type SideMenu struct {
	tree     []domain.MenuItem
	app      domain.AppID
	path     string
	baseURLs domain.AppBaseURLs
	cfg      activation.Config

	result      activation.Result
	openSection string
	mobileOpen  bool
}

func New(tree []domain.MenuItem, app domain.AppID, baseURLs domain.AppBaseURLs, cfg activation.Config) *SideMenu {
	s := &SideMenu{
		tree:        tree,
		app:         app,
		baseURLs:    baseURLs,
		cfg:         cfg,
		openSection: cfg.DefaultSection(app),
	}
	s.recompute()
	return s
}

// Navigate records a location change. Automatic activation replaces any manual toggle;
// navigating to the current path is not a change.
func (s *SideMenu) Navigate(path string) {
	if path == s.path {
		return
	}
	s.path = path
	s.recompute()
}

// SetApplication records an application change, same as Navigate.
func (s *SideMenu) SetApplication(app domain.AppID) {
	if app == s.app {
		return
	}
	s.app = app
	s.recompute()
}

func (s *SideMenu) recompute() {
	s.result = activation.Compute(s.tree, s.path, s.app, s.cfg)
	s.openSection = s.result.OpenSectionID
}

// Toggle opens or closes a top-level section. Only one section is open at a time.
// It reports whether the open section changed.
func (s *SideMenu) Toggle(id string) bool {
	section, ok := s.topLevel(id)
	if !ok || section.Disabled || !section.HasChildren() {
		return false
	}

	if s.openSection == id {
		s.openSection = ""
	} else {
		s.openSection = id
	}
	return true
}

// Click resolves a click on any item. An internal navigation dismisses the mobile overlay.
func (s *SideMenu) Click(id string) domain.NavigationIntent {
	item, _, ok := menu.Find(s.tree, id)
	if !ok {
		return domain.NoIntent
	}

	intent := link.ResolveClick(item, s.app, s.baseURLs)
	if intent.Kind == domain.IntentInternal {
		s.CloseMobile()
	}
	return intent
}

// Press is what the menu button does: top-level containers toggle, everything else is clicked.
func (s *SideMenu) Press(id string) domain.NavigationIntent {
	item, depth, ok := menu.Find(s.tree, id)
	if !ok {
		return domain.NoIntent
	}
	if depth == 0 && item.HasChildren() {
		s.Toggle(id)
		return domain.NoIntent
	}
	return s.Click(id)
}

func (s *SideMenu) ToggleMobile() {
	s.mobileOpen = !s.mobileOpen
}

func (s *SideMenu) CloseMobile() {
	s.mobileOpen = false
}

func (s *SideMenu) topLevel(id string) (domain.MenuItem, bool) {
	for _, section := range s.tree {
		if section.ID == id {
			return section, true
		}
	}
	return domain.MenuItem{}, false
}

func (s *SideMenu) Tree() []domain.MenuItem { return s.tree }
func (s *SideMenu) App() domain.AppID { return s.app }
func (s *SideMenu) Path() string { return s.path }
func (s *SideMenu) BaseURLs() domain.AppBaseURLs { return s.baseURLs }
func (s *SideMenu) OpenSection() string { return s.openSection }
func (s *SideMenu) MobileOpen() bool { return s.mobileOpen }
func (s *SideMenu) Activation() activation.Result { return s.result }

// IsOpen reports whether the top-level section id is expanded.
func (s *SideMenu) IsOpen(id string) bool {
	return id != "" && s.openSection == id
}
