package activation

import (
	"strings"

	"trf/navmenu/internal/domain"
)

// DefaultHomePath only matches itself exactly, so a dashboard at "/app" does not light up for every route.
const DefaultHomePath = "/app"

// Config holds the activation defaults. DefaultOpen is the section opened when nothing is active.
type Config struct {
	HomePath    string
	DefaultOpen map[domain.AppID]string
}

func DefaultConfig() Config {
	return Config{
		HomePath: DefaultHomePath,
		DefaultOpen: map[domain.AppID]string{
			domain.AppPortal:      "org",
			domain.AppLedger:      "bookkeeping",
			domain.AppAssets:      "assets",
			domain.AppCRM:         "crm",
			domain.AppHR:          "hr",
			domain.AppBookkeeping: "bookkeeping",
		},
	}
}

// DefaultSection returns the configured default open section for app.
func (c Config) DefaultSection(app domain.AppID) string {
	return c.DefaultOpen[app]
}

// Result is the activation state of one tree for one location.
type Result struct {
	OpenSectionID string
	active        map[string]bool
	descendant    map[string]bool
}

// IsActive reports whether item itself matches the location.
func (r Result) IsActive(item domain.MenuItem) bool {
	return r.active[item.ID]
}

// HasActiveDescendant reports whether any node below item is active.
func (r Result) HasActiveDescendant(item domain.MenuItem) bool {
	return r.descendant[item.ID]
}

// Highlighted is true for an active item or an ancestor of one.
func (r Result) Highlighted(item domain.MenuItem) bool {
	return r.IsActive(item) || r.HasActiveDescendant(item)
}

// Compute derives the activation state from scratch for the given location.
func Compute(tree []domain.MenuItem, currentPath string, app domain.AppID, cfg Config) Result {
	res := Result{
		active:     make(map[string]bool),
		descendant: make(map[string]bool),
	}

	for _, item := range tree {
		res.mark(item, currentPath, app, cfg.HomePath)
	}

	res.OpenSectionID = cfg.DefaultSection(app)
	for _, section := range tree {
		if res.Highlighted(section) {
			res.OpenSectionID = section.ID
			break
		}
	}

	return res
}

// mark fills the maps for item's subtree and returns whether it is highlighted.
func (r *Result) mark(item domain.MenuItem, currentPath string, app domain.AppID, homePath string) bool {
	descendant := false
	for _, child := range item.Children {
		if r.mark(child, currentPath, app, homePath) {
			descendant = true
		}
	}

	active := IsActive(item, currentPath, app, homePath)
	if active {
		r.active[item.ID] = true
	}
	if descendant {
		r.descendant[item.ID] = true
	}

	return active || descendant
}

// IsActive applies the matching rule to a single item. Disabled items never contribute.
func IsActive(item domain.MenuItem, currentPath string, app domain.AppID, homePath string) bool {
	if item.Disabled || !item.HasPath() {
		return false
	}
	if item.AppID != "" && item.AppID != app {
		return false
	}
	if homePath != "" && item.Path == homePath {
		return currentPath == homePath
	}
	return strings.HasPrefix(currentPath, item.Path)
}

// HasActiveDescendant walks item's subtree without any precomputed state.
func HasActiveDescendant(item domain.MenuItem, currentPath string, app domain.AppID, homePath string) bool {
	for _, child := range item.Children {
		if IsActive(child, currentPath, app, homePath) || HasActiveDescendant(child, currentPath, app, homePath) {
			return true
		}
	}
	return false
}

// ActiveChain returns the ids from the top-level section down to the deepest active item.
func (r Result) ActiveChain(tree []domain.MenuItem) []string {
	for _, item := range tree {
		if !r.Highlighted(item) {
			continue
		}
		chain := []string{item.ID}
		if r.HasActiveDescendant(item) {
			chain = append(chain, r.ActiveChain(item.Children)...)
		}
		return chain
	}
	return nil
}
