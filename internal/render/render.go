package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"trf/navmenu/internal/domain"
	"trf/navmenu/internal/link"
	"trf/navmenu/internal/sidemenu"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Brand is the header shown above the menu.
type Brand struct {
	Mark    string
	Name    string
	Tagline string
}

var DefaultBrand = Brand{
	Mark:    "TRF",
	Name:    "TRF.is",
	Tagline: "Business tools in one place.",
}

type node struct {
	ID         string
	Label      string
	Depth      int
	Indent     string
	Disabled   bool
	Active     bool
	Toggle     bool
	Open       bool
	Href       string
	IntentKind string
	ShowBranch bool
	Children   []node
}

type view struct {
	Brand      Brand
	App        string
	AppName    string
	Path       string
	MobileOpen bool
	Items      []node
}

// SideMenu writes the HTML for the menu's current state.
func SideMenu(w io.Writer, s *sidemenu.SideMenu, brand Brand) error {
	v := view{
		Brand:      brand,
		App:        s.App().String(),
		AppName:    s.App().GetAppName(),
		Path:       s.Path(),
		MobileOpen: s.MobileOpen(),
		Items:      buildNodes(s, s.Tree(), 0),
	}

	if err := templates.ExecuteTemplate(w, "sidemenu", v); err != nil {
		return fmt.Errorf("failed to render side menu: %w", err)
	}
	return nil
}

func buildNodes(s *sidemenu.SideMenu, items []domain.MenuItem, depth int) []node {
	res := s.Activation()
	nodes := make([]node, 0, len(items))

	for _, item := range items {
		n := node{
			ID:       item.ID,
			Label:    item.Label,
			Depth:    depth,
			Indent:   indent(depth),
			Disabled: item.Disabled,
			Active:   res.Highlighted(item),
		}

		if item.HasChildren() && depth == 0 {
			n.Toggle = true
			n.Open = s.IsOpen(item.ID)
			n.ShowBranch = n.Open
		} else {
			intent := link.ResolveClick(item, s.App(), s.BaseURLs())
			n.Href = intent.Target()
			n.IntentKind = intent.Kind.String()
			n.ShowBranch = item.HasChildren()
		}

		if n.ShowBranch {
			n.Children = buildNodes(s, item.Children, depth+1)
		}

		nodes = append(nodes, n)
	}

	return nodes
}

func indent(depth int) string {
	switch depth {
	case 0:
		return "pl-0"
	case 1:
		return "pl-4"
	case 2:
		return "pl-8"
	default:
		return "pl-10"
	}
}
