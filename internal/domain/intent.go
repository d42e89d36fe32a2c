package domain

// IntentKind tells the shell how to act on a menu click.
type IntentKind string

func (k IntentKind) String() string {
	return string(k)
}

const (
	IntentNone     IntentKind = "none"     // Disabled or unresolvable
	IntentInternal IntentKind = "internal" // Client-side route change within the current application
	IntentExternal IntentKind = "external" // Full navigation to another application
)

// NavigationIntent is the decision taken for a click. Only one of Path and URL is set.
type NavigationIntent struct {
	Kind IntentKind `json:"kind"`
	Path string     `json:"path,omitempty"`
	URL  string     `json:"url,omitempty"`
}

var NoIntent = NavigationIntent{Kind: IntentNone}

func InternalIntent(path string) NavigationIntent {
	return NavigationIntent{Kind: IntentInternal, Path: path}
}

func ExternalIntent(url string) NavigationIntent {
	return NavigationIntent{Kind: IntentExternal, URL: url}
}

// Target returns the path or URL the intent navigates to.
func (n NavigationIntent) Target() string {
	switch n.Kind {
	case IntentInternal:
		return n.Path
	case IntentExternal:
		return n.URL
	default:
		return ""
	}
}
