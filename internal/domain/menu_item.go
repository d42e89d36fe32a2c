package domain

// MenuItem is one entry of the navigation tree. It may be a container, a link or both.
type MenuItem struct {
	ID          string     `json:"id"`
	Label       string     `json:"label"`
	AppID       AppID      `json:"appId,omitempty"`
	Path        string     `json:"path,omitempty"`
	ExternalURL string     `json:"externalUrl,omitempty"`
	Disabled    bool       `json:"disabled,omitempty"`
	Children    []MenuItem `json:"children,omitempty"`
}

// HasChildren reports whether the item is a container.
func (m MenuItem) HasChildren() bool {
	return len(m.Children) > 0
}

// HasPath reports whether the item carries its own route.
func (m MenuItem) HasPath() bool {
	return m.Path != ""
}
