package discovery

import "strings"

// Credentials mirrors the fetch credentials mode and decides which ambient cookies travel with the request.
type Credentials string

func (c Credentials) String() string {
	return string(c)
}

const (
	CredentialsOmit       Credentials = "omit"        // Never send cookies
	CredentialsSameOrigin Credentials = "same-origin" // Send cookies only to the suite's own origin
	CredentialsInclude    Credentials = "include"     // Always send cookies
)

const (
	DefaultMenuURL        = "https://discovery.trf.is/v1/menus"
	DefaultAuthCookieName = "trf_access_token"
	DefaultCredentials    = CredentialsInclude
)

// Config describes a single discovery call. Zero fields fall back to the package defaults.
type Config struct {
	MenuURL        string
	MenuGroup      string
	FallbackGroup  string
	AuthToken      string
	AuthCookieName string
	IfMatch        string
	Credentials    Credentials
	// Origin is the suite's public URL, used for same-origin credentials.
	Origin string
	// Cookies is the ambient cookie store, nil outside a browser request.
	Cookies CookieStore
}

func DefaultConfig() Config {
	return Config{
		MenuURL:        DefaultMenuURL,
		MenuGroup:      DefaultMenuGroup,
		FallbackGroup:  DefaultMenuGroup,
		AuthCookieName: DefaultAuthCookieName,
		Credentials:    DefaultCredentials,
	}
}

// WithDefaults fills every unset field from DefaultConfig.
func (c Config) WithDefaults() Config {
	def := DefaultConfig()

	if strings.TrimSpace(c.MenuURL) == "" {
		c.MenuURL = def.MenuURL
	}
	if c.MenuGroup == "" {
		c.MenuGroup = def.MenuGroup
	}
	if c.FallbackGroup == "" {
		c.FallbackGroup = def.FallbackGroup
	}
	if strings.TrimSpace(c.AuthCookieName) == "" {
		c.AuthCookieName = def.AuthCookieName
	}
	switch c.Credentials {
	case CredentialsOmit, CredentialsSameOrigin, CredentialsInclude:
	default:
		c.Credentials = def.Credentials
	}

	return c
}
