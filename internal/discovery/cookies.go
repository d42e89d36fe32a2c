package discovery

import (
	"net/http"
	"net/url"
	"strings"
)

// CookieStore is the ambient cookie jar of the caller. *http.Request satisfies it.
type CookieStore interface {
	Cookies() []*http.Cookie
}

// CookieString is a raw "name=value; other=value" cookie header.
type CookieString string

// Cookies splits the header leniently, without decoding.
func (s CookieString) Cookies() []*http.Cookie {
	var cookies []*http.Cookie

	for _, chunk := range strings.Split(string(s), ";") {
		name, value, _ := strings.Cut(chunk, "=")
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		cookies = append(cookies, &http.Cookie{
			Name:  name,
			Value: strings.TrimSpace(value),
		})
	}

	return cookies
}

// cookieValue returns the percent-decoded value of the named cookie. A nil store, a missing
// cookie and a value that does not decode all yield nothing.
func cookieValue(store CookieStore, name string) (string, bool) {
	if store == nil {
		return "", false
	}

	for _, c := range store.Cookies() {
		if c == nil || safeUnescape(strings.TrimSpace(c.Name)) != name {
			continue
		}
		value, err := url.PathUnescape(strings.TrimSpace(c.Value))
		if err != nil {
			return "", false
		}
		return value, true
	}

	return "", false
}

func safeUnescape(value string) string {
	decoded, err := url.PathUnescape(value)
	if err != nil {
		return value
	}
	return decoded
}

// ResolveAuthToken picks the explicit token when set, otherwise the auth cookie.
// Blank values count as absent.
func ResolveAuthToken(cfg Config) (string, bool) {
	if token := strings.TrimSpace(cfg.AuthToken); token != "" {
		return token, true
	}

	name := strings.TrimSpace(cfg.AuthCookieName)
	if name == "" {
		name = DefaultAuthCookieName
	}

	value, ok := cookieValue(cfg.Cookies, name)
	if !ok {
		return "", false
	}

	token := strings.TrimSpace(value)
	return token, token != ""
}
