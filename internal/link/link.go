package link

import (
	"strings"

	"trf/navmenu/internal/domain"
)

// ResolveClick decides what a click on item does. It has no side effects.
func ResolveClick(item domain.MenuItem, app domain.AppID, baseURLs domain.AppBaseURLs) domain.NavigationIntent {
	if item.Disabled {
		return domain.NoIntent
	}

	if item.HasPath() && (item.AppID == "" || item.AppID == app) {
		return domain.InternalIntent(item.Path)
	}

	if url, ok := ExternalURL(item, baseURLs); ok {
		return domain.ExternalIntent(url)
	}

	return domain.NoIntent
}

// ExternalURL prefers the item's absolute URL, then its application's base URL joined with its path.
// An application without a registered base URL is not linkable.
func ExternalURL(item domain.MenuItem, baseURLs domain.AppBaseURLs) (string, bool) {
	if item.ExternalURL != "" {
		return item.ExternalURL, true
	}
	if !item.HasPath() || item.AppID == "" {
		return "", false
	}

	base, ok := baseURLs.Lookup(item.AppID)
	if !ok {
		return "", false
	}

	return JoinURL(base, item.Path), true
}

// JoinURL joins base and path with exactly one slash, whatever slashes either side carries.
func JoinURL(base, path string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}
