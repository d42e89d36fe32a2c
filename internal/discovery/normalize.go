package discovery

import (
	"slices"

	"trf/navmenu/internal/domain"
)

const (
	// DefaultMenuGroup is used when a request names no group and as the fallback group.
	DefaultMenuGroup = "default"

	DefaultIDPrefix = "discovery-"

	// The organization home is served by the static tree, never by discovery.
	DefaultHomeEntryID   = "portal-home"
	DefaultHomeEntryPath = "/app/manage-organization"
)

// NormalizeOptions controls how feed entries are mapped to menu items.
type NormalizeOptions struct {
	IDPrefix      string
	HomeEntryID   string
	HomeEntryPath string
}

func DefaultNormalizeOptions() NormalizeOptions {
	return NormalizeOptions{
		IDPrefix:      DefaultIDPrefix,
		HomeEntryID:   DefaultHomeEntryID,
		HomeEntryPath: DefaultHomeEntryPath,
	}
}

// MapToMenuItems normalizes the requested group, falling back to DefaultMenuGroup.
func MapToMenuItems(resp *domain.DiscoveryMenuResponse, group string) []domain.MenuItem {
	if group == "" {
		group = DefaultMenuGroup
	}
	return Normalize(resp, group, DefaultMenuGroup, DefaultNormalizeOptions())
}

// Normalize turns a discovery response into menu leaves. A missing group is not an error:
// the fallback group is used, then an empty menu.
func Normalize(resp *domain.DiscoveryMenuResponse, group, fallback string, opts NormalizeOptions) []domain.MenuItem {
	entries := selectGroup(resp, group, fallback)

	kept := make([]domain.DiscoveryMenuEntry, 0, len(entries))
	for _, entry := range entries {
		if isHomeEntry(entry, opts) {
			continue
		}
		kept = append(kept, entry)
	}

	slices.SortStableFunc(kept, func(a, b domain.DiscoveryMenuEntry) int {
		ao, bo := orderOf(a), orderOf(b)
		switch {
		case ao < bo:
			return -1
		case ao > bo:
			return 1
		default:
			return 0
		}
	})

	items := make([]domain.MenuItem, 0, len(kept))
	for _, entry := range kept {
		items = append(items, mapEntry(entry, opts))
	}
	return items
}

func selectGroup(resp *domain.DiscoveryMenuResponse, group, fallback string) []domain.DiscoveryMenuEntry {
	if resp == nil || resp.Menus == nil {
		return nil
	}
	if entries, ok := resp.Menus[group]; ok && entries != nil {
		return entries
	}
	if entries, ok := resp.Menus[fallback]; ok && entries != nil {
		return entries
	}
	return nil
}

func isHomeEntry(entry domain.DiscoveryMenuEntry, opts NormalizeOptions) bool {
	return (opts.HomeEntryID != "" && entry.ID == opts.HomeEntryID) ||
		(opts.HomeEntryPath != "" && entry.Path == opts.HomeEntryPath)
}

func orderOf(entry domain.DiscoveryMenuEntry) float64 {
	return entry.Order.Value()
}

func mapEntry(entry domain.DiscoveryMenuEntry, opts NormalizeOptions) domain.MenuItem {
	return domain.MenuItem{
		ID:       opts.IDPrefix + entry.ID,
		Label:    entry.Label,
		AppID:    entry.Application(),
		Path:     entry.Path,
		Disabled: entry.IsDisabled(),
	}
}
