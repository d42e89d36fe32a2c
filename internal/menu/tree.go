package menu

import (
	"errors"
	"fmt"

	"trf/navmenu/internal/domain"
)

var (
	ErrEmptyID     = errors.New("menu item has empty id")
	ErrDuplicateID = errors.New("duplicate menu item id")
)

// DefaultKeepSections are the static sections kept when the tree is hydrated from discovery.
var DefaultKeepSections = []string{"org"}

// Walk visits every item depth-first in order. Returning false from fn skips the item's children.
func Walk(tree []domain.MenuItem, fn func(item domain.MenuItem, depth int) bool) {
	walk(tree, 0, fn)
}

func walk(items []domain.MenuItem, depth int, fn func(item domain.MenuItem, depth int) bool) {
	for _, item := range items {
		if !fn(item, depth) {
			continue
		}
		walk(item.Children, depth+1, fn)
	}
}

// Find returns the item with the given id and its depth (0 for top level).
func Find(tree []domain.MenuItem, id string) (domain.MenuItem, int, bool) {
	var (
		found domain.MenuItem
		depth int
		ok    bool
	)

	Walk(tree, func(item domain.MenuItem, d int) bool {
		if ok {
			return false
		}
		if item.ID == id {
			found, depth, ok = item, d, true
			return false
		}
		return true
	})

	return found, depth, ok
}

// Validate checks that every id is non-empty and unique across the whole tree.
func Validate(tree []domain.MenuItem) error {
	seen := make(map[string]struct{})
	var err error

	Walk(tree, func(item domain.MenuItem, _ int) bool {
		if err != nil {
			return false
		}
		if item.ID == "" {
			err = fmt.Errorf("%w (label %q)", ErrEmptyID, item.Label)
			return false
		}
		if _, dup := seen[item.ID]; dup {
			err = fmt.Errorf("%w: %s", ErrDuplicateID, item.ID)
			return false
		}
		seen[item.ID] = struct{}{}
		return true
	})

	return err
}

// Clone deep-copies a tree.
func Clone(tree []domain.MenuItem) []domain.MenuItem {
	if tree == nil {
		return nil
	}

	out := make([]domain.MenuItem, len(tree))
	for i, item := range tree {
		out[i] = item
		out[i].Children = Clone(item.Children)
	}
	return out
}

// Merge builds a hydrated tree: the static top-level sections listed in keep, in static order,
// followed by the discovered items.
func Merge(static, discovered []domain.MenuItem, keep []string) []domain.MenuItem {
	keepSet := make(map[string]struct{}, len(keep))
	for _, id := range keep {
		keepSet[id] = struct{}{}
	}

	out := make([]domain.MenuItem, 0, len(keep)+len(discovered))
	for _, section := range static {
		if _, ok := keepSet[section.ID]; ok {
			out = append(out, Clone([]domain.MenuItem{section})...)
		}
	}

	return append(out, Clone(discovered)...)
}
