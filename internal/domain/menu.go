package domain

import (
	"context"
	"slices"
)

// MenuItem is a single dish on the restaurant menu. Price is kept as the
// pre-formatted string the menu endpoint serves.
type MenuItem struct {
	ID          int64
	Title       string
	Description string
	Price       string
	Image       string
	Category    string // "starters", "mains", "desserts", "drinks"
}

// DefaultCategories are the category chips offered on the home screen.
var DefaultCategories = []string{"starters", "mains", "desserts", "drinks"}

// MenuRepository is the durable local cache of menu items.
type MenuRepository interface {
	// GetAll returns every stored item in insertion order.
	GetAll(ctx context.Context) ([]MenuItem, error)
	// InsertAll appends items in a single all-or-nothing batch. A duplicate
	// ID rejects the whole batch with ErrDuplicateMenuItem.
	InsertAll(ctx context.Context, items []MenuItem) error
}

// MenuSource fetches the full menu from a remote endpoint. A nil error with
// an empty slice means the remote menu is genuinely empty; any failure is
// reported as an error wrapping ErrFetchFailed.
type MenuSource interface {
	FetchMenu(ctx context.Context) ([]MenuItem, error)
}

// FilterCriteria is the search text and selected category set used to derive
// the displayed subset of the menu.
type FilterCriteria struct {
	Search     string
	Categories []string
}

// HasCategory reports whether category is selected.
func (c FilterCriteria) HasCategory(category string) bool {
	return slices.Contains(c.Categories, category)
}

// Toggle returns a copy of the criteria with category added if it was not
// selected, or removed if it was.
func (c FilterCriteria) Toggle(category string) FilterCriteria {
	next := FilterCriteria{Search: c.Search}
	if c.HasCategory(category) {
		for _, existing := range c.Categories {
			if existing != category {
				next.Categories = append(next.Categories, existing)
			}
		}
		return next
	}
	next.Categories = append(slices.Clone(c.Categories), category)
	return next
}

// Clone returns a copy that shares no memory with c.
func (c FilterCriteria) Clone() FilterCriteria {
	return FilterCriteria{Search: c.Search, Categories: slices.Clone(c.Categories)}
}
