package service

import (
	"strings"

	"github.com/msomdec/little-lemon/internal/domain"
)

// FilterMenu returns the items matching criteria, in their original order.
// An item matches when the search text is a case-insensitive substring of
// its title or description, and its category is selected (an empty
// selection admits every category). The result is never nil.
func FilterMenu(items []domain.MenuItem, criteria domain.FilterCriteria) []domain.MenuItem {
	search := strings.ToLower(criteria.Search)

	filtered := make([]domain.MenuItem, 0, len(items))
	for _, m := range items {
		if search != "" && !matchesSearch(m, search) {
			continue
		}
		if len(criteria.Categories) > 0 && !criteria.HasCategory(m.Category) {
			continue
		}
		filtered = append(filtered, m)
	}
	return filtered
}

// matchesSearch expects search to be lower-cased already.
func matchesSearch(m domain.MenuItem, search string) bool {
	return strings.Contains(strings.ToLower(m.Title), search) ||
		strings.Contains(strings.ToLower(m.Description), search)
}
