// Package storefront holds the session state of the Theme Store: filter
// selection, the cart, and the views derived from them.
package storefront

import (
	"strings"

	"github.com/themestore/themestore/internal/catalog"
)

// FilterThemes returns the themes matching both the category and the search
// query, in input order. Category "All" matches everything; the query is a
// case-insensitive substring match against name or description.
func FilterThemes(themes []catalog.Theme, category, query string) []catalog.Theme {
	needle := strings.ToLower(query)
	out := make([]catalog.Theme, 0, len(themes))
	for _, theme := range themes {
		if !matchesCategory(theme, category) || !matchesQuery(theme, needle) {
			continue
		}
		out = append(out, theme)
	}
	return out
}

func matchesCategory(theme catalog.Theme, category string) bool {
	return category == catalog.AllCategories || string(theme.Category) == category
}

// needle must already be lower-cased.
func matchesQuery(theme catalog.Theme, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(theme.Name), needle) ||
		strings.Contains(strings.ToLower(theme.Description), needle)
}
