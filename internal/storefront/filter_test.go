package storefront

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/themestore/themestore/internal/catalog"
)

func themeNames(themes []catalog.Theme) []string {
	names := make([]string, 0, len(themes))
	for _, theme := range themes {
		names = append(names, theme.Name)
	}
	return names
}

func TestFilterThemesIdentity(t *testing.T) {
	themes := catalog.Themes()
	got := FilterThemes(themes, catalog.AllCategories, "")
	if diff := cmp.Diff(themes, got); diff != "" {
		t.Fatalf("identity filter mismatch (-want +got):\n%s", diff)
	}
}

func TestFilterThemesTable(t *testing.T) {
	themes := catalog.Themes()

	tests := []struct {
		name     string
		category string
		query    string
		want     []string
	}{
		{name: "case insensitive name", category: "All", query: "DASH", want: []string{"Modern Dashboard"}},
		{name: "description match", category: "All", query: "typography", want: []string{"Blog Master"}},
		{name: "category only", category: "E-Commerce", query: "", want: []string{"E-Commerce Pro"}},
		{name: "category and search combine", category: "Blog", query: "dashboard", want: []string{}},
		{name: "no match", category: "All", query: "zzz-nomatch", want: []string{}},
		{name: "shared word keeps catalog order", category: "All", query: "modern", want: []string{"Modern Dashboard", "SaaS Starter"}},
		{name: "professional", category: "All", query: "professional", want: []string{"Portfolio Elite", "Corporate Suite"}},
		{name: "category is case sensitive", category: "saas", query: "", want: []string{}},
		{name: "whitespace is literal", category: "All", query: " ", want: themeNames(themes)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := themeNames(FilterThemes(themes, tt.category, tt.query))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FilterThemes(%q, %q) mismatch (-want +got):\n%s", tt.category, tt.query, diff)
			}
		})
	}
}

func TestFilterThemesECommercePrice(t *testing.T) {
	got := FilterThemes(catalog.Themes(), "E-Commerce", "")
	require.Len(t, got, 1)
	assert.Equal(t, "E-Commerce Pro", got[0].Name)
	assert.Equal(t, 79, got[0].Price)
}

func TestFilterThemesEmptyInput(t *testing.T) {
	got := FilterThemes(nil, catalog.AllCategories, "")
	assert.Empty(t, got)
}
