package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/themestore/themestore/internal/catalog"
	"github.com/themestore/themestore/internal/tui/styles"
)

func TestRenderCartIndicator(t *testing.T) {
	styleSet := styles.DefaultStyles()

	empty := RenderCartIndicator(styleSet, 0, 0)
	assert.Contains(t, empty, "Cart (0)")
	assert.NotContains(t, empty, "$")

	full := RenderCartIndicator(styleSet, 2, 128)
	assert.Contains(t, full, "Cart (2)")
	assert.Contains(t, full, "$128")
}

func TestRenderCartPanel(t *testing.T) {
	styleSet := styles.DefaultStyles()

	assert.Empty(t, RenderCartPanel(styleSet, CartPanel{}))

	first, _ := catalog.Lookup(1)
	second, _ := catalog.Lookup(2)
	out := RenderCartPanel(styleSet, CartPanel{Items: []catalog.Theme{second, first}, Total: 128})

	for _, want := range []string{"Cart Summary", "E-Commerce Pro", "$79", "Modern Dashboard", "$49", "Total:", "$128", CheckoutLabel} {
		assert.Contains(t, out, want)
	}
	assert.Less(t, strings.Index(out, "E-Commerce Pro"), strings.Index(out, "Modern Dashboard"), "items keep the order given")
}

func TestRenderCategoryBar(t *testing.T) {
	styleSet := styles.DefaultStyles()
	out := RenderCategoryBar(styleSet, catalog.Categories(), "Blog")
	for _, label := range catalog.Categories() {
		assert.Contains(t, out, label)
	}
}

func TestRenderRating(t *testing.T) {
	styleSet := styles.DefaultStyles()
	out := RenderRating(styleSet, 4.9, 2156)
	assert.Contains(t, out, "4.9")
	assert.Contains(t, out, "(2,156 sales)")
	assert.Equal(t, "$79", FormatPrice(79))
}

func TestStorefrontKeyHints(t *testing.T) {
	styleSet := styles.DefaultStyles()

	browsing := RenderKeyHints(styleSet, StorefrontKeyHints(false, true, false))
	assert.Contains(t, browsing, "Search")
	assert.Contains(t, browsing, "Add/Remove")
	assert.NotContains(t, browsing, CheckoutLabel)

	empty := RenderKeyHints(styleSet, StorefrontKeyHints(false, false, true))
	assert.NotContains(t, empty, "Add/Remove")
	assert.Contains(t, empty, CheckoutLabel)

	searching := RenderKeyHints(styleSet, StorefrontKeyHints(true, true, true))
	assert.Contains(t, searching, "Done")
	assert.NotContains(t, searching, "Search")

	assert.NotEmpty(t, HelpLines(styleSet))
}
