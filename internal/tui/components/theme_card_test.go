package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/themestore/themestore/internal/catalog"
	"github.com/themestore/themestore/internal/tui/styles"
)

func TestActionLabel(t *testing.T) {
	assert.Equal(t, "Add to Cart", ActionLabel(false))
	assert.Equal(t, "Remove from Cart", ActionLabel(true))
}

func TestRenderThemeCard(t *testing.T) {
	styleSet := styles.DefaultStyles()
	theme, ok := catalog.Lookup(1)
	if !ok {
		t.Fatal("catalog is missing theme 1")
	}

	out := RenderThemeCard(styleSet, ThemeCard{Theme: theme})
	for _, want := range []string{"Modern Dashboard", "[Admin]", "4.8", "1,234 sales", "$49", "Add to Cart"} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "Remove from Cart")

	inCart := RenderThemeCard(styleSet, ThemeCard{Theme: theme, InCart: true, Selected: true})
	assert.Contains(t, inCart, "Remove from Cart")
	assert.NotContains(t, inCart, "Add to Cart")
}

func TestRenderThemeCardWidth(t *testing.T) {
	styleSet := styles.DefaultStyles()
	for _, theme := range catalog.Themes() {
		out := RenderThemeCard(styleSet, ThemeCard{Theme: theme})
		assert.LessOrEqual(t, lipgloss.Width(out), ThemeCardWidth+1, "card for %s is too wide", theme.Name)
	}
}

func TestGridColumns(t *testing.T) {
	cases := []struct {
		width int
		want  int
	}{
		{width: 0, want: 1},
		{width: 20, want: 1},
		{width: ThemeCardWidth * 2, want: 2},
		{width: ThemeCardWidth*3 + 5, want: 3},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, GridColumns(tc.width), "width %d", tc.width)
	}
}

func TestRenderThemeGridKeepsOrder(t *testing.T) {
	styleSet := styles.DefaultStyles()
	var cards []ThemeCard
	for _, theme := range catalog.Themes() {
		cards = append(cards, ThemeCard{Theme: theme})
	}

	out := RenderThemeGrid(styleSet, cards, ThemeCardWidth)
	previous := -1
	for _, card := range cards {
		idx := strings.Index(out, card.Theme.Name)
		if assert.GreaterOrEqual(t, idx, 0, "missing %s", card.Theme.Name) {
			assert.Greater(t, idx, previous, "%s out of order", card.Theme.Name)
			previous = idx
		}
	}

	assert.Empty(t, RenderThemeGrid(styleSet, nil, 120))
}
