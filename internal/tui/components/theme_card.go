package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/themestore/themestore/internal/catalog"
	"github.com/themestore/themestore/internal/tui/styles"
)

// ThemeCardWidth is the outer width of a rendered theme card.
const ThemeCardWidth = 38

const (
	addLabel    = "Add to Cart"
	removeLabel = "Remove from Cart"
)

// ThemeCard contains data needed to render a catalog card.
type ThemeCard struct {
	Theme    catalog.Theme
	InCart   bool
	Selected bool
}

// ActionLabel returns the per-item cart affordance for the given membership.
func ActionLabel(inCart bool) string {
	if inCart {
		return removeLabel
	}
	return addLabel
}

// RenderThemeCard renders a catalog card: glyph and name, category chip,
// description, rating with sales, price and the cart action.
func RenderThemeCard(styleSet styles.Styles, card ThemeCard) string {
	theme := card.Theme
	inner := ThemeCardWidth - 4

	header := styleSet.Title.Render(fmt.Sprintf("%s  %s", defaultIfEmpty(theme.Image, "□"), theme.Name))
	chip := styleSet.Chip.Render(fmt.Sprintf("[%s]", theme.Category))
	description := styleSet.Muted.Width(inner).Render(theme.Description)

	rating := RenderRating(styleSet, theme.Rating, theme.Sales)
	price := styleSet.Price.Render(FormatPrice(theme.Price))
	gap := inner - lipgloss.Width(rating) - lipgloss.Width(price)
	if gap < 1 {
		gap = 1
	}
	statsLine := rating + strings.Repeat(" ", gap) + price

	button := styleSet.ButtonAdd
	if card.InCart {
		button = styleSet.ButtonRemove
	}
	action := button.Render(ActionLabel(card.InCart))

	content := strings.Join([]string{
		header,
		chip,
		description,
		statsLine,
		action,
	}, "\n")

	cardStyle := styleSet.Card
	if card.Selected {
		cardStyle = styleSet.CardSelected
	}
	return cardStyle.Width(ThemeCardWidth - 2).Render(content)
}

// RenderThemeGrid lays cards out in as many columns as fit in width.
func RenderThemeGrid(styleSet styles.Styles, cards []ThemeCard, width int) string {
	if len(cards) == 0 {
		return ""
	}

	columns := GridColumns(width)
	var rows []string
	for start := 0; start < len(cards); start += columns {
		end := min(start+columns, len(cards))
		rendered := make([]string, 0, end-start)
		for _, card := range cards[start:end] {
			rendered = append(rendered, RenderThemeCard(styleSet, card))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// GridColumns returns how many cards fit side by side in width, at least one.
func GridColumns(width int) int {
	if width <= 0 {
		return 1
	}
	return max(width/ThemeCardWidth, 1)
}

func defaultIfEmpty(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
