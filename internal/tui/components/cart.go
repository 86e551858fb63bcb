package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/themestore/themestore/internal/catalog"
	"github.com/themestore/themestore/internal/tui/styles"
)

const cartPanelWidth = 34

// CheckoutLabel is the text of the checkout affordance.
const CheckoutLabel = "Checkout"

// RenderCartIndicator renders the always-visible header cart button. The
// total is only shown once it is above zero.
func RenderCartIndicator(styleSet styles.Styles, count, total int) string {
	label := styleSet.ButtonAdd.Render(fmt.Sprintf("🛒 Cart (%d)", count))
	if total <= 0 {
		return label
	}
	return label + " " + styleSet.Price.Render(FormatPrice(total))
}

// CartPanel contains data needed to render the cart summary.
type CartPanel struct {
	Items []catalog.Theme
	Total int
}

// RenderCartPanel renders the cart summary. An empty cart renders nothing.
func RenderCartPanel(styleSet styles.Styles, panel CartPanel) string {
	if len(panel.Items) == 0 {
		return ""
	}

	inner := cartPanelWidth - 4
	lines := []string{styleSet.Title.Render("Cart Summary"), ""}
	for _, item := range panel.Items {
		lines = append(lines, spread(styleSet.Text.Render(item.Name), styleSet.Price.Render(FormatPrice(item.Price)), inner))
	}
	lines = append(lines,
		styleSet.Border.Render(strings.Repeat("─", inner)),
		spread(styleSet.Title.Render("Total:"), styleSet.Accent.Bold(true).Render(FormatPrice(panel.Total)), inner),
		"",
		styleSet.ButtonCheckout.Render(CheckoutLabel),
	)

	return styleSet.CartPanel.Width(cartPanelWidth - 2).Render(strings.Join(lines, "\n"))
}

// spread places left and right at opposite ends of a line of width.
func spread(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}
