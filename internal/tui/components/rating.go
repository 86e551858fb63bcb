package components

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/themestore/themestore/internal/tui/styles"
)

// RenderRating renders a star rating with the sales counter,
// e.g. "⭐ 4.8 (1,234 sales)".
func RenderRating(styleSet styles.Styles, rating float64, sales int) string {
	return fmt.Sprintf("%s %s %s",
		styleSet.Rating.Render("⭐"),
		styleSet.Text.Render(fmt.Sprintf("%.1f", rating)),
		styleSet.Muted.Render(fmt.Sprintf("(%s sales)", humanize.Comma(int64(sales)))),
	)
}

// FormatPrice renders a whole-unit price, e.g. "$49".
func FormatPrice(price int) string {
	return fmt.Sprintf("$%d", price)
}
