package components

import (
	"strings"

	"github.com/themestore/themestore/internal/tui/styles"
)

// RenderCategoryBar renders one tab per category label. The selected label
// is drawn as an active tab.
func RenderCategoryBar(styleSet styles.Styles, categories []string, selected string) string {
	parts := make([]string, 0, len(categories))
	for _, label := range categories {
		style := styleSet.TabIdle
		if label == selected {
			style = styleSet.TabActive
		}
		parts = append(parts, style.Render(label))
	}
	return strings.Join(parts, " ")
}
