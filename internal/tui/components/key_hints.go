package components

import (
	"fmt"
	"strings"

	"github.com/themestore/themestore/internal/tui/styles"
)

// KeyHint represents a keyboard-triggered action.
type KeyHint struct {
	Key     string // Keyboard key (e.g., "/", "space")
	Label   string // Display label (e.g., "Search")
	Enabled bool   // Whether the action is available
}

// RenderKeyHints renders a horizontal bar of available actions.
// Format: "/:Search  tab:Category  space:Cart"
func RenderKeyHints(styleSet styles.Styles, hints []KeyHint) string {
	var parts []string
	for _, hint := range hints {
		if !hint.Enabled {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s:%s", styleSet.Accent.Bold(true).Render(hint.Key), styleSet.Muted.Render(hint.Label)))
	}
	return strings.Join(parts, "  ")
}

// StorefrontKeyHints returns the actions available in the current mode.
func StorefrontKeyHints(searchFocused, hasItems, cartHasItems bool) []KeyHint {
	if searchFocused {
		return []KeyHint{
			{Key: "enter/esc", Label: "Done", Enabled: true},
			{Key: "ctrl+c", Label: "Quit", Enabled: true},
		}
	}
	return []KeyHint{
		{Key: "/", Label: "Search", Enabled: true},
		{Key: "tab", Label: "Category", Enabled: true},
		{Key: "↑/↓", Label: "Select", Enabled: hasItems},
		{Key: "space", Label: "Add/Remove", Enabled: hasItems},
		{Key: "c", Label: CheckoutLabel, Enabled: cartHasItems},
		{Key: "?", Label: "Help", Enabled: true},
		{Key: "q", Label: "Quit", Enabled: true},
	}
}

// HelpLines returns the full key map shown by the help overlay.
func HelpLines(styleSet styles.Styles) []string {
	rows := [][2]string{
		{"/", "focus the search box (enter or esc to leave)"},
		{"esc", "clear the search"},
		{"tab, ], →", "next category"},
		{"shift+tab, [, ←", "previous category"},
		{"0-9", "jump to category by position"},
		{"↑/↓, k/j", "move the selection"},
		{"space, a, enter", "add or remove the selected theme"},
		{"c", "checkout"},
		{"?", "toggle this help"},
		{"q, ctrl+c", "quit"},
	}
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, styleSet.Title.Render("Keys"))
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("  %-16s %s", row[0], styleSet.Muted.Render(row[1])))
	}
	return lines
}
