// Package components provides reusable storefront TUI components.
package components

import (
	"fmt"
	"strings"

	"github.com/themestore/themestore/internal/catalog"
	"github.com/themestore/themestore/internal/tui/styles"
)

// NoThemesMessage is shown in place of the grid when filters match nothing.
const NoThemesMessage = "No themes found matching your criteria."

// EmptyState represents an empty state message with optional suggestions.
type EmptyState struct {
	// Icon is an optional icon to display (e.g., "🔍", "🛒").
	Icon string
	// Title is the main empty state message.
	Title string
	// Subtitle is an optional secondary message.
	Subtitle string
	// Suggestions are keys the shopper can press to recover.
	Suggestions []Suggestion
}

// Suggestion represents a suggested key with description.
type Suggestion struct {
	// Key is the key or key sequence to press (e.g., "esc").
	Key string
	// Description explains what the key does.
	Description string
}

// Render renders the empty state with the given styles.
func (e EmptyState) Render(styleSet styles.Styles) string {
	var lines []string

	titleLine := e.Title
	if e.Icon != "" {
		titleLine = e.Icon + "  " + titleLine
	}
	lines = append(lines, styleSet.Muted.Render(titleLine))

	if e.Subtitle != "" {
		lines = append(lines, styleSet.Muted.Render(e.Subtitle))
	}

	if len(e.Suggestions) > 0 {
		lines = append(lines, "")
		lines = append(lines, styleSet.Text.Render("Try:"))
		for _, s := range e.Suggestions {
			keyLine := fmt.Sprintf("  %s", styleSet.Accent.Render(s.Key))
			if s.Description != "" {
				keyLine += styleSet.Muted.Render(fmt.Sprintf("  %s", s.Description))
			}
			lines = append(lines, keyLine)
		}
	}

	return strings.Join(lines, "\n")
}

// RenderCompact renders a compact single-line empty state.
func (e EmptyState) RenderCompact(styleSet styles.Styles) string {
	line := e.Title
	if e.Icon != "" {
		line = e.Icon + " " + line
	}
	if len(e.Suggestions) > 0 {
		line += fmt.Sprintf(" Try: %s", e.Suggestions[0].Key)
	}
	return styleSet.Muted.Render(line)
}

// NoThemesFound returns the empty state for a filter that matches nothing.
func NoThemesFound(category, query string) EmptyState {
	var suggestions []Suggestion
	if query != "" {
		suggestions = append(suggestions, Suggestion{Key: "esc", Description: fmt.Sprintf("clear the search %q", query)})
	}
	if category != catalog.AllCategories {
		suggestions = append(suggestions, Suggestion{Key: "0", Description: "show all categories"})
	}
	return EmptyState{
		Icon:        "🔍",
		Title:       NoThemesMessage,
		Suggestions: suggestions,
	}
}
