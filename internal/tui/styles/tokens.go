package styles

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ThemeTokens defines the semantic color roles for the storefront UI.
type ThemeTokens struct {
	Background string
	Panel      string
	Text       string
	TextMuted  string
	Border     string
	Accent     string
	// AccentText is drawn on top of Accent backgrounds.
	AccentText string
	Focus      string
	Success    string
	Warning    string
	Error      string
	Info       string
	Price      string
	Rating     string
}

// Theme bundles a palette with a name.
type Theme struct {
	Name   string
	Tokens ThemeTokens
}

// ErrUnknownTheme is returned when a palette name is not registered.
var ErrUnknownTheme = errors.New("unknown tui theme")

// Themes lists available palettes by name.
var Themes = map[string]Theme{
	"default":       DefaultTheme,
	"high-contrast": HighContrastTheme,
}

// Lookup returns the palette registered under name. Empty selects the default.
func Lookup(name string) (Theme, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return DefaultTheme, nil
	}
	theme, ok := Themes[name]
	if !ok {
		return Theme{}, fmt.Errorf("%w: %s (available: %s)", ErrUnknownTheme, name, strings.Join(ThemeNames(), ", "))
	}
	return theme, nil
}

// ThemeNames returns the registered palette names, sorted.
func ThemeNames() []string {
	names := make([]string, 0, len(Themes))
	for name := range Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
