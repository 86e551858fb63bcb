package styles

import "github.com/charmbracelet/lipgloss"

// Styles contains lipgloss styles derived from theme tokens.
type Styles struct {
	Theme          Theme
	Title          lipgloss.Style
	Text           lipgloss.Style
	Muted          lipgloss.Style
	Accent         lipgloss.Style
	Panel          lipgloss.Style
	Border         lipgloss.Style
	Focus          lipgloss.Style
	Success        lipgloss.Style
	Warning        lipgloss.Style
	Error          lipgloss.Style
	Info           lipgloss.Style
	Price          lipgloss.Style
	Rating         lipgloss.Style
	Chip           lipgloss.Style
	TabActive      lipgloss.Style
	TabIdle        lipgloss.Style
	ButtonAdd      lipgloss.Style
	ButtonRemove   lipgloss.Style
	ButtonCheckout lipgloss.Style
	Card           lipgloss.Style
	CardSelected   lipgloss.Style
	CartPanel      lipgloss.Style
}

// DefaultStyles builds styles from the default theme.
func DefaultStyles() Styles {
	return BuildStyles(DefaultTheme)
}

// BuildStyles converts theme tokens into lipgloss styles for the local terminal.
func BuildStyles(theme Theme) Styles {
	return BuildStylesWithRenderer(theme, nil)
}

// BuildStylesWithRenderer converts theme tokens into styles bound to r, so
// color output matches a remote session's terminal. A nil renderer uses the
// lipgloss default.
func BuildStylesWithRenderer(theme Theme, r *lipgloss.Renderer) Styles {
	tokens := theme.Tokens
	newStyle := lipgloss.NewStyle
	if r != nil {
		newStyle = r.NewStyle
	}
	color := func(value string) lipgloss.Color { return lipgloss.Color(value) }

	button := func(bg string) lipgloss.Style {
		return newStyle().Foreground(color(tokens.AccentText)).Background(color(bg)).Bold(true).Padding(0, 1)
	}
	card := func(border string) lipgloss.Style {
		return newStyle().Border(lipgloss.RoundedBorder()).BorderForeground(color(border)).Padding(0, 1)
	}

	return Styles{
		Theme:          theme,
		Title:          newStyle().Foreground(color(tokens.Text)).Bold(true),
		Text:           newStyle().Foreground(color(tokens.Text)),
		Muted:          newStyle().Foreground(color(tokens.TextMuted)),
		Accent:         newStyle().Foreground(color(tokens.Accent)),
		Panel:          newStyle().Foreground(color(tokens.Text)).Background(color(tokens.Panel)).BorderStyle(lipgloss.NormalBorder()).BorderForeground(color(tokens.Border)),
		Border:         newStyle().Foreground(color(tokens.Border)),
		Focus:          newStyle().Foreground(color(tokens.Focus)).Bold(true),
		Success:        newStyle().Foreground(color(tokens.Success)),
		Warning:        newStyle().Foreground(color(tokens.Warning)),
		Error:          newStyle().Foreground(color(tokens.Error)),
		Info:           newStyle().Foreground(color(tokens.Info)),
		Price:          newStyle().Foreground(color(tokens.Price)).Bold(true),
		Rating:         newStyle().Foreground(color(tokens.Rating)),
		Chip:           newStyle().Foreground(color(tokens.Info)).Bold(true),
		TabActive:      button(tokens.Accent),
		TabIdle:        newStyle().Foreground(color(tokens.TextMuted)).Padding(0, 1),
		ButtonAdd:      button(tokens.Accent),
		ButtonRemove:   button(tokens.Error),
		ButtonCheckout: button(tokens.Success),
		Card:           card(tokens.Border),
		CardSelected:   card(tokens.Focus),
		CartPanel:      newStyle().Border(lipgloss.DoubleBorder()).BorderForeground(color(tokens.Accent)).Padding(0, 1),
	}
}
