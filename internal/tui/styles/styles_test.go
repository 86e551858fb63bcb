package styles

import (
	"io"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	theme, err := Lookup("")
	require.NoError(t, err)
	assert.Equal(t, "default", theme.Name)

	theme, err = Lookup(" High-Contrast ")
	require.NoError(t, err)
	assert.Equal(t, "high-contrast", theme.Name)

	_, err = Lookup("neon")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownTheme)
	assert.Contains(t, err.Error(), "default, high-contrast")
}

func TestThemesDefineEveryToken(t *testing.T) {
	for name, theme := range Themes {
		tokens := theme.Tokens
		for role, value := range map[string]string{
			"background":  tokens.Background,
			"panel":       tokens.Panel,
			"text":        tokens.Text,
			"text_muted":  tokens.TextMuted,
			"border":      tokens.Border,
			"accent":      tokens.Accent,
			"accent_text": tokens.AccentText,
			"focus":       tokens.Focus,
			"success":     tokens.Success,
			"warning":     tokens.Warning,
			"error":       tokens.Error,
			"info":        tokens.Info,
			"price":       tokens.Price,
			"rating":      tokens.Rating,
		} {
			assert.NotEmpty(t, value, "theme %s missing %s", name, role)
		}
		assert.Equal(t, name, theme.Name)
	}
}

func TestBuildStylesWithRendererKeepsTheme(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	styleSet := BuildStylesWithRenderer(HighContrastTheme, r)
	assert.Equal(t, HighContrastTheme, styleSet.Theme)
	assert.Contains(t, styleSet.ButtonAdd.Render("Add to Cart"), "Add to Cart")
}
