// Package tui implements the Theme Store terminal user interface.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/themestore/themestore/internal/catalog"
	"github.com/themestore/themestore/internal/storefront"
	"github.com/themestore/themestore/internal/tui/components"
	"github.com/themestore/themestore/internal/tui/styles"
)

const (
	appTitle   = "Theme Store"
	appGlyph   = "🎨"
	appTagline = "Browse and purchase premium themes and templates for your projects"

	checkoutNotice = "Checkout is not available yet. Your cart stays as it is."

	minWidth  = 44
	minHeight = 12
)

// Config controls how a storefront session is rendered.
type Config struct {
	// Theme names a palette from styles.Themes. Empty selects the default.
	Theme string
	// AltScreen runs the program in the terminal's alternate screen.
	AltScreen bool
	// Renderer binds styles to a specific output, e.g. an SSH session.
	Renderer *lipgloss.Renderer
	// Observer receives every applied storefront transition.
	Observer storefront.Observer
}

// Model is the Bubble Tea model for one storefront session.
type Model struct {
	state  *storefront.State
	styles styles.Styles

	search        textinput.Model
	searchFocused bool

	categories []string
	cursor     int

	width    int
	height   int
	showHelp bool
	notice   string
}

// New builds a model over a fresh storefront session.
func New(cfg Config) (Model, error) {
	theme, err := styles.Lookup(cfg.Theme)
	if err != nil {
		return Model{}, err
	}

	var opts []storefront.Option
	if cfg.Observer != nil {
		opts = append(opts, storefront.WithObserver(cfg.Observer))
	}

	return newModel(storefront.NewDefault(opts...), styles.BuildStylesWithRenderer(theme, cfg.Renderer)), nil
}

func newModel(state *storefront.State, styleSet styles.Styles) Model {
	search := textinput.New()
	search.Placeholder = "Search themes..."
	search.Prompt = "🔎 "
	search.CharLimit = 64
	search.Width = 40

	return Model{
		state:      state,
		styles:     styleSet,
		search:     search,
		categories: catalog.Categories(),
	}
}

// Run launches the storefront on the local terminal and blocks until the
// shopper quits or ctx is cancelled. The returned state is the session as
// the shopper left it.
func Run(ctx context.Context, cfg Config, opts ...tea.ProgramOption) (*storefront.State, error) {
	m, err := New(cfg)
	if err != nil {
		return nil, err
	}

	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	_, err = tea.NewProgram(m, opts...).Run()
	return m.State(), err
}

// State exposes the session state, mainly for session teardown logging.
func (m Model) State() *storefront.State { return m.state }

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.search.Width = max(min(msg.Width-6, 60), 10)
		return m, nil
	case tea.KeyMsg:
		if m.searchFocused {
			return m.updateSearch(msg)
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "enter", "esc", "tab", "down":
		m.searchFocused = false
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.state.SetSearch(m.search.Value())
	m.clampCursor()
	return m, cmd
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""

	key := msg.String()
	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "/":
		m.searchFocused = true
		m.showHelp = false
		return m, m.search.Focus()
	case "esc":
		m.search.SetValue("")
		m.state.SetSearch("")
		m.showHelp = false
	case "tab", "]", "right", "l":
		m.selectCategory(m.categoryIndex() + 1)
	case "shift+tab", "[", "left", "h":
		m.selectCategory(m.categoryIndex() - 1)
	case "up", "k":
		m.cursor--
	case "down", "j":
		m.cursor++
	case "home", "g":
		m.cursor = 0
	case "end", "G":
		m.cursor = len(m.state.FilteredThemes()) - 1
	case " ", "a", "enter":
		if theme, ok := m.selectedTheme(); ok {
			m.state.ToggleCart(theme.ID)
		}
	case "c":
		if m.state.CartCount() > 0 {
			m.state.Checkout()
			m.notice = checkoutNotice
		}
	case "?":
		m.showHelp = !m.showHelp
	default:
		if idx, err := strconv.Atoi(key); err == nil && len(key) == 1 && idx < len(m.categories) {
			m.selectCategory(idx)
		}
	}

	m.clampCursor()
	return m, nil
}

func (m *Model) selectCategory(idx int) {
	n := len(m.categories)
	idx = ((idx % n) + n) % n
	m.state.SetCategory(m.categories[idx])
}

func (m Model) categoryIndex() int {
	selected := m.state.SelectedCategory()
	for i, label := range m.categories {
		if label == selected {
			return i
		}
	}
	return 0
}

func (m *Model) clampCursor() {
	count := len(m.state.FilteredThemes())
	if count == 0 {
		m.cursor = 0
		return
	}
	m.cursor = min(max(m.cursor, 0), count-1)
}

func (m Model) selectedTheme() (catalog.Theme, bool) {
	themes := m.state.FilteredThemes()
	if m.cursor < 0 || m.cursor >= len(themes) {
		return catalog.Theme{}, false
	}
	return themes[m.cursor], true
}

func (m Model) View() string {
	if m.width > 0 && m.height > 0 {
		if m.width < minWidth || m.height < minHeight {
			return fmt.Sprintf("%s\n", strings.Join(m.smallViewLines(), "\n"))
		}
	}

	themes := m.state.FilteredThemes()

	lines := []string{
		m.renderHeader(),
		m.styles.Muted.Render(appTagline),
		"",
		m.search.View(),
		"",
		components.RenderCategoryBar(m.styles, m.categories, m.state.SelectedCategory()),
		"",
	}

	if m.showHelp {
		lines = append(lines, components.HelpLines(m.styles)...)
	} else {
		lines = append(lines, m.renderBody(themes))
	}

	if m.notice != "" {
		lines = append(lines, "", m.styles.Info.Render(m.notice))
	}
	lines = append(lines, "", components.RenderKeyHints(m.styles, components.StorefrontKeyHints(m.searchFocused, len(themes) > 0, m.state.CartCount() > 0)))

	return fmt.Sprintf("%s\n", strings.Join(lines, "\n"))
}

func (m Model) renderHeader() string {
	title := m.styles.Title.Render(fmt.Sprintf("%s %s", appGlyph, appTitle))
	cart := components.RenderCartIndicator(m.styles, m.state.CartCount(), m.state.CartTotal())
	if m.width <= 0 {
		return title + "  " + cart
	}
	gap := max(m.width-lipgloss.Width(title)-lipgloss.Width(cart), 2)
	return title + strings.Repeat(" ", gap) + cart
}

func (m Model) renderBody(themes []catalog.Theme) string {
	panel := components.RenderCartPanel(m.styles, components.CartPanel{
		Items: m.state.CartItems(),
		Total: m.state.CartTotal(),
	})

	gridWidth := m.width
	if panel != "" && m.width > 0 {
		gridWidth = m.width - lipgloss.Width(panel) - 2
	}

	var grid string
	if len(themes) == 0 {
		grid = components.NoThemesFound(m.state.SelectedCategory(), m.state.SearchQuery()).Render(m.styles)
	} else {
		cards := make([]components.ThemeCard, 0, len(themes))
		for i, theme := range themes {
			cards = append(cards, components.ThemeCard{
				Theme:    theme,
				InCart:   m.state.InCart(theme.ID),
				Selected: i == m.cursor && !m.searchFocused,
			})
		}
		grid = components.RenderThemeGrid(m.styles, cards, gridWidth)
	}

	if panel == "" {
		return grid
	}
	if m.width > 0 && gridWidth < components.ThemeCardWidth {
		return lipgloss.JoinVertical(lipgloss.Left, grid, "", panel)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, grid, "  ", panel)
}

func (m Model) smallViewLines() []string {
	message := fmt.Sprintf("Terminal too small (%dx%d).", m.width, m.height)
	hint := fmt.Sprintf("Resize to at least %dx%d.", minWidth, minHeight)

	lines := []string{
		m.styles.Warning.Render(message),
		m.styles.Muted.Render(hint),
		components.RenderCartIndicator(m.styles, m.state.CartCount(), m.state.CartTotal()),
	}
	if m.state.IsEmptyResult() {
		lines = append(lines, components.NoThemesFound(m.state.SelectedCategory(), m.state.SearchQuery()).RenderCompact(m.styles))
	}
	return append(lines, m.styles.Muted.Render("Press q to quit."))
}
