package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/brandkit/internal/tokens"
)

// Tab identifies one page of the token browser.
type Tab int

const (
	TabColors Tab = iota
	TabTypography
	TabSpacing
	TabRadius
	TabTokens
)

// Tabs lists every tab in display order.
var Tabs = []Tab{TabColors, TabTypography, TabSpacing, TabRadius, TabTokens}

func (t Tab) String() string {
	switch t {
	case TabColors:
		return "Colors"
	case TabTypography:
		return "Typography"
	case TabSpacing:
		return "Spacing"
	case TabRadius:
		return "Radius"
	case TabTokens:
		return "Tokens"
	default:
		return "Unknown"
	}
}

const (
	headerHeight = 3
	footerHeight = 2
)

// Options configures a browser model.
type Options struct {
	// Notes is shown above the colors tab, typically the analysis summary.
	Notes string
	// Width is used for rendering before the first window size message.
	Width int
}

// Model contains the Bubbletea state for the token browser.
type Model struct {
	tokens   tokens.TokenSet
	theme    Theme
	notes    string
	active   Tab
	viewport viewport.Model
	ready    bool
	width    int
	height   int
	quitting bool
}

// NewModel constructs a browser over ts. The token set is copied, so later
// generations do not affect what is displayed.
func NewModel(ts tokens.TokenSet, opts Options) Model {
	width := opts.Width
	if width <= 0 {
		width = 80
	}
	return Model{
		tokens: ts,
		theme:  NewTheme(ts),
		notes:  opts.Notes,
		active: TabColors,
		width:  width,
	}
}

// Init starts the Bubbletea program.
func (m Model) Init() tea.Cmd {
	return nil
}

// ActiveTab returns the tab currently shown.
func (m Model) ActiveTab() Tab {
	return m.active
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

func (m *Model) selectTab(t Tab) {
	if t < TabColors || t > TabTokens {
		return
	}
	m.active = t
	if m.ready {
		m.viewport.SetContent(RenderTab(m.tokens, m.active, m.renderOptions()))
		m.viewport.GotoTop()
	}
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height

	bodyHeight := height - headerHeight - footerHeight
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	if !m.ready {
		m.viewport = viewport.New(width, bodyHeight)
		m.ready = true
	} else {
		m.viewport.Width = width
		m.viewport.Height = bodyHeight
	}
	m.viewport.SetContent(RenderTab(m.tokens, m.active, m.renderOptions()))
}

func (m Model) renderOptions() RenderOptions {
	return RenderOptions{Notes: m.notes, Width: m.width, Theme: &m.theme}
}
