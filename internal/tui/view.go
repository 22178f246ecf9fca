package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/brandkit/internal/export"
	"github.com/alexisbeaulieu97/brandkit/internal/tokens"
	"github.com/alexisbeaulieu97/brandkit/internal/tui/components"
)

// RenderOptions controls static rendering of a tab.
type RenderOptions struct {
	Notes string
	Width int
	// Theme defaults to NewTheme of the token set being rendered.
	Theme *Theme
}

func (o RenderOptions) theme(ts tokens.TokenSet) Theme {
	if o.Theme != nil {
		return *o.Theme
	}
	return NewTheme(ts)
}

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	body := RenderTab(m.tokens, m.active, m.renderOptions())
	if m.ready {
		body = m.viewport.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Title.Render(m.tokens.BrandName+" • Design Tokens"),
		renderTabBar(m.theme, m.active),
		"",
		body,
		m.theme.Help.Render("←/→ switch tab • 1-5 jump • ↑/↓ scroll • q quit"),
	)
}

func renderTabBar(theme Theme, active Tab) string {
	parts := make([]string, 0, len(Tabs))
	for i, t := range Tabs {
		label := fmt.Sprintf("%d %s", i+1, t)
		if t == active {
			parts = append(parts, theme.ActiveTab.Render(label))
		} else {
			parts = append(parts, theme.InactiveTab.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// RenderAll renders every tab in order, for output that is not a terminal.
func RenderAll(ts tokens.TokenSet, opts RenderOptions) string {
	theme := opts.theme(ts)
	opts.Theme = &theme
	sections := []string{theme.Title.Render(ts.BrandName + " • Design Tokens")}
	for _, t := range Tabs {
		sections = append(sections, theme.Section.Render(t.String()), RenderTab(ts, t, opts))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

// RenderTab renders the body of a single tab.
func RenderTab(ts tokens.TokenSet, tab Tab, opts RenderOptions) string {
	switch tab {
	case TabColors:
		return renderColors(ts, opts)
	case TabTypography:
		return renderTypography(ts, opts)
	case TabSpacing:
		entries := ts.Spacing.Entries()
		return renderBars(entries, entries[len(entries)-1].Pixels, barWidth(opts.Width))
	case TabRadius:
		return renderBars(ts.BorderRadius.Entries(), float64(ts.BorderRadius.XL2), barWidth(opts.Width))
	case TabTokens:
		return components.TokenTable(export.Rows(ts))
	default:
		return ""
	}
}

func renderColors(ts tokens.TokenSet, opts RenderOptions) string {
	theme := opts.theme(ts)
	var lines []string
	if strings.TrimSpace(opts.Notes) != "" {
		lines = append(lines, theme.Notes.Width(max(opts.Width-2, 20)).Render(opts.Notes), "")
	}
	for _, named := range ts.Colors.Ramps() {
		lines = append(lines, theme.Section.Render(named.Name))
		entries := named.Ramp.Entries()
		// two rows of five swatches
		for start := 0; start < len(entries); start += 5 {
			row := make([]string, 0, 5)
			for _, e := range entries[start:min(start+5, len(entries))] {
				row = append(row, components.Swatch(e.Key, e.Value))
			}
			lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, row...))
		}
	}
	return strings.Join(lines, "\n")
}

func renderTypography(ts tokens.TokenSet, opts RenderOptions) string {
	theme := opts.theme(ts)
	fonts := ts.Typography.Fonts
	lines := []string{
		theme.Label.Render("Display") + fonts.Display,
		theme.Label.Render("Body") + fonts.Body,
		theme.Label.Render("Mono") + fonts.Mono,
		"",
	}
	entries := ts.Typography.Scale.Entries()
	lines = append(lines, renderBars(entries, entries[len(entries)-1].Pixels, barWidth(opts.Width)))
	return strings.Join(lines, "\n")
}

func renderBars(entries []tokens.Entry, limit float64, width int) string {
	bar := components.NewBar(limit, width)
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, bar.View(e.Key, e.Value, e.Pixels))
	}
	return strings.Join(lines, "\n")
}

func barWidth(total int) int {
	return max(total-30, 10)
}
