package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/brandkit/internal/tokens"
)

var (
	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

// Theme holds the browser's styles. NewTheme colours it from the brand being
// browsed, so the viewer previews the palette it describes.
type Theme struct {
	Title       lipgloss.Style
	Section     lipgloss.Style
	ActiveTab   lipgloss.Style
	InactiveTab lipgloss.Style
	Notes       lipgloss.Style
	Label       lipgloss.Style
	Help        lipgloss.Style
}

// DefaultTheme uses fixed ANSI colors.
func DefaultTheme() Theme {
	return themeFrom(lipgloss.Color("205"), lipgloss.Color("39"), lipgloss.Color("244"), lipgloss.Color("240"))
}

// NewTheme takes the accent from the primary ramp and muted text from the
// neutral ramp. A token set without colors gets DefaultTheme.
func NewTheme(ts tokens.TokenSet) Theme {
	primary, neutral := ts.Colors.Primary, ts.Colors.Neutral
	if primary.S500 == "" || neutral.S300 == "" {
		return DefaultTheme()
	}
	return themeFrom(
		lipgloss.Color(primary.S500),
		lipgloss.Color(primary.S300),
		lipgloss.Color(neutral.S300),
		lipgloss.Color(neutral.S400),
	)
}

func themeFrom(accent, section, muted, faint lipgloss.Color) Theme {
	return Theme{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(accent),
		Section:     lipgloss.NewStyle().Bold(true).Foreground(section).MarginTop(1),
		ActiveTab:   lipgloss.NewStyle().Bold(true).Foreground(accent).Underline(true).Padding(0, 1),
		InactiveTab: lipgloss.NewStyle().Foreground(muted).Padding(0, 1),
		Notes:       lipgloss.NewStyle().Italic(true).Foreground(muted),
		Label:       lipgloss.NewStyle().Foreground(muted).Width(10),
		Help:        lipgloss.NewStyle().Foreground(faint),
	}
}
