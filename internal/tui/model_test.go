package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/brandkit/internal/seed"
	"github.com/alexisbeaulieu97/brandkit/internal/tokens"
)

func sampleTokens() tokens.TokenSet {
	s := seed.Defaults()
	s.BrandName = "Acme"
	return tokens.Assemble(s)
}

func press(t *testing.T, m Model, key string) Model {
	t.Helper()
	var msg tea.KeyMsg
	switch key {
	case "right":
		msg = tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		msg = tea.KeyMsg{Type: tea.KeyLeft}
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		msg = tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	updated, _ := m.Update(msg)
	return updated.(Model)
}

func TestNewModelStartsOnColors(t *testing.T) {
	t.Parallel()

	m := NewModel(sampleTokens(), Options{})
	require.Equal(t, TabColors, m.ActiveTab())
	require.Nil(t, m.Init())
	require.False(t, m.Quitting())
}

func TestTabNavigation(t *testing.T) {
	t.Parallel()

	m := NewModel(sampleTokens(), Options{})

	m = press(t, m, "right")
	require.Equal(t, TabTypography, m.ActiveTab())
	m = press(t, m, "l")
	require.Equal(t, TabSpacing, m.ActiveTab())
	m = press(t, m, "tab")
	require.Equal(t, TabRadius, m.ActiveTab())
	m = press(t, m, "h")
	require.Equal(t, TabSpacing, m.ActiveTab())
	m = press(t, m, "left")
	require.Equal(t, TabTypography, m.ActiveTab())
}

func TestTabNavigationWraps(t *testing.T) {
	t.Parallel()

	m := NewModel(sampleTokens(), Options{})
	m = press(t, m, "left")
	require.Equal(t, TabTokens, m.ActiveTab())
	m = press(t, m, "right")
	require.Equal(t, TabColors, m.ActiveTab())
}

func TestNumberKeysJumpToTab(t *testing.T) {
	t.Parallel()

	m := NewModel(sampleTokens(), Options{})
	for i, want := range Tabs {
		m = press(t, m, string(rune('1'+i)))
		require.Equal(t, want, m.ActiveTab())
	}
	m = press(t, m, "9")
	require.Equal(t, TabTokens, m.ActiveTab())
}

func TestQuitKeys(t *testing.T) {
	t.Parallel()

	for _, key := range []string{"q", "esc", "ctrl+c"} {
		t.Run(key, func(t *testing.T) {
			m := NewModel(sampleTokens(), Options{})
			var msg tea.KeyMsg
			switch key {
			case "esc":
				msg = tea.KeyMsg{Type: tea.KeyEsc}
			case "ctrl+c":
				msg = tea.KeyMsg{Type: tea.KeyCtrlC}
			default:
				msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
			}
			updated, cmd := m.Update(msg)
			require.NotNil(t, cmd)
			require.True(t, updated.(Model).Quitting())
			require.Equal(t, "", updated.(Model).View())
		})
	}
}

func TestWindowSizeCreatesViewport(t *testing.T) {
	t.Parallel()

	m := NewModel(sampleTokens(), Options{})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = updated.(Model)

	require.True(t, m.ready)
	require.Equal(t, 100, m.viewport.Width)
	require.Equal(t, 30-headerHeight-footerHeight, m.viewport.Height)

	m = press(t, m, "5")
	require.Contains(t, m.View(), "--color-primary-50")
}
