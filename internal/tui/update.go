package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		return m.handleKeys(msg)
	}

	return m, nil
}

func (m Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "right", "l", "tab":
		m.selectTab((m.active + 1) % Tab(len(Tabs)))
		return m, nil

	case "left", "h", "shift+tab":
		m.selectTab((m.active + Tab(len(Tabs)) - 1) % Tab(len(Tabs)))
		return m, nil

	case "1", "2", "3", "4", "5":
		m.selectTab(Tab(msg.String()[0] - '1'))
		return m, nil
	}

	if !m.ready {
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}
