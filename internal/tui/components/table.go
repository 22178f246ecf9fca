package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/brandkit/internal/export"
)

var (
	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	tokenColStyle    = lipgloss.NewStyle().Width(22)
	valueColStyle    = lipgloss.NewStyle().Width(10)
	descColStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// TokenTable renders custom property rows as aligned token, value and
// description columns.
func TokenTable(rows []export.Row) string {
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, tableHeaderStyle.Render(
		tokenColStyle.Render("Token")+valueColStyle.Render("Value")+"Description"))
	for _, row := range rows {
		lines = append(lines, tokenColStyle.Render(row.Token)+valueColStyle.Render(row.Value)+descColStyle.Render(row.Description))
	}
	return strings.Join(lines, "\n")
}
