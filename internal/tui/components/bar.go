package components

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// Bar renders a labelled value as a bar proportional to the largest value in
// its scale.
type Bar struct {
	bar   progress.Model
	limit float64
}

// NewBar creates a bar whose full width corresponds to limit.
func NewBar(limit float64, width int) Bar {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = width
	return Bar{bar: bar, limit: limit}
}

var barLabelStyle = lipgloss.NewStyle().Bold(true).Width(10)

// View renders the bar for value with key and the formatted value as label.
func (b Bar) View(key, value string, amount float64) string {
	label := barLabelStyle.Render(key)
	return lipgloss.JoinHorizontal(lipgloss.Left, label, b.bar.ViewAs(b.ratio(amount)), " ", value)
}

func (b Bar) ratio(amount float64) float64 {
	if b.limit <= 0 || amount <= 0 {
		return 0
	}
	return math.Min(1.0, amount/b.limit)
}

// String describes the bar for debugging.
func (b Bar) String() string {
	return fmt.Sprintf("Bar(limit=%g, width=%d)", b.limit, b.bar.Width)
}
