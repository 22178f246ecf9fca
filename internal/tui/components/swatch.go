package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/brandkit/internal/colormath"
)

// Swatch renders a block of the given color with its key and hex value
// printed on top in a readable foreground.
func Swatch(key, hex string) string {
	style := lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(lipgloss.Color(TextOn(hex))).
		Padding(0, 1).
		Width(16)
	return style.Render(fmt.Sprintf("%-4s %s", key, hex))
}

// TextOn picks black or white text for a background color by its perceived
// brightness. Unparseable colors get white.
func TextOn(hex string) string {
	rgb, err := colormath.ParseHex(hex)
	if err != nil {
		return colormath.White
	}
	luma := 0.299*float64(rgb.R) + 0.587*float64(rgb.G) + 0.114*float64(rgb.B)
	if luma > 150 {
		return colormath.Black
	}
	return colormath.White
}
