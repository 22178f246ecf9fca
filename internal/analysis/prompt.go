package analysis

import (
	"strings"

	"github.com/alexisbeaulieu97/brandkit/internal/seed"
)

// Prompt is the instruction sent alongside the image. The field names match
// seed.Analysis.
func Prompt() string {
	fonts := make([]string, 0, len(seed.Fonts))
	for _, f := range seed.Fonts {
		if f != seed.DefaultMonoFont {
			fonts = append(fonts, f)
		}
	}

	var b strings.Builder
	b.WriteString("You are a design system expert. Analyze this UI design image and extract design tokens.\n\n")
	b.WriteString("Return ONLY a valid JSON object with exactly these fields (no markdown, no explanation):\n")
	b.WriteString("{\n")
	b.WriteString(`  "brandName": "guess a brand name from the UI or use '` + seed.DefaultBrandName + `'",` + "\n")
	b.WriteString(`  "primaryColor": "#hexcode of the dominant brand/action color",` + "\n")
	b.WriteString(`  "secondaryColor": "#hexcode of a secondary accent color",` + "\n")
	b.WriteString(`  "neutralColor": "#hexcode of the darkest neutral/text color",` + "\n")
	b.WriteString(`  "successColor": "#hexcode for success states (use ` + seed.DefaultSuccessColor + ` if unclear)",` + "\n")
	b.WriteString(`  "warningColor": "#hexcode for warning states (use ` + seed.DefaultWarningColor + ` if unclear)",` + "\n")
	b.WriteString(`  "errorColor": "#hexcode for error/danger states (use ` + seed.DefaultErrorColor + ` if unclear)",` + "\n")
	b.WriteString(`  "displayFont": "closest matching font from this list: ` + strings.Join(fonts, ", ") + `",` + "\n")
	b.WriteString(`  "bodyFont": "closest matching body font from the same list",` + "\n")
	b.WriteString(`  "monoFont": "` + seed.DefaultMonoFont + `",` + "\n")
	b.WriteString(`  "baseFontSize": "` + seed.DefaultBaseFontSize + `",` + "\n")
	b.WriteString(`  "borderRadius": "estimate in px as a number string: 0 for sharp, 4-8 for subtle, 12-16 for rounded, 24 for very rounded",` + "\n")
	b.WriteString(`  "spacing": "` + seed.DefaultSpacing + `",` + "\n")
	b.WriteString(`  "aiNotes": "2-3 sentences describing the design style, mood, and key visual characteristics you observed"` + "\n")
	b.WriteString("}")
	return b.String()
}
