package seed

import "slices"

const (
	DefaultBrandName = "My Brand"

	DefaultPrimaryColor   = "#6C47FF"
	DefaultSecondaryColor = "#FF6B6B"
	DefaultNeutralColor   = "#1A1A2E"
	DefaultSuccessColor   = "#22C55E"
	DefaultWarningColor   = "#F59E0B"
	DefaultErrorColor     = "#EF4444"

	DefaultDisplayFont = "Playfair Display"
	DefaultBodyFont    = "DM Sans"
	DefaultMonoFont    = "JetBrains Mono"

	DefaultBaseFontSize = "16"
	DefaultBorderRadius = "8"
	DefaultSpacing      = "8"
)

// Fonts is the catalog of families the presentation layer offers.
var Fonts = []string{
	"Playfair Display", "DM Sans", "JetBrains Mono", "Sora", "Fraunces",
	"Plus Jakarta Sans", "Epilogue", "Space Grotesk", "Raleway", "Nunito",
	"Libre Baskerville", "Lora",
}

// PresetColors are the quick-pick swatches offered for the primary color.
var PresetColors = []string{
	"#6C47FF", "#0070F3", "#FF4154", "#F97316", "#10B981",
	"#8B5CF6", "#EC4899", "#0EA5E9", "#14B8A6", "#F43F5E",
}

// Defaults returns the starting seed. The brand name is left empty so that
// the assembler substitutes DefaultBrandName.
func Defaults() Seed {
	return Seed{
		PrimaryColor:   DefaultPrimaryColor,
		SecondaryColor: DefaultSecondaryColor,
		NeutralColor:   DefaultNeutralColor,
		SuccessColor:   DefaultSuccessColor,
		WarningColor:   DefaultWarningColor,
		ErrorColor:     DefaultErrorColor,
		DisplayFont:    DefaultDisplayFont,
		BodyFont:       DefaultBodyFont,
		MonoFont:       DefaultMonoFont,
		BaseFontSize:   DefaultBaseFontSize,
		BorderRadius:   DefaultBorderRadius,
		Spacing:        DefaultSpacing,
	}
}

// KnownFont reports whether name is in the catalog. Matching is exact.
func KnownFont(name string) bool {
	return slices.Contains(Fonts, name)
}
