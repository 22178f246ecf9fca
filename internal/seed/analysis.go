package seed

import (
	"strings"

	"github.com/alexisbeaulieu97/brandkit/internal/sanitize"
)

// FromAnalysis turns the analysis service's answer into a seed ready for
// review. Colors are sanitized against their role defaults, fonts outside the
// catalog are replaced, the mono font is pinned and empty sizes get defaults.
func FromAnalysis(a Analysis) Seed {
	return Seed{
		BrandName:      strings.TrimSpace(a.BrandName),
		PrimaryColor:   sanitize.Hex(a.PrimaryColor, DefaultPrimaryColor),
		SecondaryColor: sanitize.Hex(a.SecondaryColor, DefaultSecondaryColor),
		NeutralColor:   sanitize.Hex(a.NeutralColor, DefaultNeutralColor),
		SuccessColor:   sanitize.Hex(a.SuccessColor, DefaultSuccessColor),
		WarningColor:   sanitize.Hex(a.WarningColor, DefaultWarningColor),
		ErrorColor:     sanitize.Hex(a.ErrorColor, DefaultErrorColor),
		DisplayFont:    catalogFont(a.DisplayFont, DefaultDisplayFont),
		BodyFont:       catalogFont(a.BodyFont, DefaultBodyFont),
		MonoFont:       DefaultMonoFont,
		BaseFontSize:   nonEmpty(a.BaseFontSize, DefaultBaseFontSize),
		BorderRadius:   nonEmpty(a.BorderRadius, DefaultBorderRadius),
		Spacing:        nonEmpty(a.Spacing, DefaultSpacing),
	}
}

func catalogFont(name, fallback string) string {
	if KnownFont(name) {
		return name
	}
	return fallback
}

func nonEmpty(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return strings.TrimSpace(value)
}
