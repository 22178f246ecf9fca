package tokens

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/brandkit/internal/sanitize"
	"github.com/alexisbeaulieu97/brandkit/internal/seed"
)

func TestAssembleEndToEnd(t *testing.T) {
	t.Parallel()

	s := seed.Defaults()
	s.PrimaryColor = "#0070F3"
	s.BaseFontSize = "16"
	s.Spacing = "8"
	s.BorderRadius = "8"

	ts, report := AssembleWithReport(s)

	require.True(t, report.Clean(), "unexpected fallbacks: %+v", report.Fallbacks)
	assert.Equal(t, "#0070F3", ts.Colors.Primary.S500)
	assert.Equal(t, "16.0px", ts.Typography.Scale.Base.String())
	assert.Equal(t, "8px", ts.Spacing.S4.String())
	assert.Equal(t, "8px", ts.BorderRadius.MD.String())
	assert.Equal(t, seed.DefaultBrandName, ts.BrandName)
	assert.Equal(t, Fonts{Display: "Playfair Display", Body: "DM Sans", Mono: "JetBrains Mono"}, ts.Typography.Fonts)
}

func TestAssembleMatchesIndividualGenerators(t *testing.T) {
	t.Parallel()

	s := seed.Defaults()
	s.BrandName = "Acme"
	s.BaseFontSize = "18"
	s.Spacing = "4"
	s.BorderRadius = "12"

	ts := Assemble(s)

	want := TokenSet{
		BrandName: "Acme",
		Colors: Colors{
			Primary:   MakeShades(seed.DefaultPrimaryColor),
			Secondary: MakeShades(seed.DefaultSecondaryColor),
			Neutral:   MakeShades(seed.DefaultNeutralColor),
			Success:   MakeShades(seed.DefaultSuccessColor),
			Warning:   MakeShades(seed.DefaultWarningColor),
			Error:     MakeShades(seed.DefaultErrorColor),
		},
		Typography: Typography{
			Fonts: Fonts{Display: s.DisplayFont, Body: s.BodyFont, Mono: s.MonoFont},
			Scale: NewTypeScale("18"),
		},
		Spacing:      NewSpacingScale("4"),
		BorderRadius: NewRadiusScale("12"),
	}

	if diff := cmp.Diff(want, ts); diff != "" {
		t.Fatalf("assembled token set mismatch (-want +got):\n%s", diff)
	}
}

func TestAssembleIsIdempotent(t *testing.T) {
	t.Parallel()

	s := seed.Defaults()
	s.BrandName = "Stable"
	s.PrimaryColor = "#14B8A6"

	first := Assemble(s)
	for i := 0; i < 20; i++ {
		if diff := cmp.Diff(first, Assemble(s)); diff != "" {
			t.Fatalf("run %d differs (-first +run):\n%s", i, diff)
		}
	}
}

func TestAssembleUsesRoleFallbacks(t *testing.T) {
	t.Parallel()

	garbage := seed.Seed{
		PrimaryColor:   "red",
		SecondaryColor: "#12",
		NeutralColor:   "",
		SuccessColor:   "#zzzzzz",
		WarningColor:   "F59E0B",
		ErrorColor:     "#EF44445",
		BaseFontSize:   "huge",
		BorderRadius:   "-1",
		Spacing:        "0",
	}

	ts, report := AssembleWithReport(garbage)

	assert.Equal(t, seed.DefaultPrimaryColor, ts.Colors.Primary.S500)
	assert.Equal(t, seed.DefaultSecondaryColor, ts.Colors.Secondary.S500)
	assert.Equal(t, seed.DefaultNeutralColor, ts.Colors.Neutral.S500)
	assert.Equal(t, seed.DefaultSuccessColor, ts.Colors.Success.S500)
	assert.Equal(t, seed.DefaultWarningColor, ts.Colors.Warning.S500)
	assert.Equal(t, seed.DefaultErrorColor, ts.Colors.Error.S500)
	assert.Equal(t, NewTypeScale("16"), ts.Typography.Scale)
	assert.Equal(t, NewSpacingScale("8"), ts.Spacing)
	assert.Equal(t, NewRadiusScale("8"), ts.BorderRadius)

	require.Len(t, report.Fallbacks, 9)
	fields := make([]string, 0, len(report.Fallbacks))
	for _, fb := range report.Fallbacks {
		fields = append(fields, fb.Field)
	}
	assert.Equal(t, []string{
		"primaryColor", "secondaryColor", "neutralColor", "successColor", "warningColor", "errorColor",
		"baseFontSize", "spacing", "borderRadius",
	}, fields)

	assert.Equal(t, Fallback{Field: "primaryColor", Value: "red", Substitute: seed.DefaultPrimaryColor, Reason: sanitize.ErrNotHex}, report.Fallbacks[0])
	assert.Equal(t, "16", report.Fallbacks[6].Substitute)
	assert.ErrorIs(t, report.Fallbacks[7].Reason, sanitize.ErrNotPositive)
	assert.ErrorIs(t, report.Fallbacks[8].Reason, sanitize.ErrNegative)
}

func TestAssembleNeverPanics(t *testing.T) {
	t.Parallel()

	inputs := []string{"", " ", "#", "💥", "#0070F3\n", "1e309", "-0", "0x10", "\x00", "NaN", "9999999999999999999999"}
	for _, in := range inputs {
		s := seed.Seed{
			BrandName: in, PrimaryColor: in, SecondaryColor: in, NeutralColor: in,
			SuccessColor: in, WarningColor: in, ErrorColor: in,
			DisplayFont: in, BodyFont: in, MonoFont: in,
			BaseFontSize: in, BorderRadius: in, Spacing: in,
		}
		require.NotPanics(t, func() { Assemble(s) }, "input %q", in)
	}
}

func TestAssemblePassesFontsThrough(t *testing.T) {
	t.Parallel()

	s := seed.Defaults()
	s.DisplayFont = "Not A Catalog Font"
	s.MonoFont = ""

	ts, report := AssembleWithReport(s)
	assert.True(t, report.Clean())
	assert.Equal(t, "Not A Catalog Font", ts.Typography.Fonts.Display)
	assert.Equal(t, "", ts.Typography.Fonts.Mono)
}

func TestAssembledSetsAreIndependentValues(t *testing.T) {
	t.Parallel()

	published := Assemble(seed.Defaults())
	snapshot := published

	edited := seed.Defaults()
	edited.PrimaryColor = "#000000"
	next := Assemble(edited)
	next.Colors.Primary.S50 = "#mutated"

	assert.Equal(t, snapshot, published)
	assert.NotEqual(t, published.Colors.Primary, next.Colors.Primary)
}

func TestBrandNameFallback(t *testing.T) {
	t.Parallel()

	assert.Equal(t, seed.DefaultBrandName, brandName(""))
	assert.Equal(t, seed.DefaultBrandName, brandName("   "))
	assert.Equal(t, " Acme ", brandName(" Acme "))
}
