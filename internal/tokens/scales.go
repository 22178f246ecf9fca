package tokens

import (
	"math"

	"github.com/alexisbeaulieu97/brandkit/internal/sanitize"
)

const (
	DefaultFontSize    = 16.0
	DefaultSpacingUnit = 8.0
	DefaultRadius      = 8.0
	minSmallRadius     = 2.0
)

// FullRadius is the pill radius.
const FullRadius Pixels = 9999

// NewTypeScale derives the type scale from a base font size. A base that is
// not a positive number becomes DefaultFontSize.
func NewTypeScale(base string) TypeScale {
	scale, _ := checkedTypeScale(base)
	return scale
}

func checkedTypeScale(base string) (TypeScale, error) {
	b, err := sanitize.CheckPositiveNumber(base)
	if err != nil {
		b = DefaultFontSize
	}
	return typeScaleFor(b), err
}

// Adjacent sizes stay distinct after rounding as long as b >= 0.8.
func typeScaleFor(b float64) TypeScale {
	size := func(multiplier float64) FontSize {
		return FontSize(math.Round(b*multiplier*10) / 10)
	}
	return TypeScale{
		XS:   size(0.75),
		SM:   size(0.875),
		Base: size(1),
		LG:   size(1.125),
		XL:   size(1.25),
		XL2:  size(1.5),
		XL3:  size(1.875),
		XL4:  size(2.25),
		XL5:  size(3),
	}
}

// NewSpacingScale derives the spacing scale from a base unit. A unit that is
// not a positive number becomes DefaultSpacingUnit.
func NewSpacingScale(unit string) SpacingScale {
	scale, _ := checkedSpacingScale(unit)
	return scale
}

func checkedSpacingScale(unit string) (SpacingScale, error) {
	u, err := sanitize.CheckPositiveNumber(unit)
	if err != nil {
		u = DefaultSpacingUnit
	}
	return spacingScaleFor(u), err
}

func spacingScaleFor(u float64) SpacingScale {
	step := func(multiplier float64) Pixels {
		return Pixels(u * multiplier)
	}
	return SpacingScale{
		S0:  0,
		S1:  step(0.25),
		S2:  step(0.5),
		S3:  step(0.75),
		S4:  step(1),
		S5:  step(1.25),
		S6:  step(1.5),
		S8:  step(2),
		S10: step(2.5),
		S12: step(3),
		S16: step(4),
		S20: step(5),
		S24: step(6),
		S32: step(8),
	}
}

// NewRadiusScale derives the radius scale from a base radius. Zero is a valid
// base (sharp corners); anything negative or non-numeric becomes DefaultRadius.
func NewRadiusScale(base string) RadiusScale {
	scale, _ := checkedRadiusScale(base)
	return scale
}

func checkedRadiusScale(base string) (RadiusScale, error) {
	r, err := sanitize.CheckNonNegativeNumber(base)
	if err != nil {
		r = DefaultRadius
	}
	return radiusScaleFor(r), err
}

// sm never drops below minSmallRadius, so with a base under 4 it can exceed md.
func radiusScaleFor(r float64) RadiusScale {
	return RadiusScale{
		None: 0,
		SM:   Pixels(math.Max(minSmallRadius, r*0.5)),
		MD:   Pixels(r),
		LG:   Pixels(r * 1.5),
		XL:   Pixels(r * 2),
		XL2:  Pixels(r * 3),
		Full: FullRadius,
	}
}
