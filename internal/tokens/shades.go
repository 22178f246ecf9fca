package tokens

import (
	"github.com/alexisbeaulieu97/brandkit/internal/colormath"
	"github.com/alexisbeaulieu97/brandkit/internal/sanitize"
)

// DefaultShadeSeed replaces an invalid seed color in MakeShades.
const DefaultShadeSeed = "#6C47FF"

// Blend amounts per shade. They define the product's look; keep them as is.
var (
	lightenAmounts = [5]float64{0.93, 0.83, 0.65, 0.47, 0.23} // 50, 100, 200, 300, 400
	darkenAmounts  = [4]float64{0.13, 0.27, 0.45, 0.65}       // 600, 700, 800, 900
)

// MakeShades builds a ramp around seed, or around DefaultShadeSeed when seed
// is not a 6-digit hex color.
func MakeShades(seed string) ShadeRamp {
	return MakeShadesWithFallback(seed, DefaultShadeSeed)
}

// MakeShadesWithFallback builds a ramp around seed, or around fallback when
// seed is not a 6-digit hex color.
func MakeShadesWithFallback(seed, fallback string) ShadeRamp {
	ramp, _ := checkedShades(seed, fallback)
	return ramp
}

// checkedShades also returns why seed was replaced, if it was.
func checkedShades(seed, fallback string) (ShadeRamp, error) {
	hex := seed
	err := sanitize.CheckHex(seed)
	if err != nil {
		hex = fallback
	}
	return shadesOf(hex), err
}

func shadesOf(hex string) ShadeRamp {
	return ShadeRamp{
		S50:  colormath.Lighten(hex, lightenAmounts[0]),
		S100: colormath.Lighten(hex, lightenAmounts[1]),
		S200: colormath.Lighten(hex, lightenAmounts[2]),
		S300: colormath.Lighten(hex, lightenAmounts[3]),
		S400: colormath.Lighten(hex, lightenAmounts[4]),
		S500: hex,
		S600: colormath.Darken(hex, darkenAmounts[0]),
		S700: colormath.Darken(hex, darkenAmounts[1]),
		S800: colormath.Darken(hex, darkenAmounts[2]),
		S900: colormath.Darken(hex, darkenAmounts[3]),
	}
}
