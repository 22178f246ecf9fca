// Package colormath converts between hex strings and RGB triples and blends
// colors linearly toward white or black.
package colormath

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	brandkiterrors "github.com/alexisbeaulieu97/brandkit/pkg/errors"
)

const (
	White = "#ffffff"
	Black = "#000000"
)

// RGB is a color with 8-bit channels.
type RGB struct {
	R uint8 `json:"r" yaml:"r"`
	G uint8 `json:"g" yaml:"g"`
	B uint8 `json:"b" yaml:"b"`
}

// ParseHex decodes a 6-digit hex color. The leading "#" is optional and digits
// are case-insensitive. Anything else yields an *errors.InvalidColorError.
func ParseHex(hex string) (RGB, error) {
	digits := strings.TrimPrefix(hex, "#")
	if len(digits) != 6 {
		return RGB{}, brandkiterrors.NewInvalidColorError(hex, "expected 6 hexadecimal digits")
	}

	value, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return RGB{}, brandkiterrors.NewInvalidColorError(hex, "contains non-hexadecimal characters")
	}

	return RGB{
		R: uint8(value >> 16),
		G: uint8(value >> 8),
		B: uint8(value),
	}, nil
}

// Hex encodes the color as "#rrggbb" in lowercase.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Result is the outcome of a blend. When the input could not be parsed, Hex
// holds the input unchanged, Fallback is set and Err says why.
type Result struct {
	Hex      string
	Fallback bool
	Err      error
}

// TryLighten moves every channel toward 255 by amount (0 keeps the color,
// 1 gives white).
func TryLighten(hex string, amount float64) Result {
	a := clampUnit(amount)
	return blend(hex, func(c float64) float64 {
		return c + (255-c)*a
	})
}

// TryDarken scales every channel toward 0 by amount (0 keeps the color,
// 1 gives black).
func TryDarken(hex string, amount float64) Result {
	a := clampUnit(amount)
	return blend(hex, func(c float64) float64 {
		return c * (1 - a)
	})
}

// Lighten is TryLighten without the audit trail: invalid input comes back as is.
func Lighten(hex string, amount float64) string {
	return TryLighten(hex, amount).Hex
}

// Darken is TryDarken without the audit trail: invalid input comes back as is.
func Darken(hex string, amount float64) string {
	return TryDarken(hex, amount).Hex
}

func blend(hex string, channel func(float64) float64) Result {
	rgb, err := ParseHex(hex)
	if err != nil {
		return Result{Hex: hex, Fallback: true, Err: err}
	}

	out := RGB{
		R: toChannel(channel(float64(rgb.R))),
		G: toChannel(channel(float64(rgb.G))),
		B: toChannel(channel(float64(rgb.B))),
	}
	return Result{Hex: out.Hex()}
}

func toChannel(v float64) uint8 {
	rounded := math.Round(v)
	switch {
	case rounded < 0:
		return 0
	case rounded > 255:
		return 255
	default:
		return uint8(rounded)
	}
}

// clampUnit also maps NaN to 0.
func clampUnit(a float64) float64 {
	if !(a > 0) {
		return 0
	}
	if a > 1 {
		return 1
	}
	return a
}
