// Package sanitize guards the boundary where user or AI supplied seed values
// enter the token generators. Every Check function reports why a value was
// rejected; the plain variants substitute the fallback instead.
package sanitize

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var hexPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

var (
	ErrNotHex      = errors.New("not a # followed by 6 hexadecimal digits")
	ErrNotNumber   = errors.New("not a number")
	ErrNotFinite   = errors.New("not a finite number")
	ErrNotPositive = errors.New("not greater than zero")
	ErrNegative    = errors.New("negative")
)

// CheckHex accepts exactly "#" followed by six hex digits, in any case.
func CheckHex(value string) error {
	if !hexPattern.MatchString(value) {
		return ErrNotHex
	}
	return nil
}

// Hex returns value when CheckHex accepts it, otherwise fallback.
func Hex(value, fallback string) string {
	if CheckHex(value) != nil {
		return fallback
	}
	return value
}

// CheckNumber coerces value to a finite float64. Surrounding whitespace is
// ignored; an empty string is not a number.
func CheckNumber(value string) (float64, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0, ErrNotNumber
	}
	n, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return 0, ErrNotFinite
		}
		return 0, ErrNotNumber
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, ErrNotFinite
	}
	return n, nil
}

// CheckPositiveNumber is CheckNumber restricted to values above zero.
func CheckPositiveNumber(value string) (float64, error) {
	n, err := CheckNumber(value)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, ErrNotPositive
	}
	return n, nil
}

// CheckNonNegativeNumber is CheckNumber restricted to values of zero or more.
func CheckNonNegativeNumber(value string) (float64, error) {
	n, err := CheckNumber(value)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, ErrNegative
	}
	if n == 0 {
		// normalise -0
		return 0, nil
	}
	return n, nil
}

// Number returns the finite numeric value of value, or fallback.
func Number(value string, fallback float64) float64 {
	if n, err := CheckNumber(value); err == nil {
		return n
	}
	return fallback
}

// PositiveNumber returns the numeric value of value when it is above zero, or fallback.
func PositiveNumber(value string, fallback float64) float64 {
	if n, err := CheckPositiveNumber(value); err == nil {
		return n
	}
	return fallback
}

// NonNegativeNumber returns the numeric value of value when it is zero or more, or fallback.
func NonNegativeNumber(value string, fallback float64) float64 {
	if n, err := CheckNonNegativeNumber(value); err == nil {
		return n
	}
	return fallback
}
