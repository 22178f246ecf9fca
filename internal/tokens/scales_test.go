package tokens

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entryValues(entries []Entry) map[string]string {
	values := make(map[string]string, len(entries))
	for _, e := range entries {
		values[e.Key] = e.Value
	}
	return values
}

func TestTypeScaleFromDefaultBase(t *testing.T) {
	t.Parallel()

	scale := NewTypeScale("16")
	assert.Equal(t, map[string]string{
		"xs": "12.0px", "sm": "14.0px", "base": "16.0px", "lg": "18.0px", "xl": "20.0px",
		"2xl": "24.0px", "3xl": "30.0px", "4xl": "36.0px", "5xl": "48.0px",
	}, entryValues(scale.Entries()))
}

func TestTypeScaleRoundsToOneDecimal(t *testing.T) {
	t.Parallel()

	scale := NewTypeScale("15")
	assert.Equal(t, "11.3px", scale.XS.String())
	assert.Equal(t, "13.1px", scale.SM.String())
	assert.Equal(t, "15.0px", scale.Base.String())
	assert.Equal(t, "28.1px", scale.XL3.String())
}

func TestTypeScaleBaseMatchesSeedAndIncreases(t *testing.T) {
	t.Parallel()

	for b := 1.0; b <= 100; b += 0.5 {
		seed := strconv.FormatFloat(b, 'f', -1, 64)
		scale := NewTypeScale(seed)
		assert.InDelta(t, b, float64(scale.Base), 0.05, "base for %s", seed)

		entries := scale.Entries()
		require.Len(t, entries, 9)
		for i := 1; i < len(entries); i++ {
			assert.Greater(t, entries[i].Pixels, entries[i-1].Pixels, "%s > %s for base %s", entries[i].Key, entries[i-1].Key, seed)
		}
	}
}

func TestTypeScaleFallsBack(t *testing.T) {
	t.Parallel()

	expected := NewTypeScale("16")
	for _, input := range []string{"", "abc", "0", "-12", "NaN", "Infinity"} {
		assert.Equal(t, expected, NewTypeScale(input), "input %q", input)
	}
}

func TestSpacingScaleFromEight(t *testing.T) {
	t.Parallel()

	scale := NewSpacingScale("8")
	assert.Equal(t, "0px", scale.S0.String())
	assert.Equal(t, "2px", scale.S1.String())
	assert.Equal(t, "8px", scale.S4.String())
	assert.Equal(t, "16px", scale.S8.String())
	assert.Equal(t, "64px", scale.S32.String())

	values := entryValues(scale.Entries())
	assert.Len(t, values, 14)
	assert.Equal(t, "6px", values["3"])
	assert.Equal(t, "20px", values["10"])
}

func TestSpacingScaleIsLinear(t *testing.T) {
	t.Parallel()

	for _, unit := range []float64{4, 5, 6, 10, 12.5} {
		scale := NewSpacingScale(strconv.FormatFloat(unit, 'f', -1, 64))
		for _, e := range scale.Entries() {
			key, err := strconv.Atoi(e.Key)
			require.NoError(t, err)
			assert.InDelta(t, float64(key)*unit/4, e.Pixels, 1e-9, "unit %v key %s", unit, e.Key)
		}
	}
}

func TestSpacingScaleKeepsFractions(t *testing.T) {
	t.Parallel()

	scale := NewSpacingScale("5")
	assert.Equal(t, "1.25px", scale.S1.String())
	assert.Equal(t, "2.5px", scale.S2.String())
}

func TestSpacingScaleFallsBack(t *testing.T) {
	t.Parallel()

	expected := NewSpacingScale("8")
	for _, input := range []string{"", "wide", "0", "-8"} {
		assert.Equal(t, expected, NewSpacingScale(input), "input %q", input)
	}
}

func TestRadiusScaleFromEight(t *testing.T) {
	t.Parallel()

	assert.Equal(t, map[string]string{
		"none": "0px", "sm": "4px", "md": "8px", "lg": "12px",
		"xl": "16px", "2xl": "24px", "full": "9999px",
	}, entryValues(NewRadiusScale("8").Entries()))
}

func TestRadiusScaleSmallFloor(t *testing.T) {
	t.Parallel()

	scale := NewRadiusScale("1")
	assert.Equal(t, "2px", scale.SM.String())
	assert.Equal(t, "1px", scale.MD.String())

	sharp := NewRadiusScale("0")
	assert.Equal(t, "2px", sharp.SM.String())
	assert.Equal(t, "0px", sharp.MD.String())
	assert.Equal(t, "9999px", sharp.Full.String())
}

func TestRadiusScaleOrdering(t *testing.T) {
	t.Parallel()

	for _, base := range []float64{4, 6, 8, 12, 16, 24} {
		r := NewRadiusScale(strconv.FormatFloat(base, 'f', -1, 64))
		assert.Less(t, r.None, r.SM)
		assert.LessOrEqual(t, r.SM, r.MD)
		assert.Less(t, r.MD, r.LG)
		assert.Less(t, r.LG, r.XL)
		assert.Less(t, r.XL, r.XL2)
		assert.Equal(t, Pixels(base), r.MD)
	}
}

func TestRadiusScaleFallsBack(t *testing.T) {
	t.Parallel()

	expected := NewRadiusScale("8")
	for _, input := range []string{"", "round", "-4", "NaN"} {
		assert.Equal(t, expected, NewRadiusScale(input), "input %q", input)
	}
}

func TestPixelsTextRoundTrip(t *testing.T) {
	t.Parallel()

	text, err := Pixels(2.5).MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "2.5px", string(text))

	var p Pixels
	require.NoError(t, p.UnmarshalText([]byte("12px")))
	assert.Equal(t, Pixels(12), p)

	var f FontSize
	require.NoError(t, f.UnmarshalText([]byte("16.0px")))
	assert.Equal(t, FontSize(16), f)

	require.Error(t, p.UnmarshalText([]byte("twelve")))
}
