// Package tokens derives complete design-token scales from a few seed values
// and assembles them into a TokenSet. Everything here is pure: the same
// sanitized input always produces the same output, and nothing fails.
package tokens

import (
	"fmt"
	"strconv"
	"strings"
)

// Pixels is a length rendered in its shortest decimal form, e.g. "2.5px".
type Pixels float64

func (p Pixels) String() string {
	return strconv.FormatFloat(float64(p), 'f', -1, 64) + "px"
}

// MarshalText renders the pixel string so JSON and YAML exports carry "8px".
func (p Pixels) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText accepts "8px" or a bare number.
func (p *Pixels) UnmarshalText(text []byte) error {
	v, err := parsePixels(string(text))
	if err != nil {
		return err
	}
	*p = Pixels(v)
	return nil
}

// FontSize is a font size rounded to one decimal and always rendered with
// one decimal, e.g. "16.0px".
type FontSize float64

func (f FontSize) String() string {
	return strconv.FormatFloat(float64(f), 'f', 1, 64) + "px"
}

// MarshalText renders the pixel string.
func (f FontSize) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText accepts "16.0px" or a bare number.
func (f *FontSize) UnmarshalText(text []byte) error {
	v, err := parsePixels(string(text))
	if err != nil {
		return err
	}
	*f = FontSize(v)
	return nil
}

func parsePixels(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(s), "px"), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid pixel value %q", s)
	}
	return v, nil
}

// Entry is one key of a scale in display order. Pixels is zero for colors.
type Entry struct {
	Key    string
	Value  string
	Pixels float64
}

// ShadeRamp holds ten shades of one color, 50 the lightest and 900 the darkest.
// S500 is the seed itself.
type ShadeRamp struct {
	S50  string `json:"50" yaml:"50"`
	S100 string `json:"100" yaml:"100"`
	S200 string `json:"200" yaml:"200"`
	S300 string `json:"300" yaml:"300"`
	S400 string `json:"400" yaml:"400"`
	S500 string `json:"500" yaml:"500"`
	S600 string `json:"600" yaml:"600"`
	S700 string `json:"700" yaml:"700"`
	S800 string `json:"800" yaml:"800"`
	S900 string `json:"900" yaml:"900"`
}

// Entries lists the shades from 50 to 900.
func (r ShadeRamp) Entries() []Entry {
	return []Entry{
		{Key: "50", Value: r.S50},
		{Key: "100", Value: r.S100},
		{Key: "200", Value: r.S200},
		{Key: "300", Value: r.S300},
		{Key: "400", Value: r.S400},
		{Key: "500", Value: r.S500},
		{Key: "600", Value: r.S600},
		{Key: "700", Value: r.S700},
		{Key: "800", Value: r.S800},
		{Key: "900", Value: r.S900},
	}
}

// TypeScale is a set of font sizes from xs to 5xl.
type TypeScale struct {
	XS   FontSize `json:"xs" yaml:"xs"`
	SM   FontSize `json:"sm" yaml:"sm"`
	Base FontSize `json:"base" yaml:"base"`
	LG   FontSize `json:"lg" yaml:"lg"`
	XL   FontSize `json:"xl" yaml:"xl"`
	XL2  FontSize `json:"2xl" yaml:"2xl"`
	XL3  FontSize `json:"3xl" yaml:"3xl"`
	XL4  FontSize `json:"4xl" yaml:"4xl"`
	XL5  FontSize `json:"5xl" yaml:"5xl"`
}

// Entries lists the sizes from xs to 5xl.
func (s TypeScale) Entries() []Entry {
	sizes := []struct {
		key  string
		size FontSize
	}{
		{"xs", s.XS}, {"sm", s.SM}, {"base", s.Base}, {"lg", s.LG}, {"xl", s.XL},
		{"2xl", s.XL2}, {"3xl", s.XL3}, {"4xl", s.XL4}, {"5xl", s.XL5},
	}
	entries := make([]Entry, 0, len(sizes))
	for _, sz := range sizes {
		entries = append(entries, Entry{Key: sz.key, Value: sz.size.String(), Pixels: float64(sz.size)})
	}
	return entries
}

// SpacingScale is a set of spacing steps keyed by their multiple of a quarter unit.
type SpacingScale struct {
	S0  Pixels `json:"0" yaml:"0"`
	S1  Pixels `json:"1" yaml:"1"`
	S2  Pixels `json:"2" yaml:"2"`
	S3  Pixels `json:"3" yaml:"3"`
	S4  Pixels `json:"4" yaml:"4"`
	S5  Pixels `json:"5" yaml:"5"`
	S6  Pixels `json:"6" yaml:"6"`
	S8  Pixels `json:"8" yaml:"8"`
	S10 Pixels `json:"10" yaml:"10"`
	S12 Pixels `json:"12" yaml:"12"`
	S16 Pixels `json:"16" yaml:"16"`
	S20 Pixels `json:"20" yaml:"20"`
	S24 Pixels `json:"24" yaml:"24"`
	S32 Pixels `json:"32" yaml:"32"`
}

// Entries lists the steps from 0 to 32.
func (s SpacingScale) Entries() []Entry {
	return pixelEntries([]string{"0", "1", "2", "3", "4", "5", "6", "8", "10", "12", "16", "20", "24", "32"},
		[]Pixels{s.S0, s.S1, s.S2, s.S3, s.S4, s.S5, s.S6, s.S8, s.S10, s.S12, s.S16, s.S20, s.S24, s.S32})
}

// RadiusScale is a set of corner radii. Full is a pill sentinel, not derived
// from the base.
type RadiusScale struct {
	None Pixels `json:"none" yaml:"none"`
	SM   Pixels `json:"sm" yaml:"sm"`
	MD   Pixels `json:"md" yaml:"md"`
	LG   Pixels `json:"lg" yaml:"lg"`
	XL   Pixels `json:"xl" yaml:"xl"`
	XL2  Pixels `json:"2xl" yaml:"2xl"`
	Full Pixels `json:"full" yaml:"full"`
}

// Entries lists the radii from none to full.
func (r RadiusScale) Entries() []Entry {
	return pixelEntries([]string{"none", "sm", "md", "lg", "xl", "2xl", "full"},
		[]Pixels{r.None, r.SM, r.MD, r.LG, r.XL, r.XL2, r.Full})
}

func pixelEntries(keys []string, values []Pixels) []Entry {
	entries := make([]Entry, len(keys))
	for i, key := range keys {
		entries[i] = Entry{Key: key, Value: values[i].String(), Pixels: float64(values[i])}
	}
	return entries
}

// Colors holds one ramp per semantic role.
type Colors struct {
	Primary   ShadeRamp `json:"primary" yaml:"primary"`
	Secondary ShadeRamp `json:"secondary" yaml:"secondary"`
	Neutral   ShadeRamp `json:"neutral" yaml:"neutral"`
	Success   ShadeRamp `json:"success" yaml:"success"`
	Warning   ShadeRamp `json:"warning" yaml:"warning"`
	Error     ShadeRamp `json:"error" yaml:"error"`
}

// NamedRamp pairs a role name with its ramp.
type NamedRamp struct {
	Name string
	Ramp ShadeRamp
}

// Ramps lists the ramps in role order.
func (c Colors) Ramps() []NamedRamp {
	return []NamedRamp{
		{Name: "primary", Ramp: c.Primary},
		{Name: "secondary", Ramp: c.Secondary},
		{Name: "neutral", Ramp: c.Neutral},
		{Name: "success", Ramp: c.Success},
		{Name: "warning", Ramp: c.Warning},
		{Name: "error", Ramp: c.Error},
	}
}

// Fonts names the three font families. They are passed through unchecked.
type Fonts struct {
	Display string `json:"display" yaml:"display"`
	Body    string `json:"body" yaml:"body"`
	Mono    string `json:"mono" yaml:"mono"`
}

// Typography combines the font families with the type scale.
type Typography struct {
	Fonts Fonts     `json:"fonts" yaml:"fonts"`
	Scale TypeScale `json:"scale" yaml:"scale"`
}

// TokenSet is the assembled output of one generation. It contains no maps,
// slices or pointers, so every copy is independent: consumers can hold one
// while a new set is generated.
type TokenSet struct {
	BrandName    string       `json:"brandName" yaml:"brandName"`
	Colors       Colors       `json:"colors" yaml:"colors"`
	Typography   Typography   `json:"typography" yaml:"typography"`
	Spacing      SpacingScale `json:"spacing" yaml:"spacing"`
	BorderRadius RadiusScale  `json:"borderRadius" yaml:"borderRadius"`
}
