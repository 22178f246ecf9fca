package tokens

import (
	"strconv"
	"strings"
	"sync"

	"github.com/alexisbeaulieu97/brandkit/internal/seed"
)

// Fallback records a seed value that was replaced during assembly.
type Fallback struct {
	Field      string
	Value      string
	Substitute string
	Reason     error
}

// Report lists every fallback applied while assembling one TokenSet, in
// seed field order.
type Report struct {
	Fallbacks []Fallback
}

// Clean reports whether every seed value was used as given.
func (r Report) Clean() bool {
	return len(r.Fallbacks) == 0
}

// Assemble builds a TokenSet from s. It never fails; invalid values are
// replaced by defaults.
func Assemble(s seed.Seed) TokenSet {
	ts, _ := AssembleWithReport(s)
	return ts
}

// AssembleWithReport is Assemble plus the list of substitutions made. The six
// ramps and three scales are computed concurrently; they share no state.
func AssembleWithReport(s seed.Seed) (TokenSet, Report) {
	ts := TokenSet{
		BrandName: brandName(s.BrandName),
		Typography: Typography{
			Fonts: Fonts{Display: s.DisplayFont, Body: s.BodyFont, Mono: s.MonoFont},
		},
	}

	ramps := []struct {
		field    string
		value    string
		fallback string
		dst      *ShadeRamp
	}{
		{"primaryColor", s.PrimaryColor, seed.DefaultPrimaryColor, &ts.Colors.Primary},
		{"secondaryColor", s.SecondaryColor, seed.DefaultSecondaryColor, &ts.Colors.Secondary},
		{"neutralColor", s.NeutralColor, seed.DefaultNeutralColor, &ts.Colors.Neutral},
		{"successColor", s.SuccessColor, seed.DefaultSuccessColor, &ts.Colors.Success},
		{"warningColor", s.WarningColor, seed.DefaultWarningColor, &ts.Colors.Warning},
		{"errorColor", s.ErrorColor, seed.DefaultErrorColor, &ts.Colors.Error},
	}

	tasks := make([]func() *Fallback, 0, len(ramps)+3)
	for _, r := range ramps {
		r := r
		tasks = append(tasks, func() *Fallback {
			ramp, err := checkedShades(r.value, r.fallback)
			*r.dst = ramp
			return fallbackFor(r.field, r.value, r.fallback, err)
		})
	}
	tasks = append(tasks,
		func() *Fallback {
			scale, err := checkedTypeScale(s.BaseFontSize)
			ts.Typography.Scale = scale
			return fallbackFor("baseFontSize", s.BaseFontSize, formatNumber(DefaultFontSize), err)
		},
		func() *Fallback {
			scale, err := checkedSpacingScale(s.Spacing)
			ts.Spacing = scale
			return fallbackFor("spacing", s.Spacing, formatNumber(DefaultSpacingUnit), err)
		},
		func() *Fallback {
			scale, err := checkedRadiusScale(s.BorderRadius)
			ts.BorderRadius = scale
			return fallbackFor("borderRadius", s.BorderRadius, formatNumber(DefaultRadius), err)
		},
	)

	results := make([]*Fallback, len(tasks))
	var wg sync.WaitGroup
	for i, task := range tasks {
		i, task := i, task
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = task()
		}()
	}
	wg.Wait()

	var report Report
	for _, fb := range results {
		if fb != nil {
			report.Fallbacks = append(report.Fallbacks, *fb)
		}
	}
	return ts, report
}

func brandName(name string) string {
	if strings.TrimSpace(name) == "" {
		return seed.DefaultBrandName
	}
	return name
}

func fallbackFor(field, value, substitute string, err error) *Fallback {
	if err == nil {
		return nil
	}
	return &Fallback{Field: field, Value: value, Substitute: substitute, Reason: err}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
