package analysis

import (
	"bytes"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/alexisbeaulieu97/brandkit/internal/seed"
)

var fencePattern = regexp.MustCompile("```json|```")

// flexString accepts a JSON string, number or null. Models sometimes answer
// "borderRadius": 8 instead of "8".
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	switch {
	case bytes.Equal(trimmed, []byte("null")):
		*f = ""
	case len(trimmed) > 0 && trimmed[0] == '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*f = flexString(s)
	default:
		n, err := strconv.ParseFloat(string(trimmed), 64)
		if err != nil {
			return err
		}
		*f = flexString(strconv.FormatFloat(n, 'f', -1, 64))
	}
	return nil
}

type rawAnalysis struct {
	BrandName      flexString `json:"brandName"`
	PrimaryColor   flexString `json:"primaryColor"`
	SecondaryColor flexString `json:"secondaryColor"`
	NeutralColor   flexString `json:"neutralColor"`
	SuccessColor   flexString `json:"successColor"`
	WarningColor   flexString `json:"warningColor"`
	ErrorColor     flexString `json:"errorColor"`
	DisplayFont    flexString `json:"displayFont"`
	BodyFont       flexString `json:"bodyFont"`
	MonoFont       flexString `json:"monoFont"`
	BaseFontSize   flexString `json:"baseFontSize"`
	BorderRadius   flexString `json:"borderRadius"`
	Spacing        flexString `json:"spacing"`
	AINotes        flexString `json:"aiNotes"`
}

// ParseResponse extracts the analysis record from the model's reply text,
// tolerating markdown code fences around the JSON.
func ParseResponse(text string) (seed.Analysis, error) {
	clean := strings.TrimSpace(fencePattern.ReplaceAllString(text, ""))

	var raw rawAnalysis
	if err := json.Unmarshal([]byte(clean), &raw); err != nil {
		return seed.Analysis{}, err
	}

	return seed.Analysis{
		Seed: seed.Seed{
			BrandName:      string(raw.BrandName),
			PrimaryColor:   string(raw.PrimaryColor),
			SecondaryColor: string(raw.SecondaryColor),
			NeutralColor:   string(raw.NeutralColor),
			SuccessColor:   string(raw.SuccessColor),
			WarningColor:   string(raw.WarningColor),
			ErrorColor:     string(raw.ErrorColor),
			DisplayFont:    string(raw.DisplayFont),
			BodyFont:       string(raw.BodyFont),
			MonoFont:       string(raw.MonoFont),
			BaseFontSize:   string(raw.BaseFontSize),
			BorderRadius:   string(raw.BorderRadius),
			Spacing:        string(raw.Spacing),
		},
		AINotes: string(raw.AINotes),
	}, nil
}
