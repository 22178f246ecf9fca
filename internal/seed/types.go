// Package seed holds the handful of values a token set is derived from, the
// defaults used when a value is missing, and the loaders that read them from
// YAML files or from the image analysis service.
package seed

// Seed is the working state of a brand before generation. Colors and numbers
// are kept as the strings the user (or the analysis service) typed; they are
// sanitized only when a token set is assembled.
type Seed struct {
	BrandName string `yaml:"brandName" json:"brandName" validate:"max=100"`

	PrimaryColor   string `yaml:"primaryColor" json:"primaryColor" validate:"hex6"`
	SecondaryColor string `yaml:"secondaryColor" json:"secondaryColor" validate:"hex6"`
	NeutralColor   string `yaml:"neutralColor" json:"neutralColor" validate:"hex6"`
	SuccessColor   string `yaml:"successColor" json:"successColor" validate:"hex6"`
	WarningColor   string `yaml:"warningColor" json:"warningColor" validate:"hex6"`
	ErrorColor     string `yaml:"errorColor" json:"errorColor" validate:"hex6"`

	DisplayFont string `yaml:"displayFont" json:"displayFont" validate:"font"`
	BodyFont    string `yaml:"bodyFont" json:"bodyFont" validate:"font"`
	MonoFont    string `yaml:"monoFont" json:"monoFont" validate:"font"`

	BaseFontSize string `yaml:"baseFontSize" json:"baseFontSize" validate:"px_positive"`
	BorderRadius string `yaml:"borderRadius" json:"borderRadius" validate:"px_nonnegative"`
	Spacing      string `yaml:"spacing" json:"spacing" validate:"px_positive"`
}

// Analysis is the record returned by the image analysis service: a seed plus
// free-text notes about the design that generation ignores.
type Analysis struct {
	Seed    `yaml:",inline"`
	AINotes string `yaml:"aiNotes,omitempty" json:"aiNotes"`
}
