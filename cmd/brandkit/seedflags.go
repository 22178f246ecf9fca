package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/brandkit/internal/seed"
)

// seedFlags are the per-field overrides shared by generate and browse. They
// win over values from --seed, which win over the built-in defaults.
type seedFlags struct {
	seedPath string

	brand     string
	primary   string
	secondary string
	neutral   string
	success   string
	warning   string
	danger    string

	display string
	body    string
	mono    string

	fontSize string
	radius   string
	spacing  string
}

func (f *seedFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.seedPath, "seed", "s", "", "Path to a YAML seed file")

	fs.StringVar(&f.brand, "brand", "", "Brand name")
	fs.StringVar(&f.primary, "primary", "", "Primary color (#RRGGBB)")
	fs.StringVar(&f.secondary, "secondary", "", "Secondary color (#RRGGBB)")
	fs.StringVar(&f.neutral, "neutral", "", "Neutral color (#RRGGBB)")
	fs.StringVar(&f.success, "success", "", "Success color (#RRGGBB)")
	fs.StringVar(&f.warning, "warning", "", "Warning color (#RRGGBB)")
	fs.StringVar(&f.danger, "error", "", "Error color (#RRGGBB)")

	fs.StringVar(&f.display, "display-font", "", "Display font family")
	fs.StringVar(&f.body, "body-font", "", "Body font family")
	fs.StringVar(&f.mono, "mono-font", "", "Monospace font family")

	fs.StringVar(&f.fontSize, "font-size", "", "Base font size in px")
	fs.StringVar(&f.radius, "radius", "", "Base border radius in px")
	fs.StringVar(&f.spacing, "spacing", "", "Base spacing unit in px")
}

// resolve builds the seed: defaults, then the seed file, then any flag the
// user set explicitly. An explicitly empty flag still overrides.
func (f *seedFlags) resolve(cmd *cobra.Command) (seed.Seed, error) {
	s := seed.Defaults()
	if f.seedPath != "" {
		loaded, err := seed.Load(f.seedPath)
		if err != nil {
			return seed.Seed{}, newCommandError("load seed", f.seedPath, err,
				`Check the YAML syntax. Colors must be quoted, e.g. primaryColor: "#0070F3"`)
		}
		s = loaded
	}

	overrides := []struct {
		flag  string
		value string
		dst   *string
	}{
		{"brand", f.brand, &s.BrandName},
		{"primary", f.primary, &s.PrimaryColor},
		{"secondary", f.secondary, &s.SecondaryColor},
		{"neutral", f.neutral, &s.NeutralColor},
		{"success", f.success, &s.SuccessColor},
		{"warning", f.warning, &s.WarningColor},
		{"error", f.danger, &s.ErrorColor},
		{"display-font", f.display, &s.DisplayFont},
		{"body-font", f.body, &s.BodyFont},
		{"mono-font", f.mono, &s.MonoFont},
		{"font-size", f.fontSize, &s.BaseFontSize},
		{"radius", f.radius, &s.BorderRadius},
		{"spacing", f.spacing, &s.Spacing},
	}
	for _, o := range overrides {
		if cmd.Flags().Changed(o.flag) {
			*o.dst = o.value
		}
	}
	return s, nil
}
