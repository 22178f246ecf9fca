package main

import (
	"errors"

	"github.com/spf13/cobra"
)

type generateOptions struct {
	seed   seedFlags
	output outputFlags
	strict bool
	check  bool
}

func newGenerateCmd(root *rootFlags) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate design tokens from seed values",
		Long: `Generate derives color ramps, a type scale, a spacing scale and a radius
scale from a handful of seed values and exports them as CSS custom
properties, JSON or YAML.

Seed values come from the built-in defaults, then --seed, then individual flags.
Invalid values are replaced by defaults and reported as warnings.`,
		Example: `  brandkit generate --brand Acme --primary "#0070F3"
  brandkit generate --seed brand.yaml --format json --output-dir tokens/
  brandkit generate --seed brand.yaml --output tokens.css --check`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, root, opts)
		},
	}

	opts.seed.register(cmd)
	opts.output.register(cmd)
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Fail instead of falling back to defaults when a seed value is invalid")
	cmd.Flags().BoolVar(&opts.check, "check", false, "Print a diff and fail if the output file is not up to date, without writing it")

	return cmd
}

func runGenerate(cmd *cobra.Command, root *rootFlags, opts *generateOptions) error {
	log, err := root.logger(cmd)
	if err != nil {
		return err
	}

	format, err := opts.output.validate()
	if err != nil {
		return err
	}

	s, err := opts.seed.resolve(cmd)
	if err != nil {
		return err
	}

	ts, err := buildTokens(s, opts.strict, log)
	if err != nil {
		return err
	}

	if opts.check {
		path := tokensPath(ts, format, opts.output.output, opts.output.outputDir)
		if path == "" {
			return newCommandError("check tokens", "stdout", errors.New("--check needs a file to compare against"),
				"Pass --output or --output-dir")
		}
		if _, err := checkTokens(cmd.OutOrStdout(), ts, format, path); err != nil {
			return err
		}
		log.WithField("path", path).Info("tokens up to date")
		return nil
	}

	path, err := writeTokens(cmd.OutOrStdout(), ts, format, opts.output.output, opts.output.outputDir)
	if err != nil {
		return err
	}
	if path != "" {
		log.WithFields(map[string]any{"path": path, "format": format.String()}).Info("tokens written")
	}
	return nil
}
