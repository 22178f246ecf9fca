package main

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/brandkit/internal/analysis"
	"github.com/alexisbeaulieu97/brandkit/internal/seed"
	"github.com/alexisbeaulieu97/brandkit/internal/tui"
)

const apiKeyEnv = "ANTHROPIC_API_KEY"

type imageAnalyzer interface {
	AnalyzeFile(ctx context.Context, path string) (seed.Analysis, error)
}

var newAnalyzer = func(cfg analysis.Config) (imageAnalyzer, error) {
	return analysis.New(cfg)
}

type analyzeOptions struct {
	image     string
	apiKey    string
	model     string
	maxTokens int64
	timeout   time.Duration
	writeSeed string
	generate  bool
	strict    bool
	output    outputFlags
}

func newAnalyzeCmd(root *rootFlags) *cobra.Command {
	opts := &analyzeOptions{}

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Extract seed values from a screenshot of an existing design",
		Long: `Analyze sends an image to a vision model and prints the seed values it
extracted as YAML, ready to be edited and passed to generate --seed.

Colors outside #RRGGBB and fonts outside the catalog are replaced by defaults.
With --generate the tokens are exported directly instead.`,
		Example: `  brandkit analyze --image screenshot.png --write-seed brand.yaml
  brandkit analyze --image screenshot.png --generate --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.image, "image", "i", "", "Path to a PNG, JPEG, GIF or WebP image")
	cmd.Flags().StringVar(&opts.apiKey, "api-key", "", "Anthropic API key (defaults to $"+apiKeyEnv+")")
	cmd.Flags().StringVar(&opts.model, "model", analysis.DefaultModel, "Model used for the analysis")
	cmd.Flags().Int64Var(&opts.maxTokens, "max-tokens", analysis.DefaultMaxTokens, "Maximum tokens in the model's reply")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", analysis.DefaultTimeout, "Time limit for the analysis request")
	cmd.Flags().StringVar(&opts.writeSeed, "write-seed", "", "Write the extracted seed to this YAML file")
	cmd.Flags().BoolVar(&opts.generate, "generate", false, "Export tokens from the extracted seed")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "With --generate, fail on invalid seed values")
	opts.output.register(cmd)
	cmd.MarkFlagRequired("image") //nolint:errcheck

	return cmd
}

func runAnalyze(cmd *cobra.Command, root *rootFlags, opts *analyzeOptions) error {
	log, err := root.logger(cmd)
	if err != nil {
		return err
	}

	imagePath, err := validateImagePath(opts.image)
	if err != nil {
		return newCommandError("analyze image", opts.image, err, "Pass an existing image file with --image")
	}

	format, err := opts.output.validate()
	if err != nil {
		return err
	}

	apiKey := opts.apiKey
	if apiKey == "" {
		apiKey = os.Getenv(apiKeyEnv)
	}
	analyzer, err := newAnalyzer(analysis.Config{
		APIKey:    apiKey,
		Model:     opts.model,
		MaxTokens: opts.maxTokens,
		Timeout:   opts.timeout,
	})
	if err != nil {
		return newCommandError("configure analysis", opts.model, err, "Set "+apiKeyEnv+" or pass --api-key")
	}

	log.WithFields(map[string]any{"image": imagePath, "model": opts.model}).Debug("analyzing image")

	var raw seed.Analysis
	analyze := func(ctx context.Context) error {
		var err error
		raw, err = analyzer.AnalyzeFile(ctx, imagePath)
		return err
	}
	if err := runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), "Analyzing "+opts.image, analyze); err != nil {
		return newCommandError("analyze image", imagePath, err, "Check the API key and network access, then retry")
	}

	result := seed.Analysis{Seed: seed.FromAnalysis(raw), AINotes: raw.AINotes}
	if result.AINotes != "" {
		log.WithField("notes", result.AINotes).Info("design analysis")
	}

	if opts.writeSeed != "" {
		if err := writeFile(opts.writeSeed, func(w io.Writer) error {
			return seed.WriteAnalysis(w, result)
		}); err != nil {
			return newCommandError("write seed", opts.writeSeed, err, "Check that the destination is writable")
		}
		log.WithField("path", opts.writeSeed).Info("seed written")
	}

	if !opts.generate {
		if opts.writeSeed != "" {
			return nil
		}
		return seed.WriteAnalysis(cmd.OutOrStdout(), result)
	}

	ts, err := buildTokens(result.Seed, opts.strict, log)
	if err != nil {
		return err
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

// runWithSpinner shows a spinner on out when it is a terminal; otherwise it
// simply runs fn.
func runWithSpinner(ctx context.Context, out io.Writer, label string, fn func(context.Context) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if !isTerminal(out) {
		return fn(ctx)
	}
	return tui.RunTask(ctx, out, label, fn)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
