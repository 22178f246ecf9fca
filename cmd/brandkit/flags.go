package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/brandkit/internal/export"
)

// outputFlags select the export format and destination.
type outputFlags struct {
	format    string
	output    string
	outputDir string
}

func (f *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.format, "format", "f", string(export.FormatCSS), "Export format: css, json or yaml")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "Write tokens to this file instead of stdout")
	cmd.Flags().StringVar(&f.outputDir, "output-dir", "", "Write tokens into this directory as <brand>-tokens.<ext>")
	cmd.MarkFlagsMutuallyExclusive("output", "output-dir")
}

func (f *outputFlags) validate() (export.Format, error) {
	format, err := export.ParseFormat(f.format)
	if err != nil {
		return "", newCommandError("parse flags", "--format "+f.format, err, "Use one of: css, json, yaml")
	}

	if dir := strings.TrimSpace(f.outputDir); dir != "" {
		info, err := os.Stat(dir)
		if err == nil && !info.IsDir() {
			return "", newCommandError("parse flags", "--output-dir "+dir,
				fmt.Errorf("%s is a file, not a directory", dir), "Pass a directory, or use --output for a file path")
		}
	}

	if out := strings.TrimSpace(f.output); out != "" {
		info, err := os.Stat(out)
		if err == nil && info.IsDir() {
			return "", newCommandError("parse flags", "--output "+out,
				fmt.Errorf("%s is a directory", out), "Use --output-dir to write into a directory")
		}
	}

	return format, nil
}

func validateImagePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", fmt.Errorf("image path is required")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve image path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("image does not exist: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("image path %s is a directory", abs)
	}

	return abs, nil
}
