package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alexisbeaulieu97/brandkit/internal/export"
	"github.com/alexisbeaulieu97/brandkit/internal/logger"
	"github.com/alexisbeaulieu97/brandkit/internal/seed"
	"github.com/alexisbeaulieu97/brandkit/internal/tokens"
	"github.com/alexisbeaulieu97/brandkit/pkg/diff"
)

// buildTokens validates s, logging every issue, and assembles the token set.
// In strict mode any issue aborts before assembly.
func buildTokens(s seed.Seed, strict bool, log *logger.Logger) (tokens.TokenSet, error) {
	issues := seed.Validate(s)
	for _, issue := range issues {
		log.WithFields(map[string]any{"field": issue.Field, "value": issue.Value}).Warn(issue.Message)
	}
	if strict {
		if err := seed.Strict(issues); err != nil {
			return tokens.TokenSet{}, newCommandError("validate seed", fmt.Sprintf("%d invalid value(s)", len(issues)), err,
				"Fix the values listed above, or drop --strict to fall back to defaults")
		}
	}

	ts, report := tokens.AssembleWithReport(s)
	for _, fb := range report.Fallbacks {
		log.WithFields(map[string]any{
			"field":      fb.Field,
			"value":      fb.Value,
			"substitute": fb.Substitute,
			"reason":     fb.Reason.Error(),
		}).Warn("seed value replaced with default")
	}
	log.WithFields(map[string]any{"brand": ts.BrandName, "fallbacks": len(report.Fallbacks)}).Debug("tokens assembled")
	return ts, nil
}

// tokensPath is the file an export goes to, or "" for stdout.
func tokensPath(ts tokens.TokenSet, format export.Format, output, outputDir string) string {
	if output != "" || outputDir == "" {
		return output
	}
	return filepath.Join(outputDir, export.FileName(ts.BrandName, format))
}

var errTokensOutOfDate = errors.New("exported tokens differ from the seed")

// checkTokens compares the file an export would write with its current
// contents and prints a diff to out. A missing file counts as empty.
func checkTokens(out io.Writer, ts tokens.TokenSet, format export.Format, path string) (diff.Stats, error) {
	var fresh bytes.Buffer
	if err := export.Write(&fresh, format, ts); err != nil {
		return diff.Stats{}, err
	}

	existing, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return diff.Stats{}, newCommandError("check tokens", path, err, "Check that the file is readable")
	}

	text, stats := diff.Unified(existing, fresh.Bytes(), path, "generated")
	if !stats.Changed() {
		return stats, nil
	}
	if _, err := io.WriteString(out, text); err != nil {
		return stats, err
	}
	return stats, newCommandError("check tokens", path,
		fmt.Errorf("%w (+%d -%d lines)", errTokensOutOfDate, stats.Added, stats.Removed),
		"Run the same command without --check to regenerate the file")
}

// writeTokens exports ts to stdout, to output, or into outputDir under the
// brand's file name. It returns the path written, or "" for stdout.
func writeTokens(stdout io.Writer, ts tokens.TokenSet, format export.Format, output, outputDir string) (string, error) {
	if output == "" && outputDir == "" {
		return "", export.Write(stdout, format, ts)
	}

	if output == "" {
		if err := os.MkdirAll(outputDir, 0o755); err != nil {
			return "", newCommandError("create output directory", outputDir, err, "Check the directory permissions")
		}
	}
	path := tokensPath(ts, format, output, outputDir)

	if err := writeFile(path, func(w io.Writer) error {
		return export.Write(w, format, ts)
	}); err != nil {
		return "", newCommandError("write tokens", path, err, "Check that the destination is writable")
	}
	return path, nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
