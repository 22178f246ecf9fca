package main

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/brandkit/internal/tokens"
	brandkiterrors "github.com/alexisbeaulieu97/brandkit/pkg/errors"
)

func TestGenerateDefaultsToCSSOnStdout(t *testing.T) {
	stdout, stderr, err := executeCommand(t, "generate")
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(stdout, ":root {\n"))
	require.Contains(t, stdout, "/* My Brand Design Tokens */")
	require.Contains(t, stdout, "  --color-primary-500: #6C47FF;")
	require.Contains(t, stdout, "  --text-base: 16.0px;")
	require.Contains(t, stdout, "  --radius-full: 9999px;")
	require.True(t, strings.HasSuffix(stdout, "}\n"))
	require.NotContains(t, stderr, "replaced")
}

func TestGenerateFlagsOverrideSeedFile(t *testing.T) {
	dir := t.TempDir()
	seedPath := filepath.Join(dir, "brand.yaml")
	require.NoError(t, os.WriteFile(seedPath, []byte(`brandName: Acme
primaryColor: "#0070F3"
borderRadius: "4"
`), 0o644))

	stdout, _, err := executeCommand(t, "generate", "--seed", seedPath, "--radius", "12", "--format", "json")
	require.NoError(t, err)

	var ts tokens.TokenSet
	require.NoError(t, json.Unmarshal([]byte(stdout), &ts))
	require.Equal(t, "Acme", ts.BrandName)
	require.Equal(t, "#0070F3", ts.Colors.Primary.S500)
	require.Equal(t, tokens.Pixels(12), ts.BorderRadius.MD)
	require.Equal(t, "#FF6B6B", ts.Colors.Secondary.S500)
}

func TestGenerateWritesIntoOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "tokens")

	stdout, stderr, err := executeCommand(t, "generate", "--brand", "Acme Corp", "--format", "yaml", "--output-dir", dir)
	require.NoError(t, err)
	require.Empty(t, stdout)
	require.Contains(t, stderr, "tokens written")

	data, err := os.ReadFile(filepath.Join(dir, "acme-corp-tokens.yaml"))
	require.NoError(t, err)

	var ts tokens.TokenSet
	require.NoError(t, yaml.Unmarshal(data, &ts))
	require.Equal(t, "Acme Corp", ts.BrandName)
	require.Equal(t, tokens.Pixels(64), ts.Spacing.S32)
}

func TestGenerateWritesToOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.css")

	_, _, err := executeCommand(t, "generate", "--output", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "--spacing-4: 8px;")
}

func TestGenerateLogsFallbacks(t *testing.T) {
	stdout, stderr, err := executeCommand(t, "generate", "--primary", "blue", "--font-size=-3", "--log-json")
	require.NoError(t, err)

	require.Contains(t, stdout, "--color-primary-500: #6C47FF;")
	require.Contains(t, stdout, "--text-base: 16.0px;")
	require.Contains(t, stderr, "seed value replaced with default")
	require.Contains(t, stderr, `"field":"primaryColor"`)
	require.Contains(t, stderr, `"field":"baseFontSize"`)
}

func TestGenerateStrictRejectsInvalidSeed(t *testing.T) {
	stdout, _, err := executeCommand(t, "generate", "--primary", "blue", "--strict")
	require.Error(t, err)
	require.Empty(t, stdout)

	var validationErr *brandkiterrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	require.Equal(t, "primaryColor", validationErr.Field)
	require.Contains(t, err.Error(), "Suggestion:")
}

func TestGenerateRejectsBadOptions(t *testing.T) {
	_, _, err := executeCommand(t, "generate", "--format", "xml")
	require.Error(t, err)
	require.Contains(t, err.Error(), "css, json, yaml")

	_, _, err = executeCommand(t, "generate", "--output", "a.css", "--output-dir", "out")
	require.Error(t, err)

	_, _, err = executeCommand(t, "generate", "--output", t.TempDir())
	require.Error(t, err)
	require.Contains(t, err.Error(), "--output-dir")
}

func TestGenerateReportsSeedParseErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("brandName: Acme\nprimaryColor: [\n"), 0o644))

	_, _, err := executeCommand(t, "generate", "--seed", path)
	require.Error(t, err)

	var parseErr *brandkiterrors.ParseError
	require.True(t, errors.As(err, &parseErr))
	require.Equal(t, path, parseErr.Path)
}

func TestGenerateCheckDetectsDrift(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.css")

	_, _, err := executeCommand(t, "generate", "--radius", "8", "--output", path)
	require.NoError(t, err)

	stdout, stderr, err := executeCommand(t, "generate", "--radius", "8", "--output", path, "--check")
	require.NoError(t, err)
	require.Empty(t, stdout)
	require.Contains(t, stderr, "tokens up to date")

	stdout, _, err = executeCommand(t, "generate", "--radius", "12", "--output", path, "--check")
	require.ErrorIs(t, err, errTokensOutOfDate)
	require.Contains(t, stdout, "-  --radius-md: 8px;")
	require.Contains(t, stdout, "+  --radius-md: 12px;")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "--radius-md: 8px;", "check must not rewrite the file")
}

func TestGenerateCheckNeedsAFile(t *testing.T) {
	_, _, err := executeCommand(t, "generate", "--check")
	require.Error(t, err)
	require.Contains(t, err.Error(), "--output")
}
