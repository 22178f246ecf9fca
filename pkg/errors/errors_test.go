package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInvalidColorErrorDescribesValue(t *testing.T) {
	t.Parallel()

	err := NewInvalidColorError("#12", "expected 6 hex digits")

	var colorErr *InvalidColorError
	require.ErrorAs(t, err, &colorErr)
	require.Equal(t, "#12", colorErr.Value)
	require.Contains(t, err.Error(), "expected 6 hex digits")
}

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("brand.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "brand.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "brand.yaml:12")
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("primaryColor", "must be a 6-digit hex color", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "primaryColor", validationErr.Field)
	require.Equal(t, "validation error: primaryColor: must be a 6-digit hex color", err.Error())
}

func TestAnalysisErrorIncludesStage(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("unexpected end of JSON input")
	err := NewAnalysisError("decode", underlying)

	var analysisErr *AnalysisError
	require.ErrorAs(t, err, &analysisErr)
	require.Equal(t, "decode", analysisErr.Stage)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "during decode")
}

func TestExportErrorIncludesFormat(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("disk full")
	err := NewExportError("css", underlying)

	var exportErr *ExportError
	require.ErrorAs(t, err, &exportErr)
	require.Equal(t, "css", exportErr.Format)
	require.True(t, stdErrors.Is(err, underlying))
}
