// Package export serializes a token set for use outside brandkit: CSS custom
// properties, JSON, YAML, and the flat token table shown by the browser.
package export

import (
	"fmt"
	"strings"
)

// Format selects an export serialization.
type Format string

const (
	FormatCSS  Format = "css"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists the supported formats in the order they are offered.
var Formats = []Format{FormatCSS, FormatJSON, FormatYAML}

// ParseFormat accepts a format name in any case; "yml" is an alias for yaml.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "css":
		return FormatCSS, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported export format %q (expected css, json or yaml)", name)
	}
}

// Extension is the file extension used for the format, without the dot.
func (f Format) Extension() string {
	return string(f)
}

func (f Format) String() string {
	return string(f)
}
