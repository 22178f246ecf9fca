package seed

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	brandkiterrors "github.com/alexisbeaulieu97/brandkit/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load reads a YAML seed file. Keys missing from the file keep the values
// from Defaults. Colors must be quoted in YAML since "#" starts a comment.
func Load(path string) (Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Seed{}, brandkiterrors.NewParseError(path, 0, err)
	}

	s, err := Parse(data)
	if err != nil {
		return Seed{}, brandkiterrors.NewParseError(path, extractLine(err), err)
	}
	return s, nil
}

// Parse decodes a YAML seed document on top of Defaults. An aiNotes key, as
// written by WriteAnalysis, is accepted and dropped.
func Parse(data []byte) (Seed, error) {
	doc := Analysis{Seed: Defaults()}
	if len(bytes.TrimSpace(data)) == 0 {
		return doc.Seed, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return Seed{}, err
	}
	return doc.Seed, nil
}

// Write encodes the seed as YAML.
func Write(w io.Writer, s Seed) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode seed: %w", err)
	}
	return enc.Close()
}

// WriteAnalysis encodes an analysis record, notes included, as YAML.
func WriteAnalysis(w io.Writer, a Analysis) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(a); err != nil {
		return fmt.Errorf("encode analysis: %w", err)
	}
	return enc.Close()
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
