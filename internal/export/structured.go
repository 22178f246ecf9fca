package export

import (
	"io"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/brandkit/internal/tokens"
)

// WriteJSON writes ts as indented JSON with the same shape as the TokenSet.
func WriteJSON(w io.Writer, ts tokens.TokenSet) error {
	data, err := json.MarshalIndent(ts, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// WriteYAML writes ts as YAML with the same shape as the TokenSet.
func WriteYAML(w io.Writer, ts tokens.TokenSet) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(ts); err != nil {
		return err
	}
	return enc.Close()
}
