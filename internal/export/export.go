package export

import (
	"fmt"
	"io"

	"github.com/gosimple/slug"

	"github.com/alexisbeaulieu97/brandkit/internal/tokens"
	brandkiterrors "github.com/alexisbeaulieu97/brandkit/pkg/errors"
)

// Write serializes ts in the requested format. Failures are *errors.ExportError.
func Write(w io.Writer, format Format, ts tokens.TokenSet) error {
	var err error
	switch format {
	case FormatCSS:
		err = WriteCSS(w, ts)
	case FormatJSON:
		err = WriteJSON(w, ts)
	case FormatYAML:
		err = WriteYAML(w, ts)
	default:
		err = fmt.Errorf("unsupported format %q", format)
	}
	if err != nil {
		return brandkiterrors.NewExportError(string(format), err)
	}
	return nil
}

// FileName returns "<brand-slug>-tokens.<ext>", e.g. "my-brand-tokens.css".
// Brands that slugify to nothing are named "brand".
func FileName(brandName string, format Format) string {
	base := slug.Make(brandName)
	if base == "" {
		base = "brand"
	}
	return fmt.Sprintf("%s-tokens.%s", base, format.Extension())
}
