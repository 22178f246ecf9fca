package analysis

import (
	"errors"

	"github.com/h2non/filetype"
)

// ErrNotImage is returned for uploads the vision model cannot read.
var ErrNotImage = errors.New("please upload an image file (PNG, JPG, etc.)")

var supportedMediaTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/gif":  {},
	"image/webp": {},
}

// DetectMediaType sniffs the image format from its magic bytes.
func DetectMediaType(data []byte) (string, error) {
	kind, err := filetype.Match(data)
	if err != nil || kind == filetype.Unknown {
		return "", ErrNotImage
	}
	if _, ok := supportedMediaTypes[kind.MIME.Value]; !ok {
		return "", ErrNotImage
	}
	return kind.MIME.Value, nil
}
