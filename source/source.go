// Package source loads the image that is displayed.
//
// The format is sniffed from the content, the file name extension is ignored.
package source

import (
	"bytes"
	"image"
	"io"
	"os"
	"strings"

	// image formats
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/gabriel-vasile/mimetype"

	"github.com/srlehn/riv/internal/consts"
	"github.com/srlehn/riv/internal/errors"
	"github.com/srlehn/riv/rgb"
)

// Load reads and decodes the image file at path into a 3 channel image.
// Any failure is reported as consts.ErrImageDecode.
func Load(path string) (*rgb.Image, error) {
	if len(path) == 0 {
		return nil, errors.Kind(consts.ErrImageDecode, errors.New(`empty file name`))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Kind(consts.ErrImageDecode, err)
	}
	img, err := DecodeBytes(data)
	if err != nil {
		return nil, errors.WrapPrefix(err, path, 0)
	}
	return img, nil
}

// Decode reads all of r and decodes it.
func Decode(r io.Reader) (*rgb.Image, error) {
	if r == nil {
		return nil, errors.Kind(consts.ErrImageDecode, consts.ErrNilParam)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Kind(consts.ErrImageDecode, err)
	}
	return DecodeBytes(data)
}

// DecodeBytes decodes an encoded image.
func DecodeBytes(data []byte) (*rgb.Image, error) {
	if len(data) == 0 {
		return nil, errors.Kind(consts.ErrImageDecode, errors.New(`no image data`))
	}
	mt := mimetype.Detect(data)
	if !IsImage(mt.String()) {
		return nil, errors.Kind(consts.ErrImageDecode, errors.Errorf(`unsupported content type %q`, mt.String()))
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Kind(consts.ErrImageDecode, errors.Errorf(`%s: %w`, mt.String(), err))
	}
	if img == nil {
		return nil, errors.Kind(consts.ErrImageDecode, consts.ErrNilImage)
	}
	ret, err := rgb.FromImage(img)
	if err != nil {
		return nil, errors.Kind(consts.ErrImageDecode, errors.Errorf(`%s: %w`, format, err))
	}
	return ret, nil
}

// IsImage reports whether a mime type names a raster image.
func IsImage(mimeType string) bool {
	mediaType, _, _ := strings.Cut(mimeType, `;`)
	return strings.HasPrefix(mediaType, `image/`) && mediaType != `image/svg+xml`
}

// Formats returns the names of the registered image decoders.
func Formats() []string {
	return []string{`bmp`, `gif`, `jpeg`, `png`, `tiff`, `webp`}
}
