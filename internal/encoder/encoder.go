// Package encoder writes images in the format named by a file extension.
package encoder

import (
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/srlehn/riv/internal/consts"
	"github.com/srlehn/riv/internal/errors"
)

type ImageEncoder interface {
	Encode(w io.Writer, img image.Image, fileExt string) error
}

var _ ImageEncoder = (*MultiEncoder)(nil)

type MultiEncoder struct{}

// Encode writes img in the format of fileExt. The whole file name may be
// passed instead of the extension.
func (e *MultiEncoder) Encode(w io.Writer, img image.Image, fileExt string) error {
	if w == nil || img == nil {
		return errors.New(consts.ErrNilParam)
	}
	fmtStr, err := Format(fileExt)
	if err != nil {
		return err
	}
	switch fmtStr {
	case `bmp`:
		err = bmp.Encode(w, img)
	case `gif`:
		err = gif.Encode(w, img, nil)
	case `png`:
		err = png.Encode(w, img)
	case `tiff`, `tif`:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	case `jpg`, `jpeg`:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: 90})
	}
	if err != nil {
		return errors.New(err)
	}
	return nil
}

var formats = []string{`bmp`, `gif`, `jpeg`, `jpg`, `png`, `tif`, `tiff`}

// Formats returns the supported file extensions.
func Formats() []string { return append([]string(nil), formats...) }

// Format returns the lower case format name of a file name or extension.
func Format(fileExt string) (string, error) {
	fileExtParts := strings.Split(fileExt, `.`)
	fmtStr := strings.ToLower(fileExtParts[len(fileExtParts)-1])
	if len(fmtStr) == 0 {
		return ``, errors.New(`no file format specified`)
	}
	for _, f := range formats {
		if f == fmtStr {
			return fmtStr, nil
		}
	}
	return ``, errors.New(`unsupported file format: "` + fmtStr + `"`)
}

// WriteFile encodes img into the file at path, replacing it atomically.
func WriteFile(path string, img image.Image) (errRet error) {
	if _, err := Format(path); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(path), `.`+filepath.Base(path)+`-*`)
	if err != nil {
		return errors.New(err)
	}
	defer func() {
		if errRet != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
	}()
	if err := (&MultiEncoder{}).Encode(f, img, path); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return errors.New(err)
	}
	if err := os.Rename(f.Name(), path); err != nil {
		return errors.New(err)
	}
	return nil
}
