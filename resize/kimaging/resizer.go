// Package kimaging resizes with the maintained fork of the imaging library.
package kimaging

import (
	"image"

	"github.com/kovidgoyal/imaging"

	"github.com/srlehn/riv/resize"
)

func init() {
	resize.Register(`kimaging`, &Resizer{})
}

// Resizer uses "github.com/kovidgoyal/imaging"
type Resizer struct{}

var _ resize.Resizer = (*Resizer)(nil)

// Resize ...
func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	return imaging.Resize(resize.ToNRGBA(img), size.X, size.Y, imaging.Lanczos), nil
}
