package bild

import (
	"image"

	"github.com/anthonynsimon/bild/transform"

	"github.com/srlehn/riv/resize"
)

func init() {
	resize.Register(`bild`, &Resizer{})
}

// Resizer uses "github.com/anthonynsimon/bild/transform"
type Resizer struct{}

var _ resize.Resizer = (*Resizer)(nil)

// Resize ...
func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	m := transform.Resize(resize.ToNRGBA(img), size.X, size.Y, transform.Linear)
	return m, nil
}
