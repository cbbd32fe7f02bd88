package nfnt

import (
	"image"

	"github.com/nfnt/resize"

	rivresize "github.com/srlehn/riv/resize"
)

func init() {
	rivresize.Register(`nfnt`, &Resizer{})
}

// Resizer uses "github.com/nfnt/resize"
type Resizer struct{}

var _ rivresize.Resizer = (*Resizer)(nil)

// Resize ...
func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	m := resize.Resize(uint(size.X), uint(size.Y), rivresize.ToNRGBA(img), resize.Bilinear)
	return m, nil
}
