// Seam Carving for Content-Aware Image Resizing.
// This changes image content, not only its scale, so it is never the default.
package caire

import (
	"image"

	"github.com/esimov/caire"

	"github.com/srlehn/riv/resize"
)

func init() {
	resize.Register(`caire`, &Resizer{})
}

type Resizer struct{}

var _ resize.Resizer = (*Resizer)(nil)

func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	p := &caire.Processor{
		BlurRadius:     1, // or ie. 4
		SobelThreshold: 4, // or ie. 2
		NewWidth:       size.X,
		NewHeight:      size.Y,
		ShapeType:      "circle",
	}
	return p.Resize(resize.ToNRGBA(img))
}
