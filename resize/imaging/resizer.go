package imaging

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/srlehn/riv/resize"
)

func init() {
	resize.Register(`imaging`, &Resizer{Filter: imaging.Linear})
	resize.Register(`imaging-lanczos`, &Resizer{Filter: imaging.Lanczos})
}

// Resizer uses "github.com/disintegration/imaging"
type Resizer struct {
	Filter imaging.ResampleFilter
}

var _ resize.Resizer = (*Resizer)(nil)

// Resize ...
func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	return imaging.Resize(resize.ToNRGBA(img), size.X, size.Y, r.Filter), nil
}
