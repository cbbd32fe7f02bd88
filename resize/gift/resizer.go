package gift

import (
	"image"

	"github.com/disintegration/gift"

	"github.com/srlehn/riv/resize"
)

func init() {
	resize.Register(`gift`, &Resizer{})
}

// Resizer uses "github.com/disintegration/gift"
type Resizer struct{}

var _ resize.Resizer = (*Resizer)(nil)

// Resize ...
func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	m := image.NewNRGBA(image.Rectangle{Max: image.Point{X: size.X, Y: size.Y}})
	gift.New(gift.Resize(size.X, size.Y, gift.LinearResampling)).Draw(m, resize.ToNRGBA(img))
	return m, nil
}
