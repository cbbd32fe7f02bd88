package rez

import (
	"image"

	"github.com/bamiaux/rez"

	"github.com/srlehn/riv/resize"
	"github.com/srlehn/riv/resize/xdraw"
)

func init() {
	resize.Register(`rez`, &Resizer{})
}

// Resizer uses "github.com/bamiaux/rez". Sizes rez can't filter are
// scaled with x/image/draw bilinear.
type Resizer struct{}

var _ resize.Resizer = (*Resizer)(nil)

// MinSide is the smallest side length rez filters, its bilinear filter
// needs a few taps per axis.
const MinSide = 8

// Fits reports whether rez can filter an image of size p.
func Fits(p image.Point) bool { return p.X >= MinSide && p.Y >= MinSide }

// Supported reports whether rez can convert img without a copy.
func Supported(img image.Image) bool {
	switch img.(type) {
	case *image.YCbCr, *image.RGBA, *image.NRGBA, *image.Gray:
		return true
	}
	return false
}

// Resize ...
func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	if !Fits(img.Bounds().Size()) || !Fits(size) {
		return xdraw.BiLinear().Resize(img, size)
	}
	if !Supported(img) {
		img = resize.ToNRGBA(img)
	}
	m := image.NewNRGBA(image.Rectangle{Max: image.Point{X: size.X, Y: size.Y}})
	if err := rez.Convert(m, img, rez.NewBilinearFilter()); err != nil {
		return nil, err
	}
	return m, nil
}
