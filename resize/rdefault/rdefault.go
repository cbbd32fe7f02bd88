// Package rdefault registers the default resizer: rez where its SIMD
// code paths apply, x/image/draw bilinear otherwise.
package rdefault

import (
	"image"
	"runtime"

	"github.com/srlehn/riv/internal/consts"
	"github.com/srlehn/riv/resize"
	"github.com/srlehn/riv/resize/rez"
	"github.com/srlehn/riv/resize/xdraw"
)

func init() {
	resize.Register(consts.ResizerDefaultName, &Resizer{})
}

type Resizer struct{}

var _ resize.Resizer = (*Resizer)(nil)

func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	if runtime.GOARCH != `amd64` || !rez.Fits(img.Bounds().Size()) || !rez.Fits(size) {
		return xdraw.BiLinear().Resize(img, size)
	}
	if !rez.Supported(img) {
		img = resize.ToNRGBA(img)
	}
	imgRet, err := (&rez.Resizer{}).Resize(img, size)
	if err != nil {
		imgRet, err = xdraw.BiLinear().Resize(img, size)
	}
	if err != nil {
		return nil, err
	}
	return imgRet, nil
}
