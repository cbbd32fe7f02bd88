// Package xdraw provides resizers using golang.org/x/image/draw.
// BiLinear is the default for balanced speed/quality scaling.
package xdraw

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/srlehn/riv/resize"
)

func init() {
	resize.Register(`nearest`, NearestNeighbor())
	resize.Register(`approx-bilinear`, ApproxBiLinear())
	resize.Register(`bilinear`, BiLinear())
	resize.Register(`catmull-rom`, CatmullRom())
}

// resizer uses "golang.org/x/image/draw"
type resizer struct {
	scaler draw.Scaler
}

var _ resize.Resizer = (*resizer)(nil)

// NearestNeighbor creates a resizer with nearest neighbor scaling (fastest, blocky).
func NearestNeighbor() resize.Resizer {
	return &resizer{scaler: draw.NearestNeighbor}
}

// ApproxBiLinear creates a resizer with ApproxBiLinear scaling (balanced speed/quality).
func ApproxBiLinear() resize.Resizer {
	return &resizer{scaler: draw.ApproxBiLinear}
}

// BiLinear creates a resizer with BiLinear scaling (higher quality, slower).
func BiLinear() resize.Resizer {
	return &resizer{scaler: draw.BiLinear}
}

// CatmullRom creates a resizer with CatmullRom scaling (highest quality, slowest).
func CatmullRom() resize.Resizer {
	return &resizer{scaler: draw.CatmullRom}
}

// Resize scales an image to the target size using the configured scaler.
func (r *resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	src := resize.ToNRGBA(img) // fast path in x/image/draw
	dst := image.NewNRGBA(image.Rect(0, 0, size.X, size.Y))
	r.scaler.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst, nil
}
