// Package frame holds the presentation frame buffer and packs 3 channel
// images into it.
package frame

import (
	"image"

	"github.com/srlehn/riv/internal/consts"
	"github.com/srlehn/riv/internal/errors"
	"github.com/srlehn/riv/rgb"
)

// BytesPerPixel of the frame buffer: R, G, B, A.
const BytesPerPixel = 4

// Buffer is a tightly packed RGBA frame buffer (stride == 4*Width).
// Alpha is always opaque after Pack.
type Buffer struct {
	Width  int
	Height int
	Pix    []byte
}

// NewBuffer returns a zeroed buffer of the given size.
func NewBuffer(size image.Point) *Buffer {
	b := &Buffer{}
	b.Resize(size)
	return b
}

// Size returns the buffer dimensions.
func (b *Buffer) Size() image.Point {
	if b == nil {
		return image.Point{}
	}
	return image.Point{X: b.Width, Y: b.Height}
}

// Resize sets the dimensions. The pixel slice is reallocated (zeroed) when
// the dimensions change and kept otherwise. Negative sizes are treated as 0.
func (b *Buffer) Resize(size image.Point) {
	if b == nil {
		return
	}
	w, h := max(size.X, 0), max(size.Y, 0)
	if w == b.Width && h == b.Height && len(b.Pix) == w*h*BytesPerPixel {
		return
	}
	b.Width, b.Height = w, h
	n := w * h * BytesPerPixel
	if cap(b.Pix) >= n {
		b.Pix = b.Pix[:n]
		clear(b.Pix)
		return
	}
	b.Pix = make([]byte, n)
}

// Pack transcodes src into the buffer: every R, G, B triple becomes R, G, B, 0xFF.
// src must have the buffer's dimensions; the buffer is left untouched otherwise.
func (b *Buffer) Pack(src *rgb.Image) error {
	if b == nil {
		return errors.NilReceiver()
	}
	if src == nil {
		return errors.New(consts.ErrNilImage)
	}
	w, h := src.Rect.Dx(), src.Rect.Dy()
	if w != b.Width || h != b.Height || len(b.Pix) != w*h*BytesPerPixel {
		return errors.Kind(consts.ErrBufferSize, errors.Errorf(
			`image %dx%d, buffer %dx%d (%d bytes)`, w, h, b.Width, b.Height, len(b.Pix)))
	}
	rowLen := w * rgb.Channels
	for y := 0; y < h; y++ {
		i := src.PixOffset(src.Rect.Min.X, src.Rect.Min.Y+y)
		s := src.Pix[i : i+rowLen : i+rowLen]
		d := b.Pix[y*w*BytesPerPixel : (y+1)*w*BytesPerPixel]
		for si, di := 0, 0; si < len(s); si, di = si+3, di+4 {
			d[di] = s[si]
			d[di+1] = s[si+1]
			d[di+2] = s[si+2]
			d[di+3] = 0xff
		}
	}
	return nil
}

// RGBA returns an *image.RGBA sharing the buffer's pixels.
func (b *Buffer) RGBA() *image.RGBA {
	if b == nil {
		return nil
	}
	return &image.RGBA{
		Pix:    b.Pix,
		Stride: b.Width * BytesPerPixel,
		Rect:   image.Rect(0, 0, b.Width, b.Height),
	}
}
