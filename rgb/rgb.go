// Package rgb provides an opaque image type with 3 interleaved 8-bit samples
// per pixel. It is the representation of both the decoded source image and
// every resampled copy of it.
package rgb

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/srlehn/riv/internal/consts"
	"github.com/srlehn/riv/internal/errors"
)

// Channels is the number of samples per pixel.
const Channels = 3

// Image is an in-memory image whose At method returns color.RGBA values
// with full opacity.
type Image struct {
	// Pix holds the image's pixels in R, G, B order. The pixel at (x, y)
	// starts at Pix[(y-Rect.Min.Y)*Stride + (x-Rect.Min.X)*3].
	Pix    []uint8
	Stride int
	Rect   image.Rectangle
}

var _ draw.Image = (*Image)(nil)

// New returns a new Image with the given bounds.
func New(r image.Rectangle) *Image {
	w, h := r.Dx(), r.Dy()
	if w < 0 || h < 0 {
		w, h = 0, 0
	}
	return &Image{
		Pix:    make([]uint8, Channels*w*h),
		Stride: Channels * w,
		Rect:   r,
	}
}

func (p *Image) ColorModel() color.Model { return color.RGBAModel }

func (p *Image) Bounds() image.Rectangle { return p.Rect }

// Size returns the width and height.
func (p *Image) Size() image.Point { return p.Rect.Size() }

func (p *Image) At(x, y int) color.Color { return p.RGBAAt(x, y) }

func (p *Image) RGBAAt(x, y int) color.RGBA {
	if !(image.Point{x, y}.In(p.Rect)) {
		return color.RGBA{}
	}
	i := p.PixOffset(x, y)
	s := p.Pix[i : i+3 : i+3]
	return color.RGBA{s[0], s[1], s[2], 0xff}
}

// PixOffset returns the index of the first element of Pix that corresponds to
// the pixel at (x, y).
func (p *Image) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*Channels
}

// Set stores the non-premultiplied color components, the alpha channel is dropped.
func (p *Image) Set(x, y int, c color.Color) {
	if !(image.Point{x, y}.In(p.Rect)) {
		return
	}
	c1 := color.NRGBAModel.Convert(c).(color.NRGBA)
	i := p.PixOffset(x, y)
	s := p.Pix[i : i+3 : i+3]
	s[0], s[1], s[2] = c1.R, c1.G, c1.B
}

// SubImage returns an image representing the portion of p visible through r.
// The returned value shares pixels with the original image.
func (p *Image) SubImage(r image.Rectangle) image.Image {
	r = r.Intersect(p.Rect)
	if r.Empty() {
		return &Image{}
	}
	i := p.PixOffset(r.Min.X, r.Min.Y)
	return &Image{
		Pix:    p.Pix[i:],
		Stride: p.Stride,
		Rect:   r,
	}
}

// FromImage normalizes img into a 3 channel Image with bounds starting at (0, 0).
// Alpha is discarded, color components are taken unpremultiplied.
// An *Image with zero origin is returned as is.
func FromImage(img image.Image) (*Image, error) {
	if img == nil {
		return nil, errors.New(consts.ErrNilImage)
	}
	b := img.Bounds()
	if b.Empty() {
		return nil, errors.New(`empty image bounds`)
	}
	if m, ok := img.(*Image); ok && b.Min == (image.Point{}) {
		return m, nil
	}
	dst := New(image.Rect(0, 0, b.Dx(), b.Dy()))
	w, h := b.Dx(), b.Dy()
	switch src := img.(type) {
	case *Image:
		for y := 0; y < h; y++ {
			i := src.PixOffset(b.Min.X, b.Min.Y+y)
			copy(dst.Pix[y*dst.Stride:(y+1)*dst.Stride], src.Pix[i:i+w*Channels])
		}
	case *image.RGBA:
		for y := 0; y < h; y++ {
			s := src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):]
			d := dst.Pix[y*dst.Stride : (y+1)*dst.Stride]
			for x, j := 0, 0; x < w; x, j = x+1, j+4 {
				a := s[j+3]
				switch a {
				case 0xff:
					d[3*x], d[3*x+1], d[3*x+2] = s[j], s[j+1], s[j+2]
				case 0:
					d[3*x], d[3*x+1], d[3*x+2] = 0, 0, 0
				default:
					d[3*x] = unpremul(s[j], a)
					d[3*x+1] = unpremul(s[j+1], a)
					d[3*x+2] = unpremul(s[j+2], a)
				}
			}
		}
	case *image.NRGBA:
		for y := 0; y < h; y++ {
			s := src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):]
			d := dst.Pix[y*dst.Stride : (y+1)*dst.Stride]
			for x, j := 0, 0; x < w; x, j = x+1, j+4 {
				d[3*x], d[3*x+1], d[3*x+2] = s[j], s[j+1], s[j+2]
			}
		}
	case *image.Gray:
		for y := 0; y < h; y++ {
			s := src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):]
			d := dst.Pix[y*dst.Stride : (y+1)*dst.Stride]
			for x := 0; x < w; x++ {
				d[3*x], d[3*x+1], d[3*x+2] = s[x], s[x], s[x]
			}
		}
	case *image.Paletted:
		if len(src.Palette) == 0 {
			return nil, errors.New(`paletted image without palette`)
		}
		pal := make([]color.NRGBA, len(src.Palette))
		for i, c := range src.Palette {
			if c == nil {
				return nil, errors.New(`paletted image with nil palette entry`)
			}
			pal[i] = color.NRGBAModel.Convert(c).(color.NRGBA)
		}
		for y := 0; y < h; y++ {
			s := src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):]
			d := dst.Pix[y*dst.Stride : (y+1)*dst.Stride]
			for x := 0; x < w; x++ {
				idx := int(s[x])
				if idx >= len(pal) {
					return nil, errors.Errorf(`palette index %d out of range (%d entries)`, idx, len(pal))
				}
				c := pal[idx]
				d[3*x], d[3*x+1], d[3*x+2] = c.R, c.G, c.B
			}
		}
	default:
		for y := 0; y < h; y++ {
			d := dst.Pix[y*dst.Stride : (y+1)*dst.Stride]
			for x := 0; x < w; x++ {
				c := img.At(b.Min.X+x, b.Min.Y+y)
				if c == nil {
					return nil, errors.Errorf(`no color at (%d,%d)`, b.Min.X+x, b.Min.Y+y)
				}
				n := color.NRGBAModel.Convert(c).(color.NRGBA)
				d[3*x], d[3*x+1], d[3*x+2] = n.R, n.G, n.B
			}
		}
	}
	return dst, nil
}

func unpremul(c, a uint8) uint8 {
	v := (uint32(c)*0xff + uint32(a)/2) / uint32(a)
	if v > 0xff {
		return 0xff
	}
	return uint8(v)
}
