// Package resize resamples source images to an exact target size.
//
// The interpolation itself is delegated to a Resizer; the sub packages wrap
// one imaging library each and register themselves by name.
package resize

import (
	"image"
	"image/draw"
	"sync"

	"github.com/srlehn/riv/internal/consts"
	"github.com/srlehn/riv/internal/errors"
	"github.com/srlehn/riv/internal/util"
	"github.com/srlehn/riv/rgb"
)

// Resizer resizes images
type Resizer interface {
	Resize(img image.Image, size image.Point) (image.Image, error)
}

// ResizerFunc adapts a function to the Resizer interface.
type ResizerFunc func(img image.Image, size image.Point) (image.Image, error)

func (f ResizerFunc) Resize(img image.Image, size image.Point) (image.Image, error) {
	return f(img, size)
}

// Resample returns a copy of src resampled to exactly size using rsz.
// Failures of rsz and results that can't be normalized to a size.X*size.Y
// 3 channel image are reported as consts.ErrImageProcessing.
func Resample(src *rgb.Image, size image.Point, rsz Resizer) (*rgb.Image, error) {
	if src == nil {
		return nil, errors.Kind(consts.ErrImageProcessing, consts.ErrNilImage)
	}
	if rsz == nil {
		return nil, errors.Kind(consts.ErrImageProcessing, errors.New(`nil resizer`))
	}
	if size.X < 1 || size.Y < 1 {
		return nil, errors.Kind(consts.ErrImageProcessing, errors.Errorf(`invalid target size %dx%d`, size.X, size.Y))
	}
	if src.Rect.Empty() {
		return nil, errors.Kind(consts.ErrImageProcessing, errors.New(`empty source image`))
	}
	if src.Rect.Size() == size {
		// copy, callers may not alias the source
		return copyImage(src), nil
	}
	m, err := rsz.Resize(src, size)
	if err != nil {
		return nil, errors.Kind(consts.ErrImageProcessing, err)
	}
	if m == nil {
		return nil, errors.Kind(consts.ErrImageProcessing, consts.ErrNilImage)
	}
	if got := m.Bounds().Size(); got != size {
		return nil, errors.Kind(consts.ErrImageProcessing, errors.Errorf(
			`resizer returned %dx%d instead of %dx%d`, got.X, got.Y, size.X, size.Y))
	}
	ret, err := rgb.FromImage(m)
	if err != nil {
		return nil, errors.Kind(consts.ErrImageProcessing, err)
	}
	if ret == src {
		return copyImage(src), nil
	}
	return ret, nil
}

func copyImage(src *rgb.Image) *rgb.Image {
	dst := rgb.New(image.Rectangle{Max: src.Rect.Size()})
	w := src.Rect.Dx() * rgb.Channels
	for y := 0; y < src.Rect.Dy(); y++ {
		i := src.PixOffset(src.Rect.Min.X, src.Rect.Min.Y+y)
		copy(dst.Pix[y*dst.Stride:], src.Pix[i:i+w])
	}
	return dst
}

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Resizer)
)

// Register makes a Resizer available by name. It is meant to be called from
// init functions; registering a name twice replaces the earlier entry.
func Register(name string, rsz Resizer) {
	if len(name) == 0 || rsz == nil {
		return
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = rsz
}

// ByName returns the registered Resizer.
func ByName(name string) (Resizer, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	rsz, ok := registry[name]
	if !ok || rsz == nil {
		return nil, errors.Errorf(`unknown resampler %q`, name)
	}
	return rsz, nil
}

// Names returns the sorted names of all registered resizers.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return util.MapsKeysSorted(registry)
}

// ToNRGBA returns img as *image.NRGBA with zero origin, converting if needed.
// Some libraries only accept a few concrete image types.
func ToNRGBA(img image.Image) *image.NRGBA {
	if m, ok := img.(*image.NRGBA); ok && m.Rect.Min == (image.Point{}) {
		return m
	}
	b := img.Bounds()
	m := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	if src, ok := img.(*rgb.Image); ok {
		for y := 0; y < b.Dy(); y++ {
			s := src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):]
			d := m.Pix[y*m.Stride : (y+1)*m.Stride]
			for x, j := 0, 0; x < b.Dx(); x, j = x+1, j+3 {
				d[4*x], d[4*x+1], d[4*x+2], d[4*x+3] = s[j], s[j+1], s[j+2], 0xff
			}
		}
		return m
	}
	draw.Draw(m, m.Bounds(), img, b.Min, draw.Src)
	return m
}
