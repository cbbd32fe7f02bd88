package resize_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/riv/internal/consts"
	"github.com/srlehn/riv/internal/errors"
	"github.com/srlehn/riv/internal/testutil"
	"github.com/srlehn/riv/resize"
	"github.com/srlehn/riv/resize/rdefault"
	"github.com/srlehn/riv/resize/xdraw"
	"github.com/srlehn/riv/rgb"

	_ "github.com/srlehn/riv/resize/bild"
	_ "github.com/srlehn/riv/resize/gift"
	_ "github.com/srlehn/riv/resize/imaging"
	_ "github.com/srlehn/riv/resize/kimaging"
	_ "github.com/srlehn/riv/resize/nfnt"
	_ "github.com/srlehn/riv/resize/rez"
)

func TestResampleExactSize(t *testing.T) {
	src := testutil.Gradient(image.Pt(400, 300))
	sizes := []image.Point{{144, 108}, {1, 1}, {3, 90}, {800, 600}, {37, 300}, {7, 7}}
	for _, name := range resize.Names() {
		switch name {
		case `caire`, `test-identity`:
			// caire carves seams, covered separately
			continue
		}
		t.Run(name, func(t *testing.T) {
			rsz, err := resize.ByName(name)
			require.NoError(t, err)
			for _, size := range sizes {
				m, err := resize.Resample(src, size, rsz)
				require.NoError(t, err, size)
				assert.Equal(t, size, m.Bounds().Size())
				assert.Len(t, m.Pix, size.X*size.Y*rgb.Channels)
			}
		})
	}
}

func TestResampleTinySource(t *testing.T) {
	src := testutil.Gradient(image.Pt(2, 3))
	for _, name := range []string{`rez`, consts.ResizerDefaultName} {
		rsz, err := resize.ByName(name)
		require.NoError(t, err)
		m, err := resize.Resample(src, image.Pt(64, 96), rsz)
		require.NoError(t, err, name)
		assert.Equal(t, image.Pt(64, 96), m.Bounds().Size(), name)
	}
}

func TestResampleIdempotent(t *testing.T) {
	src := testutil.Gradient(image.Pt(123, 77))
	size := image.Pt(50, 31)
	rsz := xdraw.BiLinear()
	a, err := resize.Resample(src, size, rsz)
	require.NoError(t, err)
	b, err := resize.Resample(src, size, rsz)
	require.NoError(t, err)
	assert.Equal(t, a.Pix, b.Pix)

	c, err := resize.Resample(src, size, &rdefault.Resizer{})
	require.NoError(t, err)
	d, err := resize.Resample(src, size, &rdefault.Resizer{})
	require.NoError(t, err)
	assert.Equal(t, c.Pix, d.Pix)
}

func TestResampleSolidStaysSolid(t *testing.T) {
	c := color.RGBA{R: 10, G: 200, B: 30, A: 255}
	src := testutil.Solid(image.Pt(64, 48), c)
	m, err := resize.Resample(src, image.Pt(16, 12), xdraw.BiLinear())
	require.NoError(t, err)
	for i := 0; i < len(m.Pix); i += 3 {
		require.Equal(t, []uint8{c.R, c.G, c.B}, m.Pix[i:i+3])
	}
}

func TestResampleSameSizeCopies(t *testing.T) {
	src := testutil.Gradient(image.Pt(10, 10))
	m, err := resize.Resample(src, image.Pt(10, 10), xdraw.BiLinear())
	require.NoError(t, err)
	assert.Equal(t, src.Pix, m.Pix)
	m.Pix[0]++
	assert.NotEqual(t, src.Pix[0], m.Pix[0])
}

func TestResampleFailures(t *testing.T) {
	src := testutil.Gradient(image.Pt(10, 10))
	size := image.Pt(5, 5)

	failing := resize.ResizerFunc(func(image.Image, image.Point) (image.Image, error) {
		return nil, errors.New(`boom`)
	})
	wrongSize := resize.ResizerFunc(func(image.Image, image.Point) (image.Image, error) {
		return image.NewRGBA(image.Rect(0, 0, 4, 5)), nil
	})
	nilImage := resize.ResizerFunc(func(image.Image, image.Point) (image.Image, error) {
		return nil, nil
	})
	emptyPalette := resize.ResizerFunc(func(_ image.Image, size image.Point) (image.Image, error) {
		return image.NewPaletted(image.Rectangle{Max: size}, nil), nil
	})

	tests := []struct {
		name string
		src  *rgb.Image
		size image.Point
		rsz  resize.Resizer
	}{
		{`resizer error`, src, size, failing},
		{`wrong size`, src, size, wrongSize},
		{`nil result`, src, size, nilImage},
		{`not convertible`, src, size, emptyPalette},
		{`nil source`, nil, size, xdraw.BiLinear()},
		{`nil resizer`, src, size, nil},
		{`zero width`, src, image.Pt(0, 5), xdraw.BiLinear()},
		{`negative height`, src, image.Pt(5, -1), xdraw.BiLinear()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := resize.Resample(tt.src, tt.size, tt.rsz)
			require.Error(t, err)
			assert.Nil(t, m)
			assert.True(t, errors.Is(err, consts.ErrImageProcessing), err.Error())
		})
	}
}

func TestRegistry(t *testing.T) {
	names := resize.Names()
	for _, name := range []string{`nearest`, `bilinear`, `rez`, consts.ResizerDefaultName} {
		assert.Contains(t, names, name)
	}
	assert.IsIncreasing(t, names)

	_, err := resize.ByName(`no-such-resampler`)
	assert.Error(t, err)

	resize.Register(`test-identity`, resize.ResizerFunc(func(img image.Image, _ image.Point) (image.Image, error) {
		return img, nil
	}))
	rsz, err := resize.ByName(`test-identity`)
	require.NoError(t, err)
	assert.NotNil(t, rsz)
}

func TestToNRGBA(t *testing.T) {
	src := rgb.New(image.Rect(0, 0, 2, 1))
	src.Pix = []uint8{1, 2, 3, 4, 5, 6}
	m := resize.ToNRGBA(src)
	assert.Equal(t, []uint8{1, 2, 3, 255, 4, 5, 6, 255}, m.Pix)

	n := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	assert.Same(t, n, resize.ToNRGBA(n))
}
