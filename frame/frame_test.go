package frame_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/riv/frame"
	"github.com/srlehn/riv/internal/consts"
	"github.com/srlehn/riv/internal/errors"
	"github.com/srlehn/riv/rgb"
)

func solid(size image.Point, c color.RGBA) *rgb.Image {
	m := rgb.New(image.Rectangle{Max: size})
	for i := 0; i < len(m.Pix); i += 3 {
		m.Pix[i], m.Pix[i+1], m.Pix[i+2] = c.R, c.G, c.B
	}
	return m
}

func TestPackSolid(t *testing.T) {
	size := image.Pt(7, 5)
	buf := frame.NewBuffer(size)
	require.NoError(t, buf.Pack(solid(size, color.RGBA{R: 1, G: 2, B: 3})))
	require.Len(t, buf.Pix, 7*5*4)
	for i := 0; i < len(buf.Pix); i += 4 {
		assert.Equal(t, []byte{1, 2, 3, 255}, buf.Pix[i:i+4], "pixel %d", i/4)
	}
}

func TestPackKeepsPixelOrder(t *testing.T) {
	src := rgb.New(image.Rect(0, 0, 2, 2))
	for i := range src.Pix {
		src.Pix[i] = byte(i)
	}
	buf := frame.NewBuffer(image.Pt(2, 2))
	require.NoError(t, buf.Pack(src))
	assert.Equal(t, []byte{
		0, 1, 2, 255, 3, 4, 5, 255,
		6, 7, 8, 255, 9, 10, 11, 255,
	}, buf.Pix)
}

func TestPackSubImage(t *testing.T) {
	src := rgb.New(image.Rect(0, 0, 3, 3))
	src.Set(1, 1, color.RGBA{R: 9, G: 8, B: 7, A: 255})
	sub := src.SubImage(image.Rect(1, 1, 2, 2)).(*rgb.Image)
	buf := frame.NewBuffer(image.Pt(1, 1))
	require.NoError(t, buf.Pack(sub))
	assert.Equal(t, []byte{9, 8, 7, 255}, buf.Pix)
}

func TestPackSizeMismatch(t *testing.T) {
	buf := frame.NewBuffer(image.Pt(4, 4))
	for i := range buf.Pix {
		buf.Pix[i] = 42
	}
	err := buf.Pack(solid(image.Pt(3, 4), color.RGBA{}))
	require.Error(t, err)
	assert.True(t, errors.Is(err, consts.ErrBufferSize))
	for _, v := range buf.Pix {
		require.Equal(t, byte(42), v)
	}

	assert.Error(t, buf.Pack(nil))
}

func TestResize(t *testing.T) {
	buf := frame.NewBuffer(image.Pt(10, 10))
	buf.Pix[0] = 5
	buf.Resize(image.Pt(10, 10))
	assert.Equal(t, byte(5), buf.Pix[0], "same size keeps contents")

	buf.Resize(image.Pt(2, 3))
	assert.Equal(t, image.Pt(2, 3), buf.Size())
	assert.Len(t, buf.Pix, 2*3*4)
	assert.Equal(t, byte(0), buf.Pix[0])

	buf.Resize(image.Pt(20, 20))
	assert.Len(t, buf.Pix, 20*20*4)

	buf.Resize(image.Pt(-1, 3))
	assert.Equal(t, image.Pt(0, 3), buf.Size())
	assert.Empty(t, buf.Pix)
}

func TestRGBAView(t *testing.T) {
	buf := frame.NewBuffer(image.Pt(3, 2))
	require.NoError(t, buf.Pack(solid(image.Pt(3, 2), color.RGBA{R: 200, G: 100, B: 50})))
	m := buf.RGBA()
	assert.Equal(t, image.Rect(0, 0, 3, 2), m.Bounds())
	assert.Equal(t, color.RGBA{R: 200, G: 100, B: 50, A: 255}, m.RGBAAt(2, 1))
	m.Pix[0] = 1
	assert.Equal(t, byte(1), buf.Pix[0])
}
