//go:build linux

package framebuffer

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newMemDevice(size image.Point, bits uint32) *device {
	d := &device{}
	d.vinfo.XRes, d.vinfo.YRes = uint32(size.X), uint32(size.Y)
	d.vinfo.BitsPerPixel = bits
	switch bits {
	case 32:
		// BGRA in memory
		d.vinfo.Blue = bitfield{Offset: 0, Length: 8}
		d.vinfo.Green = bitfield{Offset: 8, Length: 8}
		d.vinfo.Red = bitfield{Offset: 16, Length: 8}
		d.vinfo.Transp = bitfield{Offset: 24, Length: 8}
	case 16:
		// RGB565
		d.vinfo.Blue = bitfield{Offset: 0, Length: 5}
		d.vinfo.Green = bitfield{Offset: 5, Length: 6}
		d.vinfo.Red = bitfield{Offset: 11, Length: 5}
	}
	d.finfo.LineLength = uint32(size.X) * bits / 8
	d.data = make([]byte, int(d.finfo.LineLength)*size.Y)
	return d
}

func TestPixelFormats(t *testing.T) {
	d32 := newMemDevice(image.Pt(1, 1), 32)
	assert.Equal(t, uint32(0xff102030), d32.pixel(0x10, 0x20, 0x30))

	d16 := newMemDevice(image.Pt(1, 1), 16)
	assert.Equal(t, uint32(0xf800), d16.pixel(0xff, 0, 0))
	assert.Equal(t, uint32(0x07e0), d16.pixel(0, 0xff, 0))
	assert.Equal(t, uint32(0x001f), d16.pixel(0, 0, 0xff))
}

func TestBlit(t *testing.T) {
	d := newMemDevice(image.Pt(3, 2), 32)
	pix := []byte{
		1, 2, 3, 255, 4, 5, 6, 255,
	}
	d.blit(pix, image.Pt(2, 1), image.Pt(1, 1))
	// row 0 untouched
	assert.Equal(t, make([]byte, 12), d.data[:12])
	assert.Equal(t, []byte{0, 0, 0, 0, 3, 2, 1, 255, 6, 5, 4, 255}, d.data[12:])

	// clipped at the right edge
	d.blit(pix, image.Pt(2, 1), image.Pt(2, 0))
	assert.Equal(t, []byte{3, 2, 1, 255}, d.data[8:12])

	d.clear()
	assert.Equal(t, make([]byte, len(d.data)), d.data)
}
