// Package testutil holds fakes and fixtures shared by the package tests.
package testutil

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/srlehn/riv/rgb"
)

// Gradient returns an image whose pixels differ along both axes.
func Gradient(size image.Point) *rgb.Image {
	m := rgb.New(image.Rectangle{Max: size})
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			i := m.PixOffset(x, y)
			m.Pix[i] = uint8(x * 255 / max(1, size.X-1))
			m.Pix[i+1] = uint8(y * 255 / max(1, size.Y-1))
			m.Pix[i+2] = uint8((x + y) % 256)
		}
	}
	return m
}

// Solid returns an image filled with c.
func Solid(size image.Point, c color.RGBA) *rgb.Image {
	m := rgb.New(image.Rectangle{Max: size})
	for i := 0; i < len(m.Pix); i += rgb.Channels {
		m.Pix[i], m.Pix[i+1], m.Pix[i+2] = c.R, c.G, c.B
	}
	return m
}

// PNG encodes img.
func PNG(t testing.TB, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// WriteFile writes data into a file named name in a temporary directory and
// returns its path.
func WriteFile(t testing.TB, name string, data []byte) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, data, 0o600))
	return p
}
