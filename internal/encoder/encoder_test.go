package encoder_test

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/riv/internal/encoder"
	"github.com/srlehn/riv/internal/testutil"
	"github.com/srlehn/riv/source"
)

func TestFormat(t *testing.T) {
	for in, want := range map[string]string{
		`png`:           `png`,
		`out.PNG`:       `png`,
		`/tmp/a.b.tiff`: `tiff`,
		`x.jpg`:         `jpg`,
	} {
		got, err := encoder.Format(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	for _, in := range []string{``, `out.`, `out.webp`, `noext`} {
		_, err := encoder.Format(in)
		assert.Error(t, err, in)
	}
	assert.Contains(t, encoder.Formats(), `bmp`)
}

func TestEncodeRoundTrip(t *testing.T) {
	src := testutil.Solid(image.Pt(6, 4), color.RGBA{R: 10, G: 200, B: 30, A: 255})
	for _, ext := range []string{`png`, `bmp`, `tiff`, `gif`} {
		t.Run(ext, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, (&encoder.MultiEncoder{}).Encode(&buf, src, ext))
			img, err := source.DecodeBytes(buf.Bytes())
			require.NoError(t, err)
			assert.Equal(t, src.Bounds(), img.Bounds())
			if ext != `gif` {
				assert.Equal(t, src.Pix, img.Pix)
			}
		})
	}
	assert.Error(t, (&encoder.MultiEncoder{}).Encode(&bytes.Buffer{}, nil, `png`))
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, `frame.png`)
	require.NoError(t, encoder.WriteFile(p, testutil.Gradient(image.Pt(3, 3))))
	require.NoError(t, encoder.WriteFile(p, testutil.Gradient(image.Pt(5, 2))))

	img, err := source.Load(p)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 5, 2), img.Bounds())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, `no temporary files left`)

	assert.Error(t, encoder.WriteFile(filepath.Join(dir, `frame.xyz`), testutil.Gradient(image.Pt(1, 1))))
	assert.Error(t, encoder.WriteFile(filepath.Join(dir, `missing`, `frame.png`), testutil.Gradient(image.Pt(1, 1))))
}
