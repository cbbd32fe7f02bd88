package scale_test

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/srlehn/riv/scale"
)

func TestAxisScaleNoUpscale(t *testing.T) {
	tests := []struct {
		available, source int
		want              float64
	}{
		{1920, 100, 1},
		{100, 100, 1},
		{1920, 4000, 4000.0 / 1920.0},
		{1, 2, 2},
		{3, 7, 7.0 / 3.0},
	}
	for _, tc := range tests {
		assert.InDelta(t, tc.want, scale.AxisScale(tc.available, tc.source, false), 1e-12,
			"available=%d source=%d", tc.available, tc.source)
	}
}

func TestAxisScaleUpscaleNeverClamps(t *testing.T) {
	for available := 1; available < 300; available += 7 {
		for source := 1; source < 300; source += 11 {
			got := scale.AxisScale(available, source, true)
			assert.InDelta(t, float64(source)/float64(available), got, 1e-12)
		}
	}
}

func TestAxisScaleInvalidAvailable(t *testing.T) {
	assert.Equal(t, 1.0, scale.AxisScale(0, 100, false))
	assert.Equal(t, 1.0, scale.AxisScale(-5, 100, true))
}

func TestFitScaleTakesMax(t *testing.T) {
	got := scale.FitScale(image.Pt(1920, 1080), image.Pt(4000, 3000), false)
	assert.InDelta(t, 3000.0/1080.0, got, 1e-12)
}

func TestTargetSizeEndToEnd(t *testing.T) {
	tests := []struct {
		name      string
		available image.Point
		source    image.Point
		upscale   bool
		want      image.Point
	}{
		{`shrink`, image.Pt(1920, 1080), image.Pt(4000, 3000), false, image.Pt(1440, 1080)},
		{`no enlargement`, image.Pt(1920, 1080), image.Pt(100, 100), false, image.Pt(100, 100)},
		{`enlargement`, image.Pt(1920, 1080), image.Pt(100, 100), true, image.Pt(1080, 1080)},
		{`portrait`, image.Pt(1000, 1000), image.Pt(500, 2000), false, image.Pt(250, 1000)},
		{`exact fit`, image.Pt(800, 600), image.Pt(800, 600), false, image.Pt(800, 600)},
		{`tiny viewport`, image.Pt(1, 1), image.Pt(5000, 10), false, image.Pt(1, 1)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, scale.TargetSize(tc.available, tc.source, tc.upscale))
		})
	}
}

func TestTargetSizeFitsWithinBounds(t *testing.T) {
	for _, upscale := range []bool{false, true} {
		for aw := 1; aw < 400; aw += 37 {
			for ah := 1; ah < 400; ah += 41 {
				for sw := 1; sw < 1200; sw += 113 {
					for sh := 1; sh < 1200; sh += 127 {
						got := scale.TargetSize(image.Pt(aw, ah), image.Pt(sw, sh), upscale)
						assert.GreaterOrEqual(t, got.X, 1)
						assert.GreaterOrEqual(t, got.Y, 1)
						// rounding slack of 1 pixel
						assert.LessOrEqual(t, got.X, aw+1)
						assert.LessOrEqual(t, got.Y, ah+1)
					}
				}
			}
		}
	}
}

func TestScreenFraction(t *testing.T) {
	assert.Equal(t, image.Pt(1728, 972), scale.ScreenFraction(image.Pt(1920, 1080), 90))
	assert.Equal(t, image.Pt(1920, 1080), scale.ScreenFraction(image.Pt(1920, 1080), 0))
	assert.Equal(t, image.Pt(1, 1), scale.ScreenFraction(image.Pt(1, 1), 10))
}
