// Package scale computes uniform fit-to-viewport scale factors.
//
// A scale factor s means "divide the source dimension by s": s > 1 shrinks,
// s < 1 enlarges and s == 1 leaves the image at its native resolution.
package scale

import (
	"image"
	"math"
)

// ceilSlack absorbs floating point error so that an axis which fits exactly
// is not rounded up to an extra pixel.
const ceilSlack = 1e-6

// AxisScale returns the scale factor for a single axis.
//
// If the source fits into the available length and upscaling is disabled the
// image is kept at its native size (1.0). Otherwise source/available is
// returned. A non-positive available length is treated as unknown and yields 1.0.
func AxisScale(available, source int, allowUpscale bool) float64 {
	if available <= 0 || source <= 0 {
		return 1
	}
	if available >= source && !allowUpscale {
		return 1
	}
	return float64(source) / float64(available)
}

// FitScale returns the larger of both axis scales, so that the scaled image
// fits within the available area on both axes while keeping its aspect ratio.
func FitScale(available, source image.Point, allowUpscale bool) float64 {
	return math.Max(
		AxisScale(available.X, source.X, allowUpscale),
		AxisScale(available.Y, source.Y, allowUpscale),
	)
}

// Apply divides size by factor, rounding up. Each side is at least 1.
func Apply(size image.Point, factor float64) image.Point {
	if factor <= 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		factor = 1
	}
	return image.Point{
		X: ceilDiv(size.X, factor),
		Y: ceilDiv(size.Y, factor),
	}
}

// TargetSize is the size source has to be resampled to for fitting into available.
func TargetSize(available, source image.Point, allowUpscale bool) image.Point {
	return Apply(source, FitScale(available, source, allowUpscale))
}

// ScreenFraction returns percent of the screen size, at least 1 pixel per side.
func ScreenFraction(screen image.Point, percent int) image.Point {
	if percent <= 0 || percent > 100 {
		percent = 100
	}
	return image.Point{
		X: max(1, screen.X*percent/100),
		Y: max(1, screen.Y*percent/100),
	}
}

func ceilDiv(v int, factor float64) int {
	return max(1, int(math.Ceil(float64(v)/factor-ceilSlack)))
}
