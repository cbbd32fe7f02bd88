package util

import (
	"image"
	"strconv"
	"strings"

	"github.com/go-errors/errors"
)

// ParseSize parses "<w>x<h>" with positive side lengths.
func ParseSize(s string) (image.Point, error) {
	parts := strings.SplitN(strings.ToLower(strings.TrimSpace(s)), `x`, 2)
	if len(parts) != 2 {
		return image.Point{}, errors.Errorf(`invalid size %q, want <w>x<h>`, s)
	}
	w, errW := strconv.ParseUint(parts[0], 10, 31)
	h, errH := strconv.ParseUint(parts[1], 10, 31)
	if errW != nil || errH != nil || w == 0 || h == 0 {
		return image.Point{}, errors.Errorf(`invalid size %q, want <w>x<h>`, s)
	}
	return image.Point{X: int(w), Y: int(h)}, nil
}
