// Package riv shows an image file in a window fitted to the screen.
//
// It wires the platform window backends and the default resampler into
// package viewer. Use viewer directly for finer control.
package riv

import (
	"github.com/srlehn/riv/internal/consts"
	"github.com/srlehn/riv/rgb"
	"github.com/srlehn/riv/source"
	"github.com/srlehn/riv/viewer"
	"github.com/srlehn/riv/wm/wmimpl"

	// default resampler
	_ "github.com/srlehn/riv/resize/rdefault"
)

var (
	// DefaultConfig is prepended to the options passed to Show and View.
	DefaultConfig = viewer.Options{
		viewer.SetResizer(consts.ResizerDefaultName),
		viewer.SetTitle(consts.WindowTitle),
		viewer.SetSLogger(nil, false),
	}
)

// Show loads the image file at path and shows it until the window is closed.
func Show(path string, opts ...viewer.Option) error {
	img, err := source.Load(path)
	if err != nil {
		return err
	}
	return View(img, opts...)
}

// ShowBytes - for use with "embed", etc.
func ShowBytes(imgBytes []byte, opts ...viewer.Option) error {
	img, err := source.DecodeBytes(imgBytes)
	if err != nil {
		return err
	}
	return View(img, opts...)
}

// View shows img until the window is closed.
func View(img *rgb.Image, opts ...viewer.Option) error {
	wmimpl.Register()
	st, err := viewer.New(img, append([]viewer.Option{DefaultConfig}, opts...)...)
	if err != nil {
		return err
	}
	defer st.Close()
	return viewer.Run(st)
}
