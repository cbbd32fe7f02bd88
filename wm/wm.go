// Package wm defines the windowing and presentation collaborators of the
// viewer: a Backend opens a Window which reports events and presents frames.
package wm

import (
	"image"
	"time"

	"github.com/srlehn/riv/frame"
)

// Config describes the window to open.
type Config struct {
	Title    string
	Size     image.Point // inner size in device pixels
	Position image.Point // top left corner, ignored by backends without placement
	LowPower bool        // prefer an integrated/low power adapter
}

// Window is an open window with a presentation surface of the same size as
// the presented frames.
//
// A Window is used from a single goroutine.
type Window interface {
	// Viewport returns the drawable area in device pixels.
	Viewport() image.Point
	// WaitEvent blocks up to timeout for the next event. A negative timeout
	// blocks until an event arrives, 0 only polls. A nil event with a nil
	// error means the timeout elapsed.
	WaitEvent(timeout time.Duration) (Event, error)
	// ResizeBuffer resizes the presentation surface for frames of size.
	ResizeBuffer(size image.Point) error
	// Present displays buf. buf has the size of the last ResizeBuffer call.
	Present(buf *frame.Buffer) error
	Close() error
}

// Backend opens windows on one windowing system.
type Backend interface {
	Name() string
	// Available reports whether the backend can be used in the current
	// environment (display connection, device node).
	Available() bool
	// LowPower reports whether the backend presents without a GPU context.
	LowPower() bool
	// ScreenSize returns the size of the primary monitor or an error of
	// kind consts.ErrNoDisplay.
	ScreenSize() (image.Point, error)
	Open(cfg Config) (Window, error)
}
