// Package offscreen is a window backend without a display. Every presented
// frame is written to an image file.
package offscreen

import (
	"image"
	"time"

	"github.com/srlehn/riv/frame"
	"github.com/srlehn/riv/internal/consts"
	"github.com/srlehn/riv/internal/encoder"
	"github.com/srlehn/riv/internal/errors"
	"github.com/srlehn/riv/wm"
)

// Backend renders into the file Output. The file format follows the file
// name extension.
type Backend struct {
	Output string
	// Screen is reported as the monitor size. Zero means no display.
	Screen image.Point
	// Events are delivered in order once the first frame was presented,
	// followed by a close request.
	Events []wm.Event
}

var _ wm.Backend = (*Backend)(nil)

func New(output string, screen image.Point) *Backend {
	return &Backend{Output: output, Screen: screen}
}

func (b *Backend) Name() string    { return consts.BackendOffscreen }
func (b *Backend) Available() bool { return b != nil && len(b.Output) > 0 }
func (b *Backend) LowPower() bool  { return true }

func (b *Backend) ScreenSize() (image.Point, error) {
	if b == nil {
		return image.Point{}, errors.NilReceiver()
	}
	if b.Screen.X <= 0 || b.Screen.Y <= 0 {
		return image.Point{}, errors.New(consts.ErrNoDisplay)
	}
	return b.Screen, nil
}

func (b *Backend) Open(cfg wm.Config) (wm.Window, error) {
	if b == nil {
		return nil, errors.NilReceiver()
	}
	if _, err := encoder.Format(b.Output); err != nil {
		return nil, errors.Kind(consts.ErrWindowCreation, err)
	}
	if cfg.Size.X < 1 || cfg.Size.Y < 1 {
		return nil, errors.Kind(consts.ErrWindowCreation, errors.Errorf(`invalid window size %dx%d`, cfg.Size.X, cfg.Size.Y))
	}
	return &window{
		output:   b.Output,
		viewport: cfg.Size,
		events:   append([]wm.Event(nil), b.Events...),
	}, nil
}

type window struct {
	output    string
	viewport  image.Point
	bufSize   image.Point
	events    []wm.Event
	presented int
	closed    bool
}

var _ wm.Window = (*window)(nil)

func (w *window) Viewport() image.Point { return w.viewport }

// WaitEvent only waits for the timeout once the scripted events are used up.
// Asked to block indefinitely it requests closing, there is no user to wait for.
func (w *window) WaitEvent(timeout time.Duration) (wm.Event, error) {
	if w.closed {
		return nil, errors.New(`window closed`)
	}
	if w.presented == 0 {
		return wm.EventRedrawRequested{}, nil
	}
	if len(w.events) == 0 {
		if timeout >= 0 {
			time.Sleep(timeout)
			return nil, nil
		}
		return wm.EventCloseRequested{}, nil
	}
	ev := w.events[0]
	w.events = w.events[1:]
	if r, ok := ev.(wm.EventResize); ok {
		w.viewport = r.Size
	}
	return ev, nil
}

func (w *window) ResizeBuffer(size image.Point) error {
	if size.X < 1 || size.Y < 1 {
		return errors.Errorf(`invalid buffer size %dx%d`, size.X, size.Y)
	}
	w.bufSize = size
	return nil
}

func (w *window) Present(buf *frame.Buffer) error {
	if buf == nil {
		return errors.New(consts.ErrNilParam)
	}
	if buf.Size() != w.bufSize {
		return errors.Kind(consts.ErrBufferSize, errors.Errorf(`frame %v, surface %v`, buf.Size(), w.bufSize))
	}
	if err := encoder.WriteFile(w.output, buf.RGBA()); err != nil {
		return err
	}
	w.presented++
	return nil
}

func (w *window) Close() error {
	w.closed = true
	return nil
}
