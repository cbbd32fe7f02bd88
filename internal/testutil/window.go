package testutil

import (
	"image"
	"time"

	"github.com/srlehn/riv/frame"
	"github.com/srlehn/riv/internal/consts"
	"github.com/srlehn/riv/internal/errors"
	"github.com/srlehn/riv/wm"
)

// Clock is a manually advanced clock.
type Clock struct {
	start time.Time
	now   time.Time
}

func NewClock() *Clock {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return &Clock{start: t0, now: t0}
}

func (c *Clock) Now() time.Time               { return c.now }
func (c *Clock) Advance(d time.Duration)      { c.now = c.now.Add(d) }
func (c *Clock) Set(t time.Time)              { c.now = t }
func (c *Clock) Elapsed() time.Duration       { return c.now.Sub(c.start) }
func (c *Clock) At(d time.Duration) time.Time { return c.start.Add(d) }

// ScriptedEvent is delivered by Window.WaitEvent once the clock reaches At
// (relative to the clock's start).
type ScriptedEvent struct {
	At    time.Duration
	Event wm.Event
}

// Presented records a Window.Present call.
type Presented struct {
	At   time.Duration
	Size image.Point
	Pix  []byte
}

// Window is a wm.Window replaying scripted events on a manual clock.
//
// WaitEvent advances the clock to the next scripted event, or by the timeout
// if that comes first. Once the script is exhausted it returns nil after the
// timeout, or EventCloseRequested when asked to block indefinitely.
type Window struct {
	Clock  *Clock
	Size   image.Point
	Script []ScriptedEvent

	// PresentErrs are returned by consecutive Present calls, nil entries succeed.
	PresentErrs []error
	ResizeErr   error

	Presents []Presented
	Buffers  []image.Point
	Waits    []time.Duration
	Closed   bool

	surface image.Point
}

var _ wm.Window = (*Window)(nil)

func NewWindow(clock *Clock, size image.Point, script ...ScriptedEvent) *Window {
	return &Window{Clock: clock, Size: size, Script: script}
}

func (w *Window) Viewport() image.Point { return w.Size }

func (w *Window) WaitEvent(timeout time.Duration) (wm.Event, error) {
	if w.Closed {
		return nil, errors.New(`window closed`)
	}
	w.Waits = append(w.Waits, timeout)
	now := w.Clock.Now()
	if len(w.Script) == 0 {
		if timeout < 0 {
			return wm.EventCloseRequested{}, nil
		}
		w.Clock.Advance(timeout)
		return nil, nil
	}
	next := w.Script[0]
	at := w.Clock.At(next.At)
	if timeout >= 0 && now.Add(timeout).Before(at) {
		w.Clock.Advance(timeout)
		return nil, nil
	}
	if at.After(now) {
		w.Clock.Set(at)
	}
	w.Script = w.Script[1:]
	if e, ok := next.Event.(wm.EventResize); ok {
		w.Size = e.Size
	}
	return next.Event, nil
}

func (w *Window) ResizeBuffer(size image.Point) error {
	if w.ResizeErr != nil {
		return w.ResizeErr
	}
	w.surface = size
	w.Buffers = append(w.Buffers, size)
	return nil
}

func (w *Window) Present(buf *frame.Buffer) error {
	if len(w.PresentErrs) > 0 {
		err := w.PresentErrs[0]
		w.PresentErrs = w.PresentErrs[1:]
		if err != nil {
			return err
		}
	}
	if buf == nil || buf.Size() != w.surface {
		return errors.Kind(consts.ErrBufferSize, errors.Errorf(`frame %v, surface %v`, buf.Size(), w.surface))
	}
	w.Presents = append(w.Presents, Presented{
		At:   w.Clock.Elapsed(),
		Size: buf.Size(),
		Pix:  append([]byte(nil), buf.Pix...),
	})
	return nil
}

func (w *Window) Close() error {
	w.Closed = true
	return nil
}
