//go:build linux

// Package framebuffer is a window backend drawing on the Linux framebuffer
// device of a virtual console. Keys are read from the controlling terminal.
package framebuffer

import (
	"image"
	"os"
	"sync"
	"time"

	ttymattn "github.com/mattn/go-tty"

	"github.com/srlehn/riv/frame"
	"github.com/srlehn/riv/internal"
	"github.com/srlehn/riv/internal/consts"
	"github.com/srlehn/riv/internal/errors"
	"github.com/srlehn/riv/wm"
)

const DefaultDevice = `/dev/fb0`

type backendFramebuffer struct {
	dev string
}

var _ wm.Backend = (*backendFramebuffer)(nil)

// New returns the framebuffer backend for the device dev, DefaultDevice if empty.
func New(dev string) wm.Backend {
	if len(dev) == 0 {
		dev = DefaultDevice
	}
	return &backendFramebuffer{dev: dev}
}

func (b *backendFramebuffer) Name() string   { return consts.BackendFramebuffer }
func (b *backendFramebuffer) LowPower() bool { return true }

// Available reports whether the device is writable and we run on a console
// rather than inside a graphical session.
func (b *backendFramebuffer) Available() bool {
	if sessionType, ok := os.LookupEnv(`XDG_SESSION_TYPE`); ok && sessionType != `tty` {
		return false
	}
	f, err := os.OpenFile(b.dev, os.O_RDWR, os.ModeDevice)
	if err != nil {
		return false
	}
	_ = f.Close()
	return true
}

func (b *backendFramebuffer) ScreenSize() (image.Point, error) {
	d, err := openDevice(b.dev)
	if err != nil {
		return image.Point{}, errors.Kind(consts.ErrNoDisplay, err)
	}
	defer d.Close()
	return d.Size(), nil
}

// Open takes over the whole screen, cfg.Size is ignored.
func (b *backendFramebuffer) Open(cfg wm.Config) (_ wm.Window, errRet error) {
	closer := internal.NewCloser()
	defer func() {
		if errRet != nil {
			_ = closer.Close()
		}
	}()
	d, err := openDevice(b.dev)
	if err != nil {
		return nil, errors.Kind(consts.ErrWindowCreation, err)
	}
	closer.AddClosers(d)
	tty, err := ttymattn.Open()
	if err != nil {
		return nil, errors.Kind(consts.ErrWindowCreation, err)
	}
	closer.AddClosers(tty)
	d.clear()

	w := &windowFramebuffer{
		dev:    d,
		tty:    tty,
		closer: closer,
		keys:   make(chan rune, 16),
		done:   make(chan struct{}),
	}
	go w.readKeys()
	return w, nil
}

type windowFramebuffer struct {
	dev       *device
	tty       *ttymattn.TTY
	closer    internal.Closer
	bufSize   image.Point
	keys      chan rune
	readErr   error
	done      chan struct{}
	closeOnce sync.Once
}

var _ wm.Window = (*windowFramebuffer)(nil)

// readKeys forwards key presses until the tty is closed.
func (w *windowFramebuffer) readKeys() {
	defer close(w.keys)
	for {
		r, err := w.tty.ReadRune()
		if err != nil {
			w.readErr = err
			return
		}
		select {
		case w.keys <- r:
		case <-w.done:
			return
		}
	}
}

// Viewport is the screen resolution.
func (w *windowFramebuffer) Viewport() image.Point { return w.dev.Size() }

func (w *windowFramebuffer) WaitEvent(timeout time.Duration) (wm.Event, error) {
	var timer <-chan time.Time
	if timeout >= 0 {
		t := time.NewTimer(timeout)
		defer t.Stop()
		timer = t.C
	}
	select {
	case r, ok := <-w.keys:
		if !ok {
			if w.readErr != nil {
				return nil, errors.New(w.readErr)
			}
			return wm.EventCloseRequested{}, nil
		}
		return wm.EventKey{Key: nextKey(r, w.keys, escapeWait)}, nil
	case <-timer:
		return nil, nil
	}
}

func (w *windowFramebuffer) ResizeBuffer(size image.Point) error {
	if size.X < 1 || size.Y < 1 {
		return errors.Errorf(`invalid buffer size %dx%d`, size.X, size.Y)
	}
	if size != w.bufSize {
		w.dev.clear()
	}
	w.bufSize = size
	return nil
}

// Present draws buf centered on the screen.
func (w *windowFramebuffer) Present(buf *frame.Buffer) error {
	if buf == nil {
		return errors.New(consts.ErrNilParam)
	}
	if buf.Size() != w.bufSize {
		return errors.Kind(consts.ErrBufferSize, errors.Errorf(`frame %v, surface %v`, buf.Size(), w.bufSize))
	}
	pos := w.dev.Size().Sub(buf.Size()).Div(2)
	w.dev.blit(buf.Pix, buf.Size(), image.Pt(max(pos.X, 0), max(pos.Y, 0)))
	return nil
}

func (w *windowFramebuffer) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.closer.Close()
	})
	return err
}
