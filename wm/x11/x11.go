//go:build unix && !noX11 && !android && !darwin && !js

// Package x11 is a window backend for the X Window System.
//
// based on xgbutil examples
package x11

import (
	"image"
	"os"
	"sync"
	"time"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
	"github.com/srlehn/xgbutil"
	"github.com/srlehn/xgbutil/ewmh"
	"github.com/srlehn/xgbutil/icccm"
	"github.com/srlehn/xgbutil/keybind"
	"github.com/srlehn/xgbutil/xgraphics"
	"github.com/srlehn/xgbutil/xprop"
	"github.com/srlehn/xgbutil/xwindow"

	"github.com/srlehn/riv/frame"
	"github.com/srlehn/riv/internal"
	"github.com/srlehn/riv/internal/consts"
	"github.com/srlehn/riv/internal/errors"
	"github.com/srlehn/riv/wm"
)

type backendX11 struct {
	// display name, empty for $DISPLAY
	display string
}

var _ wm.Backend = (*backendX11)(nil)

// New returns the X11 backend connecting to display, $DISPLAY if empty.
func New(display string) wm.Backend { return &backendX11{display: display} }

func (b *backendX11) Name() string   { return consts.BackendX11 }
func (b *backendX11) LowPower() bool { return true }

func (b *backendX11) Available() bool {
	if len(b.display) > 0 {
		return true
	}
	display, ok := os.LookupEnv(`DISPLAY`)
	return ok && len(display) > 0
}

func (b *backendX11) ScreenSize() (image.Point, error) {
	if !b.Available() {
		return image.Point{}, errors.New(consts.ErrNoDisplay)
	}
	conn, err := xgbutil.NewConnDisplay(b.display)
	if err != nil {
		return image.Point{}, errors.Kind(consts.ErrNoDisplay, err)
	}
	defer conn.Conn().Close()
	return screenSize(conn)
}

func screenSize(conn *xgbutil.XUtil) (image.Point, error) {
	scr := conn.Screen()
	if scr == nil || scr.WidthInPixels == 0 || scr.HeightInPixels == 0 {
		return image.Point{}, errors.New(consts.ErrNoDisplay)
	}
	return image.Pt(int(scr.WidthInPixels), int(scr.HeightInPixels)), nil
}

func (b *backendX11) Open(cfg wm.Config) (_ wm.Window, errRet error) {
	if cfg.Size.X < 1 || cfg.Size.Y < 1 {
		return nil, errors.Kind(consts.ErrWindowCreation, errors.Errorf(`invalid window size %dx%d`, cfg.Size.X, cfg.Size.Y))
	}
	closer := internal.NewCloser()
	defer func() {
		if errRet != nil {
			_ = closer.Close()
		}
	}()
	conn, err := xgbutil.NewConnDisplay(b.display)
	if err != nil {
		return nil, errors.Kind(consts.ErrWindowCreation, err)
	}
	closer.OnClose(func() error { conn.Conn().Close(); return nil })
	keybind.Initialize(conn)

	win, err := xwindow.Generate(conn)
	if err != nil {
		return nil, errors.Kind(consts.ErrWindowCreation, err)
	}
	mask := xproto.EventMaskStructureNotify | xproto.EventMaskExposure | xproto.EventMaskKeyPress
	if err := win.CreateChecked(conn.RootWin(), cfg.Position.X, cfg.Position.Y, cfg.Size.X, cfg.Size.Y,
		xproto.CwBackPixel|xproto.CwEventMask, 0, uint32(mask)); err != nil {
		return nil, errors.Kind(consts.ErrWindowCreation, err)
	}
	closer.OnClose(func() error { win.Destroy(); return nil })

	if err := ewmh.WmNameSet(conn, win.Id, cfg.Title); err != nil {
		// not every window manager supports EWMH
		_ = icccm.WmNameSet(conn, win.Id, cfg.Title)
	}
	_ = icccm.WmClassSet(conn, win.Id, &icccm.WmClass{Instance: consts.LibraryName, Class: consts.WindowTitle})
	if err := icccm.WmProtocolsSet(conn, win.Id, []string{`WM_DELETE_WINDOW`}); err != nil {
		return nil, errors.Kind(consts.ErrWindowCreation, err)
	}
	atomProtocols, err := xprop.Atm(conn, `WM_PROTOCOLS`)
	if err != nil {
		return nil, errors.Kind(consts.ErrWindowCreation, err)
	}
	atomDelete, err := xprop.Atm(conn, `WM_DELETE_WINDOW`)
	if err != nil {
		return nil, errors.Kind(consts.ErrWindowCreation, err)
	}
	win.Map()

	w := &windowX11{
		conn:          conn,
		win:           win,
		closer:        closer,
		viewport:      cfg.Size,
		atomProtocols: atomProtocols,
		atomDelete:    atomDelete,
		events:        make(chan xgb.Event, 64),
		done:          make(chan struct{}),
	}
	go w.pump()
	return w, nil
}

type windowX11 struct {
	conn          *xgbutil.XUtil
	win           *xwindow.Window
	ximg          *xgraphics.Image
	closer        internal.Closer
	viewport      image.Point
	atomProtocols xproto.Atom
	atomDelete    xproto.Atom
	events        chan xgb.Event
	done          chan struct{}
	closeOnce     sync.Once
}

var _ wm.Window = (*windowX11)(nil)

// pump forwards raw events from the socket; translation happens in WaitEvent.
func (w *windowX11) pump() {
	defer close(w.events)
	for {
		ev, xerr := w.conn.Conn().WaitForEvent()
		if ev == nil && xerr == nil {
			// connection closed
			return
		}
		if ev == nil {
			continue
		}
		select {
		case w.events <- ev:
		case <-w.done:
			return
		}
	}
}

func (w *windowX11) Viewport() image.Point { return w.viewport }

func (w *windowX11) WaitEvent(timeout time.Duration) (wm.Event, error) {
	var timer <-chan time.Time
	if timeout >= 0 {
		t := time.NewTimer(timeout)
		defer t.Stop()
		timer = t.C
	}
	for {
		select {
		case ev, ok := <-w.events:
			if !ok {
				return nil, errors.New(`X11 connection closed`)
			}
			if e := w.translate(ev); e != nil {
				return e, nil
			}
		case <-timer:
			return nil, nil
		}
	}
}

func (w *windowX11) translate(ev xgb.Event) wm.Event {
	switch e := ev.(type) {
	case xproto.ConfigureNotifyEvent:
		if e.Window != w.win.Id {
			return nil
		}
		size := image.Pt(int(e.Width), int(e.Height))
		if size == w.viewport {
			// move only
			return nil
		}
		w.viewport = size
		return wm.EventResize{Size: size}
	case xproto.ExposeEvent:
		if e.Count > 0 {
			// more expose events follow
			return nil
		}
		return wm.EventRedrawRequested{}
	case xproto.KeyPressEvent:
		return wm.EventKey{Key: w.key(e)}
	case xproto.ClientMessageEvent:
		if e.Type == w.atomProtocols && len(e.Data.Data32) > 0 &&
			xproto.Atom(e.Data.Data32[0]) == w.atomDelete {
			return wm.EventCloseRequested{}
		}
	case xproto.DestroyNotifyEvent:
		if e.Window == w.win.Id {
			return wm.EventCloseRequested{}
		}
	}
	return nil
}

func (w *windowX11) key(e xproto.KeyPressEvent) wm.Key {
	switch str := keybind.LookupString(w.conn, e.State, e.Detail); str {
	case `Escape`:
		return wm.KeyQuit
	default:
		if r := []rune(str); len(r) == 1 {
			return wm.KeyFromRune(r[0])
		}
	}
	return wm.KeyUnknown
}

func (w *windowX11) ResizeBuffer(size image.Point) error {
	if size.X < 1 || size.Y < 1 {
		return errors.Errorf(`invalid buffer size %dx%d`, size.X, size.Y)
	}
	if w.ximg != nil {
		if w.ximg.Bounds().Size() == size {
			return nil
		}
		w.ximg.Destroy()
		w.ximg = nil
	}
	ximg := xgraphics.New(w.conn, image.Rectangle{Max: size})
	if err := ximg.XSurfaceSet(w.win.Id); err != nil {
		ximg.Destroy()
		return errors.New(err)
	}
	w.ximg = ximg
	return nil
}

// Present copies buf into the X image (BGRA) and paints it at the top left
// corner of the window.
func (w *windowX11) Present(buf *frame.Buffer) error {
	if buf == nil {
		return errors.New(consts.ErrNilParam)
	}
	if w.ximg == nil || w.ximg.Bounds().Size() != buf.Size() {
		return errors.Kind(consts.ErrBufferSize, errors.New(`X image and frame differ in size`))
	}
	width, height := buf.Size().X, buf.Size().Y
	for y := 0; y < height; y++ {
		s := buf.Pix[y*width*frame.BytesPerPixel : (y+1)*width*frame.BytesPerPixel]
		d := w.ximg.Pix[y*w.ximg.Stride : y*w.ximg.Stride+width*4]
		for i := 0; i < len(s); i += 4 {
			d[i], d[i+1], d[i+2], d[i+3] = s[i+2], s[i+1], s[i], s[i+3]
		}
	}
	w.ximg.XDraw()
	w.ximg.XExpPaint(w.win.Id, 0, 0)
	w.conn.Sync()
	return nil
}

func (w *windowX11) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		if w.ximg != nil {
			w.ximg.Destroy()
			w.ximg = nil
		}
		err = w.closer.Close()
	})
	return err
}
