//go:build cgo && !noGLFW && (linux || freebsd || windows || darwin)

// Package glfw is a window backend using GLFW with an OpenGL 3.2 core
// context. Frames are uploaded into a texture and blitted to the default
// framebuffer.
//
// GLFW must be used from the main thread: Open, the Window methods and the
// Backend methods have to be called from the main goroutine.
package glfw

import (
	"image"
	"runtime"
	"sync"
	"time"

	"github.com/go-gl/gl/v3.3-core/gl"
	glfwgo "github.com/go-gl/glfw/v3.3/glfw"

	"github.com/srlehn/riv/frame"
	"github.com/srlehn/riv/internal/consts"
	"github.com/srlehn/riv/internal/errors"
	"github.com/srlehn/riv/wm"
)

// keep the main goroutine on the main thread
func init() { runtime.LockOSThread() }

type backendGLFW struct {
	initOnce sync.Once
	errInit  error
}

var _ wm.Backend = (*backendGLFW)(nil)

func New() wm.Backend { return &backendGLFW{} }

func (b *backendGLFW) Name() string   { return consts.BackendGLFW }
func (b *backendGLFW) LowPower() bool { return false }

func (b *backendGLFW) init() error {
	b.initOnce.Do(func() {
		if err := glfwgo.Init(); err != nil {
			b.errInit = errors.Kind(consts.ErrPresentationInit, err)
		}
	})
	return b.errInit
}

func (b *backendGLFW) Available() bool {
	return b.init() == nil && glfwgo.GetPrimaryMonitor() != nil
}

func (b *backendGLFW) ScreenSize() (image.Point, error) {
	if err := b.init(); err != nil {
		return image.Point{}, errors.Kind(consts.ErrNoDisplay, err)
	}
	m := glfwgo.GetPrimaryMonitor()
	if m == nil {
		return image.Point{}, errors.New(consts.ErrNoDisplay)
	}
	mode := m.GetVideoMode()
	if mode == nil || mode.Width <= 0 || mode.Height <= 0 {
		return image.Point{}, errors.New(consts.ErrNoDisplay)
	}
	return image.Pt(mode.Width, mode.Height), nil
}

func (b *backendGLFW) Open(cfg wm.Config) (wm.Window, error) {
	if err := b.init(); err != nil {
		return nil, err
	}
	if cfg.Size.X < 1 || cfg.Size.Y < 1 {
		return nil, errors.Kind(consts.ErrWindowCreation, errors.Errorf(`invalid window size %dx%d`, cfg.Size.X, cfg.Size.Y))
	}

	// GL 3.2+ core profile (Mac requires forward-compatible flag).
	glfwgo.DefaultWindowHints()
	glfwgo.WindowHint(glfwgo.ContextVersionMajor, 3)
	glfwgo.WindowHint(glfwgo.ContextVersionMinor, 2)
	glfwgo.WindowHint(glfwgo.OpenGLProfile, glfwgo.OpenGLCoreProfile)
	glfwgo.WindowHint(glfwgo.OpenGLForwardCompatible, glfwgo.True)
	glfwgo.WindowHint(glfwgo.Resizable, glfwgo.True)
	glfwgo.WindowHint(glfwgo.Samples, 0)
	if cfg.LowPower {
		// allow the integrated GPU on dual GPU Macs
		glfwgo.WindowHint(glfwgo.CocoaGraphicsSwitching, glfwgo.True)
	}

	win, err := glfwgo.CreateWindow(cfg.Size.X, cfg.Size.Y, cfg.Title, nil, nil)
	if err != nil {
		return nil, errors.Kind(consts.ErrWindowCreation, err)
	}
	win.SetPos(cfg.Position.X, cfg.Position.Y)
	win.MakeContextCurrent()
	glfwgo.SwapInterval(1)
	if err := gl.Init(); err != nil {
		win.Destroy()
		return nil, errors.Kind(consts.ErrPresentationInit, err)
	}

	w := &windowGLFW{win: win}
	gl.GenTextures(1, &w.tex)
	gl.BindTexture(gl.TEXTURE_2D, w.tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.GenFramebuffers(1, &w.fbo)

	// Callbacks -> queued wm.Event, delivered by WaitEvent
	win.SetCloseCallback(func(*glfwgo.Window) { w.emit(wm.EventCloseRequested{}) })
	win.SetFramebufferSizeCallback(func(_ *glfwgo.Window, width, height int) {
		w.emit(wm.EventResize{Size: image.Pt(width, height)})
	})
	win.SetRefreshCallback(func(*glfwgo.Window) { w.emit(wm.EventRedrawRequested{}) })
	win.SetKeyCallback(func(_ *glfwgo.Window, key glfwgo.Key, _ int, action glfwgo.Action, _ glfwgo.ModifierKey) {
		if action != glfwgo.Press {
			return
		}
		w.emit(wm.EventKey{Key: translateKey(key)})
	})
	return w, nil
}

type windowGLFW struct {
	win     *glfwgo.Window
	tex     uint32
	fbo     uint32
	bufSize image.Point
	queue   []wm.Event
	closed  bool
}

var _ wm.Window = (*windowGLFW)(nil)

func (w *windowGLFW) emit(ev wm.Event) { w.queue = append(w.queue, ev) }

func (w *windowGLFW) Viewport() image.Point {
	width, height := w.win.GetFramebufferSize()
	return image.Pt(width, height)
}

// WaitEvent processes pending GLFW events. Unrelated events (mouse motion)
// wake it up early, which is reported like an elapsed timeout.
func (w *windowGLFW) WaitEvent(timeout time.Duration) (wm.Event, error) {
	if w.closed {
		return nil, errors.New(`window closed`)
	}
	if len(w.queue) == 0 {
		switch {
		case timeout < 0:
			glfwgo.WaitEvents()
		case timeout == 0:
			glfwgo.PollEvents()
		default:
			glfwgo.WaitEventsTimeout(timeout.Seconds())
		}
	}
	if len(w.queue) == 0 {
		return nil, nil
	}
	ev := w.queue[0]
	w.queue = w.queue[1:]
	return ev, nil
}

func (w *windowGLFW) ResizeBuffer(size image.Point) error {
	if size.X < 1 || size.Y < 1 {
		return errors.Errorf(`invalid buffer size %dx%d`, size.X, size.Y)
	}
	if size == w.bufSize {
		return nil
	}
	gl.BindTexture(gl.TEXTURE_2D, w.tex)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(size.X), int32(size.Y), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, w.fbo)
	gl.FramebufferTexture2D(gl.READ_FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, w.tex, 0)
	if status := gl.CheckFramebufferStatus(gl.READ_FRAMEBUFFER); status != gl.FRAMEBUFFER_COMPLETE {
		return errors.Kind(consts.ErrPresentationInit, errors.Errorf(`incomplete framebuffer: 0x%x`, status))
	}
	w.bufSize = size
	return nil
}

// Present uploads buf and blits it to the top left corner of the window.
func (w *windowGLFW) Present(buf *frame.Buffer) error {
	if buf == nil {
		return errors.New(consts.ErrNilParam)
	}
	if buf.Size() != w.bufSize {
		return errors.Kind(consts.ErrBufferSize, errors.Errorf(`frame %v, texture %v`, buf.Size(), w.bufSize))
	}
	bw, bh := int32(buf.Width), int32(buf.Height)
	gl.BindTexture(gl.TEXTURE_2D, w.tex)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, bw, bh, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(buf.Pix))

	vp := w.Viewport()
	vh := int32(vp.Y)
	gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, 0)
	gl.Viewport(0, 0, int32(vp.X), vh)
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, w.fbo)
	// texture rows are top down, GL framebuffers bottom up
	gl.BlitFramebuffer(0, 0, bw, bh, 0, vh, bw, vh-bh, gl.COLOR_BUFFER_BIT, gl.NEAREST)
	w.win.SwapBuffers()
	if code := gl.GetError(); code != gl.NO_ERROR {
		return errors.Errorf(`OpenGL error 0x%x`, code)
	}
	return nil
}

func (w *windowGLFW) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	gl.DeleteFramebuffers(1, &w.fbo)
	gl.DeleteTextures(1, &w.tex)
	w.win.Destroy()
	glfwgo.Terminate()
	return nil
}

func translateKey(k glfwgo.Key) wm.Key {
	switch k {
	case glfwgo.KeyEscape, glfwgo.KeyQ:
		return wm.KeyQuit
	case glfwgo.KeyR:
		return wm.KeyRedraw
	case glfwgo.KeyU:
		return wm.KeyToggleUpScale
	default:
		return wm.KeyUnknown
	}
}
