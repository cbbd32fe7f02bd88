// Package viewer keeps a window showing one image fitted to its viewport.
//
// All viewer state lives in a State which is owned by the goroutine running
// the event loop. Events from the window are dispatched with OnEvent, resize
// bursts are coalesced by a debounce.Debouncer and every redraw runs the one
// pipeline in Redraw.
package viewer

import (
	"image"
	"log/slog"
	"time"

	"github.com/srlehn/riv/debounce"
	"github.com/srlehn/riv/frame"
	"github.com/srlehn/riv/internal/consts"
	"github.com/srlehn/riv/internal/errors"
	"github.com/srlehn/riv/internal/logx"
	"github.com/srlehn/riv/resize"
	"github.com/srlehn/riv/rgb"
	"github.com/srlehn/riv/wm"

	// registers the default resizer
	_ "github.com/srlehn/riv/resize/rdefault"
)

// error kinds
var (
	ErrWindowCreation   = consts.ErrWindowCreation
	ErrImageDecode      = consts.ErrImageDecode
	ErrImageProcessing  = consts.ErrImageProcessing
	ErrPresentationInit = consts.ErrPresentationInit
	ErrNoDisplay        = consts.ErrNoDisplay
	ErrBufferSize       = consts.ErrBufferSize
)

// State is the viewer state. It is not safe for concurrent use.
type State struct {
	source *rgb.Image

	// configuration
	upScale       bool
	lowPower      bool
	backendName   string
	resizerName   string
	resizer       resize.Resizer
	quiescence    time.Duration
	fallbackSize  image.Point
	screenPercent int
	title         string
	errPolicy     RedrawErrorPolicy
	logger        *slog.Logger
	now           func() time.Time

	window    wm.Window
	debouncer *debounce.Debouncer
	buf       *frame.Buffer

	started bool
	quit    bool

	// last successfully presented frame
	presented     bool
	lastTarget    image.Point
	lastUpScale   bool
	redrawErrRun  int // consecutive failed redraws
	redrawsTotal  int
	presentsTotal int
}

var _ logx.LoggerProvider = (*State)(nil)

// New prepares a viewer for src. The window is opened by Start or Run.
func New(src *rgb.Image, opts ...Option) (*State, error) {
	if src == nil {
		return nil, errors.NilParam()
	}
	if src.Rect.Empty() {
		return nil, errors.Kind(consts.ErrImageDecode, errors.New(`empty image`))
	}
	st := &State{
		source:        src,
		resizerName:   consts.ResizerDefaultName,
		quiescence:    consts.QuiescenceDefault,
		fallbackSize:  image.Pt(consts.FallbackWidth, consts.FallbackHeight),
		screenPercent: consts.ScreenPercent,
		title:         consts.WindowTitle,
		now:           time.Now,
		buf:           &frame.Buffer{},
	}
	if err := st.SetOptions(opts...); err != nil {
		return nil, err
	}
	if st.resizer == nil {
		rsz, err := resize.ByName(st.resizerName)
		if err != nil {
			return nil, err
		}
		st.resizer = rsz
	}
	st.debouncer = debounce.New(st.quiescence)
	return st, nil
}

// Logger implements logx.LoggerProvider. It is nil when logging is disabled.
func (st *State) Logger() *slog.Logger {
	if st == nil {
		return nil
	}
	return st.logger
}

// Source returns the image shown.
func (st *State) Source() *rgb.Image { return st.source }

// Window returns the window, nil before Start.
func (st *State) Window() wm.Window { return st.window }

// Buffer returns the frame buffer of the last redraw.
func (st *State) Buffer() *frame.Buffer { return st.buf }

// UpScale reports whether images smaller than the viewport are enlarged.
func (st *State) UpScale() bool { return st.upScale }

// Debouncer returns the resize debouncer.
func (st *State) Debouncer() *debounce.Debouncer { return st.debouncer }

// Quit reports whether the event loop was asked to stop.
func (st *State) Quit() bool { return st.quit }

// Stats returns the number of pipeline runs and of presented frames.
func (st *State) Stats() (redraws, presents int) { return st.redrawsTotal, st.presentsTotal }

// Close closes the window.
func (st *State) Close() error {
	if st == nil || st.window == nil {
		return nil
	}
	w := st.window
	st.window = nil
	return w.Close()
}
