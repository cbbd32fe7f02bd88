package viewer

import (
	"image"

	"github.com/srlehn/riv/internal/consts"
	"github.com/srlehn/riv/internal/errors"
	"github.com/srlehn/riv/internal/logx"
	"github.com/srlehn/riv/metrics"
	"github.com/srlehn/riv/scale"
	"github.com/srlehn/riv/wm"
)

// Start opens the window, unless one was passed with SetWindow, and presents
// the first frame.
//
// The initial viewport is a share of the primary monitor. Without a display
// the fallback size is used.
func (st *State) Start() error {
	if st == nil {
		return errors.NilReceiver()
	}
	if st.started {
		return nil
	}
	if st.window == nil {
		be, err := wm.Select(st.backendName, st.lowPower)
		if err != nil {
			return err
		}
		viewport := st.initialViewport(be)
		size := scale.TargetSize(viewport, st.source.Rect.Size(), st.upScale)
		logx.Info(`opening window`, st, `backend`, be.Name(), `viewport`, viewport, `size`, size, `lowpower`, st.lowPower)
		w, err := be.Open(wm.Config{
			Title:    st.title,
			Size:     size,
			Position: image.Pt(20, 20),
			LowPower: st.lowPower,
		})
		if err != nil {
			return kindOr(consts.ErrWindowCreation, err)
		}
		if w == nil {
			return errors.Kind(consts.ErrWindowCreation, errors.Errorf(`backend %q returned no window`, be.Name()))
		}
		st.window = w
	}
	st.started = true
	return st.handleRedrawErr(st.redraw(metrics.TriggerStartup))
}

func (st *State) initialViewport(be wm.Backend) image.Point {
	screen, err := be.ScreenSize()
	if err != nil || screen.X < 1 || screen.Y < 1 {
		if err == nil {
			err = errors.Kind(consts.ErrNoDisplay, errors.Errorf(`screen size %dx%d`, screen.X, screen.Y))
		}
		logx.Warn(`no display detected, using fallback viewport`, st,
			`error`, err.Error(), `fallback`, st.fallbackSize)
		return st.fallbackSize
	}
	return scale.ScreenFraction(screen, st.screenPercent)
}

// Run starts the viewer if needed and runs the event loop until the window is
// closed, the quit key is pressed or an error ends it. The window stays open;
// callers release it with Close.
//
// The loop blocks in WaitEvent for at most the time left until a pending
// resize burst settles and polls the debouncer on every wake-up.
func Run(st *State) error {
	if st == nil {
		return errors.NilParam()
	}
	if err := st.Start(); err != nil {
		return err
	}
	for !st.quit {
		coalesced := st.debouncer.Coalesced()
		if st.debouncer.Poll(st.now()) {
			metrics.CoalescedNotifications.Observe(float64(coalesced))
			logx.Debug(`resize settled`, st, `coalesced`, coalesced)
			if err := st.handleRedrawErr(st.settle()); err != nil {
				return err
			}
			continue
		}
		ev, err := st.window.WaitEvent(st.debouncer.Timeout(st.now()))
		if err != nil {
			return kindOr(consts.ErrPresentationInit, err)
		}
		if err := OnEvent(st, ev); err != nil {
			return err
		}
	}
	return nil
}
