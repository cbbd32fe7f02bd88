package viewer

import (
	"github.com/srlehn/riv/internal/errors"
	"github.com/srlehn/riv/internal/logx"
	"github.com/srlehn/riv/metrics"
	"github.com/srlehn/riv/scale"
	"github.com/srlehn/riv/wm"
)

// OnEvent dispatches a single window event. A nil event (WaitEvent timeout) is
// ignored. The returned error ends the event loop.
func OnEvent(st *State, ev wm.Event) error {
	if st == nil {
		return errors.NilParam()
	}
	switch e := ev.(type) {
	case nil:
	case wm.EventResize:
		st.debouncer.Notify(st.now())
		metrics.ResizeNotifications.Inc()
		logx.Debug(`resize notification`, st, `size`, e.Size, `coalesced`, st.debouncer.Coalesced())
	case wm.EventCloseRequested:
		logx.Debug(`close requested`, st)
		st.quit = true
	case wm.EventKey:
		return st.onKey(e.Key)
	case wm.EventRedrawRequested:
		if st.presented && st.buf.Size() == st.lastTarget &&
			st.lastTarget == scale.TargetSize(st.window.Viewport(), st.source.Rect.Size(), st.upScale) {
			return st.handleRedrawErr(st.present())
		}
		return st.handleRedrawErr(st.redraw(metrics.TriggerExpose))
	default:
		logx.Debug(`ignoring event`, st, `event`, ev)
	}
	return nil
}

func (st *State) onKey(key wm.Key) error {
	switch key {
	case wm.KeyQuit:
		st.quit = true
	case wm.KeyRedraw:
		return st.handleRedrawErr(st.redraw(metrics.TriggerKey))
	case wm.KeyToggleUpScale:
		st.upScale = !st.upScale
		logx.Info(`up-scaling toggled`, st, `upscale`, st.upScale)
		return st.handleRedrawErr(st.redraw(metrics.TriggerKey))
	default:
		// unbound keys are ignored
	}
	return nil
}
