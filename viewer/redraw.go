package viewer

import (
	"fmt"
	"image"
	"log/slog"
	"time"

	"github.com/srlehn/riv/internal/consts"
	"github.com/srlehn/riv/internal/errors"
	"github.com/srlehn/riv/internal/logx"
	"github.com/srlehn/riv/metrics"
	"github.com/srlehn/riv/resize"
	"github.com/srlehn/riv/rgb"
	"github.com/srlehn/riv/scale"
)

// Redraw fits the source image to the current viewport and presents it:
//
//  1. compute the target size from viewport, source size and up-scale policy
//  2. resize the frame buffer and the window surface to the target size
//  3. resample the source to the target size
//  4. pack the resampled pixels into the frame buffer
//  5. present the frame buffer
//
// A failing step aborts the remaining ones.
func Redraw(st *State) error {
	return st.redraw(metrics.TriggerKey)
}

func (st *State) redraw(trigger string) error {
	if st == nil {
		return errors.NilParam()
	}
	if st.window == nil {
		return errors.Kind(consts.ErrPresentationInit, errors.New(`no window`))
	}
	metrics.Redraws.WithLabelValues(trigger).Inc()
	st.redrawsTotal++
	st.presented = false

	viewport := st.window.Viewport()
	target := scale.TargetSize(viewport, st.source.Rect.Size(), st.upScale)
	logx.Debug(`redraw`, st, `trigger`, trigger, `viewport`, viewport, `target`, target, `upscale`, st.upScale)

	st.buf.Resize(target)
	if err := st.window.ResizeBuffer(target); err != nil {
		return kindOr(consts.ErrPresentationInit, err)
	}

	start := time.Now()
	resampled, err := logx.TimeIt2(func() (*rgb.Image, error) {
		return resize.Resample(st.source, target, st.resizer)
	}, `resample`, st, `resampler`, st.resizerName, `size`, target)
	metrics.ResampleDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return err
	}

	err = logx.TimeIt(func() error { return st.buf.Pack(resampled) }, `pack`, st)
	if err != nil {
		return err
	}
	if err := st.present(); err != nil {
		return err
	}
	st.lastTarget = target
	st.lastUpScale = st.upScale
	st.presented = true
	return nil
}

// present shows the current frame buffer again.
func (st *State) present() error {
	err := logx.TimeIt(func() error { return st.window.Present(st.buf) }, `present`, st)
	if err != nil {
		return kindOr(consts.ErrPresentationInit, err)
	}
	metrics.Presents.Inc()
	st.presentsTotal++
	return nil
}

// settle handles the end of a resize burst. Unchanged geometry only
// re-presents the last frame.
func (st *State) settle() error {
	if st.presented {
		target := scale.TargetSize(st.window.Viewport(), st.source.Rect.Size(), st.upScale)
		if target == st.lastTarget && st.upScale == st.lastUpScale && st.buf.Size() == target {
			logx.Debug(`resize settled without size change`, st, `target`, target)
			return st.present()
		}
	}
	return st.redraw(metrics.TriggerResize)
}

// TargetSize returns the size the source is resampled to for the current
// viewport and up-scale policy.
func (st *State) TargetSize() image.Point {
	if st == nil || st.window == nil {
		return image.Point{}
	}
	return scale.TargetSize(st.window.Viewport(), st.source.Rect.Size(), st.upScale)
}

// kindOr wraps err with kind unless err already carries one of the error kinds.
func kindOr(kind, err error) error {
	for _, k := range []error{
		consts.ErrWindowCreation,
		consts.ErrImageDecode,
		consts.ErrImageProcessing,
		consts.ErrPresentationInit,
		consts.ErrNoDisplay,
		consts.ErrBufferSize,
	} {
		if errors.Is(err, k) {
			return err
		}
	}
	return errors.Kind(kind, err)
}

// handleRedrawErr applies the redraw error policy. A nil return keeps the
// event loop running.
func (st *State) handleRedrawErr(err error) error {
	if err == nil {
		st.redrawErrRun = 0
		return nil
	}
	metrics.RedrawErrors.Inc()
	st.redrawErrRun++
	if st.errPolicy != RedrawSkip {
		return err
	}
	logx.IsErr(err, st, slog.LevelWarn, `consecutive`, st.redrawErrRun)
	if st.redrawErrRun >= consts.MaxConsecutiveRedrawErrors {
		return errors.WrapPrefix(err, fmt.Sprintf(`%d consecutive redraw failures`, st.redrawErrRun), 0)
	}
	return nil
}
