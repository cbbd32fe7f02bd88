package viewer

import (
	"image"
	"log/slog"
	"strings"
	"time"

	"github.com/srlehn/riv/debounce"
	"github.com/srlehn/riv/internal/errors"
	"github.com/srlehn/riv/resize"
	"github.com/srlehn/riv/wm"
)

type Option interface {
	ApplyOption(st *State) error
}

var _ Option = (OptFunc)(nil)

type OptFunc func(*State) error

func (o OptFunc) ApplyOption(st *State) error { return o(st) }

var _ Option = (Options)(nil)

type Options []Option

func (o Options) ApplyOption(st *State) error { return st.SetOptions([]Option(o)...) }

func (st *State) SetOptions(opts ...Option) error {
	if st == nil {
		return errors.NilReceiver()
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.ApplyOption(st); err != nil {
			return errors.New(err)
		}
	}
	return nil
}

// SetUpScale enlarges images smaller than the viewport.
func SetUpScale(upScale bool) Option {
	return OptFunc(func(st *State) error { st.upScale = upScale; return nil })
}

// SetLowPower prefers backends and adapters with low power consumption.
func SetLowPower(lowPower bool) Option {
	return OptFunc(func(st *State) error { st.lowPower = lowPower; return nil })
}

// SetBackend selects the window backend by name. Empty selects automatically.
func SetBackend(name string) Option {
	return OptFunc(func(st *State) error { st.backendName = name; return nil })
}

// SetResizer sets the resampler, either by its registered name (string) or
// as resize.Resizer.
func SetResizer(rsz any) Option {
	return OptFunc(func(st *State) error {
		switch r := rsz.(type) {
		case nil:
		case string:
			if len(r) == 0 {
				return nil
			}
			impl, err := resize.ByName(r)
			if err != nil {
				return err
			}
			st.resizerName, st.resizer = r, impl
		case resize.Resizer:
			st.resizerName, st.resizer = ``, r
		default:
			return errors.Errorf(`unsupported resizer type %T`, rsz)
		}
		return nil
	})
}

// SetQuiescence sets the time without resize notifications after which a
// resize burst counts as settled.
func SetQuiescence(d time.Duration) Option {
	return OptFunc(func(st *State) error {
		if d < 0 {
			return errors.Errorf(`negative debounce window %v`, d)
		}
		st.quiescence = d
		if st.debouncer != nil && !st.debouncer.Pending() {
			st.debouncer = debounce.New(d)
		}
		return nil
	})
}

// SetFallbackSize sets the viewport used when no display is detected.
func SetFallbackSize(size image.Point) Option {
	return OptFunc(func(st *State) error {
		if size.X < 1 || size.Y < 1 {
			return errors.Errorf(`invalid fallback size %dx%d`, size.X, size.Y)
		}
		st.fallbackSize = size
		return nil
	})
}

// SetScreenPercent sets the share of the monitor used for the initial viewport.
func SetScreenPercent(percent int) Option {
	return OptFunc(func(st *State) error {
		if percent < 1 || percent > 100 {
			return errors.Errorf(`screen percentage %d out of range 1..100`, percent)
		}
		st.screenPercent = percent
		return nil
	})
}

func SetTitle(title string) Option {
	return OptFunc(func(st *State) error { st.title = title; return nil })
}

func SetRedrawErrorPolicy(p RedrawErrorPolicy) Option {
	return OptFunc(func(st *State) error {
		switch p {
		case RedrawFatal, RedrawSkip:
			st.errPolicy = p
			return nil
		}
		return errors.Errorf(`unknown redraw error policy %d`, p)
	})
}

func SetSLogger(h slog.Handler, enable bool) Option {
	return OptFunc(func(st *State) error {
		if enable {
			if h == nil {
				st.logger = slog.Default()
			} else {
				st.logger = slog.New(h)
			}
		} else {
			st.logger = nil
		}
		return nil
	})
}

// SetClock replaces time.Now for the debouncer.
func SetClock(now func() time.Time) Option {
	return OptFunc(func(st *State) error {
		if now == nil {
			return errors.NilParam()
		}
		st.now = now
		return nil
	})
}

// SetWindow uses an already open window instead of opening one on a backend.
func SetWindow(w wm.Window) Option {
	return OptFunc(func(st *State) error { st.window = w; return nil })
}

// RedrawErrorPolicy decides what a failed redraw does to the event loop.
type RedrawErrorPolicy int

const (
	// RedrawFatal stops the event loop with the error.
	RedrawFatal RedrawErrorPolicy = iota
	// RedrawSkip logs the error and keeps running until
	// consts.MaxConsecutiveRedrawErrors redraws failed in a row.
	RedrawSkip
)

func (p RedrawErrorPolicy) String() string {
	switch p {
	case RedrawFatal:
		return `fatal`
	case RedrawSkip:
		return `skip`
	default:
		return `unknown`
	}
}

func ParseRedrawErrorPolicy(s string) (RedrawErrorPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case `fatal`, ``:
		return RedrawFatal, nil
	case `skip`:
		return RedrawSkip, nil
	}
	return RedrawFatal, errors.Errorf(`unknown redraw error policy %q (fatal, skip)`, s)
}
