package wm

import (
	"fmt"
	"image"
)

// Event is one of EventResize, EventCloseRequested, EventKey, EventRedrawRequested.
type Event interface {
	isEvent()
}

// EventResize reports a new viewport size.
type EventResize struct {
	Size image.Point
}

// EventCloseRequested is sent when the user asks to close the window.
type EventCloseRequested struct{}

// EventKey is a key press.
type EventKey struct {
	Key Key
}

// EventRedrawRequested is sent when the windowing system lost the window
// contents (expose, damage).
type EventRedrawRequested struct{}

func (EventResize) isEvent()          {}
func (EventCloseRequested) isEvent()  {}
func (EventKey) isEvent()             {}
func (EventRedrawRequested) isEvent() {}

func (e EventResize) String() string        { return fmt.Sprintf(`resize %dx%d`, e.Size.X, e.Size.Y) }
func (EventCloseRequested) String() string  { return `close requested` }
func (e EventKey) String() string           { return `key ` + e.Key.String() }
func (EventRedrawRequested) String() string { return `redraw requested` }

// Key is a key the viewer reacts to.
type Key int

const (
	KeyUnknown Key = iota
	KeyQuit
	KeyRedraw
	KeyToggleUpScale
)

func (k Key) String() string {
	switch k {
	case KeyQuit:
		return `quit`
	case KeyRedraw:
		return `redraw`
	case KeyToggleUpScale:
		return `toggle-up-scale`
	default:
		return `unknown`
	}
}

// KeyFromRune maps the characters of a key press to a Key:
// q and Escape quit, r redraws, u toggles up-scaling.
func KeyFromRune(r rune) Key {
	switch r {
	case 'q', 'Q', 0x1b:
		return KeyQuit
	case 'r', 'R':
		return KeyRedraw
	case 'u', 'U':
		return KeyToggleUpScale
	default:
		return KeyUnknown
	}
}
