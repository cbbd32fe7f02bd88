//go:build linux

package framebuffer

import (
	"time"

	"github.com/srlehn/riv/wm"
)

const (
	keyEscape = 0x1b
	// escapeWait is how long a terminal may take to send the rest of an
	// escape sequence after its leading ESC.
	escapeWait = 25 * time.Millisecond
)

// nextKey maps the rune first, and for an ESC the runes following it on keys,
// to a Key. A lone ESC quits. Escape sequences of cursor, function and Alt
// keys are consumed whole and yield KeyUnknown.
func nextKey(first rune, keys <-chan rune, wait time.Duration) wm.Key {
	if first != keyEscape {
		return wm.KeyFromRune(first)
	}
	r, ok := recvKey(keys, wait)
	if !ok {
		return wm.KeyQuit
	}
	if r != '[' && r != 'O' {
		// Alt+key
		return wm.KeyUnknown
	}
	// CSI and SS3 sequences end with a byte in 0x40..0x7e
	for {
		r, ok = recvKey(keys, wait)
		if !ok || (r >= 0x40 && r <= 0x7e) {
			return wm.KeyUnknown
		}
	}
}

func recvKey(keys <-chan rune, wait time.Duration) (rune, bool) {
	t := time.NewTimer(wait)
	defer t.Stop()
	select {
	case r, ok := <-keys:
		return r, ok
	case <-t.C:
		return 0, false
	}
}
