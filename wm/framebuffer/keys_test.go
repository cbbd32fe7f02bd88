//go:build linux

package framebuffer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/srlehn/riv/wm"
)

func runeChan(s string) chan rune {
	c := make(chan rune, len(s))
	for _, r := range s {
		c <- r
	}
	return c
}

func TestNextKey(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  wm.Key
	}{
		{`quit`, "q", wm.KeyQuit},
		{`redraw`, "R", wm.KeyRedraw},
		{`lone escape`, "\x1b", wm.KeyQuit},
		{`cursor up`, "\x1b[A", wm.KeyUnknown},
		{`cursor down ss3`, "\x1bOB", wm.KeyUnknown},
		{`function key`, "\x1bOP", wm.KeyUnknown},
		{`F5 with parameter`, "\x1b[15~", wm.KeyUnknown},
		{`shifted arrow`, "\x1b[1;2C", wm.KeyUnknown},
		{`alt key`, "\x1bq", wm.KeyUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keys := runeChan(tt.input)
			first := <-keys
			assert.Equal(t, tt.want, nextKey(first, keys, 10*time.Millisecond))
			assert.Empty(t, keys, `sequence consumed whole`)
		})
	}
}

func TestNextKeyAfterSequence(t *testing.T) {
	keys := runeChan("\x1b[D\x1b[Cu")
	var got []wm.Key
	for len(keys) > 0 {
		got = append(got, nextKey(<-keys, keys, 10*time.Millisecond))
	}
	assert.Equal(t, []wm.Key{wm.KeyUnknown, wm.KeyUnknown, wm.KeyToggleUpScale}, got)
}

func TestNextKeyClosedMidSequence(t *testing.T) {
	keys := runeChan("\x1b[")
	close(keys)
	assert.Equal(t, wm.KeyUnknown, nextKey(<-keys, keys, time.Second))

	keys = make(chan rune)
	close(keys)
	assert.Equal(t, wm.KeyQuit, nextKey(keyEscape, keys, time.Second))
}
