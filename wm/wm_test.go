package wm_test

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/riv/internal/consts"
	"github.com/srlehn/riv/internal/errors"
	"github.com/srlehn/riv/wm"
)

type fakeBackend struct {
	name      string
	available bool
	lowPower  bool
}

func (b *fakeBackend) Name() string                     { return b.name }
func (b *fakeBackend) Available() bool                  { return b.available }
func (b *fakeBackend) LowPower() bool                   { return b.lowPower }
func (b *fakeBackend) ScreenSize() (image.Point, error) { return image.Pt(1920, 1080), nil }
func (b *fakeBackend) Open(wm.Config) (wm.Window, error) {
	return nil, errors.New(consts.ErrNotImplemented)
}

func TestSelect(t *testing.T) {
	gpu := &fakeBackend{name: `test-gpu`, available: true}
	soft := &fakeBackend{name: `test-soft`, available: true, lowPower: true}
	gone := &fakeBackend{name: `test-gone`}
	wm.Register(gone, gpu, soft, nil)

	b, err := wm.Select(``, false)
	require.NoError(t, err)
	assert.Equal(t, gpu, b)

	b, err = wm.Select(``, true)
	require.NoError(t, err)
	assert.Equal(t, soft, b)

	b, err = wm.Select(`test-soft`, false)
	require.NoError(t, err)
	assert.Equal(t, soft, b)

	_, err = wm.Select(`test-gone`, false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, consts.ErrPresentationInit))

	_, err = wm.Select(`no-such-backend`, false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, consts.ErrPresentationInit))

	names := wm.Names()
	assert.Subset(t, names, []string{`test-gpu`, `test-soft`, `test-gone`})
	assert.IsIncreasing(t, names)

	// replacing by name
	wm.Register(&fakeBackend{name: `test-gone`, available: true})
	b, err = wm.Select(`test-gone`, false)
	require.NoError(t, err)
	assert.True(t, b.Available())
	assert.Equal(t, len(names), len(wm.Names()))
}

func TestKeyFromRune(t *testing.T) {
	tests := []struct {
		r    rune
		want wm.Key
	}{
		{'q', wm.KeyQuit},
		{0x1b, wm.KeyQuit},
		{'r', wm.KeyRedraw},
		{'U', wm.KeyToggleUpScale},
		{'x', wm.KeyUnknown},
		{' ', wm.KeyUnknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, wm.KeyFromRune(tt.r), "%q", tt.r)
	}
	assert.Equal(t, `redraw`, wm.KeyRedraw.String())
	assert.Equal(t, `unknown`, wm.Key(42).String())
}
