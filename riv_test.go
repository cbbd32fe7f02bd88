package riv_test

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/riv"
	"github.com/srlehn/riv/internal/errors"
	"github.com/srlehn/riv/internal/testutil"
	"github.com/srlehn/riv/viewer"
	"github.com/srlehn/riv/wm"
)

func TestShowBytes(t *testing.T) {
	win := testutil.NewWindow(testutil.NewClock(), image.Pt(64, 64),
		testutil.ScriptedEvent{At: 0, Event: wm.EventKey{Key: wm.KeyQuit}},
	)
	data := testutil.PNG(t, testutil.Gradient(image.Pt(128, 32)))
	require.NoError(t, riv.ShowBytes(data, viewer.SetWindow(win), viewer.SetClock(win.Clock.Now)))

	require.Len(t, win.Presents, 1)
	assert.Equal(t, image.Pt(64, 16), win.Presents[0].Size)
	assert.True(t, win.Closed)
}

func TestShowDecodeError(t *testing.T) {
	p := testutil.WriteFile(t, `notes.png`, []byte(`not an image`))
	err := riv.Show(p)
	assert.True(t, errors.Is(err, viewer.ErrImageDecode))

	err = riv.ShowBytes(nil)
	assert.True(t, errors.Is(err, viewer.ErrImageDecode))
}
