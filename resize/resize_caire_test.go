//go:build caire

package resize_test

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/riv/internal/testutil"
	"github.com/srlehn/riv/resize"

	_ "github.com/srlehn/riv/resize/caire"
)

func TestResampleCaire(t *testing.T) {
	rsz, err := resize.ByName(`caire`)
	require.NoError(t, err)
	m, err := resize.Resample(testutil.Gradient(image.Pt(80, 60)), image.Pt(60, 45), rsz)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(60, 45), m.Bounds().Size())
}
