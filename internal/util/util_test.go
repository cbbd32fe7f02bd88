package util

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSize(t *testing.T) {
	for in, want := range map[string]image.Point{
		`1920x1080`:  {1920, 1080},
		` 4000X3000`: {4000, 3000},
		`1x1`:        {1, 1},
	} {
		got, err := ParseSize(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	for _, in := range []string{``, `1920`, `0x10`, `10x0`, `-1x5`, `axb`, `1x2x3`, `99999999999x1`} {
		_, err := ParseSize(in)
		assert.Error(t, err, in)
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1, Clamp(-5, 1, 100))
	assert.Equal(t, 100, Clamp(150, 1, 100))
	assert.Equal(t, 42, Clamp(42, 1, 100))
}

func TestMapsKeysSorted(t *testing.T) {
	assert.Equal(t, []string{`a`, `b`, `c`}, MapsKeysSorted(map[string]int{`c`: 1, `a`: 2, `b`: 3}))
	assert.Nil(t, MapsKeysSorted[map[string]int](nil))
}
