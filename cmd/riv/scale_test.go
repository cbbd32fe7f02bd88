package main

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScale(t *testing.T) {
	tests := []struct {
		args    []string
		upScale bool
		want    string
	}{
		{[]string{`4000x3000`, `1920x1080`}, false, "1440x1080 2.7777777777777777\n"},
		{[]string{`100x100`, `1920x1080`}, false, "100x100 1\n"},
		{[]string{`100x100`, `1920x1080`}, true, "1080x1080 0.09259259259259259\n"},
	}
	defer func(v bool) { upScaleFlag = v }(upScaleFlag)
	for _, tt := range tests {
		upScaleFlag = tt.upScale
		var out bytes.Buffer
		cmd := &cobra.Command{}
		cmd.SetOut(&out)
		require.NoError(t, scaleFunc(cmd, tt.args)())
		assert.Equal(t, tt.want, out.String(), tt.args)
	}
}

func TestScaleUsage(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})
	for _, args := range [][]string{
		{`4000x3000`},
		{`4000`, `1920x1080`},
		{`4000x3000`, `0x1080`},
	} {
		assert.Error(t, scaleFunc(cmd, args)(), args)
	}
}

func TestList(t *testing.T) {
	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	require.NoError(t, listFunc(cmd, nil)())
	assert.Contains(t, out.String(), `resamplers: `)
	assert.Contains(t, out.String(), `bilinear`)
	assert.Contains(t, out.String(), `png`)
}
