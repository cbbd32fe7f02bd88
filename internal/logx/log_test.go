package logx_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/riv/internal/errors"
	"github.com/srlehn/riv/internal/logx"
)

func records(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var recs []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if len(line) == 0 {
			continue
		}
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		recs = append(recs, rec)
	}
	return recs
}

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	prov := logx.Prov(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})))

	logx.Debug(`debug`, prov)
	logx.Info(`info`, prov)
	logx.Warn(`warn`, prov, `k`, 1)
	logx.Error(`metrics server`, prov, `error`, `listener closed`)

	recs := records(t, &buf)
	require.Len(t, recs, 2)
	assert.Equal(t, `WARN`, recs[0][slog.LevelKey])
	assert.Equal(t, `ERROR`, recs[1][slog.LevelKey])
	assert.Equal(t, `metrics server`, recs[1][slog.MessageKey])
	assert.Equal(t, `listener closed`, recs[1][`error`])
}

func TestNilProvider(t *testing.T) {
	assert.NotPanics(t, func() {
		logx.Error(`x`, nil)
		logx.Error(`x`, logx.Prov(nil))
		assert.True(t, logx.IsErr(errors.New(`x`), logx.Prov(nil), slog.LevelError))
	})
}

func TestIsErr(t *testing.T) {
	var buf bytes.Buffer
	prov := logx.Prov(slog.New(slog.NewJSONHandler(&buf, nil)))

	assert.False(t, logx.IsErr(nil, prov, slog.LevelError))
	assert.True(t, logx.IsErr(fmt.Errorf(`%w; %w`, errors.New(`a`), errors.New(`b`)), prov, slog.LevelWarn))

	recs := records(t, &buf)
	require.Len(t, recs, 2)
	assert.Contains(t, recs[0][slog.MessageKey], `a`)
	assert.Contains(t, recs[1][slog.MessageKey], `b`)
}
