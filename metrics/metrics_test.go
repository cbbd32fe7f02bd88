package metrics_test

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/riv/metrics"
)

func TestServe(t *testing.T) {
	srv, err := metrics.Serve(`127.0.0.1:0`, nil)
	require.NoError(t, err)
	defer srv.Shutdown(context.Background())

	before := testutil.ToFloat64(metrics.Redraws.WithLabelValues(metrics.TriggerKey))
	metrics.Redraws.WithLabelValues(metrics.TriggerKey).Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.Redraws.WithLabelValues(metrics.TriggerKey)))

	resp, err := http.Get(`http://` + srv.Addr() + `/metrics`)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `riv_redraw_total{trigger="key"}`)
}
