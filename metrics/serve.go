package metrics

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/srlehn/riv/internal/errors"
	"github.com/srlehn/riv/internal/logx"
)

// Server serves the metrics on /metrics.
type Server struct {
	srv *http.Server
	ln  net.Listener
}

// Serve starts listening on addr and serves in the background until Shutdown.
func Serve(addr string, logger *slog.Logger) (*Server, error) {
	ln, err := net.Listen(`tcp`, addr)
	if err != nil {
		return nil, errors.New(err)
	}
	mux := http.NewServeMux()
	mux.Handle(`/metrics`, promhttp.Handler())
	s := &Server{
		srv: &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second},
		ln:  ln,
	}
	go func() {
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logx.Error(`metrics server`, logx.Prov(logger), `error`, err)
		}
	}()
	return s, nil
}

// Addr returns the listening address.
func (s *Server) Addr() string { return s.ln.Addr().String() }

func (s *Server) Shutdown(ctx context.Context) error {
	if s == nil {
		return nil
	}
	if err := s.srv.Shutdown(ctx); err != nil {
		return errors.New(err)
	}
	return nil
}
