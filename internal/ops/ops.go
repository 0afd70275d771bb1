package ops

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	xclog "github.com/averycrespi/quickchart-mcp/internal/log"
)

// Server exposes operational endpoints (health, metrics) on a side
// listener, separate from the MCP stdio transport.
type Server struct {
	srv *http.Server
}

// New builds the ops server for the given listen address
func New(addr string) *Server {
	return &Server{
		srv: &http.Server{
			Addr:              addr,
			Handler:           newRouter(),
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

func newRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Handle("/metrics", promhttp.Handler())
	return r
}

// Start begins serving in a background goroutine
func (s *Server) Start() {
	log := xclog.WithComponent("ops")
	log.Info().Str("addr", s.srv.Addr).Msg("ops endpoint listening")
	go func() {
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("ops endpoint failed")
		}
	}()
}

// Shutdown stops the listener gracefully
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
