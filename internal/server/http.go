package server

import (
	"context"
	"net/http"

	"github.com/ymatsuda/go-api-sample/internal/config"
	"github.com/ymatsuda/go-api-sample/internal/logger"
)

// httpServer wraps the standard http.Server with the application's
// configuration and logging.
type httpServer struct {
	server *http.Server
	logger *logger.Logger
}

func newHTTPServer(cfg config.Server, router http.Handler, log *logger.Logger) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:         cfg.HTTPAddress,
			Handler:      router,
			ReadTimeout:  cfg.RequestTimeout,
			WriteTimeout: cfg.RequestTimeout,
		},
		logger: log,
	}
}

// run blocks serving requests until the listener is closed.
func (s *httpServer) run() error {
	s.logger.Info().Str("address", s.server.Addr).Msg("HTTP server listening")

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}

// shutdown stops accepting new connections and waits for in-flight
// requests to finish, bounded by ctx.
func (s *httpServer) shutdown(ctx context.Context) error {
	s.logger.Info().Msg("HTTP server shutting down")
	return s.server.Shutdown(ctx)
}
