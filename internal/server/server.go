package server

import (
	"context"
	"fmt"
	"time"

	"github.com/ymatsuda/go-api-sample/internal/config"
	"github.com/ymatsuda/go-api-sample/internal/handler"
	"github.com/ymatsuda/go-api-sample/internal/logger"
)

const shutdownTimeout = 10 * time.Second

// Server runs the application's HTTP listener and coordinates graceful
// shutdown when the given context is cancelled (typically by SIGINT or
// SIGTERM via signal.NotifyContext).
type Server struct {
	http   *httpServer
	logger *logger.Logger
}

// NewServer wires the HTTP listener from configuration and handlers.
func NewServer(cfg *config.StructuredConfig, handlers *handler.Handlers, log *logger.Logger) (*Server, error) {
	log.Debug().Msg("creating server")

	if cfg == nil {
		return nil, errNoConfigProvided
	}
	if handlers == nil || handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return &Server{
		http:   newHTTPServer(cfg.Server, handlers.HTTP.Routes(), log),
		logger: log,
	}, nil
}

// Run serves until ctx is cancelled or the listener fails, then shuts the
// server down gracefully with a bounded grace period.
func (s *Server) Run(ctx context.Context) error {
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.http.run()
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.http.shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("error during server shutdown: %w", err)
	}

	s.logger.Info().Msg("server stopped")

	return nil
}
