// Package handler aggregates the transport-specific handler
// implementations of the application.
package handler

import (
	httphandler "github.com/ymatsuda/go-api-sample/internal/handler/http"
	"github.com/ymatsuda/go-api-sample/internal/logger"
	"github.com/ymatsuda/go-api-sample/internal/service"
)

// Handlers aggregates all transport handlers.
type Handlers struct {
	HTTP *httphandler.Handler
}

// NewHandlers wires every transport handler on top of the given services.
func NewHandlers(services *service.Services, log *logger.Logger) (*Handlers, error) {
	log.Debug().Msg("creating handlers")

	if services == nil {
		return nil, errNoServicesAreCreated
	}

	return &Handlers{
		HTTP: httphandler.NewHandler(services, log),
	}, nil
}
