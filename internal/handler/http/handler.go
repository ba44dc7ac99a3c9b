// Package http implements the HTTP transport of the application: route
// registration, request decoding and validation, and the translation of
// domain errors into HTTP status codes and response bodies.
package http

import (
	"github.com/ymatsuda/go-api-sample/internal/logger"
	"github.com/ymatsuda/go-api-sample/internal/service"
	"github.com/ymatsuda/go-api-sample/internal/validators"
)

// Handler carries the dependencies shared by all HTTP endpoints.
type Handler struct {
	services  *service.Services
	validator *validators.StructValidator

	// addSchema describes the body of POST /add. It is consulted by the
	// generic schema decoder rather than being hard-coded in the endpoint,
	// so the accepted shape lives in one declarative place.
	addSchema validators.Schema

	logger *logger.Logger
}

// NewHandler constructs the HTTP handler set.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("creating HTTP handler")

	return &Handler{
		services:  services,
		validator: validators.NewStructValidator(),
		addSchema: validators.Schema{
			Location: "body",
			Rules: []validators.Rule{
				{Field: "a", Type: validators.Number, Required: true},
				{Field: "b", Type: validators.Number, Required: true},
			},
		},
		logger: logger,
	}
}
