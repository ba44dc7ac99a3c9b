package service

import (
	"context"
	"fmt"

	"github.com/ymatsuda/go-api-sample/internal/logger"
	"github.com/ymatsuda/go-api-sample/models"
)

const greetingMessage = "Hello, World!"

// calcService implements [CalcService].
type calcService struct {
	logger *logger.Logger
}

// NewCalcService constructs the arithmetic and greeting service.
func NewCalcService(logger *logger.Logger) CalcService {
	logger.Debug().Msg("creating calc service")
	return &calcService{logger: logger}
}

// Greet returns the canonical greeting.
func (s *calcService) Greet(_ context.Context) models.GreetingResponse {
	return models.GreetingResponse{Message: greetingMessage}
}

// Add sums the operands and formats the echo message. Numbers are
// rendered in their shortest decimal form, so "10.5 + 20.3 = 30.8"
// rather than a fixed-precision representation.
func (s *calcService) Add(ctx context.Context, req models.AddRequest) models.AddResponse {
	result := req.A + req.B

	log := logger.FromContext(ctx)
	log.Debug().
		Float64("a", req.A).
		Float64("b", req.B).
		Float64("result", result).
		Msg("computed sum")

	return models.AddResponse{
		A:       req.A,
		B:       req.B,
		Result:  result,
		Message: fmt.Sprintf("%v + %v = %v", req.A, req.B, result),
	}
}
