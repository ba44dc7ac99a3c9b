package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ymatsuda/go-api-sample/internal/logger"
	"github.com/ymatsuda/go-api-sample/models"
)

func TestCalcService_Greet(t *testing.T) {
	svc := NewCalcService(logger.Nop())

	got := svc.Greet(context.Background())

	assert.Equal(t, models.GreetingResponse{Message: "Hello, World!"}, got)
}

func TestCalcService_Greet_Idempotent(t *testing.T) {
	svc := NewCalcService(logger.Nop())

	first := svc.Greet(context.Background())
	second := svc.Greet(context.Background())

	assert.Equal(t, first, second)
}

func TestCalcService_Add(t *testing.T) {
	tests := []struct {
		name        string
		a, b        float64
		wantResult  float64
		wantMessage string
	}{
		{
			name:        "integers",
			a:           5,
			b:           3,
			wantResult:  8,
			wantMessage: "5 + 3 = 8",
		},
		{
			name:        "decimals",
			a:           10.5,
			b:           20.3,
			wantResult:  30.8,
			wantMessage: "10.5 + 20.3 = 30.8",
		},
		{
			name:        "zeros",
			a:           0,
			b:           0,
			wantResult:  0,
			wantMessage: "0 + 0 = 0",
		},
		{
			name:        "negative operand",
			a:           -2.5,
			b:           1,
			wantResult:  -1.5,
			wantMessage: "-2.5 + 1 = -1.5",
		},
	}

	svc := NewCalcService(logger.Nop())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.Add(context.Background(), models.AddRequest{A: tt.a, B: tt.b})

			assert.Equal(t, tt.a, got.A)
			assert.Equal(t, tt.b, got.B)
			assert.InDelta(t, tt.wantResult, got.Result, 1e-9)
			assert.Equal(t, tt.wantMessage, got.Message)
		})
	}
}
