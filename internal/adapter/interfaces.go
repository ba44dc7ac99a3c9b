package adapter

import (
	"context"

	"github.com/ymatsuda/go-api-sample/models"
)

// APIClient is the outbound contract to the API server.
type APIClient interface {
	// Greet calls GET / and returns the greeting.
	Greet(ctx context.Context) (models.GreetingResponse, error)

	// Add calls POST /add with the two operands.
	Add(ctx context.Context, a, b float64) (models.AddResponse, error)

	// CreateUser registers an account via POST /api/users/.
	CreateUser(ctx context.Context, in models.UserCreate) (models.UserResponse, error)

	// Login exchanges credentials for a bearer token.
	Login(ctx context.Context, in models.LoginRequest) (models.TokenResponse, error)

	// GetVersion returns the server's reported version string.
	GetVersion(ctx context.Context) (string, error)
}
