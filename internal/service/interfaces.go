package service

import (
	"context"

	"github.com/ymatsuda/go-api-sample/models"
)

// CalcService provides the public arithmetic and greeting operations.
type CalcService interface {
	// Greet returns the canonical greeting message.
	Greet(ctx context.Context) models.GreetingResponse

	// Add sums the two operands and formats the human-readable message.
	Add(ctx context.Context, req models.AddRequest) models.AddResponse
}

// UserService manages user accounts and credentials.
type UserService interface {
	// CreateUser registers a new account. The plain-text password is
	// hashed before storage. Duplicate names and emails are rejected
	// with [ErrNameAlreadyTaken] and [ErrEmailAlreadyTaken].
	CreateUser(ctx context.Context, in models.UserCreate) (models.User, error)

	// GetUser returns the user with the given id or [ErrUserNotFound].
	GetUser(ctx context.Context, userID int64) (models.User, error)

	// GetAllUsers returns every registered user.
	GetAllUsers(ctx context.Context) ([]models.User, error)

	// UpdateUser applies a partial update. Setting a new password
	// requires the current one; see [ErrCurrentPasswordRequired].
	UpdateUser(ctx context.Context, userID int64, in models.UserUpdate) (models.User, error)

	// DeleteUser removes the account with the given id.
	DeleteUser(ctx context.Context, userID int64) error

	// Authenticate verifies the given credentials and returns the
	// matching user, or [ErrWrongPassword] when either the name is
	// unknown or the password does not match.
	Authenticate(ctx context.Context, login models.LoginRequest) (models.User, error)

	// CreateToken issues a signed JWT for the given user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
}

// AppInfoService exposes application metadata.
type AppInfoService interface {
	// GetVersion returns the running application version or
	// [ErrVersionIsNotSpecified] when none was configured.
	GetVersion(ctx context.Context) (string, error)
}
