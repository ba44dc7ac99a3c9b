package store

import (
	"context"

	"github.com/ymatsuda/go-api-sample/models"
)

// UserRepository is the data-access contract for user accounts.
//
// Implementations translate driver-level failures into the package's
// sentinel errors: unique-constraint violations become
// [ErrUserAlreadyExists] and empty result sets become [ErrNoUserWasFound].
type UserRepository interface {
	// CreateUser persists a new user and returns it with the
	// server-assigned UserID.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// GetUserByID returns the user with the given identifier.
	GetUserByID(ctx context.Context, userID int64) (models.User, error)

	// GetUserByName returns the user with the given unique name.
	GetUserByName(ctx context.Context, name string) (models.User, error)

	// GetUserByEmail returns the user with the given unique email.
	GetUserByEmail(ctx context.Context, email string) (models.User, error)

	// GetAllUsers returns every stored user ordered by id.
	GetAllUsers(ctx context.Context) ([]models.User, error)

	// UpdateUser applies the given column changes to the user with the
	// given id and returns the updated record. An empty change set is
	// rejected by the caller, not here.
	UpdateUser(ctx context.Context, userID int64, changes map[string]any) (models.User, error)

	// DeleteUser removes the user with the given id.
	DeleteUser(ctx context.Context, userID int64) error
}
