package service

import "errors"

// Domain errors surfaced to the transport layer, which maps them to
// HTTP status codes. Match with [errors.Is].
var (
	// ErrNameAlreadyTaken signals that the requested user name is
	// already registered.
	ErrNameAlreadyTaken = errors.New("name already registered")

	// ErrEmailAlreadyTaken signals that the requested email is
	// already registered.
	ErrEmailAlreadyTaken = errors.New("email already registered")

	// ErrAlreadyRegistered signals a unique violation reported by the
	// database after the pre-checks passed. The driver does not say which
	// column tripped, so the message names both.
	ErrAlreadyRegistered = errors.New("name or email already registered")

	// ErrUserNotFound signals that no user exists with the given id or name.
	ErrUserNotFound = errors.New("user not found")

	// ErrWrongPassword signals a failed credential check, either at login
	// or when confirming the current password during an update.
	ErrWrongPassword = errors.New("incorrect name or password")

	// ErrCurrentPasswordRequired signals a password change request that
	// did not carry the current password for confirmation.
	ErrCurrentPasswordRequired = errors.New("current password is required to set a new password")

	// ErrNoChangesProvided signals an update request with no fields set.
	ErrNoChangesProvided = errors.New("no changes provided")

	// ErrVersionIsNotSpecified signals that the application was started
	// without a version string.
	ErrVersionIsNotSpecified = errors.New("application version is not specified")
)

var errNoStoragesAreCreated = errors.New("no storages are created")
