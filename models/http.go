package models

// UserCreate is the request body for registering a new user.
//
// Constraints are declared via `validate` tags and enforced by the
// validators package before the service layer sees the value.
type UserCreate struct {
	// Name is the display name, 3 to 50 characters.
	Name string `json:"name" validate:"required,min=3,max=50"`

	// Email must be a well-formed address.
	Email string `json:"email" validate:"required,email"`

	// Password is the plain-text password, at least 8 characters.
	// It is hashed before storage and never persisted as-is.
	Password string `json:"password" validate:"required,min=8"`
}

// UserUpdate is the request body for a partial user update.
// Only non-nil fields are applied. Changing the password requires
// CurrentPassword to match the stored credential.
type UserUpdate struct {
	Name            *string `json:"name,omitempty" validate:"omitempty,min=3,max=50"`
	Email           *string `json:"email,omitempty" validate:"omitempty,email"`
	CurrentPassword *string `json:"current_password,omitempty"`
	NewPassword     *string `json:"new_password,omitempty" validate:"omitempty,min=8"`
}

// LoginRequest carries the credentials for token issuance.
type LoginRequest struct {
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required"`
}
