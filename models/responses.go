package models

// UserResponse is the public projection of a [User].
// The password hash is deliberately absent.
type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// NewUserResponse converts a stored user into its public representation.
func NewUserResponse(u User) UserResponse {
	return UserResponse{
		ID:    u.UserID,
		Name:  u.Name,
		Email: u.Email,
	}
}

// TokenResponse is returned by the login endpoint.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// ErrorResponse is the body of non-validation client errors
// (duplicates, missing records, bad credentials).
type ErrorResponse struct {
	Detail string `json:"detail"`
}
