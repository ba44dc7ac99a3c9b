package models

// User represents an account record as stored in the database.
// PasswordHash holds a bcrypt digest and must never cross a trust boundary;
// use [NewUserResponse] when returning a user to a caller.
type User struct {
	// UserID is the server-assigned unique identifier.
	UserID int64 `json:"-"`

	// Name is the unique display name used for authentication.
	Name string `json:"name"`

	// Email is the unique contact address of the account.
	Email string `json:"email"`

	// PasswordHash is the bcrypt digest of the account password.
	// Excluded from JSON serialization.
	PasswordHash string `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
