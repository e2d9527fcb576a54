package models

// UnknownUserID is returned alongside an error when a username cannot be
// resolved to a stored user.
const UnknownUserID int64 = -1

// User represents an account able to log in and own products.
type User struct {
	// UserID is the surrogate key generated on insert.
	UserID int64 `json:"-"`

	// Login is the unique username. Matching is exact and case-sensitive.
	Login string `json:"login"`

	// Password holds the plain-text password on its way in from the UI.
	// It is never persisted; only PasswordHash reaches the database.
	Password string `json:"-"`

	// PasswordHash is the bcrypt hash stored in the users table.
	PasswordHash string `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
