package models

import "time"

// User represents a persisted account record.
// HashedPassword must never leave trusted boundaries; use [User.Public] to
// obtain the client-facing view.
type User struct {
	// UserID is the internal surrogate key assigned by the store.
	UserID int64 `json:"-"`

	// Username is unique across all users and immutable after creation.
	Username string `json:"username"`

	// Email is unique across all users and immutable after creation.
	Email string `json:"email"`

	// FullName is optional; nil is rendered as JSON null.
	FullName *string `json:"full_name"`

	// HashedPassword is the self-describing bcrypt hash of the password.
	HashedPassword string `json:"-"`

	// Disabled marks a suspended account. Tokens of disabled users still
	// verify but the account cannot be resolved as the current user.
	Disabled bool `json:"disabled"`

	// CreatedAt is set by the store at insert time.
	CreatedAt time.Time `json:"-"`
}

// Public derives the client-facing view of the user.
func (u User) Public() PublicUser {
	return PublicUser{
		Username: u.Username,
		Email:    u.Email,
		FullName: u.FullName,
		Disabled: u.Disabled,
	}
}

// PublicUser is the user view returned by GET /me. It is derived from [User]
// and never persisted.
type PublicUser struct {
	Username string  `json:"username"`
	Email    string  `json:"email"`
	FullName *string `json:"full_name"`
	Disabled bool    `json:"disabled"`
}
