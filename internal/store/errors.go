package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameTaken is returned when an insert violates the unique
	// constraint on users.username.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrEmailTaken is returned when an insert violates the unique
	// constraint on users.email.
	ErrEmailTaken = errors.New("email already exists")

	// ErrUserNotFound is returned when a lookup matches no user record.
	ErrUserNotFound = errors.New("no user was found")

	// ErrStoreUnavailable is returned when the database cannot be reached
	// or refuses connections. Operations are never retried inline.
	ErrStoreUnavailable = errors.New("user store is unavailable")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrUnexpectedDB wraps any driver error that has no domain meaning.
	ErrUnexpectedDB = errors.New("unexpected DB error")

	// errNilDB is returned when a nil connection is handed to the store.
	errNilDB = errors.New("db is nil")
)
