package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrUsernameTaken = errors.New("username already registered")
	ErrEmailTaken    = errors.New("email already registered")

	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("incorrect username or password")

	// ErrUnauthenticated covers a missing, invalid or expired token as well as
	// a token whose subject no longer exists.
	ErrUnauthenticated = errors.New("could not validate credentials")

	// ErrInactiveUser is returned for a valid token of a disabled account.
	ErrInactiveUser = errors.New("inactive user")

	ErrTokenCreationFailed   = errors.New("token creation failed")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
