package utils

import "errors"

var (
	// ErrInvalidToken is returned when a bearer token is malformed, carries a
	// bad signature, was signed with an unexpected algorithm or has expired.
	ErrInvalidToken = errors.New("invalid token")

	// ErrMissingSubject is returned when a token verifies but carries no
	// "sub" claim.
	ErrMissingSubject = errors.New("token has no subject")

	// ErrInvalidAuthorizationHeader is returned when the Authorization header
	// is missing or does not use the Bearer scheme.
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")

	// ErrInvalidTokenParams is returned when a token is requested with an
	// empty subject, an empty sign key or a zero duration.
	ErrInvalidTokenParams = errors.New("invalid params for generating JWT token")

	// ErrPasswordHasherUnavailable is returned by NewPasswordHasher when the
	// hashing algorithm cannot be used with the requested parameters.
	ErrPasswordHasherUnavailable = errors.New("password hasher unavailable")
)
