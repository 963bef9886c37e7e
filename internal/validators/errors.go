package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername       = errors.New("username must not be empty")
	ErrUsernameTooLong     = errors.New("username is too long")
	ErrInvalidEmail        = errors.New("email is not a valid email address")
	ErrEmptyPassword       = errors.New("password must not be empty")
	ErrPasswordTooLong     = errors.New("password must be at most 72 bytes")
	ErrUnsupportedGrant    = errors.New("unsupported grant_type")
	ErrFullNameTooLong     = errors.New("full_name is too long")
	ErrInvalidUsernameRune = errors.New("username must not contain whitespace or control characters")
)
