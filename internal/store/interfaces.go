package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/pulse-auth/models"
)

// UserRepository is the User Store contract.
//
// Uniqueness of username and email is guaranteed by store-level constraints:
// CreateUser is a single atomic insert and reports a lost race as
// [ErrUsernameTaken] or [ErrEmailTaken].
type UserRepository interface {
	// CreateUser inserts user and returns it with store-assigned fields
	// (UserID, CreatedAt) populated.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername returns [ErrUserNotFound] when no record matches.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// FindUserByEmail returns [ErrUserNotFound] when no record matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}
