package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/pulse-auth/models"
)

// PasswordHasher is the Credential Hasher: it produces self-describing salted
// hashes and verifies passwords against them. Verify never fails on a
// malformed hash, it returns false instead.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

// AuthService composes the user store, the password hasher and the token
// issuer into the signup, login and current-user flows.
type AuthService interface {
	Signup(ctx context.Context, req models.SignupRequest) (models.SignupResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (models.TokenResponse, error)

	// VerifyToken returns the subject (username) of a valid token.
	VerifyToken(ctx context.Context, token string) (string, error)
	// LoadActiveUser returns the public view of an existing, enabled user.
	LoadActiveUser(ctx context.Context, username string) (models.PublicUser, error)
	// ResolveCurrentUser is VerifyToken followed by LoadActiveUser.
	ResolveCurrentUser(ctx context.Context, token string) (models.PublicUser, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
