package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/pulse-auth/internal/config"
	"github.com/MKhiriev/pulse-auth/internal/logger"
	"github.com/MKhiriev/pulse-auth/internal/store"
	"github.com/MKhiriev/pulse-auth/internal/utils"
	"github.com/MKhiriev/pulse-auth/internal/validators"
	"github.com/MKhiriev/pulse-auth/models"
)

const (
	signupSuccessMessage = "User created successfully"

	// dummyPassword is hashed once at construction. Its hash is compared
	// against on logins for unknown usernames.
	dummyPassword = "pulse-auth-dummy-password"
)

// authService is the concrete implementation of AuthService.
// It holds no mutable state after construction and is safe for concurrent
// use; every request is handled independently.
type authService struct {
	userRepository store.UserRepository
	hasher         PasswordHasher
	validator      validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string
	// tokenIssuer is the optional "iss" claim. When set, tokens with another
	// issuer are rejected.
	tokenIssuer   string
	tokenDuration time.Duration

	// dummyHash keeps login timing similar for unknown and known usernames.
	dummyHash string

	logger *logger.Logger
}

// NewAuthService constructs an AuthService. It hashes a dummy password once,
// so a broken hasher fails here rather than on the first request.
func NewAuthService(
	userRepository store.UserRepository,
	hasher PasswordHasher,
	validator validators.Validator,
	cfg config.App,
	logger *logger.Logger,
) (AuthService, error) {
	dummyHash, err := hasher.Hash(dummyPassword)
	if err != nil {
		return nil, fmt.Errorf("error preparing password hasher: %w", err)
	}

	logger.Debug().Msg("creating auth service")
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		validator:      validator,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		dummyHash:      dummyHash,
		logger:         logger,
	}, nil
}

// Signup registers a new account.
//
// The username and email pre-checks only produce an early, friendly error.
// Uniqueness itself is guaranteed by the store: if a concurrent signup wins
// the race, CreateUser fails and the same taken error is returned.
//
// Returns:
//   - ErrInvalidDataProvided when the request fails validation.
//   - ErrUsernameTaken / ErrEmailTaken when either is already registered.
//   - A wrapped store error on infrastructure failure.
func (a *authService) Signup(ctx context.Context, req models.SignupRequest) (models.SignupResponse, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Str("func", "*authService.Signup").Msg("invalid signup data provided")
		return models.SignupResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	username := normalizeUsername(req.Username)
	email := normalizeEmail(req.Email)

	// pre-check username, then email
	if err := a.ensureUnused(ctx, a.userRepository.FindUserByUsername, username, ErrUsernameTaken); err != nil {
		return models.SignupResponse{}, err
	}
	if err := a.ensureUnused(ctx, a.userRepository.FindUserByEmail, email, ErrEmailTaken); err != nil {
		return models.SignupResponse{}, err
	}

	hashedPassword, err := a.hasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Str("func", "*authService.Signup").Msg("error hashing password")
		return models.SignupResponse{}, fmt.Errorf("error hashing password: %w", err)
	}

	created, err := a.userRepository.CreateUser(ctx, models.User{
		Username:       username,
		Email:          email,
		FullName:       req.FullName,
		HashedPassword: hashedPassword,
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUsernameTaken):
			log.Info().Str("username", username).Msg("username taken at insert")
			return models.SignupResponse{}, ErrUsernameTaken
		case errors.Is(err, store.ErrEmailTaken):
			log.Info().Str("email", email).Msg("email taken at insert")
			return models.SignupResponse{}, ErrEmailTaken
		}
		log.Err(err).Str("func", "*authService.Signup").Msg("user creation ended with error")
		return models.SignupResponse{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("user_id", created.UserID).Str("username", created.Username).Msg("user created")
	return models.SignupResponse{
		Message:  signupSuccessMessage,
		Username: created.Username,
	}, nil
}

// ensureUnused returns taken when find locates a record, nil when it reports
// store.ErrUserNotFound and a wrapped error otherwise.
func (a *authService) ensureUnused(
	ctx context.Context,
	find func(context.Context, string) (models.User, error),
	value string,
	taken error,
) error {
	_, err := find(ctx, value)
	switch {
	case err == nil:
		return taken
	case errors.Is(err, store.ErrUserNotFound):
		return nil
	default:
		logger.FromContext(ctx).Err(err).Str("func", "*authService.ensureUnused").Msg("user lookup failed")
		return fmt.Errorf("user lookup failed: %w", err)
	}
}

// Login verifies credentials and issues a bearer token for the username.
//
// An unknown username and a wrong password both yield ErrInvalidCredentials.
// For an unknown username the password is still compared against a dummy
// hash so both paths cost one bcrypt comparison.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.TokenResponse, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Str("func", "*authService.Login").Msg("invalid login data provided")
		return models.TokenResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	username := normalizeUsername(req.Username)

	user, err := a.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			a.hasher.Verify(req.Password, a.dummyHash)
			log.Info().Str("username", username).Msg("login for unknown username")
			return models.TokenResponse{}, ErrInvalidCredentials
		}
		log.Err(err).Str("func", "*authService.Login").Msg("user search by username failed")
		return models.TokenResponse{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !a.hasher.Verify(req.Password, user.HashedPassword) {
		log.Info().Str("username", username).Msg("wrong password")
		return models.TokenResponse{}, ErrInvalidCredentials
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.Username, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("error issuing token")
		return models.TokenResponse{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.TokenResponse{
		AccessToken: token.SignedString,
		TokenType:   models.TokenTypeBearer,
	}, nil
}

// VerifyToken checks signature, algorithm, expiration and issuer and returns
// the subject. Every failure is reported as ErrUnauthenticated.
func (a *authService) VerifyToken(ctx context.Context, token string) (string, error) {
	parsed, err := utils.ValidateAndParseJWTToken(token, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*authService.VerifyToken").Msg("token rejected")
		return "", fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}

	return parsed.Username, nil
}

// LoadActiveUser returns ErrUnauthenticated when the user does not exist and
// ErrInactiveUser when the account is disabled.
func (a *authService) LoadActiveUser(ctx context.Context, username string) (models.PublicUser, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Info().Str("username", username).Msg("token subject does not exist")
			return models.PublicUser{}, ErrUnauthenticated
		}
		log.Err(err).Str("func", "*authService.LoadActiveUser").Msg("user search by username failed")
		return models.PublicUser{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if user.Disabled {
		return models.PublicUser{}, ErrInactiveUser
	}

	return user.Public(), nil
}

func (a *authService) ResolveCurrentUser(ctx context.Context, token string) (models.PublicUser, error) {
	username, err := a.VerifyToken(ctx, token)
	if err != nil {
		return models.PublicUser{}, err
	}

	return a.LoadActiveUser(ctx, username)
}

func normalizeUsername(username string) string {
	return strings.TrimSpace(username)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
