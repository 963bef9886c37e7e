package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/pulse-auth/internal/config"
	"github.com/MKhiriev/pulse-auth/internal/logger"
	"github.com/MKhiriev/pulse-auth/internal/mock"
	"github.com/MKhiriev/pulse-auth/internal/store"
	"github.com/MKhiriev/pulse-auth/internal/utils"
	"github.com/MKhiriev/pulse-auth/internal/validators"
	"github.com/MKhiriev/pulse-auth/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testSignKey   = "test-sign-key"
	testIssuer    = "pulse-auth"
	testDummyHash = "$2a$04$dummy"
)

func testAppConfig() config.App {
	return config.App{
		TokenSignKey:  testSignKey,
		TokenIssuer:   testIssuer,
		TokenDuration: 30 * time.Minute,
	}
}

// newTestAuthSvc builds an authService wired to gomock collaborators.
func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (*authService, *mock.MockUserRepository, *mock.MockPasswordHasher) {
	t.Helper()

	repo := mock.NewMockUserRepository(ctrl)
	hasher := mock.NewMockPasswordHasher(ctrl)
	hasher.EXPECT().Hash(dummyPassword).Return(testDummyHash, nil)

	svc, err := NewAuthService(repo, hasher, validators.NewUserValidator(), testAppConfig(), logger.Nop())
	require.NoError(t, err)

	return svc.(*authService), repo, hasher
}

// ── NewAuthService ───────────────────────────────────────────────────────────

func TestNewAuthService_HasherFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	hasher := mock.NewMockPasswordHasher(ctrl)
	hasher.EXPECT().Hash(dummyPassword).Return("", errors.New("algorithm unavailable"))

	svc, err := NewAuthService(mock.NewMockUserRepository(ctrl), hasher, validators.NewUserValidator(), testAppConfig(), logger.Nop())

	assert.Nil(t, svc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "algorithm unavailable")
}

// ── Signup ───────────────────────────────────────────────────────────────────

func TestAuthService_Signup_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	fullName := "Alice Smith"
	gomock.InOrder(
		repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(models.User{}, store.ErrUserNotFound),
		repo.EXPECT().FindUserByEmail(gomock.Any(), "alice@example.com").Return(models.User{}, store.ErrUserNotFound),
		hasher.EXPECT().Hash("pw123").Return("hashed-pw", nil),
		repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u models.User) (models.User, error) {
				assert.Equal(t, "alice", u.Username)
				assert.Equal(t, "alice@example.com", u.Email)
				assert.Equal(t, "hashed-pw", u.HashedPassword)
				require.NotNil(t, u.FullName)
				assert.Equal(t, fullName, *u.FullName)
				assert.False(t, u.Disabled)
				u.UserID = 1
				return u, nil
			},
		),
	)

	resp, err := svc.Signup(ctx, models.SignupRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "pw123",
		FullName: &fullName,
	})

	require.NoError(t, err)
	assert.Equal(t, models.SignupResponse{Message: "User created successfully", Username: "alice"}, resp)
}

func TestAuthService_Signup_NormalisesInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher := newTestAuthSvc(t, ctrl)

	repo.EXPECT().FindUserByUsername(gomock.Any(), "Alice").Return(models.User{}, store.ErrUserNotFound)
	repo.EXPECT().FindUserByEmail(gomock.Any(), "alice@example.com").Return(models.User{}, store.ErrUserNotFound)
	hasher.EXPECT().Hash("pw123").Return("h", nil)
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, "Alice", u.Username, "username keeps its case")
			assert.Equal(t, "alice@example.com", u.Email)
			return u, nil
		},
	)

	resp, err := svc.Signup(context.Background(), models.SignupRequest{
		Username: "  Alice ",
		Email:    "  Alice@Example.COM",
		Password: "pw123",
	})

	require.NoError(t, err)
	assert.Equal(t, "Alice", resp.Username)
}

func TestAuthService_Signup_UsernameTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestAuthSvc(t, ctrl)

	repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(models.User{Username: "alice"}, nil)

	_, err := svc.Signup(context.Background(), models.SignupRequest{
		Username: "alice",
		Email:    "new@example.com",
		Password: "pw123",
	})

	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestAuthService_Signup_EmailTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestAuthSvc(t, ctrl)

	repo.EXPECT().FindUserByUsername(gomock.Any(), "bob").Return(models.User{}, store.ErrUserNotFound)
	repo.EXPECT().FindUserByEmail(gomock.Any(), "a@x.com").Return(models.User{Username: "alice"}, nil)

	_, err := svc.Signup(context.Background(), models.SignupRequest{
		Username: "bob",
		Email:    "a@x.com",
		Password: "pw123",
	})

	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthService_Signup_RaceLostAtInsert(t *testing.T) {
	tests := []struct {
		name     string
		storeErr error
		want     error
	}{
		{name: "username", storeErr: store.ErrUsernameTaken, want: ErrUsernameTaken},
		{name: "email", storeErr: store.ErrEmailTaken, want: ErrEmailTaken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, repo, hasher := newTestAuthSvc(t, ctrl)

			repo.EXPECT().FindUserByUsername(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrUserNotFound)
			repo.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrUserNotFound)
			hasher.EXPECT().Hash(gomock.Any()).Return("h", nil)
			repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, tt.storeErr)

			_, err := svc.Signup(context.Background(), models.SignupRequest{
				Username: "alice",
				Email:    "a@x.com",
				Password: "pw123",
			})

			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestAuthService_Signup_InvalidData(t *testing.T) {
	tests := []struct {
		name string
		req  models.SignupRequest
		want error
	}{
		{name: "empty username", req: models.SignupRequest{Username: " ", Email: "a@x.com", Password: "pw"}, want: validators.ErrEmptyUsername},
		{name: "bad email", req: models.SignupRequest{Username: "alice", Email: "not-an-email", Password: "pw"}, want: validators.ErrInvalidEmail},
		{name: "empty password", req: models.SignupRequest{Username: "alice", Email: "a@x.com"}, want: validators.ErrEmptyPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _, _ := newTestAuthSvc(t, ctrl)

			_, err := svc.Signup(context.Background(), tt.req)

			assert.ErrorIs(t, err, ErrInvalidDataProvided)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestAuthService_Signup_StoreUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestAuthSvc(t, ctrl)

	repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(models.User{}, store.ErrStoreUnavailable)

	_, err := svc.Signup(context.Background(), models.SignupRequest{
		Username: "alice",
		Email:    "a@x.com",
		Password: "pw123",
	})

	assert.ErrorIs(t, err, store.ErrStoreUnavailable)
	assert.NotErrorIs(t, err, ErrUsernameTaken)
}

func TestAuthService_Signup_HashError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher := newTestAuthSvc(t, ctrl)

	repo.EXPECT().FindUserByUsername(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrUserNotFound)
	repo.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrUserNotFound)
	hasher.EXPECT().Hash("pw123").Return("", errors.New("hash failed"))

	_, err := svc.Signup(context.Background(), models.SignupRequest{
		Username: "alice",
		Email:    "a@x.com",
		Password: "pw123",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "hash failed")
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher := newTestAuthSvc(t, ctrl)

	repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").
		Return(models.User{Username: "alice", HashedPassword: "stored-hash"}, nil)
	hasher.EXPECT().Verify("pw123", "stored-hash").Return(true)

	resp, err := svc.Login(context.Background(), models.LoginRequest{Username: "alice", Password: "pw123"})
	require.NoError(t, err)

	assert.Equal(t, "bearer", resp.TokenType)
	token, err := utils.ValidateAndParseJWTToken(resp.AccessToken, testSignKey, testIssuer)
	require.NoError(t, err)
	assert.Equal(t, "alice", token.Username)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), token.ExpiresAt.Time, 5*time.Second)
}

func TestAuthService_Login_WrongPasswordAndUnknownUserLookAlike(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").
		Return(models.User{Username: "alice", HashedPassword: "stored-hash"}, nil)
	hasher.EXPECT().Verify("wrong", "stored-hash").Return(false)

	repo.EXPECT().FindUserByUsername(gomock.Any(), "ghost").
		Return(models.User{}, store.ErrUserNotFound)
	// the dummy comparison keeps timing similar
	hasher.EXPECT().Verify("wrong", testDummyHash).Return(false)

	_, errWrongPassword := svc.Login(ctx, models.LoginRequest{Username: "alice", Password: "wrong"})
	_, errUnknownUser := svc.Login(ctx, models.LoginRequest{Username: "ghost", Password: "wrong"})

	assert.ErrorIs(t, errWrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, errUnknownUser, ErrInvalidCredentials)
	assert.Equal(t, errWrongPassword.Error(), errUnknownUser.Error())
}

func TestAuthService_Login_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestAuthSvc(t, ctrl)

	repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(models.User{}, store.ErrStoreUnavailable)

	_, err := svc.Login(context.Background(), models.LoginRequest{Username: "alice", Password: "pw"})

	assert.ErrorIs(t, err, store.ErrStoreUnavailable)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_InvalidData(t *testing.T) {
	tests := []struct {
		name string
		req  models.LoginRequest
	}{
		{name: "empty username", req: models.LoginRequest{Password: "pw"}},
		{name: "empty password", req: models.LoginRequest{Username: "alice"}},
		{name: "unsupported grant", req: models.LoginRequest{Username: "alice", Password: "pw", GrantType: "client_credentials"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _, _ := newTestAuthSvc(t, ctrl)

			_, err := svc.Login(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

// ── VerifyToken / LoadActiveUser / ResolveCurrentUser ───────────────────────

func TestAuthService_VerifyToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	valid, err := utils.GenerateJWTToken(testIssuer, "alice", time.Minute, testSignKey)
	require.NoError(t, err)
	expired, err := utils.GenerateJWTToken(testIssuer, "alice", -time.Minute, testSignKey)
	require.NoError(t, err)
	foreign, err := utils.GenerateJWTToken(testIssuer, "alice", time.Minute, "other-key")
	require.NoError(t, err)
	otherIssuer, err := utils.GenerateJWTToken("someone-else", "alice", time.Minute, testSignKey)
	require.NoError(t, err)

	subject, err := svc.VerifyToken(ctx, valid.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "alice", subject)

	for name, token := range map[string]string{
		"expired":      expired.SignedString,
		"foreign key":  foreign.SignedString,
		"other issuer": otherIssuer.SignedString,
		"garbage":      "not-a-token",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.VerifyToken(ctx, token)
			assert.ErrorIs(t, err, ErrUnauthenticated)
		})
	}
}

func TestAuthService_LoadActiveUser(t *testing.T) {
	fullName := "Alice"

	tests := []struct {
		name     string
		found    models.User
		storeErr error
		want     models.PublicUser
		wantErr  error
	}{
		{
			name:  "active",
			found: models.User{Username: "alice", Email: "a@x.com", FullName: &fullName, HashedPassword: "h"},
			want:  models.PublicUser{Username: "alice", Email: "a@x.com", FullName: &fullName},
		},
		{name: "missing", storeErr: store.ErrUserNotFound, wantErr: ErrUnauthenticated},
		{name: "disabled", found: models.User{Username: "alice", Disabled: true}, wantErr: ErrInactiveUser},
		{name: "store down", storeErr: store.ErrStoreUnavailable, wantErr: store.ErrStoreUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, repo, _ := newTestAuthSvc(t, ctrl)

			repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(tt.found, tt.storeErr)

			got, err := svc.LoadActiveUser(context.Background(), "alice")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAuthService_ResolveCurrentUser_InvalidTokenSkipsStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestAuthSvc(t, ctrl)

	// no repository expectations: a rejected token must not reach the store
	_, err := svc.ResolveCurrentUser(context.Background(), "garbage")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestAuthService_ResolveCurrentUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestAuthSvc(t, ctrl)

	token, err := utils.GenerateJWTToken(testIssuer, "alice", time.Minute, testSignKey)
	require.NoError(t, err)

	repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").
		Return(models.User{Username: "alice", Email: "a@x.com"}, nil)

	user, err := svc.ResolveCurrentUser(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, models.PublicUser{Username: "alice", Email: "a@x.com"}, user)
}
