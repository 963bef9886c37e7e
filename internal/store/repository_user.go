package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/MKhiriev/pulse-auth/internal/logger"
	"github.com/MKhiriev/pulse-auth/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
//
// All methods obtain a context-scoped logger via [logger.FromContext] so
// database failures are logged with the request trace id.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record with a single INSERT ... RETURNING.
//
// Error handling:
//   - unique_violation on users_username_key → [ErrUsernameTaken].
//   - unique_violation on users_email_key → [ErrEmailTaken].
//   - connection failures → [ErrStoreUnavailable].
//   - anything else → wrapped [ErrUnexpectedDB].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertUserQuery(user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building query")
		return models.User{}, err
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, classifyError(err)
	}

	created, err := scanUser(row)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error scanning inserted user")
		return models.User{}, classifyError(err)
	}

	return created, nil
}

// FindUserByUsername performs an exact, case-sensitive match on username.
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findUserBy(ctx, "*userRepository.FindUserByUsername", columnUsername, username)
}

// FindUserByEmail matches on email as stored. Callers normalise the email
// before both writing and looking it up.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUserBy(ctx, "*userRepository.FindUserByEmail", columnEmail, email)
}

func (r *userRepository) findUserBy(ctx context.Context, funcName, column, value string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserByQuery(column, value)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error building query")
		return models.User{}, err
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error querying user")
		return models.User{}, classifyError(err)
	}

	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug().Str("func", funcName).Str(column, value).Msg("no user was found")
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", funcName).Msg("error scanning user")
		return models.User{}, classifyError(err)
	}

	return user, nil
}

// scanUser reads one row laid out as [userColumns].
func scanUser(row *sql.Row) (models.User, error) {
	var (
		user     models.User
		fullName sql.NullString
	)

	err := row.Scan(
		&user.UserID,
		&user.Username,
		&user.Email,
		&fullName,
		&user.HashedPassword,
		&user.Disabled,
		&user.CreatedAt,
	)
	if err != nil {
		return models.User{}, err
	}

	if fullName.Valid {
		user.FullName = &fullName.String
	}

	return user, nil
}
