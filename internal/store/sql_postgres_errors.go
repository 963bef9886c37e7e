package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// classifyError maps a driver error to a store sentinel.
//
//   - sql.ErrNoRows                          → [ErrUserNotFound]
//   - unique_violation on users_username_key → [ErrUsernameTaken]
//   - unique_violation on users_email_key    → [ErrEmailTaken]
//   - connection failures, class 08, 57P03   → [ErrStoreUnavailable]
//   - anything else                          → wrapped [ErrUnexpectedDB]
//
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
func classifyError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return ErrUserNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return classifyPgError(pgErr)
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) || pgconn.Timeout(err) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return fmt.Errorf("%w: %w", ErrUnexpectedDB, err)
}

func classifyPgError(pgErr *pgconn.PgError) error {
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		switch pgErr.ConstraintName {
		case constraintUsernameUnique:
			return ErrUsernameTaken
		case constraintEmailUnique:
			return ErrEmailTaken
		}
		return fmt.Errorf("%w: unique violation on %q: %w", ErrUnexpectedDB, pgErr.ConstraintName, pgErr)

	// Class 08 covers connection exceptions, class 57 operator intervention
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		pgerrcode.SQLClientUnableToEstablishSQLConnection,
		pgerrcode.SQLServerRejectedEstablishmentOfSQLConnection,
		pgerrcode.CannotConnectNow,
		pgerrcode.AdminShutdown:
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, pgErr)
	}

	return fmt.Errorf("%w: %w", ErrUnexpectedDB, pgErr)
}
