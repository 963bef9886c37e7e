package store

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/MKhiriev/pulse-auth/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	usersTable = "users"

	columnUserID         = "user_id"
	columnUsername       = "username"
	columnEmail          = "email"
	columnFullName       = "full_name"
	columnHashedPassword = "hashed_password"
	columnDisabled       = "disabled"
	columnCreatedAt      = "created_at"

	// constraint names declared in migrations/00001_create_users.sql
	constraintUsernameUnique = "users_username_key"
	constraintEmailUnique    = "users_email_key"
)

// userColumns is the column order every user query returns and every scan
// expects.
var userColumns = []string{
	columnUserID,
	columnUsername,
	columnEmail,
	columnFullName,
	columnHashedPassword,
	columnDisabled,
	columnCreatedAt,
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildInsertUserQuery builds a single-statement INSERT ... RETURNING so the
// uniqueness check and the write happen atomically in the database.
func buildInsertUserQuery(user models.User) (string, []any, error) {
	query, args, err := psql.
		Insert(usersTable).
		Columns(columnUsername, columnEmail, columnFullName, columnHashedPassword, columnDisabled).
		Values(user.Username, user.Email, nullString(user.FullName), user.HashedPassword, user.Disabled).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildSelectUserByQuery builds a lookup of one user by an equality on column.
func buildSelectUserByQuery(column, value string) (string, []any, error) {
	query, args, err := psql.
		Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{column: value}).
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
