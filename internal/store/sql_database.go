package store

import (
	"database/sql"

	"github.com/MKhiriev/pulse-auth/internal/logger"
	"github.com/MKhiriev/pulse-auth/migrations"
)

// DB is the process-wide database handle. It is opened once at startup,
// passed to repositories by reference and closed at shutdown.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies pending schema migrations. It is idempotent and creates the
// unique constraints on username and email that the user store relies on.
func (db *DB) Migrate() error {
	if db == nil || db.DB == nil {
		return errNilDB
	}

	return migrations.Migrate(db.DB)
}

// Close releases the connection pool.
func (db *DB) Close() error {
	if db == nil || db.DB == nil {
		return nil
	}

	db.logger.Info().Msg("closing database connection")
	return db.DB.Close()
}
