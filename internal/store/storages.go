package store

import "github.com/MKhiriev/pulse-auth/internal/logger"

// Storages groups every repository backed by the shared [DB] handle.
type Storages struct {
	UserRepository UserRepository
}

func NewStorages(db *DB, logger *logger.Logger) (*Storages, error) {
	if db == nil || db.DB == nil {
		return nil, errNilDB
	}

	return &Storages{
		UserRepository: NewUserRepository(db, logger),
	}, nil
}
