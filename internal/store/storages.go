package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-stock-keeper/internal/config"
	"github.com/MKhiriev/go-stock-keeper/internal/logger"
)

// Storages groups all repositories into a single value that can be passed
// around the service layer.
type Storages struct {
	UserRepository    UserRepository
	ProductRepository ProductRepository

	db *DB
}

// NewStorages initialises the storage layer:
//  1. Opens a connection for cfg.DB.Driver, creating the SQLite file if needed.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Builds the repositories on top of the shared connection.
//
// Returns an error if the connection cannot be established or migration fails.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Str("driver", cfg.DB.Driver).Msg("creating new storages...")

	db, err := NewConnect(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("%s connection error: %w", cfg.DB.Driver, err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		UserRepository:    NewUserRepository(db, logger),
		ProductRepository: NewProductRepository(db, logger),
		db:                db,
	}, nil
}

// Close releases the underlying connection pool.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
