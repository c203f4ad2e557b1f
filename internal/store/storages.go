package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-snap-sync/internal/config"
	"github.com/MKhiriev/go-snap-sync/internal/logger"
	"github.com/MKhiriev/go-snap-sync/migrations"
)

// Storages groups all server-side repositories into a single value that can
// be passed around the service layer. Currently it holds only
// [SnapshotRepository]; additional repositories can be added here as the
// feature set grows.
type Storages struct {
	// SnapshotRepository is the PostgreSQL-backed store of encrypted
	// snapshot versions.
	SnapshotRepository SnapshotRepository
}

// NewStorages initialises the server storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens a PostgreSQL connection using cfg.DB.DSN.
//  2. Runs pending schema migrations via [migrations.MigrateServer].
//  3. Constructs and returns a [Storages] value wired to a fresh
//     [SnapshotRepository].
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewStorages(cfg config.ServerStorage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := migrations.MigrateServer(db.DB); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		SnapshotRepository: NewSnapshotRepository(db, logger),
	}, nil
}
