package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-snap-sync/internal/bus"
	"github.com/MKhiriev/go-snap-sync/internal/config"
	"github.com/MKhiriev/go-snap-sync/internal/logger"
	"github.com/MKhiriev/go-snap-sync/migrations"
)

// ClientStorages groups all agent-side storage repositories into a single
// value that can be passed around the service layer.
type ClientStorages struct {
	// Settings is the key/value store holding the agent's administrative
	// sync state.
	Settings SettingsStorage
	// LocalDatabase is the SQLite-backed entry store with snapshot
	// import/export.
	LocalDatabase LocalDatabase
}

// NewClientStorages initialises the agent storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [migrations.MigrateClient].
//  3. Seeds the settings table with the initial sync configuration,
//     keeping any values a previous run already persisted.
//  4. Constructs and returns a [ClientStorages] value wired to fresh
//     repositories.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(cfg config.ClientStorage, syncCfg config.ClientSync, commandBus *bus.CommandBus, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	ctx := context.Background()

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := migrations.MigrateClient(db.DB); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	settings := NewSettingsRepository(db, logger)
	if err := settings.Seed(ctx, syncCfg); err != nil {
		return nil, fmt.Errorf("settings seed failed: %w", err)
	}

	return &ClientStorages{
		Settings:      settings,
		LocalDatabase: NewLocalDatabaseRepository(db, commandBus, logger),
	}, nil
}
