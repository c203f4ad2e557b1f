package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// HashKey is the HMAC key used by the agent for upload integrity signing.
	HashKey string
}

// ClientAdapter holds network settings used by the agent's blob-store
// transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the remote blob store.
	HTTPAddress string
	// Token is the bearer token presented on every blob-store request.
	Token string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// ClientDB contains local embedded database settings for the agent.
type ClientDB struct {
	// DSN is the SQLite path of the agent's local database.
	DSN string
	// TempDir is the directory for transient snapshot files.
	TempDir string
}

// ClientStorage groups agent storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientSync holds the initial administrative sync settings seeded into the
// local settings table on first run.
type ClientSync struct {
	// Enabled is the initial sync on/off switch.
	Enabled bool
	// KeyMaterial is the base64 snapshot key material.
	KeyMaterial string
	// SyncKeyID is the remote slot identifier.
	SyncKeyID string
}

// ClientWorkers contains agent background worker settings.
type ClientWorkers struct {
	// SyncInterval defines how often the periodic sync job runs.
	SyncInterval time.Duration
}

// ClientConfig is the top-level agent configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level agent settings.
	App ClientApp
	// Adapter contains blob-store transport settings.
	Adapter ClientAdapter
	// Storage contains agent storage settings.
	Storage ClientStorage
	// Sync contains initial sync settings.
	Sync ClientSync
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates an agent-specific config view from
// the merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the agent runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			HashKey: cfg.App.HashKey,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			Token:          cfg.Adapter.Token,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN:     cfg.Storage.Local.DSN,
				TempDir: cfg.Storage.Local.TempDir,
			},
		},
		Sync: ClientSync{
			Enabled:     cfg.Sync.Enabled,
			KeyMaterial: cfg.Sync.KeyMaterial,
			SyncKeyID:   cfg.Sync.KeyID,
		},
		Workers: ClientWorkers{SyncInterval: cfg.Workers.SyncInterval},
	}

	return clientCfg, clientCfg.validate()
}
