package store

import (
	"context"

	"github.com/MKhiriev/go-snap-sync/internal/config"
	"github.com/MKhiriev/go-snap-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// SettingsStorage is the agent's persistent key/value settings store. The
// sync engine reads its administrative state (on/off switch, key material,
// slot id) from here at the start of every cycle.
type SettingsStorage interface {
	// Seed writes initial administrative settings on first run without
	// overwriting values already present.
	Seed(ctx context.Context, cfg config.ClientSync) error
	// SyncEnabled reports whether synchronization is administratively on.
	SyncEnabled(ctx context.Context) (bool, error)
	// EnableSync turns synchronization on.
	EnableSync(ctx context.Context) error
	// DisableSync turns synchronization off. Used by the sync engine itself
	// when a cycle fails.
	DisableSync(ctx context.Context) error
	// EncryptionKeyMaterial returns the base64 snapshot key material.
	EncryptionKeyMaterial(ctx context.Context) (string, error)
	// SyncKeyID returns the identifier of the remote snapshot slot.
	SyncKeyID(ctx context.Context) (string, error)
}

// LocalDatabase is the agent's local entry store plus whole-database
// snapshot import/export, the unit of data the sync engine moves around.
type LocalDatabase interface {
	SaveEntry(ctx context.Context, entry models.Entry) error
	GetEntry(ctx context.Context, id string) (models.Entry, error)
	ListEntries(ctx context.Context) ([]models.Entry, error)
	DeleteEntry(ctx context.Context, id string) error

	// ExportSnapshot serialises the full local database to a plaintext
	// snapshot file at destPath.
	ExportSnapshot(ctx context.Context, destPath string) error
	// MergeSnapshot folds a decrypted snapshot file into the local
	// database, newest write per entry winning.
	MergeSnapshot(ctx context.Context, path string) error
}
