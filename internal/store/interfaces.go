package store

import (
	"context"

	"github.com/MKhiriev/go-snap-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SnapshotRepository is the server-side store of encrypted database
// snapshots, one immutable row per (sync key, version) pair.
type SnapshotRepository interface {
	// GetLatest returns the highest-version snapshot stored for the given
	// sync key. A key that has never been written yields a zero-value
	// snapshot with Version == 0 and no error.
	GetLatest(ctx context.Context, syncKey string) (models.RemoteSnapshot, error)
	// Insert persists a new snapshot version. A duplicate (syncKey, version)
	// pair is reported as [ErrVersionConflict].
	Insert(ctx context.Context, syncKey string, version uint64, content string) error
}
