package service

import (
	"context"

	"github.com/MKhiriev/go-snap-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SnapshotService is the server-side snapshot slot contract exposed to the
// transport layer.
type SnapshotService interface {
	// GetLatest returns the newest snapshot stored under syncKey; a slot
	// that was never written yields Version == 0.
	GetLatest(ctx context.Context, syncKey string) (models.RemoteSnapshot, error)
	// Store persists a new snapshot version. Integrity and version checks
	// happen here; a duplicate version surfaces as [store.ErrVersionConflict].
	Store(ctx context.Context, syncKey string, req models.StoreSnapshotRequest) error
}

// AppInfoService exposes build metadata for diagnostics endpoints.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
