// Package adapter implements the outbound transport to the remote
// versioned blob store. The store keeps one encrypted snapshot plus a
// monotonically increasing version number per sync key.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-snap-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/blob_store_mock.go -package=mock

// BlobStore is the remote versioned blob store consumed by the sync
// reconciler.
type BlobStore interface {
	// Fetch returns the current snapshot stored under syncKeyID.
	// A slot that has never been written reports Version 0 and empty
	// Content; that is not an error.
	Fetch(ctx context.Context, syncKeyID string) (models.RemoteSnapshot, error)

	// Store uploads content under syncKeyID tagged with version.
	// Returns [ErrVersionConflict] if the store rejects the version tag and
	// [ErrUnauthorized] if the bearer token is rejected.
	Store(ctx context.Context, syncKeyID string, version uint64, content string) error
}
