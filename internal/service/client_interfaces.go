package service

import (
	"context"
	"time"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// SyncReconciler defines the agent-side contract for keeping the local
// database and the remote snapshot slot in agreement. One reconciler owns
// the version counter and the dirty flag for the lifetime of the process.
type SyncReconciler interface {
	// Sync runs one pull-then-push cycle. It never returns an error: any
	// failure inside the cycle switches synchronization off and is only
	// reported through logs. Calling it while sync is administratively off
	// is a silent no-op. Concurrent calls are serialized internally.
	Sync(ctx context.Context)

	// OnMutatingCommand marks the local database as changed since the last
	// successful upload. Safe to call concurrently with a running cycle.
	OnMutatingCommand()

	// OnResume is a lifecycle hook that triggers a sync cycle.
	OnResume(ctx context.Context)
	// OnPause is a lifecycle hook that triggers a sync cycle.
	OnPause(ctx context.Context)

	// CurrentVersion returns the version the reconciler would publish
	// under next.
	CurrentVersion() uint64
	// Dirty reports whether a local change is awaiting upload.
	Dirty() bool
}

// SnapshotImporter applies decrypted snapshot files to the local database
// asynchronously.
type SnapshotImporter interface {
	// Submit schedules a merge of the snapshot file at path. onComplete is
	// invoked exactly once after the merge attempt, success or failure;
	// the callback owns deletion of the file. Merges are applied one at a
	// time in submission order.
	Submit(path string, onComplete func(error))

	// Wait blocks until all submitted merges have completed. Used at
	// shutdown.
	Wait()
}

// ClientSyncJob defines the contract for a background worker that
// periodically triggers a sync cycle.
type ClientSyncJob interface {
	// Start launches the background goroutine. It syncs every interval,
	// defaulting to 5 minutes if interval is zero or negative. Any
	// previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it
	// has fully terminated.
	Stop()
}
