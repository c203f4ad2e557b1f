package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-snap-sync/internal/adapter"
	"github.com/MKhiriev/go-snap-sync/internal/bus"
	"github.com/MKhiriev/go-snap-sync/internal/config"
	"github.com/MKhiriev/go-snap-sync/internal/crypto"
	"github.com/MKhiriev/go-snap-sync/internal/logger"
	"github.com/MKhiriev/go-snap-sync/internal/store"
)

// ClientServices wires the agent's service layer together: the reconciler,
// the background importer and the periodic sync job.
type ClientServices struct {
	Reconciler SyncReconciler
	Importer   SnapshotImporter
	SyncJob    ClientSyncJob

	settings store.SettingsStorage
}

// NewClientServices builds the agent service layer on top of the storage
// layer and the blob-store adapter. The reconciler is subscribed to the
// command bus so every local mutation marks the database dirty.
func NewClientServices(
	storages *store.ClientStorages,
	blobStore adapter.BlobStore,
	commandBus *bus.CommandBus,
	cfg *config.ClientConfig,
	log *logger.Logger,
) *ClientServices {
	importer := NewSnapshotImporter(storages.LocalDatabase, log)
	reconciler := NewSyncReconciler(
		storages.Settings,
		storages.LocalDatabase,
		blobStore,
		crypto.NewSnapshotEncryptor(),
		importer,
		cfg.Storage.DB.TempDir,
		log,
	)

	commandBus.Subscribe(reconciler.OnMutatingCommand)

	return &ClientServices{
		Reconciler: reconciler,
		Importer:   importer,
		SyncJob:    NewClientSyncJob(reconciler),
		settings:   storages.Settings,
	}
}

// EnableSync switches synchronization on and immediately fires one cycle in
// the background. The caller is not blocked on the cycle and sees no error
// from it.
func (s *ClientServices) EnableSync(ctx context.Context) error {
	if err := s.settings.EnableSync(ctx); err != nil {
		return fmt.Errorf("enable sync: %w", err)
	}

	go s.Reconciler.Sync(context.WithoutCancel(ctx))

	return nil
}

// DisableSync switches synchronization off. In-flight cycles finish on
// their own; future cycles become no-ops.
func (s *ClientServices) DisableSync(ctx context.Context) error {
	if err := s.settings.DisableSync(ctx); err != nil {
		return fmt.Errorf("disable sync: %w", err)
	}

	return nil
}
