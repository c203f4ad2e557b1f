package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-snap-sync/internal/adapter"
	"github.com/MKhiriev/go-snap-sync/internal/crypto"
	"github.com/MKhiriev/go-snap-sync/internal/logger"
	"github.com/MKhiriev/go-snap-sync/internal/store"
	"github.com/google/uuid"
)

// syncReconciler implements [SyncReconciler]. It owns all mutable sync state
// for the process: the version counter and the dirty flag. The administrative
// on/off switch lives in the settings store so it survives restarts.
type syncReconciler struct {
	settings  store.SettingsStorage
	local     store.LocalDatabase
	blobStore adapter.BlobStore
	encryptor crypto.Encryptor
	importer  SnapshotImporter
	tempDir   string
	logger    *logger.Logger

	// mu serializes whole cycles. Resume, pause, enable and the periodic
	// job can all fire close together; overlapping cycles would race on
	// the version counter.
	mu sync.Mutex

	currentVersion atomic.Uint64
	dirty          atomic.Bool
}

// NewSyncReconciler constructs a [SyncReconciler]. The dirty flag starts
// true: a fresh process cannot know whether its last upload made it, so the
// first enabled cycle always pushes.
func NewSyncReconciler(
	settings store.SettingsStorage,
	local store.LocalDatabase,
	blobStore adapter.BlobStore,
	encryptor crypto.Encryptor,
	importer SnapshotImporter,
	tempDir string,
	log *logger.Logger,
) SyncReconciler {
	r := &syncReconciler{
		settings:  settings,
		local:     local,
		blobStore: blobStore,
		encryptor: encryptor,
		importer:  importer,
		tempDir:   tempDir,
		logger:    log,
	}
	r.dirty.Store(true)

	return r
}

// Sync runs one pull-then-push cycle under the single-flight lock.
//
// Every error inside the cycle lands in exactly one place: sync is switched
// off and the error is logged, never returned. Retrying silently against a
// possibly permanent condition (revoked key, expired token) is worse than
// stopping visibly; the user can re-enable.
func (r *syncReconciler) Sync(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	log := logger.FromContext(ctx)

	enabled, err := r.settings.SyncEnabled(ctx)
	if err != nil {
		log.Err(err).Str("func", "syncReconciler.Sync").Msg("failed to read sync switch, skipping cycle")
		return
	}
	if !enabled {
		log.Debug().Str("func", "syncReconciler.Sync").Msg("sync is disabled, skipping cycle")
		return
	}

	if cycleErr := r.runCycle(ctx); cycleErr != nil {
		log.Err(cycleErr).Str("func", "syncReconciler.Sync").Msg("sync cycle failed, disabling synchronization")
		if disableErr := r.settings.DisableSync(ctx); disableErr != nil {
			log.Err(disableErr).Str("func", "syncReconciler.Sync").Msg("failed to persist sync disable")
		}
		return
	}

	log.Debug().
		Str("func", "syncReconciler.Sync").
		Uint64("current_version", r.currentVersion.Load()).
		Bool("dirty", r.dirty.Load()).
		Msg("sync cycle finished")
}

// OnMutatingCommand implements [SyncReconciler]. It is subscribed to the
// command bus and fires on every local mutating operation.
func (r *syncReconciler) OnMutatingCommand() {
	r.dirty.Store(true)
}

// OnResume implements [SyncReconciler].
func (r *syncReconciler) OnResume(ctx context.Context) {
	r.Sync(ctx)
}

// OnPause implements [SyncReconciler].
func (r *syncReconciler) OnPause(ctx context.Context) {
	r.Sync(ctx)
}

// CurrentVersion implements [SyncReconciler].
func (r *syncReconciler) CurrentVersion() uint64 {
	return r.currentVersion.Load()
}

// Dirty implements [SyncReconciler].
func (r *syncReconciler) Dirty() bool {
	return r.dirty.Load()
}

func (r *syncReconciler) runCycle(ctx context.Context) error {
	keyMaterial, err := r.settings.EncryptionKeyMaterial(ctx)
	if err != nil {
		return fmt.Errorf("read encryption key material: %w", err)
	}
	syncKeyID, err := r.settings.SyncKeyID(ctx)
	if err != nil {
		return fmt.Errorf("read sync key id: %w", err)
	}

	key, err := r.encryptor.DeriveKey(keyMaterial, syncKeyID)
	if err != nil {
		return fmt.Errorf("derive snapshot key: %w", err)
	}

	if err := r.pull(ctx, syncKeyID, key); err != nil {
		return err
	}
	if err := r.push(ctx, syncKeyID, key); err != nil {
		return err
	}

	return nil
}

// pull fetches the remote snapshot and, when it is newer than anything seen
// so far, decrypts it to a temp file and hands it to the importer. The
// version counter always advances to fetchedVersion+1: it is the version
// this client publishes under next, whether or not a merge happened.
func (r *syncReconciler) pull(ctx context.Context, syncKeyID string, key []byte) error {
	log := logger.FromContext(ctx)

	snapshot, err := r.blobStore.Fetch(ctx, syncKeyID)
	if err != nil {
		return fmt.Errorf("fetch remote snapshot: %w", err)
	}

	switch {
	case snapshot.Version == 0:
		// Empty slot: this client must seed the remote.
		r.dirty.Store(true)

	case snapshot.Version <= r.currentVersion.Load():
		log.Debug().
			Str("func", "syncReconciler.pull").
			Uint64("fetched_version", snapshot.Version).
			Uint64("current_version", r.currentVersion.Load()).
			Msg("remote snapshot is not newer, skipping merge")

	default:
		tempPath := r.tempFilePath()
		if err := r.encryptor.DecryptStringToFile(snapshot.Content, key, tempPath); err != nil {
			return fmt.Errorf("decrypt remote snapshot: %w", err)
		}

		r.importer.Submit(tempPath, func(mergeErr error) {
			if removeErr := os.Remove(tempPath); removeErr != nil {
				r.logger.Err(removeErr).Str("path", tempPath).Msg("failed to remove merged snapshot file")
			}
			if mergeErr != nil {
				// No version rollback: mark the database dirty so the
				// next cycle re-uploads local state instead.
				r.logger.Err(mergeErr).Str("path", tempPath).Msg("snapshot merge failed, scheduling re-upload")
				r.dirty.Store(true)
			}
		})
	}

	r.currentVersion.Store(snapshot.Version + 1)

	return nil
}

// push uploads the whole local database, encrypted, tagged with the current
// version. It only runs when something changed locally.
func (r *syncReconciler) push(ctx context.Context, syncKeyID string, key []byte) error {
	if !r.dirty.Load() {
		return nil
	}

	tempPath := r.tempFilePath()
	if err := r.local.ExportSnapshot(ctx, tempPath); err != nil {
		return fmt.Errorf("export local snapshot: %w", err)
	}
	defer func() {
		if removeErr := os.Remove(tempPath); removeErr != nil {
			r.logger.Err(removeErr).Str("path", tempPath).Msg("failed to remove exported snapshot file")
		}
	}()

	content, err := r.encryptor.EncryptFileToString(tempPath, key)
	if err != nil {
		return fmt.Errorf("encrypt local snapshot: %w", err)
	}

	if err := r.blobStore.Store(ctx, syncKeyID, r.currentVersion.Load(), content); err != nil {
		return fmt.Errorf("upload snapshot: %w", err)
	}

	r.dirty.Store(false)

	return nil
}

func (r *syncReconciler) tempFilePath() string {
	return filepath.Join(r.tempDir, "snapshot-"+uuid.NewString()+".json")
}
