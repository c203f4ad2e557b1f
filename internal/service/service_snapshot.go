package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-snap-sync/internal/config"
	"github.com/MKhiriev/go-snap-sync/internal/logger"
	"github.com/MKhiriev/go-snap-sync/internal/store"
	"github.com/MKhiriev/go-snap-sync/internal/utils"
	"github.com/MKhiriev/go-snap-sync/models"
)

// snapshotService implements [SnapshotService] over the snapshot
// repository. It enforces the upload integrity check before anything
// touches the database.
type snapshotService struct {
	repository store.SnapshotRepository
	hashKey    string

	logger *logger.Logger
}

// NewSnapshotService constructs a [SnapshotService]. When cfg.HashKey is
// empty the integrity check is skipped entirely; clients without a hash key
// send no signature.
func NewSnapshotService(repository store.SnapshotRepository, cfg config.ServerApp, logger *logger.Logger) SnapshotService {
	return &snapshotService{
		repository: repository,
		hashKey:    cfg.HashKey,
		logger:     logger,
	}
}

// GetLatest implements [SnapshotService].
func (s *snapshotService) GetLatest(ctx context.Context, syncKey string) (models.RemoteSnapshot, error) {
	if syncKey == "" {
		return models.RemoteSnapshot{}, ErrInvalidDataProvided
	}

	snapshot, err := s.repository.GetLatest(ctx, syncKey)
	if err != nil {
		return models.RemoteSnapshot{}, fmt.Errorf("get latest snapshot: %w", err)
	}

	return snapshot, nil
}

// Store implements [SnapshotService].
func (s *snapshotService) Store(ctx context.Context, syncKey string, req models.StoreSnapshotRequest) error {
	log := logger.FromContext(ctx)

	if syncKey == "" || req.Content == "" {
		return ErrInvalidDataProvided
	}

	if s.hashKey != "" && req.Hash != "" {
		expected := utils.HashString(req.Content, s.hashKey)
		if !utils.HashEqual(expected, req.Hash) {
			log.Warn().
				Str("func", "snapshotService.Store").
				Str("sync_key", syncKey).
				Uint64("version", req.Version).
				Msg("rejecting snapshot upload with bad signature")
			return ErrHashMismatch
		}
	}

	if err := s.repository.Insert(ctx, syncKey, req.Version, req.Content); err != nil {
		return fmt.Errorf("store snapshot: %w", err)
	}

	return nil
}
