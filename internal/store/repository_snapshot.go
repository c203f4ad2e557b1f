package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-snap-sync/internal/logger"
	"github.com/MKhiriev/go-snap-sync/models"
	"github.com/jackc/pgerrcode"
)

// snapshotRepository is the PostgreSQL-backed implementation of
// [SnapshotRepository]. Snapshot rows are append-only: every upload inserts
// a fresh (sync_key, version) row and the primary key enforces the
// optimistic-versioning contract.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type snapshotRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSnapshotRepository constructs a [SnapshotRepository] backed by the
// provided database connection and logger.
func NewSnapshotRepository(db *DB, logger *logger.Logger) SnapshotRepository {
	logger.Debug().Msg("creating snapshot repository")
	return &snapshotRepository{
		db:     db,
		logger: logger,
	}
}

// GetLatest returns the newest snapshot stored for the given sync key.
//
// A key with no rows yet is not an error: the zero value with Version == 0
// is returned so the caller can distinguish "empty slot" from a failed read.
func (r *snapshotRepository) GetLatest(ctx context.Context, syncKey string) (models.RemoteSnapshot, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectLatestSnapshotQuery(syncKey)
	if err != nil {
		log.Err(err).Str("func", "*snapshotRepository.GetLatest").Msg("error building select query")
		return models.RemoteSnapshot{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var snapshot models.RemoteSnapshot
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&snapshot.Version, &snapshot.Content); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Never-written slot: version 0, empty content.
			return models.RemoteSnapshot{}, nil
		}
		log.Err(err).Str("func", "*snapshotRepository.GetLatest").Str("sync_key", syncKey).Msg("error: scanning error")
		return models.RemoteSnapshot{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return snapshot, nil
}

// Insert persists a new snapshot version for the given sync key.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrVersionConflict].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Zero rows affected → [ErrSnapshotNotSaved].
func (r *snapshotRepository) Insert(ctx context.Context, syncKey string, version uint64, content string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertSnapshotQuery(syncKey, version, content)
	if err != nil {
		log.Err(err).Str("func", "*snapshotRepository.Insert").Msg("error building insert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, execErr := r.db.ExecContext(ctx, query, args...)
	if execErr != nil {
		switch postgresError(execErr) {
		case pgerrcode.UniqueViolation:
			log.Warn().
				Str("func", "*snapshotRepository.Insert").
				Str("sync_key", syncKey).
				Uint64("version", version).
				Msg("snapshot version already written")
			return ErrVersionConflict
		default:
			if r.db.errorClassificator.Classify(execErr) == Retryable {
				log.Err(execErr).Str("func", "*snapshotRepository.Insert").Msg("transient DB error, safe to retry upload")
			} else {
				log.Err(execErr).Str("func", "*snapshotRepository.Insert").Msg("unexpected DB error")
			}
			return fmt.Errorf("unexpected DB error: %w", execErr)
		}
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*snapshotRepository.Insert").Msg("failed to get rows affected after insert")
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrSnapshotNotSaved
	}

	return nil
}
