package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-snap-sync/internal/bus"
	"github.com/MKhiriev/go-snap-sync/internal/logger"
	"github.com/MKhiriev/go-snap-sync/models"
)

// localDatabaseRepository is the SQLite-backed implementation of
// [LocalDatabase]. Every mutating operation publishes a notification on the
// command bus after it commits, so the sync engine learns about local writes
// without polling.
type localDatabaseRepository struct {
	*ClientDB
	bus    *bus.CommandBus
	logger *logger.Logger
}

// NewLocalDatabaseRepository constructs a [LocalDatabase] backed by the
// provided local connection. The bus may be nil for callers that do not care
// about mutation notifications (tests, one-off tooling).
func NewLocalDatabaseRepository(db *ClientDB, commandBus *bus.CommandBus, logger *logger.Logger) LocalDatabase {
	return &localDatabaseRepository{
		ClientDB: db,
		bus:      commandBus,
		logger:   logger,
	}
}

func (l *localDatabaseRepository) SaveEntry(ctx context.Context, entry models.Entry) error {
	log := logger.FromContext(ctx)

	if entry.UpdatedAt.IsZero() {
		entry.UpdatedAt = time.Now().UTC()
	}

	_, err := l.ClientDB.ExecContext(ctx, upsertEntry,
		entry.ID,
		entry.Data,
		entry.UpdatedAt,
		entry.Deleted,
	)
	if err != nil {
		log.Err(err).
			Str("func", "localDatabaseRepository.SaveEntry").
			Str("id", entry.ID).
			Msg("failed to execute upsert for entry")
		return fmt.Errorf("failed to save entry (id=%s): %w", entry.ID, err)
	}

	l.notifyMutation()
	return nil
}

func (l *localDatabaseRepository) GetEntry(ctx context.Context, id string) (models.Entry, error) {
	log := logger.FromContext(ctx)

	var entry models.Entry
	row := l.ClientDB.QueryRowContext(ctx, getSingleEntry, id)

	scanErr := row.Scan(
		&entry.ID,
		&entry.Data,
		&entry.UpdatedAt,
		&entry.Deleted,
	)
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.Entry{}, ErrEntryNotFound
		}
		log.Err(scanErr).
			Str("func", "localDatabaseRepository.GetEntry").
			Str("id", id).
			Msg("failed to scan entry row")
		return models.Entry{}, fmt.Errorf("failed to scan entry row: %w", scanErr)
	}

	return entry, nil
}

// ListEntries returns all live entries. Tombstoned entries are kept in the
// table for snapshot merging but are not visible here.
func (l *localDatabaseRepository) ListEntries(ctx context.Context) ([]models.Entry, error) {
	return l.queryEntries(ctx, getAllEntries)
}

func (l *localDatabaseRepository) queryEntries(ctx context.Context, query string) ([]models.Entry, error) {
	log := logger.FromContext(ctx)

	rows, err := l.ClientDB.QueryContext(ctx, query)
	if err != nil {
		log.Err(err).
			Str("func", "localDatabaseRepository.queryEntries").
			Msg("failed to execute query for getting all entries")
		return nil, fmt.Errorf("failed to query all entries: %w", err)
	}
	defer rows.Close()

	var entries []models.Entry

	for rows.Next() {
		var entry models.Entry

		scanErr := rows.Scan(
			&entry.ID,
			&entry.Data,
			&entry.UpdatedAt,
			&entry.Deleted,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "localDatabaseRepository.queryEntries").
				Msg("failed to scan entry row")
			return nil, fmt.Errorf("failed to scan entry row: %w", scanErr)
		}

		entries = append(entries, entry)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "localDatabaseRepository.queryEntries").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating entry rows: %w", rowsErr)
	}

	return entries, nil
}

func (l *localDatabaseRepository) DeleteEntry(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	result, err := l.ClientDB.ExecContext(ctx, softDeleteEntry, time.Now().UTC(), id)
	if err != nil {
		log.Err(err).
			Str("func", "localDatabaseRepository.DeleteEntry").
			Str("id", id).
			Msg("failed to execute soft delete for entry")
		return fmt.Errorf("failed to delete entry (id=%s): %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected (id=%s): %w", id, err)
	}
	if rowsAffected == 0 {
		return ErrEntryNotFound
	}

	l.notifyMutation()
	return nil
}

// ExportSnapshot serialises every entry, tombstones included, into a JSON
// snapshot file. The file is written with owner-only permissions since the
// caller encrypts it afterwards.
func (l *localDatabaseRepository) ExportSnapshot(ctx context.Context, destPath string) error {
	log := logger.FromContext(ctx)

	entries, err := l.listAllIncludingDeleted(ctx)
	if err != nil {
		return err
	}

	snapshot := models.DatabaseSnapshot{
		ExportedAt: time.Now().UTC(),
		Entries:    entries,
	}

	payload, err := json.Marshal(snapshot)
	if err != nil {
		log.Err(err).
			Str("func", "localDatabaseRepository.ExportSnapshot").
			Msg("failed to marshal database snapshot")
		return fmt.Errorf("failed to marshal database snapshot: %w", err)
	}

	if err := os.WriteFile(destPath, payload, 0o600); err != nil {
		log.Err(err).
			Str("func", "localDatabaseRepository.ExportSnapshot").
			Str("path", destPath).
			Msg("failed to write database snapshot file")
		return fmt.Errorf("failed to write database snapshot file: %w", err)
	}

	return nil
}

// MergeSnapshot folds a decrypted snapshot file into the local database.
// Per entry the newer UpdatedAt wins, so local writes made while the
// snapshot was in flight are preserved.
func (l *localDatabaseRepository) MergeSnapshot(ctx context.Context, path string) error {
	log := logger.FromContext(ctx)

	payload, err := os.ReadFile(path)
	if err != nil {
		log.Err(err).
			Str("func", "localDatabaseRepository.MergeSnapshot").
			Str("path", path).
			Msg("failed to read database snapshot file")
		return fmt.Errorf("failed to read database snapshot file: %w", err)
	}

	var snapshot models.DatabaseSnapshot
	if err := json.Unmarshal(payload, &snapshot); err != nil {
		log.Err(err).
			Str("func", "localDatabaseRepository.MergeSnapshot").
			Str("path", path).
			Msg("failed to unmarshal database snapshot")
		return fmt.Errorf("failed to unmarshal database snapshot: %w", err)
	}

	tx, err := l.ClientDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin merge transaction: %w", err)
	}
	defer tx.Rollback()

	for _, entry := range snapshot.Entries {
		if _, err := tx.ExecContext(ctx, mergeEntryIfNewer,
			entry.ID,
			entry.Data,
			entry.UpdatedAt,
			entry.Deleted,
		); err != nil {
			log.Err(err).
				Str("func", "localDatabaseRepository.MergeSnapshot").
				Str("id", entry.ID).
				Msg("failed to merge snapshot entry")
			return fmt.Errorf("failed to merge snapshot entry (id=%s): %w", entry.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit merge transaction: %w", err)
	}

	log.Debug().
		Str("func", "localDatabaseRepository.MergeSnapshot").
		Int("entries", len(snapshot.Entries)).
		Msg("snapshot merged into local database")

	return nil
}

func (l *localDatabaseRepository) listAllIncludingDeleted(ctx context.Context) ([]models.Entry, error) {
	return l.queryEntries(ctx, getAllEntriesWithTombstones)
}

func (l *localDatabaseRepository) notifyMutation() {
	if l.bus != nil {
		l.bus.Publish()
	}
}
