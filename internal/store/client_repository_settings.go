package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-snap-sync/internal/config"
	"github.com/MKhiriev/go-snap-sync/internal/logger"
)

// Well-known keys of the local settings table.
const (
	settingSyncEnabled = "sync_enabled"
	settingKeyMaterial = "sync_key_material"
	settingSyncKeyID   = "sync_key_id"
)

type settingsRepository struct {
	*ClientDB
	logger *logger.Logger
}

// NewSettingsRepository constructs a [SettingsStorage] backed by the local
// settings table.
func NewSettingsRepository(db *ClientDB, logger *logger.Logger) SettingsStorage {
	return &settingsRepository{
		ClientDB: db,
		logger:   logger,
	}
}

// Seed writes the initial administrative sync settings on first run. Existing
// rows are left untouched so a previously disabled agent stays disabled
// across restarts.
func (s *settingsRepository) Seed(ctx context.Context, cfg config.ClientSync) error {
	log := logger.FromContext(ctx)

	seeds := map[string]string{
		settingSyncEnabled: strconv.FormatBool(cfg.Enabled),
		settingKeyMaterial: cfg.KeyMaterial,
		settingSyncKeyID:   cfg.SyncKeyID,
	}
	for key, value := range seeds {
		if _, err := s.ClientDB.ExecContext(ctx, seedSettingValue, key, value); err != nil {
			log.Err(err).
				Str("func", "settingsRepository.Seed").
				Str("key", key).
				Msg("failed to seed setting")
			return fmt.Errorf("failed to seed setting %q: %w", key, err)
		}
	}

	return nil
}

func (s *settingsRepository) SyncEnabled(ctx context.Context) (bool, error) {
	value, err := s.get(ctx, settingSyncEnabled)
	if err != nil {
		if errors.Is(err, ErrSettingNotFound) {
			return false, nil
		}
		return false, err
	}

	enabled, parseErr := strconv.ParseBool(value)
	if parseErr != nil {
		return false, fmt.Errorf("malformed %s setting %q: %w", settingSyncEnabled, value, parseErr)
	}

	return enabled, nil
}

func (s *settingsRepository) EnableSync(ctx context.Context) error {
	return s.set(ctx, settingSyncEnabled, strconv.FormatBool(true))
}

func (s *settingsRepository) DisableSync(ctx context.Context) error {
	return s.set(ctx, settingSyncEnabled, strconv.FormatBool(false))
}

func (s *settingsRepository) EncryptionKeyMaterial(ctx context.Context) (string, error) {
	return s.get(ctx, settingKeyMaterial)
}

func (s *settingsRepository) SyncKeyID(ctx context.Context) (string, error) {
	return s.get(ctx, settingSyncKeyID)
}

func (s *settingsRepository) get(ctx context.Context, key string) (string, error) {
	log := logger.FromContext(ctx)

	var value string
	row := s.ClientDB.QueryRowContext(ctx, getSettingValue, key)
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrSettingNotFound
		}
		log.Err(err).
			Str("func", "settingsRepository.get").
			Str("key", key).
			Msg("failed to read setting")
		return "", fmt.Errorf("failed to read setting %q: %w", key, err)
	}

	return value, nil
}

func (s *settingsRepository) set(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	if _, err := s.ClientDB.ExecContext(ctx, upsertSettingValue, key, value); err != nil {
		log.Err(err).
			Str("func", "settingsRepository.set").
			Str("key", key).
			Msg("failed to write setting")
		return fmt.Errorf("failed to write setting %q: %w", key, err)
	}

	return nil
}
