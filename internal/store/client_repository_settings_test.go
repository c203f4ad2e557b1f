// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-snap-sync/internal/config"
	"github.com/MKhiriev/go-snap-sync/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSettingsRepository(t *testing.T) *settingsRepository {
	t.Helper()

	return NewSettingsRepository(newTestClientDB(t), logger.Nop()).(*settingsRepository)
}

func TestSettingsRepository_SyncEnabled_DefaultsToFalse(t *testing.T) {
	repo := newTestSettingsRepository(t)

	enabled, err := repo.SyncEnabled(context.Background())
	require.NoError(t, err)
	assert.False(t, enabled)
}

func TestSettingsRepository_EnableDisableSync(t *testing.T) {
	repo := newTestSettingsRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.EnableSync(ctx))
	enabled, err := repo.SyncEnabled(ctx)
	require.NoError(t, err)
	assert.True(t, enabled)

	require.NoError(t, repo.DisableSync(ctx))
	enabled, err = repo.SyncEnabled(ctx)
	require.NoError(t, err)
	assert.False(t, enabled)
}

func TestSettingsRepository_Seed(t *testing.T) {
	repo := newTestSettingsRepository(t)
	ctx := context.Background()

	cfg := config.ClientSync{
		Enabled:     true,
		KeyMaterial: "base64-material",
		SyncKeyID:   "slot-1",
	}
	require.NoError(t, repo.Seed(ctx, cfg))

	enabled, err := repo.SyncEnabled(ctx)
	require.NoError(t, err)
	assert.True(t, enabled)

	material, err := repo.EncryptionKeyMaterial(ctx)
	require.NoError(t, err)
	assert.Equal(t, "base64-material", material)

	keyID, err := repo.SyncKeyID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "slot-1", keyID)
}

// A repeated seed must not resurrect settings the agent changed at runtime.
func TestSettingsRepository_Seed_DoesNotOverwrite(t *testing.T) {
	repo := newTestSettingsRepository(t)
	ctx := context.Background()

	cfg := config.ClientSync{Enabled: true, KeyMaterial: "material", SyncKeyID: "slot-1"}
	require.NoError(t, repo.Seed(ctx, cfg))

	// fail-safe kicked in during a previous run
	require.NoError(t, repo.DisableSync(ctx))

	require.NoError(t, repo.Seed(ctx, cfg))

	enabled, err := repo.SyncEnabled(ctx)
	require.NoError(t, err)
	assert.False(t, enabled)
}

func TestSettingsRepository_MissingSettings(t *testing.T) {
	repo := newTestSettingsRepository(t)
	ctx := context.Background()

	_, err := repo.EncryptionKeyMaterial(ctx)
	assert.ErrorIs(t, err, ErrSettingNotFound)

	_, err = repo.SyncKeyID(ctx)
	assert.ErrorIs(t, err, ErrSettingNotFound)
}
