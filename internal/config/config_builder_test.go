// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	payload := `{
		"app": {"token_sign_key": "secret", "token_issuer": "snap-sync", "token_duration": "720h", "hash_key": "hk"},
		"sync": {"enabled": true, "key_material": "material", "key_id": "slot-1"},
		"storage": {"db": {"dsn": "postgres://localhost/snapshots"}, "local": {"dsn": "/var/lib/agent/local.db", "temp_dir": "/tmp"}},
		"server": {"http_address": ":8080", "request_timeout": "30s"},
		"adapter": {"http_address": "https://snapshots.example.com", "token": "bearer-token", "request_timeout": "15s"},
		"workers": {"sync_interval": "5m"}
	}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, 720*time.Hour, cfg.App.TokenDuration)
	assert.True(t, cfg.Sync.Enabled)
	assert.Equal(t, "slot-1", cfg.Sync.KeyID)
	assert.Equal(t, "postgres://localhost/snapshots", cfg.Storage.DB.DSN)
	assert.Equal(t, "/var/lib/agent/local.db", cfg.Storage.Local.DSN)
	assert.Equal(t, ":8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 5*time.Minute, cfg.Workers.SyncInterval)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	var d Duration

	require.NoError(t, json.Unmarshal([]byte(`"90s"`), &d))
	assert.Equal(t, 90*time.Second, time.Duration(d))

	require.NoError(t, json.Unmarshal([]byte(`1000000000`), &d))
	assert.Equal(t, time.Second, time.Duration(d))

	assert.Error(t, json.Unmarshal([]byte(`"not a duration"`), &d))
}

func TestConfigBuilder_MergePriority(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Adapter: Adapter{HTTPAddress: "https://first.example.com"}},
		&StructuredConfig{
			Adapter: Adapter{HTTPAddress: "https://second.example.com", Token: "t"},
			Workers: Workers{SyncInterval: time.Minute},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)

	// first non-zero value wins, later configs only fill gaps
	assert.Equal(t, "https://first.example.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "t", cfg.Adapter.Token)
	assert.Equal(t, time.Minute, cfg.Workers.SyncInterval)
}

func validClientConfig() *ClientConfig {
	return &ClientConfig{
		Adapter: ClientAdapter{HTTPAddress: "https://snapshots.example.com", RequestTimeout: 15 * time.Second},
		Storage: ClientStorage{DB: ClientDB{DSN: "/var/lib/agent/local.db"}},
		Sync:    ClientSync{Enabled: true, KeyMaterial: "material", SyncKeyID: "slot-1"},
		Workers: ClientWorkers{SyncInterval: 5 * time.Minute},
	}
}

func TestClientConfig_Validate(t *testing.T) {
	assert.NoError(t, validClientConfig().validate())

	cfg := validClientConfig()
	cfg.Storage.DB.DSN = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)

	cfg = validClientConfig()
	cfg.Storage.DB.DSN = "file::memory:"
	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)

	cfg = validClientConfig()
	cfg.Adapter.HTTPAddress = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAdapterConfigs)

	cfg = validClientConfig()
	cfg.Sync.KeyMaterial = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidSyncConfigs)

	cfg = validClientConfig()
	cfg.Workers.SyncInterval = 0
	assert.ErrorIs(t, cfg.validate(), ErrInvalidWorkerConfigs)
}

func TestServerConfig_Validate(t *testing.T) {
	valid := func() *ServerConfig {
		return &ServerConfig{
			App:     ServerApp{TokenSignKey: "secret"},
			Server:  ServerHTTP{HTTPAddress: ":8080"},
			Storage: ServerStorage{DB: DB{DSN: "postgres://localhost/snapshots"}},
		}
	}
	assert.NoError(t, valid().validate())

	cfg := valid()
	cfg.Server.HTTPAddress = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidServerConfigs)

	cfg = valid()
	cfg.Storage.DB.DSN = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)

	cfg = valid()
	cfg.App.TokenSignKey = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidServerConfigs)
}
