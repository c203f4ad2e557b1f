// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-snap-sync/internal/config"
	"github.com/MKhiriev/go-snap-sync/internal/logger"
	"github.com/MKhiriev/go-snap-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBlobStore(t *testing.T, srv *httptest.Server, hashKey string) BlobStore {
	t.Helper()

	store, err := NewHTTPBlobStore(
		config.ClientAdapter{HTTPAddress: srv.URL, Token: "test-token"},
		config.ClientApp{HashKey: hashKey},
		logger.Nop(),
	)
	require.NoError(t, err)

	return store
}

func TestNewHTTPBlobStore_RequiresAddress(t *testing.T) {
	_, err := NewHTTPBlobStore(config.ClientAdapter{}, config.ClientApp{}, logger.Nop())
	assert.Error(t, err)
}

func TestHTTPBlobStore_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/snapshot/slot-1", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.RemoteSnapshot{Version: 4, Content: "encrypted-blob"})
	}))
	defer srv.Close()

	store := newTestBlobStore(t, srv, "")

	snapshot, err := store.Fetch(context.Background(), "slot-1")
	require.NoError(t, err)
	assert.Equal(t, uint64(4), snapshot.Version)
	assert.Equal(t, "encrypted-blob", snapshot.Content)
}

func TestHTTPBlobStore_Fetch_EmptySlot(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.RemoteSnapshot{})
	}))
	defer srv.Close()

	store := newTestBlobStore(t, srv, "")

	snapshot, err := store.Fetch(context.Background(), "slot-1")
	require.NoError(t, err)
	assert.Equal(t, uint64(0), snapshot.Version)
}

func TestHTTPBlobStore_Fetch_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
	}))
	defer srv.Close()

	store := newTestBlobStore(t, srv, "")

	_, err := store.Fetch(context.Background(), "slot-1")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestHTTPBlobStore_Store(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/snapshot/slot-1", r.URL.Path)

		var req models.StoreSnapshotRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, uint64(2), req.Version)
		assert.Equal(t, "encrypted-blob", req.Content)
		assert.NotEmpty(t, req.Hash)

		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	store := newTestBlobStore(t, srv, "hash-key")

	err := store.Store(context.Background(), "slot-1", 2, "encrypted-blob")
	assert.NoError(t, err)
}

func TestHTTPBlobStore_Store_NoHashKeySendsNoSignature(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req models.StoreSnapshotRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Empty(t, req.Hash)

		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	store := newTestBlobStore(t, srv, "")

	err := store.Store(context.Background(), "slot-1", 1, "encrypted-blob")
	assert.NoError(t, err)
}

func TestHTTPBlobStore_Store_VersionConflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "snapshot version conflict occurred", http.StatusConflict)
	}))
	defer srv.Close()

	store := newTestBlobStore(t, srv, "")

	err := store.Store(context.Background(), "slot-1", 2, "encrypted-blob")
	assert.ErrorIs(t, err, ErrVersionConflict)
}

func TestHTTPBlobStore_Store_ServerErrorKeepsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "database unavailable", http.StatusInternalServerError)
	}))
	defer srv.Close()

	store := newTestBlobStore(t, srv, "")

	err := store.Store(context.Background(), "slot-1", 2, "encrypted-blob")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database unavailable")
}
