package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-snap-sync/internal/logger"
	"github.com/MKhiriev/go-snap-sync/internal/utils"
	"github.com/MKhiriev/go-snap-sync/models"
	"github.com/go-chi/chi/v5"
)

// fetchSnapshot returns the newest snapshot stored under the sync key in
// the URL. An empty slot is a 200 with version 0, not a 404: the client
// uses it to detect that it must seed the remote.
func (h *Handler) fetchSnapshot(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	syncKey := chi.URLParam(r, "syncKey")
	if err := h.checkSyncKeyAccess(ctx, syncKey); err != nil {
		log.Err(err).Str("func", "*Handler.fetchSnapshot").Msg("sync key access denied")
		http.Error(w, err.Error(), http.StatusForbidden)
		return
	}

	snapshot, err := h.services.SnapshotService.GetLatest(ctx, syncKey)
	if err != nil {
		log.Err(err).Str("func", "*Handler.fetchSnapshot").Msg("failed to get latest snapshot")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	if _, err = utils.WriteJSON(w, snapshot, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.fetchSnapshot").Msg("failed to write response")
	}
}

// storeSnapshot persists a new snapshot version for the sync key in the
// URL. A version that was already written answers 409 so the uploading
// client can re-pull.
func (h *Handler) storeSnapshot(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	syncKey := chi.URLParam(r, "syncKey")
	if err := h.checkSyncKeyAccess(ctx, syncKey); err != nil {
		log.Err(err).Str("func", "*Handler.storeSnapshot").Msg("sync key access denied")
		http.Error(w, err.Error(), http.StatusForbidden)
		return
	}

	var req models.StoreSnapshotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.storeSnapshot").Msg("failed to decode request body")
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if err := h.services.SnapshotService.Store(ctx, syncKey, req); err != nil {
		log.Err(err).Str("func", "*Handler.storeSnapshot").Msg("failed to store snapshot")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// checkSyncKeyAccess verifies that the sync key addressed by the request is
// the one the bearer token was issued for.
func (h *Handler) checkSyncKeyAccess(ctx context.Context, syncKey string) error {
	if syncKey == "" {
		return ErrEmptySyncKey
	}

	tokenSyncKey, ok := utils.GetSyncKeyFromContext(ctx)
	if !ok || tokenSyncKey != syncKey {
		return ErrForeignSyncKey
	}

	return nil
}
