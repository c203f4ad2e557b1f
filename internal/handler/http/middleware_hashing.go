package http

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"

	"github.com/MKhiriev/go-snap-sync/internal/utils"
	"github.com/MKhiriev/go-snap-sync/models"
)

// storeHashing verifies the HMAC signature of an uploaded snapshot before
// the handler runs. Requests without a hash field pass through untouched so
// clients with no hash key configured keep working.
func (h *Handler) storeHashing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.logger.Debug().Str("func", "*Handler.storeHashing").Msg("checking hash begins")

		// read bytes from body
		body, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Err(err).Str("func", "*Handler.storeHashing").Msg("failed to read request body")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		var req models.StoreSnapshotRequest
		if err := json.NewDecoder(bytes.NewReader(body)).Decode(&req); err != nil {
			h.logger.Err(err).Str("func", "*Handler.storeHashing").Msg("failed to decode JSON")
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		if req.Hash == "" {
			next.ServeHTTP(w, r)
			return
		}

		// Calculate hash from the encrypted payload
		hashedBody := hex.EncodeToString(utils.Hash([]byte(req.Content)))
		if !utils.HashEqual(hashedBody, req.Hash) {
			h.logger.Error().Str("func", "*Handler.storeHashing").
				Str("hash from request", req.Hash).
				Str("hashed body", hashedBody).
				Msg("hashes are not equal")
			http.Error(w, "Integrity check failed", http.StatusBadRequest)
			return
		}

		h.logger.Debug().Str("func", "*Handler.storeHashing").
			Str("hash from request", req.Hash).
			Str("hashed body", hashedBody).
			Msg("hashes are equal")

		next.ServeHTTP(w, r)
	})
}
