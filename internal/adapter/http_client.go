package adapter

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/go-snap-sync/internal/config"
	"github.com/MKhiriev/go-snap-sync/internal/logger"
	"github.com/MKhiriev/go-snap-sync/models"
	"github.com/go-resty/resty/v2"
)

type httpBlobStore struct {
	client  *resty.Client
	hashKey string
	logger  *logger.Logger
}

// NewHTTPBlobStore constructs a [BlobStore] backed by the snapshot HTTP API.
// The bearer token is static for the agent's lifetime; it is issued out of
// band for exactly one sync key.
func NewHTTPBlobStore(cfg config.ClientAdapter, app config.ClientApp, log *logger.Logger) (BlobStore, error) {
	if cfg.HTTPAddress == "" {
		return nil, fmt.Errorf("blob store address is required")
	}
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.HTTPAddress, "/")).
		SetTimeout(timeout)

	if cfg.Token != "" {
		cli.SetAuthToken(cfg.Token)
	}

	log.Info().Str("base_url", cfg.HTTPAddress).Msg("blob store adapter created")

	return &httpBlobStore{client: cli, hashKey: app.HashKey, logger: log}, nil
}

// Fetch implements [BlobStore]. It GETs the slot and decodes the
// {version, content} pair; the server answers 200 with version 0 for a slot
// that has never been written.
func (h *httpBlobStore) Fetch(ctx context.Context, syncKeyID string) (models.RemoteSnapshot, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("syncKey", syncKeyID).
		Get("/api/snapshot/{syncKey}")
	if err != nil {
		return models.RemoteSnapshot{}, fmt.Errorf("fetch snapshot request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RemoteSnapshot{}, err
	}

	var snapshot models.RemoteSnapshot
	if err = json.Unmarshal(resp.Body(), &snapshot); err != nil {
		return models.RemoteSnapshot{}, fmt.Errorf("decode snapshot response: %w", err)
	}

	return snapshot, nil
}

// Store implements [BlobStore]. The request body carries the version tag,
// the encrypted content, and an HMAC signature of the content when the
// agent has a hash key configured.
func (h *httpBlobStore) Store(ctx context.Context, syncKeyID string, version uint64, content string) error {
	req := models.StoreSnapshotRequest{
		Version: version,
		Content: content,
		Hash:    computeContentHash(content, h.hashKey),
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("syncKey", syncKeyID).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Put("/api/snapshot/{syncKey}")
	if err != nil {
		return fmt.Errorf("store snapshot request: %w", err)
	}

	return mapHTTPError(resp)
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	bodyLower := strings.ToLower(body)

	if resp.StatusCode() == http.StatusUnauthorized || resp.StatusCode() == http.StatusForbidden {
		return ErrUnauthorized
	}
	if resp.StatusCode() == http.StatusConflict || strings.Contains(bodyLower, "version conflict") {
		return ErrVersionConflict
	}
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
}

func computeContentHash(content, key string) string {
	if key == "" {
		return ""
	}
	h := hmac.New(sha256.New, []byte(key))
	h.Write([]byte(content))
	return hex.EncodeToString(h.Sum(nil))
}
