// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RemoteSnapshot is the result of fetching the remote slot for a sync key.
//
// Version is the monotonically increasing tag the blob store keeps per sync
// key. Version 0 is the sentinel "no data yet" value: the slot has never been
// written and Content is empty.
//
// Content is the encrypted database snapshot exactly as stored; its binary
// shape is entirely the encryptor's contract and is opaque to everything else.
type RemoteSnapshot struct {
	// Version is the version tag of the stored blob, 0 when the slot is empty.
	Version uint64 `json:"version"`

	// Content is the base64 encrypted snapshot payload.
	Content string `json:"content"`
}

// StoreSnapshotRequest is the body of a snapshot upload.
type StoreSnapshotRequest struct {
	// Version is the version tag the client publishes this snapshot under.
	Version uint64 `json:"version"`

	// Content is the base64 encrypted snapshot payload.
	Content string `json:"content"`

	// Hash is an optional HMAC-SHA256 signature of Content used by the
	// server's integrity-check middleware. Empty when the client has no
	// hash key configured.
	Hash string `json:"hash,omitempty"`
}
