// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Entry is a single record in the local embedded database. Entries are the
// unit of local mutation; the whole collection is the unit of sync.
type Entry struct {
	// ID is the client-assigned identifier of the record.
	ID string `json:"id"`

	// Data is the application payload. The sync engine never interprets it.
	Data string `json:"data"`

	// UpdatedAt is the wall-clock time of the last local mutation. Snapshot
	// merges keep whichever side carries the newer timestamp.
	UpdatedAt time.Time `json:"updated_at"`

	// Deleted marks the record as soft-deleted so the deletion survives a
	// snapshot merge instead of being resurrected by an older copy.
	Deleted bool `json:"deleted"`
}

// DatabaseSnapshot is the plaintext on-disk form of a full database snapshot:
// what push encrypts before upload and what pull hands to the importer after
// decryption. There is no partial or delta form.
type DatabaseSnapshot struct {
	// ExportedAt records when the snapshot was taken.
	ExportedAt time.Time `json:"exported_at"`

	// Entries is the complete entry set, soft-deleted records included.
	Entries []Entry `json:"entries"`
}
