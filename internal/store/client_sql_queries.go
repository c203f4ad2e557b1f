// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	getSettingValue = `
		SELECT value
		FROM settings
		WHERE key = $1;`

	upsertSettingValue = `
		INSERT INTO settings (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value;`

	seedSettingValue = `
		INSERT OR IGNORE INTO settings (key, value)
		VALUES ($1, $2);`

	upsertEntry = `
		INSERT INTO entries (
			id,
			data,
			updated_at,
			deleted
		) VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			data       = excluded.data,
			updated_at = excluded.updated_at,
			deleted    = excluded.deleted;`

	getSingleEntry = `
		SELECT
			id,
			data,
			updated_at,
			deleted
		FROM entries
		WHERE id = $1;`

	getAllEntries = `
		SELECT
			id,
			data,
			updated_at,
			deleted
		FROM entries
		WHERE deleted = false
		ORDER BY id;`

	getAllEntriesWithTombstones = `
		SELECT
			id,
			data,
			updated_at,
			deleted
		FROM entries
		ORDER BY id;`

	softDeleteEntry = `
		UPDATE entries SET
			deleted    = true,
			updated_at = $1
		WHERE id = $2;`

	mergeEntryIfNewer = `
		INSERT INTO entries (
			id,
			data,
			updated_at,
			deleted
		) VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			data       = excluded.data,
			updated_at = excluded.updated_at,
			deleted    = excluded.deleted
		WHERE excluded.updated_at > entries.updated_at;`
)
