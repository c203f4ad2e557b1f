// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
)

// psql is the shared statement builder configured for PostgreSQL ($N)
// placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildSelectLatestSnapshotQuery builds the SELECT returning the
// highest-version snapshot row stored for the given sync key.
func buildSelectLatestSnapshotQuery(syncKey string) (string, []any, error) {
	return psql.
		Select("version", "content").
		From("snapshots").
		Where(sq.Eq{"sync_key": syncKey}).
		OrderBy("version DESC").
		Limit(1).
		ToSql()
}

// buildInsertSnapshotQuery builds the INSERT persisting a new immutable
// snapshot version for the given sync key.
func buildInsertSnapshotQuery(syncKey string, version uint64, content string) (string, []any, error) {
	return psql.
		Insert("snapshots").
		Columns("sync_key", "version", "content").
		Values(syncKey, version, content).
		ToSql()
}
