// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	tablePendingOperations = "pending_operations"
	tableSyncState         = "sync_state"
)

var pendingOperationColumns = []string{"id", "kind", "payload", "enqueued_at"}

func (db *DB) buildNextSeqQuery() (string, []any, error) {
	return db.builder.
		Select("COALESCE(MAX(seq), 0) + 1").
		From(tablePendingOperations).
		ToSql()
}

func (db *DB) buildInsertPendingQuery(seq int64, id, kind, payload string, enqueuedAt int64) (string, []any, error) {
	return db.builder.
		Insert(tablePendingOperations).
		Columns("id", "seq", "kind", "payload", "enqueued_at").
		Values(id, seq, kind, payload, enqueuedAt).
		ToSql()
}

func (db *DB) buildSelectPendingQuery() (string, []any, error) {
	return db.builder.
		Select(pendingOperationColumns...).
		From(tablePendingOperations).
		OrderBy("seq ASC").
		ToSql()
}

func (db *DB) buildDeletePendingQuery(id string) (string, []any, error) {
	return db.builder.
		Delete(tablePendingOperations).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func (db *DB) buildCountPendingQuery() (string, []any, error) {
	return db.builder.
		Select("COUNT(*)").
		From(tablePendingOperations).
		ToSql()
}

func (db *DB) buildGetStateQuery(key string) (string, []any, error) {
	return db.builder.
		Select("value").
		From(tableSyncState).
		Where(sq.Eq{"key": key}).
		ToSql()
}

// buildUpsertStateQuery relies on ON CONFLICT, supported by PostgreSQL and
// SQLite 3.24+.
func (db *DB) buildUpsertStateQuery(key, value string, updatedAt int64) (string, []any, error) {
	return db.builder.
		Insert(tableSyncState).
		Columns("key", "value", "updated_at").
		Values(key, value, updatedAt).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}

func (db *DB) buildDeleteStateQuery(key string) (string, []any, error) {
	return db.builder.
		Delete(tableSyncState).
		Where(sq.Eq{"key": key}).
		ToSql()
}
