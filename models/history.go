// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// HistoryLimit bounds the persisted outcome history and the error log.
const HistoryLimit = 100

// ErrorLogEntry is one failure kept in the persisted error log. Operation
// names the entry point that failed: sync, drain, rollback or restore.
type ErrorLogEntry struct {
	ID        string    `json:"id"`
	At        time.Time `json:"at"`
	Operation string    `json:"operation"`
	Stage     SyncStage `json:"stage,omitempty"`
	Kind      string    `json:"kind,omitempty"`
	Message   string    `json:"message"`
}

// SyncHistory lists recorded outcomes and errors, newest first.
type SyncHistory struct {
	Outcomes []SyncOutcome   `json:"outcomes"`
	Errors   []ErrorLogEntry `json:"errors"`
}

// RemoteRevision is an earlier version of the remote document that can be
// restored.
type RemoteRevision struct {
	ID          string    `json:"id"`
	CommittedAt time.Time `json:"committedAt"`
}

// RollbackRequest selects the revision a rollback writes back.
type RollbackRequest struct {
	Revision string `json:"revision"`
}

// BackupVersion is the format version written into new backups.
const BackupVersion = "1.0.0"

// Backup is a local export of the bookmark tree.
type Backup struct {
	Version   string          `json:"version"`
	CreatedAt time.Time       `json:"createdAt"`
	Envelope  SyncEnvelope    `json:"envelope"`
	ErrorLogs []ErrorLogEntry `json:"errorLogs,omitempty"`
}

// RestoreResponse reports how many nodes a restore added to the host.
type RestoreResponse struct {
	Added int `json:"added"`
}
