// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the bookmark synchronization engine: tree
// normalization, envelope construction, merge, the offline queue and the
// sync orchestrator that drives one cycle at a time.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-bookmark-sync/models"
)

//go:generate mockgen -destination=../mock/service_mock.go -package=mock github.com/MKhiriev/go-bookmark-sync/internal/service AppInfoService,ClientSyncJob,ClientSyncService

// ClientSyncService drives sync cycles and answers status queries.
type ClientSyncService interface {
	// TriggerSync runs one cycle and returns its outcome. It returns
	// ErrSyncInProgress without doing anything when a cycle is running.
	// A failed cycle returns both the recorded outcome and a *SyncError.
	TriggerSync(ctx context.Context) (models.SyncOutcome, error)

	// DrainQueue authenticates and replays the offline queue.
	DrainQueue(ctx context.Context) (int, error)

	Status(ctx context.Context) (models.SyncStatus, error)
	LastOutcome(ctx context.Context) (models.SyncOutcome, error)
	PendingOperations(ctx context.Context) ([]models.PendingOperation, error)

	// History returns recorded outcomes and errors, newest first.
	History(ctx context.Context, limit int) (models.SyncHistory, error)

	// Revisions lists earlier remote versions that Rollback accepts.
	Revisions(ctx context.Context) ([]models.RemoteRevision, error)
	Rollback(ctx context.Context, revision string) (models.SyncOutcome, error)

	// Backup exports the host tree. Restore adds the backup nodes missing
	// from the host and returns how many were added.
	Backup(ctx context.Context) (models.Backup, error)
	Restore(ctx context.Context, backup models.Backup) (int, error)

	// Subscribe registers a progress listener with the given buffer size.
	// The returned function unsubscribes and closes the channel.
	Subscribe(buffer int) (<-chan models.ProgressEvent, func())
}

// ReplayFunc replays one queued operation against the remote.
type ReplayFunc func(ctx context.Context, op models.PendingOperation) error

// OfflineQueue is the durable FIFO of envelopes that could not be written.
type OfflineQueue interface {
	Enqueue(ctx context.Context, env models.SyncEnvelope) (models.PendingOperation, error)
	// Drain replays operations in enqueue order and stops at the first
	// failure. It returns the number of operations replayed.
	Drain(ctx context.Context, replay ReplayFunc) (int, error)
	PeekAll(ctx context.Context) ([]models.PendingOperation, error)
	Len(ctx context.Context) (int, error)
}

// SyncStateStore persists sync bookkeeping by key.
type SyncStateStore interface {
	DeviceID(ctx context.Context, override string, now time.Time) (string, error)
	LastSyncAt(ctx context.Context) (time.Time, error)
	RecordSuccess(ctx context.Context, at time.Time, counts models.EnvelopeCounts) error
	LastCounts(ctx context.Context) (models.EnvelopeCounts, error)
	RecordOutcome(ctx context.Context, outcome models.SyncOutcome) error
	LastOutcome(ctx context.Context) (models.SyncOutcome, error)
	RecordError(ctx context.Context, entry models.ErrorLogEntry) error
	History(ctx context.Context, limit int) (models.SyncHistory, error)
	GistID(ctx context.Context) (string, error)
	SetGistID(ctx context.Context, id string) error
}

// ClientSyncJob requests cycles on a timer and on demand.
type ClientSyncJob interface {
	// Run blocks until ctx is done.
	Run(ctx context.Context) error

	// RequestSync asks for a cycle without blocking. Requests arriving while
	// one is pending are merged into it; requests arriving while a cycle
	// runs are dropped.
	RequestSync()
}

// AppInfoService exposes build information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
