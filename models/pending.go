// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// OperationKind is the kind of a queued write intent.
type OperationKind string

// OperationKindUpdate replaces the remote document with the payload. Other
// kinds are reserved for granular operations.
const OperationKindUpdate OperationKind = "update"

// PendingOperation is a write intent queued while the remote was unreachable.
type PendingOperation struct {
	ID         string        `json:"id"`
	Kind       OperationKind `json:"kind"`
	Payload    SyncEnvelope  `json:"payload"`
	EnqueuedAt time.Time     `json:"enqueuedAt"`
}

// QueueEntry describes one pending operation without its payload.
type QueueEntry struct {
	ID          string        `json:"id"`
	Kind        OperationKind `json:"kind"`
	EnqueuedAt  time.Time     `json:"enqueuedAt"`
	TotalCount  int           `json:"totalCount"`
	FolderCount int           `json:"folderCount"`
}

// QueueResponse lists the offline queue in replay order.
type QueueResponse struct {
	Entries []QueueEntry `json:"entries"`
	Length  int          `json:"length"`
}

// SummarizeQueue builds a [QueueResponse] from ops, keeping their order.
func SummarizeQueue(ops []PendingOperation) QueueResponse {
	entries := make([]QueueEntry, 0, len(ops))
	for _, op := range ops {
		entries = append(entries, QueueEntry{
			ID:          op.ID,
			Kind:        op.Kind,
			EnqueuedAt:  op.EnqueuedAt,
			TotalCount:  op.Payload.Metadata.TotalCount,
			FolderCount: op.Payload.Metadata.FolderCount,
		})
	}
	return QueueResponse{Entries: entries, Length: len(entries)}
}

// DrainResponse reports a manual queue drain.
type DrainResponse struct {
	Replayed int    `json:"replayed"`
	Error    string `json:"error,omitempty"`
}
