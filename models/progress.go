// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncState is the orchestrator state.
type SyncState string

const (
	SyncStateIdle    SyncState = "idle"
	SyncStateSyncing SyncState = "syncing"
	SyncStateSuccess SyncState = "success"
	SyncStateError   SyncState = "error"
)

// SyncStage is an internal step of a running cycle, reported for progress only.
type SyncStage string

const (
	StageReadingLocal   SyncStage = "reading_local"
	StageAuthenticating SyncStage = "authenticating"
	StageFetchingRemote SyncStage = "fetching_remote"
	StageMerging        SyncStage = "merging"
	StageWriting        SyncStage = "writing"
	StageRecording      SyncStage = "recording"
	StageDraining       SyncStage = "draining"
)

// ProgressEventType is the kind of a progress notification.
type ProgressEventType string

const (
	ProgressStart    ProgressEventType = "start"
	ProgressProgress ProgressEventType = "progress"
	ProgressRetrying ProgressEventType = "retrying"
	ProgressSuccess  ProgressEventType = "success"
	ProgressError    ProgressEventType = "error"
)

// ProgressEvent is published on the progress stream during a sync cycle.
type ProgressEvent struct {
	Type    ProgressEventType `json:"type"`
	Stage   SyncStage         `json:"stage,omitempty"`
	Percent int               `json:"percent"`
	Message string            `json:"message,omitempty"`
	At      time.Time         `json:"at"`
}

// SyncAction tells what a successful cycle did to the remote document.
type SyncAction string

const (
	SyncActionFirstSync  SyncAction = "first_sync"
	SyncActionUploaded   SyncAction = "uploaded"
	SyncActionMerged     SyncAction = "merged"
	SyncActionRolledBack SyncAction = "rolled_back"
)

// SyncOutcome is the recorded result of the last finished cycle.
type SyncOutcome struct {
	State       SyncState  `json:"state"`
	Action      SyncAction `json:"action,omitempty"`
	Queued      bool       `json:"queued"`
	Error       string     `json:"error,omitempty"`
	StartedAt   time.Time  `json:"startedAt"`
	FinishedAt  time.Time  `json:"finishedAt"`
	TotalCount  int        `json:"totalCount"`
	FolderCount int        `json:"folderCount"`
	Replayed    int        `json:"replayed"`
}

// SyncStatus is the answer to the "get status" query.
type SyncStatus struct {
	State       SyncState   `json:"state"`
	LastOutcome SyncOutcome `json:"lastOutcome"`
	LastSyncAt  time.Time   `json:"lastSyncAt"`
	Pending     int         `json:"pending"`
}
