// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-bookmark-sync/models"
)

// Sync error taxonomy. Every error returned by a sync cycle matches exactly
// one of these kinds through [errors.Is].
var (
	ErrValidation         = errors.New("envelope validation failed")
	ErrAuthentication     = errors.New("remote authentication failed")
	ErrTransientTransport = errors.New("remote temporarily unreachable")
	ErrConflict           = errors.New("remote document changed concurrently")
	ErrMerge              = errors.New("merge produced an invalid envelope")
	ErrSyncFailed         = errors.New("sync failed")

	// ErrQueuedForLater marks a cycle whose envelope was kept in the offline
	// queue after the remote stayed unreachable.
	ErrQueuedForLater = errors.New("remote unreachable, sync queued for later")

	// ErrSyncInProgress is returned when a cycle is requested while another
	// one is running. The request is dropped, not queued.
	ErrSyncInProgress = errors.New("sync already in progress")
)

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrEmptyDeviceID         = errors.New("device id is empty")
	ErrEmptyQueue            = errors.New("offline queue is empty")
	ErrEmptyRevision         = errors.New("revision id is empty")
	ErrBackupVersion         = errors.New("unsupported backup version")
	ErrReadOnlyHost          = errors.New("host bookmarks are read-only")
)

// SyncError is a classified failure of one cycle stage.
type SyncError struct {
	Stage models.SyncStage
	Kind  error
	Err   error
}

func (e *SyncError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %v", e.Stage, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %v", e.Stage, e.Kind, e.Err)
}

// Unwrap exposes both the kind sentinel and the cause.
func (e *SyncError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
