// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-bookmark-sync/internal/adapter"
	"github.com/MKhiriev/go-bookmark-sync/internal/retry"
	"github.com/MKhiriev/go-bookmark-sync/internal/store"
	"github.com/MKhiriev/go-bookmark-sync/internal/validators"
	"github.com/MKhiriev/go-bookmark-sync/models"
)

// syncClassifier decides which failures the retry engine may repeat:
// rate limiting, 5xx, transient storage errors and network-level failures.
var syncClassifier = retry.Transient(adapter.ErrRateLimited, adapter.ErrServerError, store.ErrRetryable)

// classifyError wraps err into a [SyncError] for stage. Errors that already
// carry a kind are returned unchanged.
func classifyError(stage models.SyncStage, err error) error {
	if err == nil {
		return nil
	}

	var syncErr *SyncError
	if errors.As(err, &syncErr) {
		return err
	}

	return &SyncError{Stage: stage, Kind: errorKind(err), Err: err}
}

func errorKind(err error) error {
	switch {
	case errors.Is(err, retry.ErrRetriesExhausted):
		return ErrTransientTransport
	case errors.Is(err, adapter.ErrUnauthorized),
		errors.Is(err, adapter.ErrForbidden),
		errors.Is(err, adapter.ErrEmptyToken):
		return ErrAuthentication
	case errors.Is(err, adapter.ErrConflict):
		return ErrConflict
	case errors.Is(err, adapter.ErrInvalidPayload),
		isValidationError(err):
		return ErrValidation
	case syncClassifier(err):
		return ErrTransientTransport
	default:
		return ErrSyncFailed
	}
}

func isValidationError(err error) bool {
	for _, target := range []error{
		validators.ErrSchemaViolation,
		validators.ErrInvalidSchemaVersion,
		validators.ErrEmptyDeviceID,
		validators.ErrEmptyLastModified,
		validators.ErrEmptyNodeID,
		validators.ErrDuplicateNodeID,
		validators.ErrNegativeIndex,
		validators.ErrBookmarkWithChildren,
		validators.ErrParentIsBookmark,
		validators.ErrParentCycle,
		validators.ErrParentMismatch,
		validators.ErrMetadataMismatch,
		validators.ErrMetadataSchemaVersion,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
