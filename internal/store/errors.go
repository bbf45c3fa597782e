// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrStateNotFound is returned when a sync_state key has never been written.
	ErrStateNotFound = errors.New("sync state key was not found")

	// ErrPendingOperationNotFound is returned when a queue entry to delete
	// no longer exists.
	ErrPendingOperationNotFound = errors.New("pending operation was not found")

	// ErrRetryable wraps driver errors classified as transient.
	ErrRetryable = errors.New("retryable storage error")

	// ErrUnsupportedDriver is returned for a driver other than sqlite3 or postgres.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrExecutingStatement   = errors.New("failed to execute statement")
	ErrScanningRow          = errors.New("failed to scan row")
	ErrDecodingPayload      = errors.New("failed to decode stored payload")
	ErrEncodingPayload      = errors.New("failed to encode payload for storage")
)
