// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-bookmark-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ErrorClassificator decides whether a driver error is transient.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// PendingOperationRepository persists the offline queue in FIFO order.
type PendingOperationRepository interface {
	// Append stores op after every entry already queued.
	Append(ctx context.Context, op models.PendingOperation) error
	// List returns all entries, oldest first.
	List(ctx context.Context) ([]models.PendingOperation, error)
	// Delete removes one entry by id.
	Delete(ctx context.Context, id string) error
	// Count returns the number of queued entries.
	Count(ctx context.Context) (int, error)
}

// StateRepository is a small key/value store for sync bookkeeping.
type StateRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
