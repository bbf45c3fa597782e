// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-bookmark-sync/internal/config"
	"github.com/MKhiriev/go-bookmark-sync/internal/logger"
)

// ClientStorages groups the repositories used by the sync client.
type ClientStorages struct {
	// PendingOperationRepository backs the offline queue.
	PendingOperationRepository PendingOperationRepository
	// StateRepository holds the device id, last-sync baseline and last outcome.
	StateRepository StateRepository

	db *DB
}

// NewClientStorages opens the configured database, applies migrations and
// wires the repositories to it.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Str("driver", cfg.DB.Driver).Msg("creating new storages...")

	db, err := NewConnect(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("%s connection error: %w", cfg.DB.Driver, err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newClientStorages(db, logger), nil
}

func newClientStorages(db *DB, logger *logger.Logger) *ClientStorages {
	return &ClientStorages{
		PendingOperationRepository: NewPendingOperationRepository(db, logger),
		StateRepository:            NewStateRepository(db, logger),
		db:                         db,
	}
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
