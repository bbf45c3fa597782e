// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-bookmark-sync/internal/logger"
)

type stateRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

func NewStateRepository(db *DB, logger *logger.Logger) StateRepository {
	return &stateRepository{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (s *stateRepository) Get(ctx context.Context, key string) (string, error) {
	query, args, err := s.db.buildGetStateQuery(key)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: %s", ErrStateNotFound, key)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "stateRepository.Get").Str("key", key).Msg("failed to read sync state")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, s.db.classify(err))
	}

	return value, nil
}

func (s *stateRepository) Set(ctx context.Context, key, value string) error {
	query, args, err := s.db.buildUpsertStateQuery(key, value, s.now().UnixMilli())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "stateRepository.Set").Str("key", key).Msg("failed to write sync state")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, s.db.classify(err))
	}

	return nil
}

func (s *stateRepository) Delete(ctx context.Context, key string) error {
	query, args, err := s.db.buildDeleteStateQuery(key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "stateRepository.Delete").Str("key", key).Msg("failed to delete sync state")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, s.db.classify(err))
	}

	return nil
}
