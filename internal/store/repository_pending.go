// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-bookmark-sync/internal/logger"
	"github.com/MKhiriev/go-bookmark-sync/models"
)

type pendingOperationRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewPendingOperationRepository(db *DB, logger *logger.Logger) PendingOperationRepository {
	return &pendingOperationRepository{
		db:     db,
		logger: logger,
	}
}

// Append assigns the next sequence number inside a transaction so that
// concurrent appends keep a strict order.
func (p *pendingOperationRepository) Append(ctx context.Context, op models.PendingOperation) error {
	log := logger.FromContext(ctx)

	payload, err := json.Marshal(op.Payload)
	if err != nil {
		log.Err(err).Str("func", "pendingOperationRepository.Append").Str("id", op.ID).Msg("failed to encode payload")
		return fmt.Errorf("%w: %w", ErrEncodingPayload, err)
	}

	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "pendingOperationRepository.Append").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, p.db.classify(err))
	}
	defer tx.Rollback()

	seqQuery, seqArgs, err := p.db.buildNextSeqQuery()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var seq int64
	if err = tx.QueryRowContext(ctx, seqQuery, seqArgs...).Scan(&seq); err != nil {
		log.Err(err).Str("func", "pendingOperationRepository.Append").Msg("failed to compute next sequence number")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, p.db.classify(err))
	}

	query, args, err := p.db.buildInsertPendingQuery(seq, op.ID, string(op.Kind), string(payload), op.EnqueuedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "pendingOperationRepository.Append").
			Str("id", op.ID).
			Int64("seq", seq).
			Msg("failed to insert pending operation")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, p.db.classify(err))
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "pendingOperationRepository.Append").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, p.db.classify(err))
	}

	return nil
}

func (p *pendingOperationRepository) List(ctx context.Context) ([]models.PendingOperation, error) {
	log := logger.FromContext(ctx)

	query, args, err := p.db.buildSelectPendingQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := p.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "pendingOperationRepository.List").Msg("failed to query pending operations")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, p.db.classify(err))
	}
	defer rows.Close()

	var ops []models.PendingOperation
	for rows.Next() {
		var (
			op         models.PendingOperation
			kind       string
			payload    string
			enqueuedAt int64
		)
		if err = rows.Scan(&op.ID, &kind, &payload, &enqueuedAt); err != nil {
			log.Err(err).Str("func", "pendingOperationRepository.List").Msg("failed to scan pending operation row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		if err = json.Unmarshal([]byte(payload), &op.Payload); err != nil {
			log.Err(err).Str("func", "pendingOperationRepository.List").Str("id", op.ID).Msg("failed to decode payload")
			return nil, fmt.Errorf("%w (id=%s): %w", ErrDecodingPayload, op.ID, err)
		}
		op.Kind = models.OperationKind(kind)
		op.EnqueuedAt = time.UnixMilli(enqueuedAt).UTC()
		ops = append(ops, op)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "pendingOperationRepository.List").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, p.db.classify(err))
	}

	return ops, nil
}

func (p *pendingOperationRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := p.db.buildDeletePendingQuery(id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := p.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "pendingOperationRepository.Delete").Str("id", id).Msg("failed to delete pending operation")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, p.db.classify(err))
	}

	affected, err := res.RowsAffected()
	if err == nil && affected == 0 {
		return fmt.Errorf("%w: %s", ErrPendingOperationNotFound, id)
	}

	return nil
}

func (p *pendingOperationRepository) Count(ctx context.Context) (int, error) {
	query, args, err := p.db.buildCountPendingQuery()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var n int
	if err = p.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "pendingOperationRepository.Count").Msg("failed to count pending operations")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, p.db.classify(err))
	}

	return n, nil
}
