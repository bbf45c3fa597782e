// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-bookmark-sync/internal/logger"
	"github.com/MKhiriev/go-bookmark-sync/internal/store"
	"github.com/MKhiriev/go-bookmark-sync/internal/utils"
	"github.com/MKhiriev/go-bookmark-sync/internal/validators"
	"github.com/MKhiriev/go-bookmark-sync/models"
)

type idGenerator interface {
	Generate() string
}

type offlineQueue struct {
	repo      store.PendingOperationRepository
	validator validators.Validator
	ids       idGenerator
	now       func() time.Time
	logger    *logger.Logger

	// mu keeps appends and drains from interleaving.
	mu sync.Mutex
}

func NewOfflineQueue(repo store.PendingOperationRepository, validator validators.Validator, logger *logger.Logger) OfflineQueue {
	return &offlineQueue{
		repo:      repo,
		validator: validator,
		ids:       utils.NewUUIDGenerator(),
		now:       time.Now,
		logger:    logger,
	}
}

func (q *offlineQueue) Enqueue(ctx context.Context, env models.SyncEnvelope) (models.PendingOperation, error) {
	op := models.PendingOperation{
		ID:         q.ids.Generate(),
		Kind:       models.OperationKindUpdate,
		Payload:    env,
		EnqueuedAt: q.now().UTC(),
	}
	if err := q.validator.Validate(ctx, op); err != nil {
		return models.PendingOperation{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	if last, ok, err := q.sameAsNewest(ctx, env); err != nil {
		return models.PendingOperation{}, err
	} else if ok {
		q.logger.Debug().Str("func", "*offlineQueue.Enqueue").Str("id", last.ID).Msg("tree unchanged since the newest queued envelope")
		return last, nil
	}

	if err := q.repo.Append(ctx, op); err != nil {
		return models.PendingOperation{}, fmt.Errorf("enqueue pending operation: %w", err)
	}

	q.logger.Info().Str("func", "*offlineQueue.Enqueue").Str("id", op.ID).
		Int("total_count", env.Metadata.TotalCount).Msg("envelope queued for later")
	return op, nil
}

// sameAsNewest reports whether the newest queued envelope carries the same
// nodes as env. Replaying both would write the same content twice.
func (q *offlineQueue) sameAsNewest(ctx context.Context, env models.SyncEnvelope) (models.PendingOperation, bool, error) {
	ops, err := q.repo.List(ctx)
	if err != nil {
		return models.PendingOperation{}, false, fmt.Errorf("list pending operations: %w", err)
	}
	if len(ops) == 0 {
		return models.PendingOperation{}, false, nil
	}

	last := ops[len(ops)-1]
	lastSum, err := NodesFingerprint(last.Payload.Nodes)
	if err != nil {
		return models.PendingOperation{}, false, err
	}
	sum, err := NodesFingerprint(env.Nodes)
	if err != nil {
		return models.PendingOperation{}, false, err
	}
	return last, lastSum == sum, nil
}

func (q *offlineQueue) PeekAll(ctx context.Context) ([]models.PendingOperation, error) {
	ops, err := q.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pending operations: %w", err)
	}
	return ops, nil
}

func (q *offlineQueue) Len(ctx context.Context) (int, error) {
	n, err := q.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count pending operations: %w", err)
	}
	return n, nil
}

// Drain replays queued operations oldest first. Each replayed operation is
// removed before the next one starts. The first replay failure stops the
// drain and leaves that operation and all later ones queued. Operations that
// can never be replayed because they fail validation are dropped.
func (q *offlineQueue) Drain(ctx context.Context, replay ReplayFunc) (int, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	ops, err := q.repo.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list pending operations: %w", err)
	}

	replayed := 0
	for _, op := range ops {
		if err = ctx.Err(); err != nil {
			return replayed, err
		}

		if err = q.validator.Validate(ctx, op); err != nil {
			q.logger.Err(err).Str("func", "*offlineQueue.Drain").Str("id", op.ID).Msg("dropping invalid pending operation")
			if err = q.repo.Delete(ctx, op.ID); err != nil {
				return replayed, fmt.Errorf("remove invalid pending operation %s: %w", op.ID, err)
			}
			continue
		}

		if err = replay(ctx, op); err != nil {
			return replayed, fmt.Errorf("replay pending operation %s: %w", op.ID, err)
		}

		if err = q.repo.Delete(ctx, op.ID); err != nil {
			return replayed, fmt.Errorf("remove replayed operation %s: %w", op.ID, err)
		}
		replayed++
	}

	if replayed > 0 {
		q.logger.Info().Str("func", "*offlineQueue.Drain").Int("replayed", replayed).Msg("offline queue drained")
	}
	return replayed, nil
}
