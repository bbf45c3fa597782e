// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-bookmark-sync/internal/logger"
)

const (
	defaultSyncInterval = 5 * time.Minute
	minSyncInterval     = time.Minute
)

type clientSyncJob struct {
	syncService ClientSyncService
	interval    time.Duration
	autoSync    bool
	requests    chan struct{}
	logger      *logger.Logger

	busy atomic.Bool
}

// NewClientSyncJob creates a job that triggers a cycle every interval when
// autoSync is set, and whenever RequestSync is called. Intervals below one
// minute are raised to it; zero selects five minutes.
func NewClientSyncJob(syncService ClientSyncService, interval time.Duration, autoSync bool, logger *logger.Logger) ClientSyncJob {
	switch {
	case interval <= 0:
		interval = defaultSyncInterval
	case interval < minSyncInterval:
		interval = minSyncInterval
	}

	return &clientSyncJob{
		syncService: syncService,
		interval:    interval,
		autoSync:    autoSync,
		requests:    make(chan struct{}, 1),
		logger:      logger,
	}
}

// RequestSync implements ClientSyncJob. At most one request is kept pending
// and requests made while a cycle runs are dropped.
func (j *clientSyncJob) RequestSync() {
	if j.busy.Load() {
		j.logger.Debug().Str("func", "*clientSyncJob.RequestSync").Msg("sync running, request dropped")
		return
	}
	select {
	case j.requests <- struct{}{}:
	default:
	}
}

// Run implements ClientSyncJob. Changes noticed during a cycle are left to
// the next timer tick.
func (j *clientSyncJob) Run(ctx context.Context) error {
	var tick <-chan time.Time
	if j.autoSync {
		t := time.NewTicker(j.interval)
		defer t.Stop()
		tick = t.C
	}

	j.logger.Info().Str("func", "*clientSyncJob.Run").Bool("auto_sync", j.autoSync).Dur("interval", j.interval).Msg("sync job started")

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-tick:
			j.sync(ctx, "timer")
		case <-j.requests:
			j.sync(ctx, "request")
		}
	}
}

func (j *clientSyncJob) sync(ctx context.Context, reason string) {
	j.busy.Store(true)
	_, err := j.syncService.TriggerSync(ctx)
	// a request may have slipped in between the busy check and the store
	select {
	case <-j.requests:
	default:
	}
	j.busy.Store(false)

	switch {
	case err == nil:
	case errors.Is(err, ErrSyncInProgress):
		j.logger.Debug().Str("func", "*clientSyncJob.sync").Str("reason", reason).Msg("sync already running, request dropped")
	default:
		j.logger.Err(err).Str("func", "*clientSyncJob.sync").Str("reason", reason).Msg("scheduled sync failed")
	}
}
