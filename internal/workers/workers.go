// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-bookmark-sync/internal/logger"
)

type namedWorker struct {
	name   string
	worker Worker
}

// Workers runs a set of workers under one errgroup. The first failure
// cancels the others.
type Workers struct {
	workers []namedWorker
	logger  *logger.Logger
}

func NewWorkers(logger *logger.Logger) *Workers {
	return &Workers{logger: logger}
}

// Add registers worker under name. A nil worker is skipped so optional
// components can be passed unconditionally.
func (w *Workers) Add(name string, worker Worker) *Workers {
	if worker == nil {
		return w
	}
	w.workers = append(w.workers, namedWorker{name: name, worker: worker})
	return w
}

// Len returns the number of registered workers.
func (w *Workers) Len() int {
	return len(w.workers)
}

// Run starts every worker and blocks until all of them return. It returns
// the first error, prefixed with the name of the worker that failed.
func (w *Workers) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	for _, nw := range w.workers {
		g.Go(func() error {
			w.logger.Info().Str("worker", nw.name).Msg("worker started")
			if err := nw.worker.Run(ctx); err != nil {
				w.logger.Err(err).Str("func", "*Workers.Run").Str("worker", nw.name).Msg("worker failed")
				return fmt.Errorf("%s: %w", nw.name, err)
			}
			w.logger.Info().Str("worker", nw.name).Msg("worker stopped")
			return nil
		})
	}

	return g.Wait()
}
