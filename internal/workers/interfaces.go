// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the long-lived parts of the daemon together: the
// auto-sync job, the host change watcher and the control API server.
package workers

import "context"

// Worker is a long-running component. Run blocks until ctx is done or the
// worker fails.
//
// Example implementation:
//
//	type ticker struct{ every time.Duration }
//
//	func (w *ticker) Run(ctx context.Context) error {
//	    t := time.NewTicker(w.every)
//	    defer t.Stop()
//	    for {
//	        select {
//	        case <-ctx.Done():
//	            return nil
//	        case <-t.C:
//	        }
//	    }
//	}
type Worker interface {
	Run(ctx context.Context) error
}

// WorkerFunc adapts a function to [Worker].
type WorkerFunc func(ctx context.Context) error

func (f WorkerFunc) Run(ctx context.Context) error { return f(ctx) }
