// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-bookmark-sync/internal/handler"
	"github.com/MKhiriev/go-bookmark-sync/internal/host"
	"github.com/MKhiriev/go-bookmark-sync/internal/server"
	"github.com/MKhiriev/go-bookmark-sync/internal/workers"
	"github.com/MKhiriev/go-bookmark-sync/models"
)

// runDaemon runs the sync job, the host watcher and the control API until
// ctx is done. The first cycle is requested before the job starts.
func (a *App) runDaemon(ctx context.Context) error {
	ws, err := a.daemonWorkers()
	if err != nil {
		return err
	}

	a.services.SyncJob.RequestSync()

	a.logger.Info().Int("workers", ws.Len()).Msg("daemon started")
	err = ws.Run(ctx)
	a.logger.Info().Msg("daemon stopped")

	return err
}

func (a *App) daemonWorkers() (*workers.Workers, error) {
	ws := workers.NewWorkers(a.logger).Add("sync-job", a.services.SyncJob)

	if a.cfg.Host.Watch && a.host != nil {
		watcher, err := host.NewWatcher(a.host.Path(), a.cfg.Host.Debounce, a.onHostChange, a.host, a.logger)
		if err != nil {
			return nil, fmt.Errorf("create host watcher: %w", err)
		}
		ws.Add("host-watcher", watcher)
	}

	if a.cfg.Server.HTTPAddress != "" {
		handlers, err := handler.NewHandlers(a.services, a.cfg, a.logger)
		if err != nil {
			return nil, fmt.Errorf("create handlers: %w", err)
		}
		srv, err := server.NewServer(handlers, a.cfg.Server, a.logger)
		if err != nil {
			return nil, fmt.Errorf("create server: %w", err)
		}
		ws.Add("control-api", srv)
	}

	return ws, nil
}

func (a *App) onHostChange(change models.HostChange) {
	a.logger.Debug().Str("kind", string(change.Kind)).Str("path", change.Path).Msg("host bookmarks changed")
	a.services.SyncJob.RequestSync()
}
