// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-bookmark-sync/internal/adapter"
	"github.com/MKhiriev/go-bookmark-sync/internal/config"
	"github.com/MKhiriev/go-bookmark-sync/internal/host"
	"github.com/MKhiriev/go-bookmark-sync/internal/logger"
	"github.com/MKhiriev/go-bookmark-sync/internal/service"
	"github.com/MKhiriev/go-bookmark-sync/internal/store"
	"github.com/MKhiriev/go-bookmark-sync/internal/tui"
)

// Run modes.
const (
	CommandRun    = "run"
	CommandSync   = "sync"
	CommandStatus = "status"
	CommandQueue  = "queue"
	CommandDrain  = "drain"
	CommandToken  = "token"

	CommandHistory  = "history"
	CommandRollback = "rollback"
	CommandBackup   = "backup"
	CommandRestore  = "restore"
)

type App struct {
	cfg      *config.ClientConfig
	services *service.ClientServices
	storages io.Closer
	host     *host.ChromeStore
	ui       *tui.TUI

	logger *logger.Logger
}

// NewApp opens storage, builds the remote and host adapters and wires the
// services. Output of one-shot commands goes to out.
func NewApp(ctx context.Context, cfg *config.ClientConfig, out io.Writer, logger *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	remote, err := adapter.NewRemoteStore(cfg.Remote, logger)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create remote store: %w", err)
	}

	chrome, err := host.NewChromeStore(cfg.Host.BookmarksFile, logger)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("open host bookmarks: %w", err)
	}

	services, err := service.NewClientServices(ctx, cfg, storages, remote, chrome, chrome, logger)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create client services: %w", err)
	}

	logger.Info().
		Str("device_id", services.DeviceID).
		Str("remote", cfg.Remote.Kind).
		Bool("write_back", cfg.Host.WriteBack).
		Msg("client app created")

	return &App{
		cfg:      cfg,
		services: services,
		storages: storages,
		host:     chrome,
		ui:       tui.New(out, logger),
		logger:   logger,
	}, nil
}

// Run dispatches on the configured command. An empty command selects the
// daemon.
func (a *App) Run(ctx context.Context) error {
	switch a.cfg.Command {
	case "", CommandRun:
		return a.runDaemon(ctx)
	case CommandSync:
		return a.syncOnce(ctx)
	case CommandStatus:
		return a.printStatus(ctx)
	case CommandQueue:
		return a.printQueue(ctx)
	case CommandDrain:
		return a.drainQueue(ctx)
	case CommandToken:
		return a.printToken()
	case CommandHistory:
		return a.printHistory(ctx)
	case CommandRollback:
		return a.rollback(ctx)
	case CommandBackup:
		return a.backup(ctx)
	case CommandRestore:
		return a.restore(ctx)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, a.cfg.Command)
	}
}

func (a *App) Close() error {
	if a.storages == nil {
		return nil
	}
	return a.storages.Close()
}
