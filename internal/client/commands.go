// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-bookmark-sync/internal/host"
	"github.com/MKhiriev/go-bookmark-sync/internal/service"
	"github.com/MKhiriev/go-bookmark-sync/internal/utils"
	"github.com/MKhiriev/go-bookmark-sync/models"
)

const (
	progressBuffer = 16

	// statusHistoryLimit is how many recent outcomes the status command shows.
	statusHistoryLimit = 5
)

// syncOnce runs one cycle, printing progress while it runs.
func (a *App) syncOnce(ctx context.Context) error {
	events, unsubscribe := a.services.SyncService.Subscribe(progressBuffer)
	printed := make(chan struct{})
	go func() {
		defer close(printed)
		for ev := range events {
			a.ui.Progress(ev)
		}
	}()

	outcome, err := a.services.SyncService.TriggerSync(ctx)
	unsubscribe()
	<-printed

	if errors.Is(err, service.ErrSyncInProgress) {
		return err
	}
	a.ui.Outcome(outcome)

	return err
}

func (a *App) printStatus(ctx context.Context) error {
	status, err := a.services.SyncService.Status(ctx)
	if err != nil {
		return fmt.Errorf("get status: %w", err)
	}
	history, err := a.services.SyncService.History(ctx, statusHistoryLimit)
	if err != nil {
		return fmt.Errorf("get history: %w", err)
	}
	a.ui.Status(status)
	a.ui.History(history)
	return nil
}

func (a *App) printHistory(ctx context.Context) error {
	history, err := a.services.SyncService.History(ctx, 0)
	if err != nil {
		return fmt.Errorf("get history: %w", err)
	}
	a.ui.History(history)
	return nil
}

// rollback lists the remote revisions when none is given, and otherwise
// writes the chosen one back as the remote document.
func (a *App) rollback(ctx context.Context) error {
	revision, ok := a.argument()
	if !ok {
		revisions, err := a.services.SyncService.Revisions(ctx)
		if err != nil {
			return fmt.Errorf("list revisions: %w", err)
		}
		a.ui.Revisions(revisions)
		return nil
	}

	outcome, err := a.services.SyncService.Rollback(ctx, revision)
	if errors.Is(err, service.ErrSyncInProgress) || errors.Is(err, service.ErrEmptyRevision) {
		return err
	}
	a.ui.Outcome(outcome)

	return err
}

func (a *App) backup(ctx context.Context) error {
	path, ok := a.argument()
	if !ok {
		return fmt.Errorf("%w: backup <file>", ErrMissingArgument)
	}

	backup, err := a.services.SyncService.Backup(ctx)
	if err != nil {
		return fmt.Errorf("create backup: %w", err)
	}
	if err = host.WriteBackup(path, backup); err != nil {
		return err
	}
	a.ui.Backup(path, backup)

	return nil
}

func (a *App) restore(ctx context.Context) error {
	path, ok := a.argument()
	if !ok {
		return fmt.Errorf("%w: restore <file>", ErrMissingArgument)
	}

	backup, err := host.ReadBackup(path)
	if err != nil {
		return err
	}
	added, err := a.services.SyncService.Restore(ctx, backup)
	if err != nil {
		return fmt.Errorf("restore %s: %w", path, err)
	}
	a.ui.Restore(models.RestoreResponse{Added: added})

	return nil
}

// argument returns the first positional argument after the command.
func (a *App) argument() (string, bool) {
	if len(a.cfg.CommandArgs) == 0 || a.cfg.CommandArgs[0] == "" {
		return "", false
	}
	return a.cfg.CommandArgs[0], true
}

func (a *App) printQueue(ctx context.Context) error {
	ops, err := a.services.SyncService.PendingOperations(ctx)
	if err != nil {
		return fmt.Errorf("list pending operations: %w", err)
	}
	a.ui.Queue(ops)
	return nil
}

func (a *App) drainQueue(ctx context.Context) error {
	replayed, err := a.services.SyncService.DrainQueue(ctx)

	result := models.DrainResponse{Replayed: replayed}
	if err != nil {
		result.Error = err.Error()
	}
	a.ui.Drain(result)

	return err
}

// printToken signs a control API token for this device.
func (a *App) printToken() error {
	if a.cfg.App.TokenSignKey == "" {
		return ErrTokenSignKeyNotSet
	}

	token, err := utils.GenerateJWTToken(a.cfg.App.TokenIssuer, a.services.DeviceID, a.cfg.App.TokenDuration, a.cfg.App.TokenSignKey)
	if err != nil {
		return fmt.Errorf("generate token: %w", err)
	}
	a.ui.Token(token)

	return nil
}
