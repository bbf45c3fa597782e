// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-bookmark-sync/internal/adapter"
	"github.com/MKhiriev/go-bookmark-sync/internal/retry"
	"github.com/MKhiriev/go-bookmark-sync/models"
)

// ── History ──────────────────────────────────────────────────────────────────

func (s *clientSyncService) History(ctx context.Context, limit int) (models.SyncHistory, error) {
	return s.state.History(ctx, limit)
}

func (s *clientSyncService) Revisions(ctx context.Context) ([]models.RemoteRevision, error) {
	if _, err := retry.Do(ctx, s.retrier, s.remote.Authenticate); err != nil {
		return nil, classifyError(models.StageAuthenticating, err)
	}

	loc := s.currentLocation()
	revisions, err := retry.Do(ctx, s.retrier, func(ctx context.Context) ([]models.RemoteRevision, error) {
		return s.remote.Revisions(ctx, loc)
	})
	if err != nil {
		return nil, classifyError(models.StageFetchingRemote, err)
	}
	return revisions, nil
}

// ── Rollback ─────────────────────────────────────────────────────────────────

// Rollback writes the nodes of an earlier remote revision as the current
// remote document. The sync baseline is left alone, so the next cycle sees
// a newer remote and merges it with the host tree.
func (s *clientSyncService) Rollback(ctx context.Context, revision string) (models.SyncOutcome, error) {
	if revision == "" {
		return models.SyncOutcome{}, ErrEmptyRevision
	}
	if !s.running.CompareAndSwap(false, true) {
		return models.SyncOutcome{}, ErrSyncInProgress
	}
	defer s.running.Store(false)

	log := s.logger.GetChildLogger()
	s.publish(models.ProgressStart, "", 0, "rollback started")

	outcome := models.SyncOutcome{StartedAt: s.now().UTC()}
	written, err := s.rollback(ctx, revision)
	outcome.FinishedAt = s.now().UTC()

	if err != nil {
		outcome.State = models.SyncStateError
		outcome.Error = err.Error()
		log.Err(err).Str("func", "*clientSyncService.Rollback").Str("revision", revision).Msg("rollback failed")
		s.publish(models.ProgressError, s.currentStage(), 100, err.Error())
		s.recordError(ctx, "rollback", err)
	} else {
		outcome.State = models.SyncStateSuccess
		outcome.Action = models.SyncActionRolledBack
		outcome.TotalCount = written.Metadata.TotalCount
		outcome.FolderCount = written.Metadata.FolderCount
		log.Info().Str("func", "*clientSyncService.Rollback").Str("revision", revision).
			Int("total_count", outcome.TotalCount).Msg("remote rolled back")
		s.publish(models.ProgressSuccess, "", 100, string(outcome.Action))
	}

	if recErr := s.state.RecordOutcome(ctx, outcome); recErr != nil {
		log.Err(recErr).Str("func", "*clientSyncService.Rollback").Msg("failed to record rollback outcome")
	}
	s.setStage("")

	return outcome, err
}

// rollback replaces the remote document through the guarded write. A
// conflict is returned as is: the user picked a revision against a remote
// that has since moved.
func (s *clientSyncService) rollback(ctx context.Context, revision string) (models.SyncEnvelope, error) {
	loc := s.currentLocation()

	s.advance(models.StageAuthenticating)
	if _, err := retry.Do(ctx, s.retrier, s.remote.Authenticate); err != nil {
		return models.SyncEnvelope{}, classifyError(models.StageAuthenticating, err)
	}

	s.advance(models.StageFetchingRemote)
	old, err := retry.Do(ctx, s.retrier, func(ctx context.Context) (models.SyncEnvelope, error) {
		return s.remote.ReadRevision(ctx, loc, revision)
	})
	if err != nil {
		return models.SyncEnvelope{}, classifyError(models.StageFetchingRemote, err)
	}
	if err = s.validator.Validate(ctx, old); err != nil {
		return models.SyncEnvelope{}, &SyncError{Stage: models.StageFetchingRemote, Kind: ErrValidation, Err: err}
	}

	var expected models.ConcurrencyToken
	current, err := retry.Do(ctx, s.retrier, func(ctx context.Context) (models.RemoteSnapshot, error) {
		return s.remote.Read(ctx, loc)
	})
	switch {
	case errors.Is(err, adapter.ErrNotFound):
	case err != nil:
		return models.SyncEnvelope{}, classifyError(models.StageFetchingRemote, err)
	default:
		expected = current.Token
	}

	toWrite := NewEnvelope(old.Nodes, s.deviceID, s.now())
	toWrite.Metadata.LastSync = s.now().UTC()

	s.advance(models.StageWriting)
	written, err := retry.Do(ctx, s.retrier, func(ctx context.Context) (models.WriteResult, error) {
		return s.remote.Write(ctx, loc, toWrite, expected)
	})
	if err != nil {
		return models.SyncEnvelope{}, classifyError(models.StageWriting, err)
	}

	s.adoptLocation(ctx, written.Location)
	return toWrite, nil
}

// ── Backup ───────────────────────────────────────────────────────────────────

// Backup exports the host tree as an envelope together with the error log.
func (s *clientSyncService) Backup(ctx context.Context) (models.Backup, error) {
	forest, err := s.reader.ReadTree(ctx)
	if err != nil {
		return models.Backup{}, classifyError(models.StageReadingLocal, err)
	}

	now := s.now()
	env := NewEnvelope(Normalize(forest, now), s.deviceID, now)
	if err = s.validator.Validate(ctx, env); err != nil {
		return models.Backup{}, &SyncError{Stage: models.StageReadingLocal, Kind: ErrValidation, Err: err}
	}

	history, err := s.state.History(ctx, 0)
	if err != nil {
		return models.Backup{}, fmt.Errorf("load error log: %w", err)
	}

	return models.Backup{
		Version:   models.BackupVersion,
		CreatedAt: now.UTC(),
		Envelope:  env,
		ErrorLogs: history.Errors,
	}, nil
}

// Restore adds the backup nodes the host does not have. Existing nodes are
// never changed or removed.
func (s *clientSyncService) Restore(ctx context.Context, backup models.Backup) (int, error) {
	if s.writer == nil {
		return 0, ErrReadOnlyHost
	}
	if backup.Version != models.BackupVersion {
		return 0, fmt.Errorf("%w: %q", ErrBackupVersion, backup.Version)
	}
	if err := s.validator.Validate(ctx, backup.Envelope); err != nil {
		return 0, fmt.Errorf("backup envelope: %w: %w", ErrValidation, err)
	}
	if !s.running.CompareAndSwap(false, true) {
		return 0, ErrSyncInProgress
	}
	defer s.running.Store(false)

	added, err := s.restore(ctx, backup.Envelope)
	if err != nil {
		s.logger.Err(err).Str("func", "*clientSyncService.Restore").Msg("restore failed")
		s.recordError(ctx, "restore", err)
		return added, err
	}

	s.logger.Info().Str("func", "*clientSyncService.Restore").Int("added", added).Msg("backup restored")
	return added, nil
}

func (s *clientSyncService) restore(ctx context.Context, backup models.SyncEnvelope) (int, error) {
	forest, err := s.reader.ReadTree(ctx)
	if err != nil {
		return 0, classifyError(models.StageReadingLocal, err)
	}
	local := NewEnvelope(Normalize(forest, s.now()), s.deviceID, s.now())

	nodes := RemoteOnlyNodes(backup, local)
	if len(nodes) == 0 {
		return 0, nil
	}

	added, err := s.writer.AddNodes(ctx, nodes)
	if err != nil {
		return added, fmt.Errorf("add %d nodes to host: %w", len(nodes), err)
	}
	return added, nil
}
