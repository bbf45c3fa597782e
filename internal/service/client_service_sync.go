// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-bookmark-sync/internal/adapter"
	"github.com/MKhiriev/go-bookmark-sync/internal/host"
	"github.com/MKhiriev/go-bookmark-sync/internal/logger"
	"github.com/MKhiriev/go-bookmark-sync/internal/retry"
	"github.com/MKhiriev/go-bookmark-sync/internal/validators"
	"github.com/MKhiriev/go-bookmark-sync/models"
)

// Progress percentages reported per stage.
var stagePercent = map[models.SyncStage]int{
	models.StageReadingLocal:   10,
	models.StageAuthenticating: 20,
	models.StageFetchingRemote: 40,
	models.StageMerging:        60,
	models.StageWriting:        80,
	models.StageRecording:      90,
	models.StageDraining:       95,
}

// SyncDependencies are the collaborators of the sync orchestrator.
type SyncDependencies struct {
	Reader host.TreeReader
	// Writer adds nodes to the host on restore, and after a merge when
	// WriteBack is set. Nil makes the host read-only.
	Writer    host.TreeWriter
	WriteBack bool
	Remote    adapter.RemoteStore
	Location  models.RemoteLocation
	Queue     OfflineQueue
	State     SyncStateStore
	Validator validators.Validator
	Retry     *retry.Engine
	DeviceID  string
}

type clientSyncService struct {
	reader    host.TreeReader
	writer    host.TreeWriter
	writeBack bool
	remote    adapter.RemoteStore
	queue     OfflineQueue
	state     SyncStateStore
	validator validators.Validator
	retrier   *retry.Engine
	progress  *progressBroker
	deviceID  string
	now       func() time.Time
	logger    *logger.Logger

	running atomic.Bool

	mu       sync.RWMutex
	location models.RemoteLocation
	stage    models.SyncStage
}

// cycleResult describes a successful write.
type cycleResult struct {
	action  models.SyncAction
	written models.SyncEnvelope
}

func NewClientSyncService(deps SyncDependencies, logger *logger.Logger) ClientSyncService {
	s := &clientSyncService{
		reader:    deps.Reader,
		writer:    deps.Writer,
		writeBack: deps.WriteBack,
		remote:    deps.Remote,
		queue:     deps.Queue,
		state:     deps.State,
		validator: deps.Validator,
		progress:  newProgressBroker(),
		deviceID:  deps.DeviceID,
		location:  deps.Location,
		now:       time.Now,
		logger:    logger,
	}

	engine := deps.Retry
	if engine == nil {
		engine = retry.New(retry.DefaultPolicy(), syncClassifier)
	}
	s.retrier = engine.With(retry.WithNotifier(s.onRetry))

	return s
}

// ── Entry points ─────────────────────────────────────────────────────────────

func (s *clientSyncService) TriggerSync(ctx context.Context) (models.SyncOutcome, error) {
	if !s.running.CompareAndSwap(false, true) {
		return models.SyncOutcome{}, ErrSyncInProgress
	}
	defer s.running.Store(false)

	log := s.logger.GetChildLogger()
	started := s.now()
	s.publish(models.ProgressStart, "", 0, "sync started")

	outcome := models.SyncOutcome{StartedAt: started.UTC()}
	result, replayed, err := s.runCycle(ctx)
	outcome.FinishedAt = s.now().UTC()
	outcome.Replayed = replayed

	if err != nil {
		outcome.State = models.SyncStateError
		outcome.Error = err.Error()
		outcome.Queued = errors.Is(err, ErrQueuedForLater)
		log.Err(err).Str("func", "*clientSyncService.TriggerSync").Bool("queued", outcome.Queued).Msg("sync cycle failed")
		s.publish(models.ProgressError, s.currentStage(), 100, err.Error())
		s.recordError(ctx, "sync", err)
	} else {
		outcome.State = models.SyncStateSuccess
		outcome.Action = result.action
		outcome.TotalCount = result.written.Metadata.TotalCount
		outcome.FolderCount = result.written.Metadata.FolderCount
		log.Info().Str("func", "*clientSyncService.TriggerSync").Str("action", string(result.action)).
			Int("total_count", outcome.TotalCount).Int("folder_count", outcome.FolderCount).
			Int("replayed", replayed).Msg("sync cycle finished")
		s.publish(models.ProgressSuccess, "", 100, string(result.action))
	}

	if recErr := s.state.RecordOutcome(ctx, outcome); recErr != nil {
		log.Err(recErr).Str("func", "*clientSyncService.TriggerSync").Msg("failed to record sync outcome")
	}
	s.setStage("")

	return outcome, err
}

func (s *clientSyncService) DrainQueue(ctx context.Context) (int, error) {
	if !s.running.CompareAndSwap(false, true) {
		return 0, ErrSyncInProgress
	}
	defer s.running.Store(false)
	defer s.setStage("")

	s.advance(models.StageAuthenticating)
	if _, err := retry.Do(ctx, s.retrier, s.remote.Authenticate); err != nil {
		err = classifyError(models.StageAuthenticating, err)
		s.recordError(ctx, "drain", err)
		return 0, err
	}

	s.advance(models.StageDraining)
	replayed, err := s.queue.Drain(ctx, s.replay)
	if err != nil {
		s.recordError(ctx, "drain", classifyError(models.StageDraining, err))
	}
	return replayed, err
}

func (s *clientSyncService) Status(ctx context.Context) (models.SyncStatus, error) {
	status := models.SyncStatus{State: models.SyncStateIdle}
	if s.running.Load() {
		status.State = models.SyncStateSyncing
	}

	var err error
	if status.LastOutcome, err = s.state.LastOutcome(ctx); err != nil {
		return models.SyncStatus{}, err
	}
	if status.LastSyncAt, err = s.state.LastSyncAt(ctx); err != nil {
		return models.SyncStatus{}, err
	}
	if status.Pending, err = s.queue.Len(ctx); err != nil {
		return models.SyncStatus{}, err
	}
	return status, nil
}

func (s *clientSyncService) LastOutcome(ctx context.Context) (models.SyncOutcome, error) {
	return s.state.LastOutcome(ctx)
}

func (s *clientSyncService) PendingOperations(ctx context.Context) ([]models.PendingOperation, error) {
	return s.queue.PeekAll(ctx)
}

func (s *clientSyncService) Subscribe(buffer int) (<-chan models.ProgressEvent, func()) {
	return s.progress.Subscribe(buffer)
}

// ── Cycle ────────────────────────────────────────────────────────────────────

func (s *clientSyncService) runCycle(ctx context.Context) (cycleResult, int, error) {
	s.advance(models.StageReadingLocal)
	forest, err := s.reader.ReadTree(ctx)
	if err != nil {
		return cycleResult{}, 0, classifyError(models.StageReadingLocal, err)
	}

	local := NewEnvelope(Normalize(forest, s.now()), s.deviceID, s.now())
	if err = s.validator.Validate(ctx, local); err != nil {
		return cycleResult{}, 0, &SyncError{Stage: models.StageReadingLocal, Kind: ErrValidation, Err: err}
	}

	result, err := s.upload(ctx, local)
	if err != nil {
		if !errors.Is(err, retry.ErrRetriesExhausted) {
			return cycleResult{}, 0, err
		}
		if _, qErr := s.queue.Enqueue(ctx, local); qErr != nil {
			return cycleResult{}, 0, errors.Join(err, fmt.Errorf("enqueue envelope: %w", qErr))
		}
		return cycleResult{}, 0, &SyncError{Stage: s.currentStage(), Kind: ErrQueuedForLater, Err: err}
	}

	s.advance(models.StageRecording)
	s.commit(ctx, result.written)

	s.advance(models.StageDraining)
	replayed, err := s.queue.Drain(ctx, s.replay)
	if err != nil {
		s.logger.Err(err).Str("func", "*clientSyncService.runCycle").Int("replayed", replayed).Msg("offline queue drain stopped")
	}

	if result.action == models.SyncActionMerged {
		s.writeBackToHost(ctx, result.written, local)
	}

	return result, replayed, nil
}

func (s *clientSyncService) upload(ctx context.Context, env models.SyncEnvelope) (cycleResult, error) {
	s.advance(models.StageAuthenticating)
	if _, err := retry.Do(ctx, s.retrier, s.remote.Authenticate); err != nil {
		return cycleResult{}, classifyError(models.StageAuthenticating, err)
	}
	return s.syncEnvelope(ctx, env, false)
}

// syncEnvelope runs read, optional merge and guarded write for env. A write
// conflict triggers one more pass that always merges; a second conflict is
// returned.
func (s *clientSyncService) syncEnvelope(ctx context.Context, env models.SyncEnvelope, forceMerge bool) (cycleResult, error) {
	for pass := 1; ; pass++ {
		loc := s.currentLocation()

		s.advance(models.StageFetchingRemote)
		snapshot, err := retry.Do(ctx, s.retrier, func(ctx context.Context) (models.RemoteSnapshot, error) {
			return s.remote.Read(ctx, loc)
		})

		var (
			toWrite  models.SyncEnvelope
			expected models.ConcurrencyToken
			action   models.SyncAction
		)

		switch {
		case errors.Is(err, adapter.ErrNotFound):
			toWrite, action = env, models.SyncActionFirstSync

		case err != nil:
			return cycleResult{}, classifyError(models.StageFetchingRemote, err)

		default:
			if err = s.validator.Validate(ctx, snapshot.Envelope); err != nil {
				return cycleResult{}, &SyncError{Stage: models.StageFetchingRemote, Kind: ErrValidation, Err: err}
			}
			expected = snapshot.Token

			baseline, stateErr := s.state.LastSyncAt(ctx)
			if stateErr != nil {
				return cycleResult{}, classifyError(models.StageFetchingRemote, stateErr)
			}

			if !forceMerge && !snapshot.Envelope.LastModified.After(baseline) {
				toWrite, action = env, models.SyncActionUploaded
				break
			}

			s.advance(models.StageMerging)
			if toWrite, err = s.merge(ctx, snapshot.Envelope, env); err != nil {
				return cycleResult{}, err
			}
			action = models.SyncActionMerged
		}

		toWrite.Metadata.LastSync = s.now().UTC()

		s.advance(models.StageWriting)
		written, err := retry.Do(ctx, s.retrier, func(ctx context.Context) (models.WriteResult, error) {
			return s.remote.Write(ctx, loc, toWrite, expected)
		})
		if errors.Is(err, adapter.ErrConflict) && pass == 1 {
			s.logger.Warn().Str("func", "*clientSyncService.syncEnvelope").Msg("remote changed during sync, merging again")
			forceMerge = true
			continue
		}
		if err != nil {
			return cycleResult{}, classifyError(models.StageWriting, err)
		}

		s.adoptLocation(ctx, written.Location)
		return cycleResult{action: action, written: toWrite}, nil
	}
}

func (s *clientSyncService) merge(ctx context.Context, remote, local models.SyncEnvelope) (models.SyncEnvelope, error) {
	merged, err := Merge(remote, local, s.deviceID, s.now())
	if err != nil {
		return models.SyncEnvelope{}, &SyncError{Stage: models.StageMerging, Kind: ErrMerge, Err: err}
	}
	if err = s.validator.Validate(ctx, merged); err != nil {
		s.logger.Err(err).Str("func", "*clientSyncService.merge").
			Int("remote_nodes", len(remote.Nodes)).Int("local_nodes", len(local.Nodes)).
			Msg("merged envelope failed validation")
		return models.SyncEnvelope{}, &SyncError{Stage: models.StageMerging, Kind: ErrMerge, Err: err}
	}
	return merged, nil
}

// replay writes a queued envelope. It always merges with the remote, so an
// old snapshot never replaces newer remote content.
func (s *clientSyncService) replay(ctx context.Context, op models.PendingOperation) error {
	result, err := s.syncEnvelope(ctx, op.Payload, true)
	if err != nil {
		return err
	}
	s.commit(ctx, result.written)
	return nil
}

func (s *clientSyncService) commit(ctx context.Context, written models.SyncEnvelope) {
	if err := s.state.RecordSuccess(ctx, s.now(), envelopeCounts(written)); err != nil {
		s.logger.Err(err).Str("func", "*clientSyncService.commit").Msg("failed to record sync baseline")
	}
}

func (s *clientSyncService) writeBackToHost(ctx context.Context, merged, local models.SyncEnvelope) {
	if !s.writeBack || s.writer == nil {
		return
	}
	nodes := RemoteOnlyNodes(merged, local)
	if len(nodes) == 0 {
		return
	}

	added, err := s.writer.AddNodes(ctx, nodes)
	if err != nil {
		s.logger.Err(err).Str("func", "*clientSyncService.writeBack").Int("nodes", len(nodes)).Msg("failed to write remote nodes to host")
		return
	}
	s.logger.Info().Str("func", "*clientSyncService.writeBack").Int("added", added).Msg("remote nodes added to host")
}

// recordError adds a failed operation to the persisted error log.
func (s *clientSyncService) recordError(ctx context.Context, operation string, err error) {
	entry := models.ErrorLogEntry{At: s.now().UTC(), Operation: operation, Message: err.Error()}
	var syncErr *SyncError
	if errors.As(err, &syncErr) {
		entry.Stage = syncErr.Stage
		entry.Kind = syncErr.Kind.Error()
	}
	if recErr := s.state.RecordError(ctx, entry); recErr != nil {
		s.logger.Err(recErr).Str("func", "*clientSyncService.recordError").Str("operation", operation).Msg("failed to record error")
	}
}

// adoptLocation keeps identifiers of containers created by a write.
func (s *clientSyncService) adoptLocation(ctx context.Context, loc models.RemoteLocation) {
	if loc.Kind != models.RemoteKindGist || loc.GistID == "" {
		return
	}

	s.mu.Lock()
	changed := s.location.GistID != loc.GistID
	s.location.GistID = loc.GistID
	s.mu.Unlock()

	if !changed {
		return
	}
	if err := s.state.SetGistID(ctx, loc.GistID); err != nil {
		s.logger.Err(err).Str("func", "*clientSyncService.adoptLocation").Str("gist_id", loc.GistID).Msg("failed to persist gist id")
		return
	}
	s.logger.Info().Str("func", "*clientSyncService.adoptLocation").Str("gist_id", loc.GistID).Msg("using new gist")
}

// ── Progress ─────────────────────────────────────────────────────────────────

func (s *clientSyncService) advance(stage models.SyncStage) {
	s.setStage(stage)
	s.publish(models.ProgressProgress, stage, stagePercent[stage], "")
}

func (s *clientSyncService) onRetry(attempt int, delay time.Duration, err error) {
	stage := s.currentStage()
	s.logger.Warn().Err(err).Str("func", "*clientSyncService.onRetry").Str("stage", string(stage)).
		Int("attempt", attempt).Dur("delay", delay).Msg("retrying remote call")
	s.publish(models.ProgressRetrying, stage, stagePercent[stage],
		fmt.Sprintf("attempt %d failed, retrying in %s", attempt, delay.Round(time.Millisecond)))
}

func (s *clientSyncService) publish(typ models.ProgressEventType, stage models.SyncStage, percent int, msg string) {
	s.progress.Publish(models.ProgressEvent{
		Type:    typ,
		Stage:   stage,
		Percent: percent,
		Message: msg,
		At:      s.now().UTC(),
	})
}

func (s *clientSyncService) setStage(stage models.SyncStage) {
	s.mu.Lock()
	s.stage = stage
	s.mu.Unlock()
}

func (s *clientSyncService) currentStage() models.SyncStage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stage
}

func (s *clientSyncService) currentLocation() models.RemoteLocation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.location
}
