// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-bookmark-sync/internal/logger"
	"github.com/MKhiriev/go-bookmark-sync/internal/store"
	"github.com/MKhiriev/go-bookmark-sync/internal/utils"
	"github.com/MKhiriev/go-bookmark-sync/models"
)

// Keys of the sync_state table.
const (
	StateKeyDeviceID       = "device_id"
	StateKeyLastSyncAt     = "last_sync_at"
	StateKeyLastCounts     = "last_counts"
	StateKeyLastOutcome    = "last_outcome"
	StateKeyRemoteGistID   = "remote_gist_id"
	StateKeyOutcomeHistory = "outcome_history"
	StateKeyErrorLog       = "error_log"
)

type syncStateStore struct {
	repo   store.StateRepository
	ids    idGenerator
	logger *logger.Logger
}

func NewSyncStateStore(repo store.StateRepository, logger *logger.Logger) SyncStateStore {
	return &syncStateStore{repo: repo, ids: utils.NewUUIDGenerator(), logger: logger}
}

// DeviceID returns override when set. Otherwise it returns the persisted id,
// generating and storing one on first use.
func (s *syncStateStore) DeviceID(ctx context.Context, override string, now time.Time) (string, error) {
	if override != "" {
		return override, nil
	}

	id, err := s.get(ctx, StateKeyDeviceID)
	if err != nil {
		return "", err
	}
	if id != "" {
		return id, nil
	}

	id = utils.NewDeviceID(now)
	if err = s.repo.Set(ctx, StateKeyDeviceID, id); err != nil {
		return "", fmt.Errorf("persist device id: %w", err)
	}
	s.logger.Info().Str("func", "*syncStateStore.DeviceID").Str("device_id", id).Msg("generated new device id")
	return id, nil
}

// LastSyncAt returns the baseline of the last successful write, or the zero
// time when this device never synced.
func (s *syncStateStore) LastSyncAt(ctx context.Context) (time.Time, error) {
	raw, err := s.get(ctx, StateKeyLastSyncAt)
	if err != nil || raw == "" {
		return time.Time{}, err
	}

	at, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("decode %s: %w", StateKeyLastSyncAt, err)
	}
	return at, nil
}

func (s *syncStateStore) RecordSuccess(ctx context.Context, at time.Time, counts models.EnvelopeCounts) error {
	if err := s.repo.Set(ctx, StateKeyLastSyncAt, at.UTC().Format(time.RFC3339Nano)); err != nil {
		return fmt.Errorf("persist %s: %w", StateKeyLastSyncAt, err)
	}
	return s.setJSON(ctx, StateKeyLastCounts, counts)
}

func (s *syncStateStore) LastCounts(ctx context.Context) (models.EnvelopeCounts, error) {
	var counts models.EnvelopeCounts
	err := s.getJSON(ctx, StateKeyLastCounts, &counts)
	return counts, err
}

// RecordOutcome stores outcome as the last one and adds it to the bounded
// outcome history.
func (s *syncStateStore) RecordOutcome(ctx context.Context, outcome models.SyncOutcome) error {
	if err := s.setJSON(ctx, StateKeyLastOutcome, outcome); err != nil {
		return err
	}

	var history []models.SyncOutcome
	if err := s.getJSON(ctx, StateKeyOutcomeHistory, &history); err != nil {
		return err
	}
	return s.setJSON(ctx, StateKeyOutcomeHistory, prependBounded(history, outcome, models.HistoryLimit))
}

// RecordError adds entry to the bounded error log, assigning an id when it
// has none.
func (s *syncStateStore) RecordError(ctx context.Context, entry models.ErrorLogEntry) error {
	if entry.ID == "" {
		entry.ID = s.ids.Generate()
	}

	var entries []models.ErrorLogEntry
	if err := s.getJSON(ctx, StateKeyErrorLog, &entries); err != nil {
		return err
	}
	return s.setJSON(ctx, StateKeyErrorLog, prependBounded(entries, entry, models.HistoryLimit))
}

// History returns up to limit outcomes and errors, newest first. A limit of
// zero or less returns everything kept.
func (s *syncStateStore) History(ctx context.Context, limit int) (models.SyncHistory, error) {
	history := models.SyncHistory{Outcomes: []models.SyncOutcome{}, Errors: []models.ErrorLogEntry{}}
	if err := s.getJSON(ctx, StateKeyOutcomeHistory, &history.Outcomes); err != nil {
		return models.SyncHistory{}, err
	}
	if err := s.getJSON(ctx, StateKeyErrorLog, &history.Errors); err != nil {
		return models.SyncHistory{}, err
	}

	if limit > 0 {
		history.Outcomes = history.Outcomes[:min(limit, len(history.Outcomes))]
		history.Errors = history.Errors[:min(limit, len(history.Errors))]
	}
	return history, nil
}

// LastOutcome returns the zero outcome with state idle when nothing was
// recorded yet.
func (s *syncStateStore) LastOutcome(ctx context.Context) (models.SyncOutcome, error) {
	outcome := models.SyncOutcome{State: models.SyncStateIdle}
	err := s.getJSON(ctx, StateKeyLastOutcome, &outcome)
	return outcome, err
}

func (s *syncStateStore) GistID(ctx context.Context) (string, error) {
	return s.get(ctx, StateKeyRemoteGistID)
}

func (s *syncStateStore) SetGistID(ctx context.Context, id string) error {
	if err := s.repo.Set(ctx, StateKeyRemoteGistID, id); err != nil {
		return fmt.Errorf("persist %s: %w", StateKeyRemoteGistID, err)
	}
	return nil
}

// get maps a missing key to an empty value.
func (s *syncStateStore) get(ctx context.Context, key string) (string, error) {
	value, err := s.repo.Get(ctx, key)
	if errors.Is(err, store.ErrStateNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", key, err)
	}
	return value, nil
}

func (s *syncStateStore) getJSON(ctx context.Context, key string, dst any) error {
	raw, err := s.get(ctx, key)
	if err != nil || raw == "" {
		return err
	}
	if err = json.Unmarshal([]byte(raw), dst); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

func (s *syncStateStore) setJSON(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err = s.repo.Set(ctx, key, string(raw)); err != nil {
		return fmt.Errorf("persist %s: %w", key, err)
	}
	return nil
}

// prependBounded returns item followed by list, cut to limit entries.
func prependBounded[T any](list []T, item T, limit int) []T {
	out := make([]T, 0, min(len(list)+1, limit))
	out = append(out, item)
	for _, v := range list {
		if len(out) == limit {
			break
		}
		out = append(out, v)
	}
	return out
}
