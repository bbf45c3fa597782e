// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-bookmark-sync/internal/logger"
	"github.com/MKhiriev/go-bookmark-sync/internal/mock"
	"github.com/MKhiriev/go-bookmark-sync/internal/store"
	"github.com/MKhiriev/go-bookmark-sync/models"
)

// ── DeviceID ─────────────────────────────────────────────────────────────────

func TestSyncStateStore_DeviceID_Override(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockStateRepository(ctrl)
	s := NewSyncStateStore(repo, logger.Nop())

	id, err := s.DeviceID(context.Background(), "laptop", testNow)
	require.NoError(t, err)
	assert.Equal(t, "laptop", id)
}

func TestSyncStateStore_DeviceID_Persisted(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockStateRepository(ctrl)
	s := NewSyncStateStore(repo, logger.Nop())

	repo.EXPECT().Get(gomock.Any(), StateKeyDeviceID).Return("device_1_abcdef01", nil)

	id, err := s.DeviceID(context.Background(), "", testNow)
	require.NoError(t, err)
	assert.Equal(t, "device_1_abcdef01", id)
}

func TestSyncStateStore_DeviceID_GeneratedOnce(t *testing.T) {
	ctx := context.Background()
	repo := newMemStateRepo()
	s := NewSyncStateStore(repo, logger.Nop())

	first, err := s.DeviceID(ctx, "", testNow)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^device_1750000000000_[0-9a-f]{8}$`), first)

	second, err := s.DeviceID(ctx, "", testNow)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSyncStateStore_DeviceID_ReadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockStateRepository(ctrl)
	s := NewSyncStateStore(repo, logger.Nop())

	repo.EXPECT().Get(gomock.Any(), StateKeyDeviceID).Return("", store.ErrRetryable)

	_, err := s.DeviceID(context.Background(), "", testNow)
	require.ErrorIs(t, err, store.ErrRetryable)
}

// ── Baseline and outcome ─────────────────────────────────────────────────────

func TestSyncStateStore_RecordSuccess(t *testing.T) {
	ctx := context.Background()
	repo := newMemStateRepo()
	s := NewSyncStateStore(repo, logger.Nop())

	at, err := s.LastSyncAt(ctx)
	require.NoError(t, err)
	assert.True(t, at.IsZero())

	require.NoError(t, s.RecordSuccess(ctx, testNow, models.EnvelopeCounts{TotalCount: 4, FolderCount: 2}))

	at, err = s.LastSyncAt(ctx)
	require.NoError(t, err)
	assert.True(t, at.Equal(testNow))

	counts, err := s.LastCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.EnvelopeCounts{TotalCount: 4, FolderCount: 2}, counts)
	assert.Equal(t, `{"totalCount":4,"folderCount":2}`, repo.values[StateKeyLastCounts])
}

func TestSyncStateStore_LastSyncAt_Corrupt(t *testing.T) {
	repo := newMemStateRepo()
	repo.values[StateKeyLastSyncAt] = "yesterday"
	s := NewSyncStateStore(repo, logger.Nop())

	_, err := s.LastSyncAt(context.Background())
	require.Error(t, err)
}

func TestSyncStateStore_Outcome(t *testing.T) {
	ctx := context.Background()
	s := NewSyncStateStore(newMemStateRepo(), logger.Nop())

	outcome, err := s.LastOutcome(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.SyncStateIdle, outcome.State)

	want := models.SyncOutcome{
		State:      models.SyncStateError,
		Queued:     true,
		Error:      "queued",
		StartedAt:  testNow,
		FinishedAt: testNow,
	}
	require.NoError(t, s.RecordOutcome(ctx, want))

	outcome, err = s.LastOutcome(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, outcome)
}

func TestSyncStateStore_SetError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockStateRepository(ctrl)
	s := NewSyncStateStore(repo, logger.Nop())

	dbErr := errors.New("readonly database")
	repo.EXPECT().Set(gomock.Any(), StateKeyLastSyncAt, gomock.Any()).Return(dbErr)

	err := s.RecordSuccess(context.Background(), testNow, models.EnvelopeCounts{})
	require.ErrorIs(t, err, dbErr)
}

func TestSyncStateStore_GistID(t *testing.T) {
	ctx := context.Background()
	s := NewSyncStateStore(newMemStateRepo(), logger.Nop())

	id, err := s.GistID(ctx)
	require.NoError(t, err)
	assert.Empty(t, id)

	require.NoError(t, s.SetGistID(ctx, "abc123"))
	id, err = s.GistID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "abc123", id)
}

// ── History ──────────────────────────────────────────────────────────────────

func TestSyncStateStore_History_Empty(t *testing.T) {
	s := NewSyncStateStore(newMemStateRepo(), logger.Nop())

	history, err := s.History(context.Background(), 10)
	require.NoError(t, err)
	assert.NotNil(t, history.Outcomes)
	assert.NotNil(t, history.Errors)
	assert.Empty(t, history.Outcomes)
	assert.Empty(t, history.Errors)
}

func TestSyncStateStore_History_NewestFirstAndBounded(t *testing.T) {
	ctx := context.Background()
	s := NewSyncStateStore(newMemStateRepo(), logger.Nop())

	for i := range models.HistoryLimit + 5 {
		require.NoError(t, s.RecordOutcome(ctx, models.SyncOutcome{State: models.SyncStateSuccess, Replayed: i}))
		require.NoError(t, s.RecordError(ctx, models.ErrorLogEntry{Operation: "sync", Message: "failed", Stage: models.StageWriting}))
	}

	history, err := s.History(ctx, 0)
	require.NoError(t, err)
	require.Len(t, history.Outcomes, models.HistoryLimit)
	require.Len(t, history.Errors, models.HistoryLimit)
	assert.Equal(t, models.HistoryLimit+4, history.Outcomes[0].Replayed)
	assert.Equal(t, 5, history.Outcomes[models.HistoryLimit-1].Replayed)
	assert.NotEqual(t, history.Errors[0].ID, history.Errors[1].ID)

	limited, err := s.History(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, limited.Outcomes, 3)
	assert.Len(t, limited.Errors, 3)
	assert.Equal(t, history.Outcomes[:3], limited.Outcomes)
}

func TestSyncStateStore_RecordError_KeepsGivenID(t *testing.T) {
	ctx := context.Background()
	s := NewSyncStateStore(newMemStateRepo(), logger.Nop())

	require.NoError(t, s.RecordError(ctx, models.ErrorLogEntry{ID: "e-1", Operation: "restore", Message: "disk full"}))

	history, err := s.History(ctx, 0)
	require.NoError(t, err)
	require.Len(t, history.Errors, 1)
	assert.Equal(t, "e-1", history.Errors[0].ID)
}

func TestSyncStateStore_History_CorruptValue(t *testing.T) {
	repo := newMemStateRepo()
	repo.values[StateKeyOutcomeHistory] = "{not json"
	s := NewSyncStateStore(repo, logger.Nop())

	_, err := s.History(context.Background(), 0)
	require.Error(t, err)
}
