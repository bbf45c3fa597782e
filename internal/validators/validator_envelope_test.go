// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-bookmark-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validEnvelope() models.SyncEnvelope {
	nodes := []models.BookmarkNode{
		{ID: "f1", Title: "Work", Index: 0, DateAdded: 1000},
		{ID: "b1", Title: "Go", URL: "https://go.dev", ParentID: "f1", Index: 0, DateAdded: 1100},
		{ID: "b2", Title: "Docs", URL: "https://pkg.go.dev", ParentID: "f1", Index: 1, DateAdded: 1200},
	}
	return models.SyncEnvelope{
		SchemaVersion: models.SchemaVersion,
		LastModified:  time.UnixMilli(1_700_000_000_000).UTC(),
		DeviceID:      "device_1700000000000_deadbeef",
		Nodes:         nodes,
		Metadata: models.EnvelopeMetadata{
			TotalCount:    2,
			FolderCount:   1,
			SchemaVersion: models.SchemaVersion,
		},
	}
}

func newValidator(t *testing.T) *EnvelopeValidator {
	t.Helper()
	v, err := NewEnvelopeValidator()
	require.NoError(t, err)
	return v
}

// ---------------------------------------------------------------------------
// Dispatch
// ---------------------------------------------------------------------------

func TestEnvelopeValidator_Dispatch(t *testing.T) {
	v := newValidator(t)
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, "a string"), ErrUnsupportedType)
	})

	t.Run("nil pointer", func(t *testing.T) {
		var env *models.SyncEnvelope
		require.ErrorIs(t, v.Validate(ctx, env), ErrUnsupportedType)
	})

	t.Run("envelope value", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, validEnvelope()))
	})

	t.Run("envelope pointer", func(t *testing.T) {
		env := validEnvelope()
		require.NoError(t, v.Validate(ctx, &env))
	})

	t.Run("unknown field", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, validEnvelope(), "nope"), ErrUnknownField)
	})

	t.Run("pending operation", func(t *testing.T) {
		op := models.PendingOperation{ID: "op-1", Kind: models.OperationKindUpdate, Payload: validEnvelope()}
		require.NoError(t, v.Validate(ctx, op))
		require.NoError(t, v.Validate(ctx, &op))
	})

	t.Run("pending operation with unknown kind", func(t *testing.T) {
		op := models.PendingOperation{ID: "op-1", Kind: "create", Payload: validEnvelope()}
		require.ErrorIs(t, v.Validate(ctx, op), ErrUnsupportedType)
	})

	t.Run("pending operation with invalid payload", func(t *testing.T) {
		payload := validEnvelope()
		payload.DeviceID = ""
		op := models.PendingOperation{ID: "op-1", Kind: models.OperationKindUpdate, Payload: payload}
		require.ErrorIs(t, v.Validate(ctx, op), ErrSchemaViolation)
	})
}

// ---------------------------------------------------------------------------
// Envelope rules
// ---------------------------------------------------------------------------

func TestEnvelopeValidator_Envelope(t *testing.T) {
	v := newValidator(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(env *models.SyncEnvelope)
		wantErr error
	}{
		{
			name:    "missing schema version",
			mutate:  func(env *models.SyncEnvelope) { env.SchemaVersion = "" },
			wantErr: ErrSchemaViolation,
		},
		{
			name:    "unsupported major version",
			mutate:  func(env *models.SyncEnvelope) { env.SchemaVersion = "2.0.0"; env.Metadata.SchemaVersion = "2.0.0" },
			wantErr: ErrInvalidSchemaVersion,
		},
		{
			name:    "missing device id",
			mutate:  func(env *models.SyncEnvelope) { env.DeviceID = "" },
			wantErr: ErrSchemaViolation,
		},
		{
			name:    "zero last modified",
			mutate:  func(env *models.SyncEnvelope) { env.LastModified = time.Time{} },
			wantErr: ErrEmptyLastModified,
		},
		{
			name:    "duplicate node id",
			mutate:  func(env *models.SyncEnvelope) { env.Nodes[2].ID = "b1" },
			wantErr: ErrDuplicateNodeID,
		},
		{
			name:    "empty node id",
			mutate:  func(env *models.SyncEnvelope) { env.Nodes[1].ID = "" },
			wantErr: ErrSchemaViolation,
		},
		{
			name:    "negative index",
			mutate:  func(env *models.SyncEnvelope) { env.Nodes[1].Index = -1 },
			wantErr: ErrSchemaViolation,
		},
		{
			name:    "parent is a bookmark",
			mutate:  func(env *models.SyncEnvelope) { env.Nodes[2].ParentID = "b1" },
			wantErr: ErrParentIsBookmark,
		},
		{
			name: "bookmark with children",
			mutate: func(env *models.SyncEnvelope) {
				env.Nodes[1].Children = []models.BookmarkNode{{ID: "x", Title: "x", URL: "https://x.test", DateAdded: 1}}
				env.Metadata.TotalCount = 3
			},
			wantErr: ErrBookmarkWithChildren,
		},
		{
			name:    "metadata counts mismatch",
			mutate:  func(env *models.SyncEnvelope) { env.Metadata.TotalCount = 5 },
			wantErr: ErrMetadataMismatch,
		},
		{
			name:    "metadata schema version mismatch",
			mutate:  func(env *models.SyncEnvelope) { env.Metadata.SchemaVersion = "1.1.0" },
			wantErr: ErrMetadataSchemaVersion,
		},
		{
			name: "parent cycle",
			mutate: func(env *models.SyncEnvelope) {
				env.Nodes = []models.BookmarkNode{
					{ID: "a", Title: "a", ParentID: "b", DateAdded: 1},
					{ID: "b", Title: "b", ParentID: "a", DateAdded: 1},
				}
				env.Metadata.TotalCount = 0
				env.Metadata.FolderCount = 2
			},
			wantErr: ErrParentCycle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := validEnvelope()
			tt.mutate(&env)
			err := v.Validate(ctx, env)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestEnvelopeValidator_AcceptsExternalParent(t *testing.T) {
	v := newValidator(t)
	env := validEnvelope()
	env.Nodes[0].ParentID = "host-root"

	require.NoError(t, v.Validate(context.Background(), env))
}

func TestEnvelopeValidator_AcceptsEmptyTree(t *testing.T) {
	v := newValidator(t)
	env := validEnvelope()
	env.Nodes = nil
	env.Metadata.TotalCount = 0
	env.Metadata.FolderCount = 0

	require.NoError(t, v.Validate(context.Background(), env))
}

func TestEnvelopeValidator_NestedTree(t *testing.T) {
	v := newValidator(t)
	env := validEnvelope()
	env.Nodes = []models.BookmarkNode{
		{ID: "f1", Title: "Work", DateAdded: 1, Children: []models.BookmarkNode{
			{ID: "b1", Title: "Go", URL: "https://go.dev", ParentID: "f1", DateAdded: 2},
		}},
	}
	env.Metadata.TotalCount = 1
	env.Metadata.FolderCount = 1

	require.NoError(t, v.Validate(context.Background(), env))

	env.Nodes[0].Children[0].ParentID = "elsewhere"
	require.ErrorIs(t, v.Validate(context.Background(), env), ErrParentMismatch)
}

func TestEnvelopeValidator_SingleField(t *testing.T) {
	v := newValidator(t)
	env := validEnvelope()
	env.Metadata.TotalCount = 42

	require.NoError(t, v.Validate(context.Background(), env, FieldDeviceID, FieldNodes))
	require.ErrorIs(t, v.Validate(context.Background(), env, FieldMetadata), ErrMetadataMismatch)
}

func TestIsSupportedSchemaVersion(t *testing.T) {
	assert.True(t, isSupportedSchemaVersion("1.0.0"))
	assert.True(t, isSupportedSchemaVersion("1.4.2"))
	assert.False(t, isSupportedSchemaVersion("2.0.0"))
	assert.False(t, isSupportedSchemaVersion("1"))
	assert.False(t, isSupportedSchemaVersion(""))
}
