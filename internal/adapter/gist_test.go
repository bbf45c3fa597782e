// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-bookmark-sync/internal/config"
	"github.com/MKhiriev/go-bookmark-sync/internal/logger"
	"github.com/MKhiriev/go-bookmark-sync/models"
)

func newTestGistStore(t *testing.T) (*gistStore, *fakeGitHub) {
	t.Helper()
	fake, srv := newFakeGitHub(t)
	return newGistStore(newTestClient(t, srv.URL)), fake
}

func gistLocation(id string) models.RemoteLocation {
	return models.RemoteLocation{Kind: models.RemoteKindGist, GistID: id, FileName: "bookmarks.json"}
}

// ── Authenticate ─────────────────────────────────────────────────────────────

func TestGitHubClient_Authenticate(t *testing.T) {
	t.Run("valid token", func(t *testing.T) {
		s, _ := newTestGistStore(t)
		login, err := s.Authenticate(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "octo", login)
	})

	t.Run("rejected token", func(t *testing.T) {
		_, srv := newFakeGitHub(t)
		cfg := testRemoteConfig(srv.URL)
		cfg.Token = "wrong"
		c, err := newGitHubClient(cfg, logger.Nop())
		require.NoError(t, err)

		_, err = c.Authenticate(context.Background())
		require.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("empty token", func(t *testing.T) {
		_, err := newGitHubClient(config.ClientRemote{Token: "  "}, logger.Nop())
		require.ErrorIs(t, err, ErrEmptyToken)
	})
}

// ── Read ─────────────────────────────────────────────────────────────────────

func TestGistStore_Read(t *testing.T) {
	ctx := context.Background()

	t.Run("no gist id yet", func(t *testing.T) {
		s, fake := newTestGistStore(t)
		_, err := s.Read(ctx, gistLocation(""))
		require.ErrorIs(t, err, ErrNotFound)
		assert.Zero(t, fake.callCount("GET /gists/"))
	})

	t.Run("gist missing", func(t *testing.T) {
		s, _ := newTestGistStore(t)
		_, err := s.Read(ctx, gistLocation("nope"))
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("file missing from gist", func(t *testing.T) {
		s, fake := newTestGistStore(t)
		fake.putGist("g1", "other.json", "{}")
		_, err := s.Read(ctx, gistLocation("g1"))
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("returns envelope and newest revision", func(t *testing.T) {
		s, fake := newTestGistStore(t)
		env := testEnvelope("device-a", "b1", "b2")
		fake.putGist("g1", "bookmarks.json", "{}")
		version := fake.putGist("g1", "bookmarks.json", mustEncode(t, env))

		snap, err := s.Read(ctx, gistLocation("g1"))
		require.NoError(t, err)
		assert.Equal(t, models.ConcurrencyToken(version), snap.Token)
		assert.Equal(t, "device-a", snap.Envelope.DeviceID)
		require.Len(t, snap.Envelope.Nodes, 2)
		assert.Equal(t, "b2", snap.Envelope.Nodes[1].ID)
	})

	t.Run("truncated file is fetched raw", func(t *testing.T) {
		s, fake := newTestGistStore(t)
		fake.putGist("g1", "bookmarks.json", mustEncode(t, testEnvelope("device-a", "b1")))
		fake.truncateGist("g1")

		snap, err := s.Read(ctx, gistLocation("g1"))
		require.NoError(t, err)
		assert.Equal(t, "b1", snap.Envelope.Nodes[0].ID)
		assert.Equal(t, 1, fake.callCount("GET /raw/g1/bookmarks.json"))
	})

	t.Run("garbage content", func(t *testing.T) {
		s, fake := newTestGistStore(t)
		fake.putGist("g1", "bookmarks.json", "not json")
		_, err := s.Read(ctx, gistLocation("g1"))
		require.ErrorIs(t, err, ErrInvalidPayload)
	})

	t.Run("server error", func(t *testing.T) {
		s, fake := newTestGistStore(t)
		fake.force("GET /gists/g1", http.StatusBadGateway)
		_, err := s.Read(ctx, gistLocation("g1"))
		require.ErrorIs(t, err, ErrServerError)
	})
}

// ── Write ────────────────────────────────────────────────────────────────────

func TestGistStore_Write(t *testing.T) {
	ctx := context.Background()

	t.Run("creates gist on first sync", func(t *testing.T) {
		s, fake := newTestGistStore(t)
		env := testEnvelope("device-a", "b1")

		res, err := s.Write(ctx, gistLocation(""), env, "")
		require.NoError(t, err)
		require.NotEmpty(t, res.Location.GistID)
		assert.NotEmpty(t, res.Token)
		assert.Equal(t, "bookmarks.json", res.Location.FileName)
		assert.Equal(t, 1, fake.callCount("POST /gists"))

		snap, err := s.Read(ctx, res.Location)
		require.NoError(t, err)
		assert.Equal(t, res.Token, snap.Token)
		assert.Equal(t, env.Nodes, snap.Envelope.Nodes)
	})

	t.Run("token for a gist that does not exist", func(t *testing.T) {
		s, fake := newTestGistStore(t)
		_, err := s.Write(ctx, gistLocation(""), testEnvelope("device-a"), "v-1")
		require.ErrorIs(t, err, ErrConflict)
		assert.Zero(t, fake.callCount("POST /gists"))
	})

	t.Run("configured gist deleted without token", func(t *testing.T) {
		s, fake := newTestGistStore(t)
		res, err := s.Write(ctx, gistLocation("gone"), testEnvelope("device-a"), "")
		require.NoError(t, err)
		assert.NotEqual(t, "gone", res.Location.GistID)
		assert.Equal(t, 1, fake.callCount("POST /gists"))
	})

	t.Run("configured gist deleted with token", func(t *testing.T) {
		s, _ := newTestGistStore(t)
		_, err := s.Write(ctx, gistLocation("gone"), testEnvelope("device-a"), "v-1")
		require.ErrorIs(t, err, ErrConflict)
	})

	t.Run("updates with matching token", func(t *testing.T) {
		s, fake := newTestGistStore(t)
		version := fake.putGist("g1", "bookmarks.json", mustEncode(t, testEnvelope("device-a", "b1")))

		res, err := s.Write(ctx, gistLocation("g1"), testEnvelope("device-b", "b1", "b2"), models.ConcurrencyToken(version))
		require.NoError(t, err)
		assert.NotEqual(t, models.ConcurrencyToken(version), res.Token)
		assert.Equal(t, 1, fake.callCount("PATCH /gists/g1"))
		assert.Contains(t, fake.gistContent("g1", "bookmarks.json"), "device-b")
	})

	t.Run("stale token is a conflict", func(t *testing.T) {
		s, fake := newTestGistStore(t)
		stale := fake.putGist("g1", "bookmarks.json", mustEncode(t, testEnvelope("device-a", "b1")))
		fake.putGist("g1", "bookmarks.json", mustEncode(t, testEnvelope("device-c", "b9")))

		_, err := s.Write(ctx, gistLocation("g1"), testEnvelope("device-b", "b2"), models.ConcurrencyToken(stale))
		require.ErrorIs(t, err, ErrConflict)
		assert.Zero(t, fake.callCount("PATCH /gists/g1"))
		assert.Contains(t, fake.gistContent("g1", "bookmarks.json"), "device-c")
	})

	t.Run("no token while file exists is a conflict", func(t *testing.T) {
		s, fake := newTestGistStore(t)
		fake.putGist("g1", "bookmarks.json", mustEncode(t, testEnvelope("device-a", "b1")))

		_, err := s.Write(ctx, gistLocation("g1"), testEnvelope("device-b", "b2"), "")
		require.ErrorIs(t, err, ErrConflict)
		assert.Zero(t, fake.callCount("PATCH /gists/g1"))
	})

	t.Run("token while file missing is a conflict", func(t *testing.T) {
		s, fake := newTestGistStore(t)
		version := fake.putGist("g1", "other.json", "{}")

		_, err := s.Write(ctx, gistLocation("g1"), testEnvelope("device-b", "b2"), models.ConcurrencyToken(version))
		require.ErrorIs(t, err, ErrConflict)
	})

	t.Run("adds file to existing gist without token", func(t *testing.T) {
		s, fake := newTestGistStore(t)
		fake.putGist("g1", "other.json", "{}")

		_, err := s.Write(ctx, gistLocation("g1"), testEnvelope("device-b", "b2"), "")
		require.NoError(t, err)
		assert.Contains(t, fake.gistContent("g1", "bookmarks.json"), "device-b")
	})

	t.Run("rate limited", func(t *testing.T) {
		s, fake := newTestGistStore(t)
		fake.force("POST /gists", http.StatusTooManyRequests)

		_, err := s.Write(ctx, gistLocation(""), testEnvelope("device-a"), "")
		require.ErrorIs(t, err, ErrRateLimited)
	})
}

// ── Revisions ────────────────────────────────────────────────────────────────

func TestGistStore_Revisions(t *testing.T) {
	ctx := context.Background()

	t.Run("no gist id yet", func(t *testing.T) {
		s, _ := newTestGistStore(t)
		revisions, err := s.Revisions(ctx, gistLocation(""))
		require.NoError(t, err)
		assert.Empty(t, revisions)
	})

	t.Run("gist missing", func(t *testing.T) {
		s, _ := newTestGistStore(t)
		revisions, err := s.Revisions(ctx, gistLocation("nope"))
		require.NoError(t, err)
		assert.Empty(t, revisions)
	})

	t.Run("lists older versions newest first", func(t *testing.T) {
		s, fake := newTestGistStore(t)
		v1 := fake.putGist("g1", "bookmarks.json", mustEncode(t, testEnvelope("device-a", "b1")))
		v2 := fake.putGist("g1", "bookmarks.json", mustEncode(t, testEnvelope("device-a", "b2")))
		fake.putGist("g1", "bookmarks.json", mustEncode(t, testEnvelope("device-a", "b3")))

		revisions, err := s.Revisions(ctx, gistLocation("g1"))
		require.NoError(t, err)
		require.Len(t, revisions, 2)
		assert.Equal(t, v2, revisions[0].ID)
		assert.Equal(t, v1, revisions[1].ID)
		assert.Equal(t, fakeCommitTime(0), revisions[1].CommittedAt)
	})

	t.Run("server error", func(t *testing.T) {
		s, fake := newTestGistStore(t)
		fake.force("GET /gists/g1", http.StatusBadGateway)
		_, err := s.Revisions(ctx, gistLocation("g1"))
		require.ErrorIs(t, err, ErrServerError)
	})
}

func TestGistStore_ReadRevision(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the envelope of that version", func(t *testing.T) {
		s, fake := newTestGistStore(t)
		v1 := fake.putGist("g1", "bookmarks.json", mustEncode(t, testEnvelope("device-a", "b1")))
		fake.putGist("g1", "bookmarks.json", mustEncode(t, testEnvelope("device-b", "b2")))

		env, err := s.ReadRevision(ctx, gistLocation("g1"), v1)
		require.NoError(t, err)
		assert.Equal(t, "device-a", env.DeviceID)
		require.Len(t, env.Nodes, 1)
		assert.Equal(t, "b1", env.Nodes[0].ID)
	})

	t.Run("unknown version", func(t *testing.T) {
		s, fake := newTestGistStore(t)
		fake.putGist("g1", "bookmarks.json", mustEncode(t, testEnvelope("device-a")))
		_, err := s.ReadRevision(ctx, gistLocation("g1"), "v-missing")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("rejects ids with a path", func(t *testing.T) {
		s, fake := newTestGistStore(t)
		_, err := s.ReadRevision(ctx, gistLocation("g1"), "../other")
		require.ErrorIs(t, err, ErrInvalidLocation)
		assert.Zero(t, fake.callCount("GET /gists/"))
	})

	t.Run("no gist id yet", func(t *testing.T) {
		s, _ := newTestGistStore(t)
		_, err := s.ReadRevision(ctx, gistLocation(""), "v1")
		require.ErrorIs(t, err, ErrNotFound)
	})
}
