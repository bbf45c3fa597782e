// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"sync"

	"github.com/MKhiriev/go-bookmark-sync/internal/adapter"
	"github.com/MKhiriev/go-bookmark-sync/internal/store"
	"github.com/MKhiriev/go-bookmark-sync/models"
)

// memPendingRepo is an in-memory store.PendingOperationRepository.
type memPendingRepo struct {
	mu  sync.Mutex
	ops []models.PendingOperation
}

func (r *memPendingRepo) Append(_ context.Context, op models.PendingOperation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ops = append(r.ops, op)
	return nil
}

func (r *memPendingRepo) List(_ context.Context) ([]models.PendingOperation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.ops), nil
}

func (r *memPendingRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := slices.IndexFunc(r.ops, func(op models.PendingOperation) bool { return op.ID == id })
	if i < 0 {
		return store.ErrPendingOperationNotFound
	}
	r.ops = slices.Delete(r.ops, i, i+1)
	return nil
}

func (r *memPendingRepo) Count(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.ops), nil
}

func (r *memPendingRepo) ids() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.ops))
	for _, op := range r.ops {
		out = append(out, op.ID)
	}
	return out
}

// memStateRepo is an in-memory store.StateRepository.
type memStateRepo struct {
	mu     sync.Mutex
	values map[string]string
}

func newMemStateRepo() *memStateRepo {
	return &memStateRepo{values: make(map[string]string)}
}

func (r *memStateRepo) Get(_ context.Context, key string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.values[key]
	if !ok {
		return "", store.ErrStateNotFound
	}
	return v, nil
}

func (r *memStateRepo) Set(_ context.Context, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[key] = value
	return nil
}

func (r *memStateRepo) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.values, key)
	return nil
}

// seqIDs hands out op-1, op-2, ...
type seqIDs struct {
	mu sync.Mutex
	n  int
}

func (g *seqIDs) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return "op-" + strconv.Itoa(g.n)
}

// memRemote is an in-memory adapter.RemoteStore with versioned writes.
type memRemote struct {
	mu      sync.Mutex
	env     *models.SyncEnvelope
	version int
	gistID  string
	authErr error
	reads   int
	writes  int
	// history holds replaced envelopes keyed by their old token, oldest first
	history []memRevision
}

type memRevision struct {
	id  string
	env models.SyncEnvelope
}

func (r *memRemote) Authenticate(context.Context) (string, error) {
	if r.authErr != nil {
		return "", r.authErr
	}
	return "octocat", nil
}

func (r *memRemote) Read(_ context.Context, _ models.RemoteLocation) (models.RemoteSnapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reads++
	if r.env == nil {
		return models.RemoteSnapshot{}, fmt.Errorf("read gist: %w", adapter.ErrNotFound)
	}
	return models.RemoteSnapshot{Envelope: *r.env, Token: r.token()}, nil
}

func (r *memRemote) Write(_ context.Context, loc models.RemoteLocation, env models.SyncEnvelope, expected models.ConcurrencyToken) (models.WriteResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if (r.env == nil && expected != "") || (r.env != nil && expected != r.token()) {
		return models.WriteResult{}, adapter.ErrConflict
	}
	r.writes++
	if r.env != nil {
		r.history = append(r.history, memRevision{id: string(r.token()), env: *r.env})
	}
	r.version++
	r.env = &env
	if r.gistID == "" {
		r.gistID = "gist-1"
	}
	loc.GistID = r.gistID
	return models.WriteResult{Token: r.token(), Location: loc}, nil
}

func (r *memRemote) Revisions(_ context.Context, _ models.RemoteLocation) ([]models.RemoteRevision, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.RemoteRevision, 0, len(r.history))
	for i := len(r.history) - 1; i >= 0; i-- {
		out = append(out, models.RemoteRevision{ID: r.history[i].id})
	}
	return out, nil
}

func (r *memRemote) ReadRevision(_ context.Context, _ models.RemoteLocation, id string) (models.SyncEnvelope, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rev := range r.history {
		if rev.id == id {
			return rev.env, nil
		}
	}
	return models.SyncEnvelope{}, fmt.Errorf("read revision %s: %w", id, adapter.ErrNotFound)
}

func (r *memRemote) stored() models.SyncEnvelope {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.env == nil {
		return models.SyncEnvelope{}
	}
	return *r.env
}

func (r *memRemote) token() models.ConcurrencyToken {
	return models.ConcurrencyToken("v" + strconv.Itoa(r.version))
}
