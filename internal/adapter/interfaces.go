// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the Remote Store Adapter: reading and writing one
// sync envelope in a hosted file under optimistic concurrency control.
//
// Two backends implement [RemoteStore]: a GitHub gist holding the envelope
// as its single file, and a file at a fixed path of a GitHub repository
// branch. Both treat a missing remote object as [ErrNotFound] and reject a
// write whose concurrency token no longer matches with [ErrConflict].
//
// HTTP statuses are mapped to the sentinel values in errors.go by
// mapHTTPError, so callers can use [errors.Is] without knowing the backend.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-bookmark-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_store_mock.go -package=mock

// RemoteStore reads and writes one envelope at a [models.RemoteLocation].
type RemoteStore interface {
	// Authenticate verifies the configured credential and returns the login
	// it belongs to. Returns [ErrUnauthorized] (wrapped) when it is rejected.
	Authenticate(ctx context.Context) (string, error)

	// Read returns the envelope stored at loc with its concurrency token.
	// Returns [ErrNotFound] (wrapped) when the container or file does not
	// exist yet.
	Read(ctx context.Context, loc models.RemoteLocation) (models.RemoteSnapshot, error)

	// Write stores env at loc. When the remote document exists, expected
	// must equal its current token, otherwise [ErrConflict] is returned and
	// nothing is written. An empty expected token is only accepted while the
	// document does not exist. Missing containers are created; the returned
	// location carries their identifiers.
	Write(ctx context.Context, loc models.RemoteLocation, env models.SyncEnvelope, expected models.ConcurrencyToken) (models.WriteResult, error)

	// Revisions lists earlier versions of the document at loc, newest first.
	// The current version is not included. A location without history yields
	// an empty list.
	Revisions(ctx context.Context, loc models.RemoteLocation) ([]models.RemoteRevision, error)

	// ReadRevision returns the envelope stored in the revision with the given
	// id, as listed by Revisions.
	ReadRevision(ctx context.Context, loc models.RemoteLocation, id string) (models.SyncEnvelope, error)
}
