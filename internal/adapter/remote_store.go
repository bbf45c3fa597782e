// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"

	"github.com/MKhiriev/go-bookmark-sync/internal/config"
	"github.com/MKhiriev/go-bookmark-sync/internal/logger"
	"github.com/MKhiriev/go-bookmark-sync/models"
)

// NewRemoteStore builds the backend selected by cfg.Kind.
func NewRemoteStore(cfg config.ClientRemote, log *logger.Logger) (RemoteStore, error) {
	client, err := newGitHubClient(cfg, log)
	if err != nil {
		return nil, err
	}

	switch models.RemoteKind(cfg.Kind) {
	case models.RemoteKindGist:
		return newGistStore(client), nil
	case models.RemoteKindRepo:
		return newRepoStore(client, cfg.HistoryLimit), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedKind, cfg.Kind)
	}
}

// NewRemoteLocation returns the location configured in cfg. A gist id created
// by an earlier sync is layered on top by the caller.
func NewRemoteLocation(cfg config.ClientRemote) models.RemoteLocation {
	loc := models.RemoteLocation{Kind: models.RemoteKind(cfg.Kind)}

	switch loc.Kind {
	case models.RemoteKindGist:
		loc.GistID = cfg.GistID
		loc.FileName = cfg.FileName
	case models.RemoteKindRepo:
		loc.Owner = cfg.Owner
		loc.Repo = cfg.Repo
		loc.Branch = cfg.Branch
		loc.Path = cfg.Path
	}

	return loc
}
