// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/MKhiriev/go-bookmark-sync/internal/logger"
	"github.com/MKhiriev/go-bookmark-sync/models"
)

const historyTimeLayout = "20060102T150405.000Z"

// historyDir returns the directory holding archived snapshots of loc.Path
// and the name prefix and extension shared by them.
func historyDir(loc models.RemoteLocation) (dir, prefix, ext string) {
	base := path.Base(loc.Path)
	ext = path.Ext(base)
	return path.Join(path.Dir(loc.Path), "history"), strings.TrimSuffix(base, ext) + "-", ext
}

// archiveCurrent copies the authoritative file into the history directory
// and prunes it. It returns ErrConflict when the file no longer matches
// expected; every other failure only affects the history.
func (s *repoStore) archiveCurrent(ctx context.Context, loc models.RemoteLocation, expected models.ConcurrencyToken) error {
	file, err := s.getContent(ctx, loc, loc.Path)
	if errors.Is(err, ErrNotFound) {
		return fmt.Errorf("%w: %s no longer exists", ErrConflict, loc.Path)
	}
	if err != nil {
		return err
	}
	if file.SHA != string(expected) {
		return fmt.Errorf("%w: %s is at %s, expected %s", ErrConflict, loc.Path, file.SHA, expected)
	}

	raw, err := s.fileBytes(ctx, loc, file)
	if err != nil {
		return err
	}

	dir, prefix, ext := historyDir(loc)
	target := path.Join(dir, prefix+s.now().UTC().Format(historyTimeLayout)+ext)

	_, err = s.putContent(ctx, loc, target, repoPutRequest{
		Message: commitMessage("Archive bookmarks snapshot", s.now()),
		Content: encodeBase64(string(raw)),
		Branch:  loc.Branch,
	})
	if err != nil {
		// a conflict here is about the history file, not the envelope
		return fmt.Errorf("write history file %s: %v", target, err)
	}

	return s.pruneHistory(ctx, loc)
}

// pruneHistory keeps the newest historyLimit snapshots.
func (s *repoStore) pruneHistory(ctx context.Context, loc models.RemoteLocation) error {
	snapshots, err := s.listHistory(ctx, loc)
	if err != nil {
		return err
	}
	if len(snapshots) <= s.historyLimit {
		return nil
	}

	log := logger.FromContext(ctx)
	var errs []error
	for _, old := range snapshots[s.historyLimit:] {
		if err = s.deleteContent(ctx, loc, old); err != nil {
			log.Warn().Err(err).Str("func", "*repoStore.pruneHistory").Str("path", old.Path).Msg("could not delete history file")
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// listHistory returns the archived snapshots of loc.Path, newest first.
// Names embed a sortable UTC timestamp, so lexical order is chronological.
func (s *repoStore) listHistory(ctx context.Context, loc models.RemoteLocation) ([]repoContent, error) {
	dir, prefix, ext := historyDir(loc)

	req, err := s.request(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := req.SetQueryParam("ref", loc.Branch).Get(contentsPath(loc, dir))
	if err != nil {
		return nil, fmt.Errorf("list history request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var entries []repoContent
	if err = json.Unmarshal(resp.Body(), &entries); err != nil {
		return nil, fmt.Errorf("%w: decode history listing: %v", ErrUnexpectedResult, err)
	}

	snapshots := entries[:0]
	for _, e := range entries {
		if e.Type == "file" && strings.HasPrefix(e.Name, prefix) && strings.HasSuffix(e.Name, ext) {
			snapshots = append(snapshots, e)
		}
	}
	sort.Slice(snapshots, func(i, j int) bool { return snapshots[i].Name > snapshots[j].Name })
	return snapshots, nil
}

// Revisions lists the archived snapshots. Their file names are the ids.
func (s *repoStore) Revisions(ctx context.Context, loc models.RemoteLocation) ([]models.RemoteRevision, error) {
	owner, err := s.resolveOwner(ctx, loc.Owner)
	if err != nil {
		return nil, err
	}
	loc.Owner = owner

	snapshots, err := s.listHistory(ctx, loc)
	if errors.Is(err, ErrNotFound) {
		return []models.RemoteRevision{}, nil
	}
	if err != nil {
		return nil, err
	}

	_, prefix, ext := historyDir(loc)
	revisions := make([]models.RemoteRevision, 0, len(snapshots))
	for _, snap := range snapshots {
		stamp := strings.TrimSuffix(strings.TrimPrefix(snap.Name, prefix), ext)
		// foreign files matching the pattern are listed without a time
		at, _ := time.Parse(historyTimeLayout, stamp)
		revisions = append(revisions, models.RemoteRevision{ID: snap.Name, CommittedAt: at})
	}
	return revisions, nil
}

func (s *repoStore) ReadRevision(ctx context.Context, loc models.RemoteLocation, id string) (models.SyncEnvelope, error) {
	dir, prefix, ext := historyDir(loc)
	if id != path.Base(id) || !strings.HasPrefix(id, prefix) || !strings.HasSuffix(id, ext) {
		return models.SyncEnvelope{}, fmt.Errorf("%w: %q is not a history snapshot of %s", ErrInvalidLocation, id, loc.Path)
	}

	owner, err := s.resolveOwner(ctx, loc.Owner)
	if err != nil {
		return models.SyncEnvelope{}, err
	}
	loc.Owner = owner

	file, err := s.getContent(ctx, loc, path.Join(dir, id))
	if err != nil {
		return models.SyncEnvelope{}, err
	}

	raw, err := s.fileBytes(ctx, loc, file)
	if err != nil {
		return models.SyncEnvelope{}, err
	}
	return decodeEnvelope(raw)
}

func (s *repoStore) deleteContent(ctx context.Context, loc models.RemoteLocation, file repoContent) error {
	req, err := s.request(ctx)
	if err != nil {
		return err
	}

	p := file.Path
	if p == "" {
		dir, _, _ := historyDir(loc)
		p = path.Join(dir, file.Name)
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(repoDeleteRequest{
			Message: commitMessage("Prune bookmarks history", s.now()),
			SHA:     file.SHA,
			Branch:  loc.Branch,
		}).
		Delete(contentsPath(loc, p))
	if err != nil {
		return fmt.Errorf("delete history file request: %w", err)
	}
	return mapHTTPError(resp)
}
