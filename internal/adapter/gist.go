// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-bookmark-sync/internal/logger"
	"github.com/MKhiriev/go-bookmark-sync/models"
)

const gistDescription = "Bookmark sync envelope"

type gistFile struct {
	Filename  string `json:"filename,omitempty"`
	Content   string `json:"content"`
	Truncated bool   `json:"truncated,omitempty"`
	RawURL    string `json:"raw_url,omitempty"`
}

type gistHistoryEntry struct {
	Version     string    `json:"version"`
	CommittedAt time.Time `json:"committed_at"`
}

type gist struct {
	ID        string              `json:"id"`
	Files     map[string]gistFile `json:"files"`
	History   []gistHistoryEntry  `json:"history"`
	UpdatedAt time.Time           `json:"updated_at"`
}

// token is the newest revision id. Gists returned without history fall back
// to the update instant, which still changes on every write.
func (g gist) token() models.ConcurrencyToken {
	if len(g.History) > 0 && g.History[0].Version != "" {
		return models.ConcurrencyToken(g.History[0].Version)
	}
	return models.ConcurrencyToken(g.UpdatedAt.UTC().Format(time.RFC3339Nano))
}

type gistWriteRequest struct {
	Description string              `json:"description,omitempty"`
	Public      *bool               `json:"public,omitempty"`
	Files       map[string]gistFile `json:"files"`
}

// gistStore keeps the envelope as the only file of one gist.
//
// The gists API has no conditional update, so Write re-reads the revision
// right before patching. The remaining window between that read and the
// patch is as small as one round trip.
type gistStore struct {
	*githubClient
}

func newGistStore(client *githubClient) *gistStore {
	return &gistStore{githubClient: client}
}

func (s *gistStore) Read(ctx context.Context, loc models.RemoteLocation) (models.RemoteSnapshot, error) {
	if loc.GistID == "" {
		return models.RemoteSnapshot{}, fmt.Errorf("%w: no gist id yet", ErrNotFound)
	}

	g, err := s.getGist(ctx, loc.GistID)
	if err != nil {
		return models.RemoteSnapshot{}, err
	}

	env, err := s.envelopeOf(ctx, g, loc)
	if err != nil {
		return models.RemoteSnapshot{}, err
	}

	return models.RemoteSnapshot{Envelope: env, Token: g.token()}, nil
}

// Revisions lists the gist history without its newest entry, which is the
// current document.
func (s *gistStore) Revisions(ctx context.Context, loc models.RemoteLocation) ([]models.RemoteRevision, error) {
	if loc.GistID == "" {
		return []models.RemoteRevision{}, nil
	}

	g, err := s.getGist(ctx, loc.GistID)
	if errors.Is(err, ErrNotFound) {
		return []models.RemoteRevision{}, nil
	}
	if err != nil {
		return nil, err
	}

	revisions := make([]models.RemoteRevision, 0, len(g.History))
	for i, h := range g.History {
		if i == 0 || h.Version == "" {
			continue
		}
		revisions = append(revisions, models.RemoteRevision{ID: h.Version, CommittedAt: h.CommittedAt.UTC()})
	}
	return revisions, nil
}

func (s *gistStore) ReadRevision(ctx context.Context, loc models.RemoteLocation, id string) (models.SyncEnvelope, error) {
	if loc.GistID == "" {
		return models.SyncEnvelope{}, fmt.Errorf("%w: no gist id yet", ErrNotFound)
	}
	if id == "" || strings.ContainsRune(id, '/') {
		return models.SyncEnvelope{}, fmt.Errorf("%w: %q is not a gist revision", ErrInvalidLocation, id)
	}

	g, err := s.getGist(ctx, loc.GistID+"/"+url.PathEscape(id))
	if err != nil {
		return models.SyncEnvelope{}, err
	}
	return s.envelopeOf(ctx, g, loc)
}

// envelopeOf decodes the envelope file of g, downloading it when the API
// truncated the inline content.
func (s *gistStore) envelopeOf(ctx context.Context, g gist, loc models.RemoteLocation) (models.SyncEnvelope, error) {
	file, ok := g.Files[loc.FileName]
	if !ok {
		return models.SyncEnvelope{}, fmt.Errorf("%w: file %q not in gist %s", ErrNotFound, loc.FileName, loc.GistID)
	}

	content := file.Content
	if file.Truncated && file.RawURL != "" {
		var err error
		if content, err = s.getRaw(ctx, file.RawURL); err != nil {
			return models.SyncEnvelope{}, err
		}
	}

	return decodeEnvelope([]byte(content))
}

func (s *gistStore) Write(ctx context.Context, loc models.RemoteLocation, env models.SyncEnvelope, expected models.ConcurrencyToken) (models.WriteResult, error) {
	log := logger.FromContext(ctx)

	content, err := encodeEnvelope(env)
	if err != nil {
		return models.WriteResult{}, err
	}

	if loc.GistID == "" {
		if expected != "" {
			return models.WriteResult{}, fmt.Errorf("%w: token given for a gist that does not exist", ErrConflict)
		}
		return s.createGist(ctx, loc, content)
	}

	current, err := s.getGist(ctx, loc.GistID)
	if errors.Is(err, ErrNotFound) {
		if expected != "" {
			return models.WriteResult{}, fmt.Errorf("%w: gist %s was deleted", ErrConflict, loc.GistID)
		}
		log.Warn().Str("func", "*gistStore.Write").Str("gist_id", loc.GistID).Msg("configured gist is gone, creating a new one")
		return s.createGist(ctx, loc, content)
	}
	if err != nil {
		return models.WriteResult{}, err
	}

	_, exists := current.Files[loc.FileName]
	switch {
	case exists && expected == "":
		return models.WriteResult{}, fmt.Errorf("%w: gist %s already holds %s", ErrConflict, loc.GistID, loc.FileName)
	case !exists && expected != "":
		return models.WriteResult{}, fmt.Errorf("%w: %s was removed from gist %s", ErrConflict, loc.FileName, loc.GistID)
	case exists && current.token() != expected:
		return models.WriteResult{}, fmt.Errorf("%w: gist %s is at %s, expected %s", ErrConflict, loc.GistID, current.token(), expected)
	}

	req, err := s.request(ctx)
	if err != nil {
		return models.WriteResult{}, err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(gistWriteRequest{Files: map[string]gistFile{loc.FileName: {Content: content}}}).
		Patch("/gists/" + loc.GistID)
	if err != nil {
		return models.WriteResult{}, fmt.Errorf("update gist request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.WriteResult{}, err
	}

	var updated gist
	if err = json.Unmarshal(resp.Body(), &updated); err != nil {
		return models.WriteResult{}, fmt.Errorf("%w: decode gist: %v", ErrUnexpectedResult, err)
	}

	log.Debug().Str("func", "*gistStore.Write").Str("gist_id", loc.GistID).Str("token", string(updated.token())).Msg("gist updated")
	return models.WriteResult{Token: updated.token(), Location: loc}, nil
}

func (s *gistStore) createGist(ctx context.Context, loc models.RemoteLocation, content string) (models.WriteResult, error) {
	req, err := s.request(ctx)
	if err != nil {
		return models.WriteResult{}, err
	}

	public := false
	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(gistWriteRequest{
			Description: gistDescription,
			Public:      &public,
			Files:       map[string]gistFile{loc.FileName: {Content: content}},
		}).
		Post("/gists")
	if err != nil {
		return models.WriteResult{}, fmt.Errorf("create gist request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.WriteResult{}, err
	}

	var created gist
	if err = json.Unmarshal(resp.Body(), &created); err != nil || created.ID == "" {
		return models.WriteResult{}, fmt.Errorf("%w: decode created gist: %v", ErrUnexpectedResult, err)
	}

	logger.FromContext(ctx).Info().Str("func", "*gistStore.createGist").Str("gist_id", created.ID).Msg("gist created")

	loc.GistID = created.ID
	return models.WriteResult{Token: created.token(), Location: loc}, nil
}

func (s *gistStore) getGist(ctx context.Context, id string) (gist, error) {
	req, err := s.request(ctx)
	if err != nil {
		return gist{}, err
	}

	resp, err := req.Get("/gists/" + id)
	if err != nil {
		return gist{}, fmt.Errorf("get gist request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return gist{}, err
	}

	var g gist
	if err = json.Unmarshal(resp.Body(), &g); err != nil {
		return gist{}, fmt.Errorf("%w: decode gist: %v", ErrUnexpectedResult, err)
	}
	return g, nil
}

// getRaw downloads a truncated file through its absolute raw URL.
func (s *gistStore) getRaw(ctx context.Context, rawURL string) (string, error) {
	req, err := s.request(ctx)
	if err != nil {
		return "", err
	}

	resp, err := req.Get(rawURL)
	if err != nil {
		return "", fmt.Errorf("get raw gist file: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return string(resp.Body()), nil
}
