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

type repoContent struct {
	Type     string `json:"type"`
	Name     string `json:"name"`
	Path     string `json:"path"`
	SHA      string `json:"sha"`
	Content  string `json:"content"`
	Encoding string `json:"encoding"`
}

type repoBlob struct {
	SHA      string `json:"sha"`
	Content  string `json:"content"`
	Encoding string `json:"encoding"`
}

type repoPutRequest struct {
	Message string `json:"message"`
	Content string `json:"content"`
	Branch  string `json:"branch,omitempty"`
	SHA     string `json:"sha,omitempty"`
}

type repoDeleteRequest struct {
	Message string `json:"message"`
	SHA     string `json:"sha"`
	Branch  string `json:"branch,omitempty"`
}

type repoPutResponse struct {
	Content repoContent `json:"content"`
}

type repoInfo struct {
	DefaultBranch string `json:"default_branch"`
}

type repoCreateRequest struct {
	Name     string `json:"name"`
	Private  bool   `json:"private"`
	AutoInit bool   `json:"auto_init"`
}

type gitRef struct {
	Ref    string `json:"ref"`
	Object struct {
		SHA string `json:"sha"`
	} `json:"object"`
}

type gitRefCreateRequest struct {
	Ref string `json:"ref"`
	SHA string `json:"sha"`
}

// repoStore keeps the envelope at a fixed path of a repository branch. The
// blob sha of that file is the concurrency token and the contents API
// enforces it on every update.
type repoStore struct {
	*githubClient
	historyLimit int
	now          func() time.Time
}

func newRepoStore(client *githubClient, historyLimit int) *repoStore {
	return &repoStore{githubClient: client, historyLimit: historyLimit, now: time.Now}
}

func (s *repoStore) Read(ctx context.Context, loc models.RemoteLocation) (models.RemoteSnapshot, error) {
	owner, err := s.resolveOwner(ctx, loc.Owner)
	if err != nil {
		return models.RemoteSnapshot{}, err
	}
	loc.Owner = owner

	file, err := s.getContent(ctx, loc, loc.Path)
	if err != nil {
		return models.RemoteSnapshot{}, err
	}

	raw, err := s.fileBytes(ctx, loc, file)
	if err != nil {
		return models.RemoteSnapshot{}, err
	}

	env, err := decodeEnvelope(raw)
	if err != nil {
		return models.RemoteSnapshot{}, err
	}

	return models.RemoteSnapshot{Envelope: env, Token: models.ConcurrencyToken(file.SHA)}, nil
}

func (s *repoStore) Write(ctx context.Context, loc models.RemoteLocation, env models.SyncEnvelope, expected models.ConcurrencyToken) (models.WriteResult, error) {
	log := logger.FromContext(ctx)

	owner, err := s.resolveOwner(ctx, loc.Owner)
	if err != nil {
		return models.WriteResult{}, err
	}
	loc.Owner = owner

	content, err := encodeEnvelope(env)
	if err != nil {
		return models.WriteResult{}, err
	}

	if expected != "" && s.historyLimit > 0 {
		if err = s.archiveCurrent(ctx, loc, expected); err != nil {
			if errors.Is(err, ErrConflict) {
				return models.WriteResult{}, err
			}
			log.Warn().Err(err).Str("func", "*repoStore.Write").Msg("could not archive previous snapshot")
		}
	}

	body := repoPutRequest{
		Message: commitMessage("Sync bookmarks", s.now()),
		Content: encodeBase64(content),
		Branch:  loc.Branch,
		SHA:     string(expected),
	}

	res, err := s.putContent(ctx, loc, loc.Path, body)
	if errors.Is(err, ErrNotFound) && expected == "" {
		// repository or branch missing: first sync into a fresh target
		if err = s.bootstrap(ctx, loc); err != nil {
			return models.WriteResult{}, err
		}
		res, err = s.putContent(ctx, loc, loc.Path, body)
	}
	if errors.Is(err, ErrNotFound) && expected != "" {
		return models.WriteResult{}, fmt.Errorf("%w: %w", ErrConflict, err)
	}
	if err != nil {
		return models.WriteResult{}, err
	}

	log.Debug().Str("func", "*repoStore.Write").
		Str("repo", loc.Owner+"/"+loc.Repo).
		Str("path", loc.Path).
		Str("sha", res.Content.SHA).
		Msg("repository file updated")

	return models.WriteResult{Token: models.ConcurrencyToken(res.Content.SHA), Location: loc}, nil
}

// putContent creates or updates a file. 409 means the sha is stale; 422 is
// returned when a sha was required but missing. Both are conflicts here.
func (s *repoStore) putContent(ctx context.Context, loc models.RemoteLocation, path string, body repoPutRequest) (repoPutResponse, error) {
	req, err := s.request(ctx)
	if err != nil {
		return repoPutResponse{}, err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Put(contentsPath(loc, path))
	if err != nil {
		return repoPutResponse{}, fmt.Errorf("put repository file request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		if errors.Is(err, ErrUnprocessable) {
			return repoPutResponse{}, fmt.Errorf("%w: %w", ErrConflict, err)
		}
		return repoPutResponse{}, err
	}

	var out repoPutResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil || out.Content.SHA == "" {
		return repoPutResponse{}, fmt.Errorf("%w: decode put response: %v", ErrUnexpectedResult, err)
	}
	return out, nil
}

func (s *repoStore) getContent(ctx context.Context, loc models.RemoteLocation, path string) (repoContent, error) {
	req, err := s.request(ctx)
	if err != nil {
		return repoContent{}, err
	}

	resp, err := req.
		SetQueryParam("ref", loc.Branch).
		Get(contentsPath(loc, path))
	if err != nil {
		return repoContent{}, fmt.Errorf("get repository file request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return repoContent{}, err
	}

	var file repoContent
	if err = json.Unmarshal(resp.Body(), &file); err != nil {
		return repoContent{}, fmt.Errorf("%w: decode contents: %v", ErrUnexpectedResult, err)
	}
	if file.Type != "" && file.Type != "file" {
		return repoContent{}, fmt.Errorf("%w: %s is a %s", ErrInvalidLocation, path, file.Type)
	}
	return file, nil
}

// fileBytes decodes inline content, falling back to the blobs API for files
// too large to be inlined.
func (s *repoStore) fileBytes(ctx context.Context, loc models.RemoteLocation, file repoContent) ([]byte, error) {
	if file.Encoding == "base64" && file.Content != "" {
		return decodeBase64(file.Content)
	}

	req, err := s.request(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := req.Get(fmt.Sprintf("/repos/%s/%s/git/blobs/%s", url.PathEscape(loc.Owner), url.PathEscape(loc.Repo), file.SHA))
	if err != nil {
		return nil, fmt.Errorf("get blob request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var blob repoBlob
	if err = json.Unmarshal(resp.Body(), &blob); err != nil {
		return nil, fmt.Errorf("%w: decode blob: %v", ErrUnexpectedResult, err)
	}
	return decodeBase64(blob.Content)
}

// bootstrap creates the repository and the branch when they do not exist.
func (s *repoStore) bootstrap(ctx context.Context, loc models.RemoteLocation) error {
	info, err := s.getRepo(ctx, loc)
	if errors.Is(err, ErrNotFound) {
		info, err = s.createRepo(ctx, loc)
	}
	if err != nil {
		return err
	}

	if loc.Branch == "" || loc.Branch == info.DefaultBranch {
		return nil
	}
	return s.ensureBranch(ctx, loc, info.DefaultBranch)
}

func (s *repoStore) getRepo(ctx context.Context, loc models.RemoteLocation) (repoInfo, error) {
	req, err := s.request(ctx)
	if err != nil {
		return repoInfo{}, err
	}

	resp, err := req.Get(repoPath(loc))
	if err != nil {
		return repoInfo{}, fmt.Errorf("get repository request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return repoInfo{}, err
	}

	var info repoInfo
	if err = json.Unmarshal(resp.Body(), &info); err != nil {
		return repoInfo{}, fmt.Errorf("%w: decode repository: %v", ErrUnexpectedResult, err)
	}
	return info, nil
}

func (s *repoStore) createRepo(ctx context.Context, loc models.RemoteLocation) (repoInfo, error) {
	login, err := s.currentLogin(ctx)
	if err != nil {
		return repoInfo{}, err
	}

	endpoint := "/user/repos"
	if !strings.EqualFold(login, loc.Owner) {
		endpoint = "/orgs/" + url.PathEscape(loc.Owner) + "/repos"
	}

	req, err := s.request(ctx)
	if err != nil {
		return repoInfo{}, err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(repoCreateRequest{Name: loc.Repo, Private: true, AutoInit: true}).
		Post(endpoint)
	if err != nil {
		return repoInfo{}, fmt.Errorf("create repository request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return repoInfo{}, err
	}

	var info repoInfo
	if err = json.Unmarshal(resp.Body(), &info); err != nil {
		return repoInfo{}, fmt.Errorf("%w: decode created repository: %v", ErrUnexpectedResult, err)
	}

	logger.FromContext(ctx).Info().Str("func", "*repoStore.createRepo").
		Str("repo", loc.Owner+"/"+loc.Repo).
		Str("default_branch", info.DefaultBranch).
		Msg("repository created")
	return info, nil
}

// ensureBranch forks loc.Branch from the head of the default branch when it
// does not exist yet.
func (s *repoStore) ensureBranch(ctx context.Context, loc models.RemoteLocation, defaultBranch string) error {
	_, err := s.getRef(ctx, loc, loc.Branch)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrNotFound) {
		return err
	}

	head, err := s.getRef(ctx, loc, defaultBranch)
	if err != nil {
		return fmt.Errorf("read default branch %q: %w", defaultBranch, err)
	}

	req, err := s.request(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(gitRefCreateRequest{Ref: "refs/heads/" + loc.Branch, SHA: head.Object.SHA}).
		Post(repoPath(loc) + "/git/refs")
	if err != nil {
		return fmt.Errorf("create branch request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	logger.FromContext(ctx).Info().Str("func", "*repoStore.ensureBranch").
		Str("branch", loc.Branch).
		Str("from", defaultBranch).
		Msg("branch created")
	return nil
}

func (s *repoStore) getRef(ctx context.Context, loc models.RemoteLocation, branch string) (gitRef, error) {
	req, err := s.request(ctx)
	if err != nil {
		return gitRef{}, err
	}

	resp, err := req.Get(repoPath(loc) + "/git/ref/heads/" + branch)
	if err != nil {
		return gitRef{}, fmt.Errorf("get ref request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return gitRef{}, err
	}

	var ref gitRef
	if err = json.Unmarshal(resp.Body(), &ref); err != nil {
		return gitRef{}, fmt.Errorf("%w: decode ref: %v", ErrUnexpectedResult, err)
	}
	return ref, nil
}

func repoPath(loc models.RemoteLocation) string {
	return fmt.Sprintf("/repos/%s/%s", url.PathEscape(loc.Owner), url.PathEscape(loc.Repo))
}

func contentsPath(loc models.RemoteLocation, path string) string {
	return repoPath(loc) + "/contents/" + strings.TrimLeft(path, "/")
}
