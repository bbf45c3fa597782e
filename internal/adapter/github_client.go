// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"

	"github.com/MKhiriev/go-bookmark-sync/internal/config"
	"github.com/MKhiriev/go-bookmark-sync/internal/logger"
	"github.com/MKhiriev/go-bookmark-sync/internal/utils"
)

const (
	defaultBaseURL = "https://api.github.com"
	apiVersion     = "2022-11-28"
	ownerSelf      = "@me"
)

// githubClient is the REST client shared by both backends. Every request
// waits on a client-side limiter first.
type githubClient struct {
	client  *utils.HTTPClient
	limiter *rate.Limiter
	logger  *logger.Logger

	mu    sync.Mutex
	login string
}

func newGitHubClient(cfg config.ClientRemote, log *logger.Logger) (*githubClient, error) {
	if strings.TrimSpace(cfg.Token) == "" {
		return nil, ErrEmptyToken
	}

	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid remote base url: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetAuthToken(strings.TrimSpace(cfg.Token)).
		SetHeader("Accept", "application/vnd.github+json").
		SetHeader("X-GitHub-Api-Version", apiVersion)

	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}

	return &githubClient{
		client:  client,
		limiter: rate.NewLimiter(limit, 1),
		logger:  log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return defaultBaseURL, nil
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// request returns a request bound to ctx once the limiter admits it.
func (c *githubClient) request(ctx context.Context) (*resty.Request, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}
	return c.client.R().SetContext(ctx), nil
}

type githubUser struct {
	Login string `json:"login"`
}

// Authenticate resolves the login of the configured token through GET /user.
func (c *githubClient) Authenticate(ctx context.Context) (string, error) {
	req, err := c.request(ctx)
	if err != nil {
		return "", err
	}

	resp, err := req.Get("/user")
	if err != nil {
		return "", fmt.Errorf("authenticate request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		c.logger.Err(err).Str("func", "*githubClient.Authenticate").Msg("credential rejected by remote")
		return "", err
	}

	var u githubUser
	if err = json.Unmarshal(resp.Body(), &u); err != nil || u.Login == "" {
		return "", fmt.Errorf("%w: decode user: %v", ErrUnexpectedResult, err)
	}

	c.mu.Lock()
	c.login = u.Login
	c.mu.Unlock()

	return u.Login, nil
}

// currentLogin returns the cached login, authenticating on first use.
func (c *githubClient) currentLogin(ctx context.Context) (string, error) {
	c.mu.Lock()
	login := c.login
	c.mu.Unlock()
	if login != "" {
		return login, nil
	}
	return c.Authenticate(ctx)
}

// resolveOwner replaces an empty or "@me" owner with the authenticated login.
func (c *githubClient) resolveOwner(ctx context.Context, owner string) (string, error) {
	if owner != "" && owner != ownerSelf {
		return owner, nil
	}
	return c.currentLogin(ctx)
}

func commitMessage(prefix string, at time.Time) string {
	return fmt.Sprintf("%s %s", prefix, at.UTC().Format(time.RFC3339))
}
