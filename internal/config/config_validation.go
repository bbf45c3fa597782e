// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

const (
	defaultBaseURL           = "https://api.github.com"
	defaultFileName          = "bookmarks.json"
	defaultBranch            = "main"
	defaultRequestTimeout    = 30 * time.Second
	defaultHistoryLimit      = 5
	defaultRequestsPerSecond = 1
	defaultDebounce          = 2 * time.Second
	defaultDriver            = "sqlite3"
	defaultDSN               = "bookmark-sync.db"
	defaultServerTimeout     = 2 * time.Minute
	defaultSyncInterval      = 5 * time.Minute
	minSyncInterval          = time.Minute
	defaultMaxAttempts       = 3
	defaultInitialDelay      = time.Second
	defaultMaxDelay          = 10 * time.Second
	defaultBackoffFactor     = 2
	defaultTokenIssuer       = "bookmark-sync"
	defaultTokenDuration     = 24 * time.Hour
)

// applyDefaults fills every zero-valued setting that has a sensible default.
func (cfg *StructuredConfig) applyDefaults() {
	setDefault(&cfg.Remote.BaseURL, defaultBaseURL)
	setDefault(&cfg.Remote.FileName, defaultFileName)
	setDefault(&cfg.Remote.Branch, defaultBranch)
	setDefault(&cfg.Remote.Path, defaultFileName)
	setDefault(&cfg.Remote.RequestTimeout, defaultRequestTimeout)
	setDefault(&cfg.Remote.HistoryLimit, defaultHistoryLimit)
	setDefault(&cfg.Remote.RequestsPerSecond, defaultRequestsPerSecond)

	setDefault(&cfg.Host.Debounce, defaultDebounce)

	setDefault(&cfg.Storage.DB.Driver, defaultDriver)
	if cfg.Storage.DB.Driver == defaultDriver {
		setDefault(&cfg.Storage.DB.DSN, defaultDSN)
	}

	setDefault(&cfg.Server.RequestTimeout, defaultServerTimeout)
	setDefault(&cfg.Workers.SyncInterval, defaultSyncInterval)

	setDefault(&cfg.Retry.MaxAttempts, defaultMaxAttempts)
	setDefault(&cfg.Retry.InitialDelay, defaultInitialDelay)
	setDefault(&cfg.Retry.MaxDelay, defaultMaxDelay)
	setDefault(&cfg.Retry.BackoffFactor, defaultBackoffFactor)

	setDefault(&cfg.App.TokenIssuer, defaultTokenIssuer)
	setDefault(&cfg.App.TokenDuration, defaultTokenDuration)

	setDefault(&cfg.Log.Level, "debug")
}

func setDefault[T comparable](field *T, value T) {
	var zero T
	if *field == zero {
		*field = value
	}
}

// validate checks the merged [StructuredConfig]. Field-level rules live in
// [ClientConfig.validate]; this only rejects values no consumer can use.
func (cfg *StructuredConfig) validate() error {
	if cfg.Remote.HistoryLimit < 0 {
		return fmt.Errorf("%w: negative history limit", ErrInvalidRemoteConfigs)
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	switch cfg.Remote.Kind {
	case "gist":
	case "repo":
		if cfg.Remote.Owner == "" || cfg.Remote.Repo == "" {
			return fmt.Errorf("%w: repository owner and name are required", ErrInvalidRemoteConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidRemoteConfigs, cfg.Remote.Kind)
	}
	if cfg.Remote.Token == "" {
		return fmt.Errorf("%w: access token is required", ErrInvalidRemoteConfigs)
	}
	if cfg.Remote.RequestTimeout <= 0 || cfg.Remote.RequestsPerSecond <= 0 {
		return fmt.Errorf("%w: timeout and request rate must be positive", ErrInvalidRemoteConfigs)
	}

	if cfg.Storage.DB.Driver != "sqlite3" && cfg.Storage.DB.Driver != "postgres" {
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}

	if cfg.Host.BookmarksFile == "" {
		return fmt.Errorf("%w: bookmarks file is required", ErrInvalidHostConfigs)
	}

	if cfg.Workers.SyncInterval < minSyncInterval {
		return fmt.Errorf("%w: sync interval must be at least %s", ErrInvalidWorkerConfigs, minSyncInterval)
	}

	if cfg.Retry.MaxAttempts < 1 || cfg.Retry.BackoffFactor < 1 ||
		cfg.Retry.InitialDelay <= 0 || cfg.Retry.MaxDelay < cfg.Retry.InitialDelay {
		return ErrInvalidRetryConfigs
	}

	return nil
}
