// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds device identity, control API token settings and version.
	App App `envPrefix:"APP_"`

	// Remote selects and addresses the hosted-file backend.
	Remote Remote `envPrefix:"REMOTE_"`

	// Host points at the local bookmark store.
	Host Host `envPrefix:"HOST_"`

	// Storage holds the durable state database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the local control API settings.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds background job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// Retry holds the backoff policy applied to remote calls.
	Retry Retry `envPrefix:"RETRY_"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// Command is the first positional command-line argument (run, sync,
	// status, queue, drain, token, history, rollback, backup, restore). It is
	// never read from env or JSON.
	Command string

	// CommandArgs are the positional arguments following Command.
	CommandArgs []string
}

// App holds application-level settings.
type App struct {
	// DeviceID overrides the generated device identifier.
	// Env: APP_DEVICE_ID
	DeviceID string `env:"DEVICE_ID"`

	// TokenSignKey signs and verifies control API bearer tokens. When empty
	// the control API does not require authentication.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of control API tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of issued control API tokens.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is reported by the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Remote addresses the hosted-file backend.
type Remote struct {
	// Kind is "gist" or "repo".
	// Env: REMOTE_KIND
	Kind string `env:"KIND"`

	// Token is the access token sent as a bearer credential.
	// Env: REMOTE_TOKEN
	Token string `env:"TOKEN"`

	// BaseURL is the API root (default https://api.github.com).
	// Env: REMOTE_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// GistID is the gist holding the envelope; empty means create on first sync.
	// Env: REMOTE_GIST_ID
	GistID string `env:"GIST_ID"`

	// FileName is the gist file name (default bookmarks.json).
	// Env: REMOTE_FILE_NAME
	FileName string `env:"FILE_NAME"`

	// Owner, Repo, Branch and Path address the repository backend. Owner "@me"
	// resolves to the authenticated account.
	// Env: REMOTE_OWNER, REMOTE_REPO, REMOTE_BRANCH, REMOTE_PATH
	Owner  string `env:"OWNER"`
	Repo   string `env:"REPO"`
	Branch string `env:"BRANCH"`
	Path   string `env:"PATH"`

	// RequestTimeout bounds a single HTTP call.
	// Env: REMOTE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// HistoryLimit is the number of repository snapshots kept (default 5).
	// Env: REMOTE_HISTORY_LIMIT
	HistoryLimit int `env:"HISTORY_LIMIT"`

	// DisableHistory turns repository snapshot retention off.
	// Env: REMOTE_DISABLE_HISTORY
	DisableHistory bool `env:"DISABLE_HISTORY"`

	// RequestsPerSecond limits outgoing API calls (default 1).
	// Env: REMOTE_REQUESTS_PER_SECOND
	RequestsPerSecond float64 `env:"REQUESTS_PER_SECOND"`
}

// Host points at the local bookmark store.
type Host struct {
	// BookmarksFile is the Chromium profile "Bookmarks" JSON file.
	// Env: HOST_BOOKMARKS_FILE
	BookmarksFile string `env:"BOOKMARKS_FILE"`

	// WriteBack enables adding remote-only nodes to the host file after a merge.
	// Env: HOST_WRITE_BACK
	WriteBack bool `env:"WRITE_BACK"`

	// DisableWatch turns the file watcher off.
	// Env: HOST_DISABLE_WATCH
	DisableWatch bool `env:"DISABLE_WATCH"`

	// Debounce coalesces bursts of host change events (default 2s).
	// Env: HOST_DEBOUNCE
	Debounce time.Duration `env:"DEBOUNCE"`
}

// Storage groups the durable state settings.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the state database.
type DB struct {
	// Driver is "sqlite3" (default) or "postgres".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is a file path for sqlite3 or a connection URI for postgres.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds the control API settings.
type Server struct {
	// HTTPAddress is the listen address in "host:port" format. Empty disables
	// the control API.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds reading request headers and the graceful shutdown.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds background job settings.
type Workers struct {
	// SyncInterval is the auto-sync period (default 5m, minimum 1m).
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// DisableAutoSync turns the periodic timer off.
	// Env: WORKERS_DISABLE_AUTO_SYNC
	DisableAutoSync bool `env:"DISABLE_AUTO_SYNC"`
}

// Retry configures the backoff policy.
type Retry struct {
	// Env: RETRY_MAX_ATTEMPTS
	MaxAttempts int `env:"MAX_ATTEMPTS"`
	// Env: RETRY_INITIAL_DELAY
	InitialDelay time.Duration `env:"INITIAL_DELAY"`
	// Env: RETRY_MAX_DELAY
	MaxDelay time.Duration `env:"MAX_DELAY"`
	// Env: RETRY_BACKOFF_FACTOR
	BackoffFactor float64 `env:"BACKOFF_FACTOR"`
	// Env: RETRY_DISABLE_JITTER
	DisableJitter bool `env:"DISABLE_JITTER"`
}

// Log holds logging settings.
type Log struct {
	// Level is a zerolog level name (default debug).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`

	// File is the log file path. Empty selects logs/client.log next to the binary.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// GetStructuredConfig loads and merges the configuration from all sources,
// applies defaults and validates the result.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
