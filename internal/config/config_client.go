// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp holds application-level client settings.
type ClientApp struct {
	DeviceID      string
	TokenSignKey  string
	TokenIssuer   string
	TokenDuration time.Duration
	Version       string
}

// ClientRemote holds the hosted-file backend settings.
type ClientRemote struct {
	Kind              string
	Token             string
	BaseURL           string
	GistID            string
	FileName          string
	Owner             string
	Repo              string
	Branch            string
	Path              string
	RequestTimeout    time.Duration
	HistoryLimit      int
	RequestsPerSecond float64
}

// ClientHost holds the host bookmark store settings.
type ClientHost struct {
	BookmarksFile string
	WriteBack     bool
	Watch         bool
	Debounce      time.Duration
}

// ClientDB contains state database connection settings.
type ClientDB struct {
	// Driver is "sqlite3" or "postgres".
	Driver string
	// DSN is the SQLite file path or the PostgreSQL connection string.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientServer holds the control API settings. An empty HTTPAddress
// disables the API.
type ClientServer struct {
	HTTPAddress    string
	RequestTimeout time.Duration
}

// ClientWorkers contains background worker settings.
type ClientWorkers struct {
	SyncInterval time.Duration
	AutoSync     bool
}

// ClientRetry is the backoff policy applied to remote calls.
type ClientRetry struct {
	MaxAttempts   int
	InitialDelay  time.Duration
	MaxDelay      time.Duration
	BackoffFactor float64
	Jitter        bool
}

// ClientLog holds logging settings.
type ClientLog struct {
	Level string
	File  string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Remote  ClientRemote
	Host    ClientHost
	Storage ClientStorage
	Server  ClientServer
	Workers ClientWorkers
	Retry   ClientRetry
	Log     ClientLog

	// Command is the run mode selected on the command line.
	Command string
	// CommandArgs are the arguments of Command, such as a revision or a file.
	CommandArgs []string
}

// GetClientConfig builds and validates the client config from all sources.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

// NewClientConfig maps a merged [StructuredConfig] to the client view
// without validating it.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	historyLimit := cfg.Remote.HistoryLimit
	if cfg.Remote.DisableHistory {
		historyLimit = 0
	}

	return &ClientConfig{
		App: ClientApp{
			DeviceID:      cfg.App.DeviceID,
			TokenSignKey:  cfg.App.TokenSignKey,
			TokenIssuer:   cfg.App.TokenIssuer,
			TokenDuration: cfg.App.TokenDuration,
			Version:       cfg.App.Version,
		},
		Remote: ClientRemote{
			Kind:              cfg.Remote.Kind,
			Token:             cfg.Remote.Token,
			BaseURL:           cfg.Remote.BaseURL,
			GistID:            cfg.Remote.GistID,
			FileName:          cfg.Remote.FileName,
			Owner:             cfg.Remote.Owner,
			Repo:              cfg.Remote.Repo,
			Branch:            cfg.Remote.Branch,
			Path:              cfg.Remote.Path,
			RequestTimeout:    cfg.Remote.RequestTimeout,
			HistoryLimit:      historyLimit,
			RequestsPerSecond: cfg.Remote.RequestsPerSecond,
		},
		Host: ClientHost{
			BookmarksFile: cfg.Host.BookmarksFile,
			WriteBack:     cfg.Host.WriteBack,
			Watch:         !cfg.Host.DisableWatch,
			Debounce:      cfg.Host.Debounce,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				Driver: cfg.Storage.DB.Driver,
				DSN:    cfg.Storage.DB.DSN,
			},
		},
		Server: ClientServer{
			HTTPAddress:    cfg.Server.HTTPAddress,
			RequestTimeout: cfg.Server.RequestTimeout,
		},
		Workers: ClientWorkers{
			SyncInterval: cfg.Workers.SyncInterval,
			AutoSync:     !cfg.Workers.DisableAutoSync,
		},
		Retry: ClientRetry{
			MaxAttempts:   cfg.Retry.MaxAttempts,
			InitialDelay:  cfg.Retry.InitialDelay,
			MaxDelay:      cfg.Retry.MaxDelay,
			BackoffFactor: cfg.Retry.BackoffFactor,
			Jitter:        !cfg.Retry.DisableJitter,
		},
		Log: ClientLog{
			Level: cfg.Log.Level,
			File:  cfg.Log.File,
		},
		Command:     cfg.Command,
		CommandArgs: cfg.CommandArgs,
	}
}
