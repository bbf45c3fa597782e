// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		DeviceID      string   `json:"device_id"`
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		Version       string   `json:"version"`
	} `json:"app,omitempty"`

	Remote struct {
		Kind              string   `json:"kind"`
		Token             string   `json:"token"`
		BaseURL           string   `json:"base_url"`
		GistID            string   `json:"gist_id"`
		FileName          string   `json:"file_name"`
		Owner             string   `json:"owner"`
		Repo              string   `json:"repo"`
		Branch            string   `json:"branch"`
		Path              string   `json:"path"`
		RequestTimeout    Duration `json:"request_timeout"`
		HistoryLimit      int      `json:"history_limit"`
		DisableHistory    bool     `json:"disable_history"`
		RequestsPerSecond float64  `json:"requests_per_second"`
	} `json:"remote,omitempty"`

	Host struct {
		BookmarksFile string   `json:"bookmarks_file"`
		WriteBack     bool     `json:"write_back"`
		DisableWatch  bool     `json:"disable_watch"`
		Debounce      Duration `json:"debounce"`
	} `json:"host,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Workers struct {
		SyncInterval    Duration `json:"sync_interval"`
		DisableAutoSync bool     `json:"disable_auto_sync"`
	} `json:"workers,omitempty"`

	Retry struct {
		MaxAttempts   int      `json:"max_attempts"`
		InitialDelay  Duration `json:"initial_delay"`
		MaxDelay      Duration `json:"max_delay"`
		BackoffFactor float64  `json:"backoff_factor"`
		DisableJitter bool     `json:"disable_jitter"`
	} `json:"retry,omitempty"`

	Log struct {
		Level string `json:"level"`
		File  string `json:"file"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var j StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&j); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			DeviceID:      j.App.DeviceID,
			TokenSignKey:  j.App.TokenSignKey,
			TokenIssuer:   j.App.TokenIssuer,
			TokenDuration: time.Duration(j.App.TokenDuration),
			Version:       j.App.Version,
		},
		Remote: Remote{
			Kind:              j.Remote.Kind,
			Token:             j.Remote.Token,
			BaseURL:           j.Remote.BaseURL,
			GistID:            j.Remote.GistID,
			FileName:          j.Remote.FileName,
			Owner:             j.Remote.Owner,
			Repo:              j.Remote.Repo,
			Branch:            j.Remote.Branch,
			Path:              j.Remote.Path,
			RequestTimeout:    time.Duration(j.Remote.RequestTimeout),
			HistoryLimit:      j.Remote.HistoryLimit,
			DisableHistory:    j.Remote.DisableHistory,
			RequestsPerSecond: j.Remote.RequestsPerSecond,
		},
		Host: Host{
			BookmarksFile: j.Host.BookmarksFile,
			WriteBack:     j.Host.WriteBack,
			DisableWatch:  j.Host.DisableWatch,
			Debounce:      time.Duration(j.Host.Debounce),
		},
		Storage: Storage{
			DB: DB{
				Driver: j.Storage.DB.Driver,
				DSN:    j.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    j.Server.HTTPAddress,
			RequestTimeout: time.Duration(j.Server.RequestTimeout),
		},
		Workers: Workers{
			SyncInterval:    time.Duration(j.Workers.SyncInterval),
			DisableAutoSync: j.Workers.DisableAutoSync,
		},
		Retry: Retry{
			MaxAttempts:   j.Retry.MaxAttempts,
			InitialDelay:  time.Duration(j.Retry.InitialDelay),
			MaxDelay:      time.Duration(j.Retry.MaxDelay),
			BackoffFactor: j.Retry.BackoffFactor,
			DisableJitter: j.Retry.DisableJitter,
		},
		Log: Log{
			Level: j.Log.Level,
			File:  j.Log.File,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as from integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
