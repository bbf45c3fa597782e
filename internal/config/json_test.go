// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_AllSections(t *testing.T) {
	path := writeTempFile(t, `{
		"app": {"device_id": "device_json", "token_duration": "2h"},
		"remote": {"kind": "repo", "token": "t", "owner": "o", "repo": "r", "branch": "sync",
		           "request_timeout": "15s", "history_limit": 2},
		"host": {"bookmarks_file": "/b", "debounce": "1s", "write_back": true},
		"storage": {"db": {"driver": "sqlite3", "dsn": "json.db"}},
		"server": {"http_address": "localhost:9999"},
		"workers": {"sync_interval": "30m"},
		"retry": {"max_attempts": 5, "initial_delay": "500ms", "max_delay": "8s", "backoff_factor": 3},
		"log": {"level": "error", "file": "/var/log/sync.log"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "device_json", cfg.App.DeviceID)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "repo", cfg.Remote.Kind)
	assert.Equal(t, "sync", cfg.Remote.Branch)
	assert.Equal(t, 15*time.Second, cfg.Remote.RequestTimeout)
	assert.Equal(t, 2, cfg.Remote.HistoryLimit)
	assert.Equal(t, "/b", cfg.Host.BookmarksFile)
	assert.True(t, cfg.Host.WriteBack)
	assert.Equal(t, time.Second, cfg.Host.Debounce)
	assert.Equal(t, "json.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:9999", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Minute, cfg.Workers.SyncInterval)
	assert.Equal(t, 5, cfg.Retry.MaxAttempts)
	assert.Equal(t, 500*time.Millisecond, cfg.Retry.InitialDelay)
	assert.Equal(t, "/var/log/sync.log", cfg.Log.File)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_Malformed(t *testing.T) {
	_, err := parseJSON(writeTempFile(t, `{"remote": `))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", input: `"90s"`, want: 90 * time.Second},
		{name: "nanoseconds", input: `1000000000`, want: time.Second},
		{name: "bad string", input: `"later"`, wantErr: true},
		{name: "bool", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration(5 * time.Minute))
	require.NoError(t, err)
	assert.JSONEq(t, `"5m0s"`, string(b))
}
