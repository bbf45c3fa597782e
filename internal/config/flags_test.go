// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "only port", addr: NetAddress{Port: 8787}, expected: ":8787"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		expected    NetAddress
	}{
		{name: "localhost", input: "localhost:8787", expected: NetAddress{Host: "localhost", Port: 8787}},
		{name: "ip", input: "127.0.0.1:9000", expected: NetAddress{Host: "127.0.0.1", Port: 9000}},
		{name: "all interfaces", input: ":9000", expected: NetAddress{Port: 9000}},
		{name: "missing port", input: "localhost", expectError: true},
		{name: "non numeric port", input: "localhost:http", expectError: true},
		{name: "port out of range", input: "localhost:70000", expectError: true},
		{name: "bad host", input: "not-an-ip:80", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, a)
		})
	}
}

func TestParseFlags_AllFlagsAndCommand(t *testing.T) {
	args := []string{
		"-a", "localhost:8787",
		"-config", "/tmp/c.json",
		"-d", "state.db",
		"-driver", "sqlite3",
		"-b", "/profile/Bookmarks",
		"-kind", "gist",
		"-gist-id", "abc123",
		"-interval", "10m",
		"-request-timeout", "5s",
		"-device-id", "device_x",
		"-write-back",
		"-log-level", "warn",
		"sync",
	}

	cfg, err := parseFlags(newFlagSet(), args)
	require.NoError(t, err)

	assert.Equal(t, "localhost:8787", cfg.Server.HTTPAddress)
	assert.Equal(t, "/tmp/c.json", cfg.JSONFilePath)
	assert.Equal(t, "state.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/profile/Bookmarks", cfg.Host.BookmarksFile)
	assert.Equal(t, "gist", cfg.Remote.Kind)
	assert.Equal(t, "abc123", cfg.Remote.GistID)
	assert.Equal(t, 10*time.Minute, cfg.Workers.SyncInterval)
	assert.Equal(t, 5*time.Second, cfg.Remote.RequestTimeout)
	assert.Equal(t, "device_x", cfg.App.DeviceID)
	assert.True(t, cfg.Host.WriteBack)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "sync", cfg.Command)
}

func TestParseFlags_CommandArgs(t *testing.T) {
	cfg, err := parseFlags(newFlagSet(), []string{"-kind", "repo", "rollback", "bookmarks-20250101T000000.000Z.json"})
	require.NoError(t, err)

	assert.Equal(t, "rollback", cfg.Command)
	assert.Equal(t, []string{"bookmarks-20250101T000000.000Z.json"}, cfg.CommandArgs)

	cfg, err = parseFlags(newFlagSet(), []string{"status"})
	require.NoError(t, err)
	assert.Nil(t, cfg.CommandArgs)
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	_, err := parseFlags(newFlagSet(), []string{"-nope"})
	assert.Error(t, err)
}

func TestParseFlags_NoArgs(t *testing.T) {
	cfg, err := parseFlags(newFlagSet(), nil)
	require.NoError(t, err)
	assert.Empty(t, cfg.Server.HTTPAddress)
	assert.Empty(t, cfg.Command)
}
