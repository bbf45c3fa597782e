// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-bookmark-sync/internal/config"
	"github.com/MKhiriev/go-bookmark-sync/internal/logger"
	"github.com/MKhiriev/go-bookmark-sync/internal/service"
)

func TestNewHandlers(t *testing.T) {
	cfg := &config.ClientConfig{Server: config.ClientServer{HTTPAddress: "127.0.0.1:8765"}}

	h, err := NewHandlers(&service.ClientServices{}, cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
	assert.NotNil(t, h.HTTP.Init())
}

func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(&service.ClientServices{}, &config.ClientConfig{}, logger.Nop())

	require.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}

func TestNewHandlers_IndependentInstances(t *testing.T) {
	cfg := &config.ClientConfig{Server: config.ClientServer{HTTPAddress: ":0"}}

	h1, err1 := NewHandlers(&service.ClientServices{}, cfg, logger.Nop())
	h2, err2 := NewHandlers(&service.ClientServices{}, cfg, logger.Nop())

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.NotSame(t, h1.HTTP, h2.HTTP)
}
