// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-bookmark-sync/internal/config"
	"github.com/MKhiriev/go-bookmark-sync/internal/logger"
	"github.com/MKhiriev/go-bookmark-sync/internal/service"
)

// Handler serves the local control API of the sync engine.
type Handler struct {
	services *service.ClientServices

	// tokenSignKey enables bearer authentication when set.
	tokenSignKey string
	tokenIssuer  string

	logger *logger.Logger
}

func NewHandler(services *service.ClientServices, cfg config.ClientApp, logger *logger.Logger) *Handler {
	logger.Info().Bool("auth", cfg.TokenSignKey != "").Msg("http handler created")
	return &Handler{
		services:     services,
		tokenSignKey: cfg.TokenSignKey,
		tokenIssuer:  cfg.TokenIssuer,
		logger:       logger,
	}
}
