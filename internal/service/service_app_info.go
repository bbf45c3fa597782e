// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-bookmark-sync/internal/config"
)

// appInfoService answers version queries of the control API.
type appInfoService struct {
	version  string
	deviceID string
}

// NewAppInfoService requires a non-blank version. A non-empty deviceID is
// reported next to it so clients can tell devices apart.
func NewAppInfoService(cfg config.ClientApp, deviceID string) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{version: version, deviceID: deviceID}, nil
}

func (s *appInfoService) GetAppVersion(context.Context) string {
	if s.deviceID == "" {
		return s.version
	}
	return s.version + " (" + s.deviceID + ")"
}
