// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UUIDGenerator produces time-ordered identifiers for queued operations.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// NewDeviceID returns a fresh instance identifier of the form
// device_<unix millis>_<8 hex chars>.
func NewDeviceID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("device_%d_%s", now.UnixMilli(), suffix)
}
