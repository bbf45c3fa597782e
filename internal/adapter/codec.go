// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-bookmark-sync/models"
)

// encodeEnvelope renders env as the stored document text.
func encodeEnvelope(env models.SyncEnvelope) (string, error) {
	raw, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode envelope: %w", err)
	}
	return string(raw), nil
}

func decodeEnvelope(raw []byte) (models.SyncEnvelope, error) {
	var env models.SyncEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return models.SyncEnvelope{}, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return env, nil
}

// encodeBase64 and decodeBase64 exist only for the repository contents API,
// which transports file bodies as base64. GitHub wraps encoded content at 60
// columns, so line breaks are dropped before decoding.
func encodeBase64(text string) string {
	return base64.StdEncoding.EncodeToString([]byte(text))
}

func decodeBase64(encoded string) ([]byte, error) {
	clean := strings.NewReplacer("\n", "", "\r", "").Replace(encoded)
	raw, err := base64.StdEncoding.DecodeString(clean)
	if err != nil {
		return nil, fmt.Errorf("%w: base64: %v", ErrInvalidPayload, err)
	}
	return raw, nil
}
