// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidRemoteConfigs indicates an unknown backend kind, a missing
	// token, or an incomplete repository location.
	ErrInvalidRemoteConfigs = errors.New("invalid remote configuration")
	// ErrInvalidStorageConfigs indicates an unsupported driver or empty DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidHostConfigs indicates a missing bookmarks file.
	ErrInvalidHostConfigs = errors.New("invalid host configuration")
	// ErrInvalidWorkerConfigs indicates a sync interval below one minute.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidRetryConfigs indicates an unusable backoff policy.
	ErrInvalidRetryConfigs = errors.New("invalid retry configuration")
)
