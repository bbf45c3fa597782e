// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle contract of the control API server.
type Server interface {
	// Run serves requests until ctx is done, then shuts down gracefully.
	// It returns nil after a clean shutdown.
	Run(ctx context.Context) error
}
