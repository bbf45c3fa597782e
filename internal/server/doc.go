// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the local control API.
//
// The server starts listening when run and shuts down gracefully when the
// context passed to it is done.
package server
