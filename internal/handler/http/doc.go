// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the local control API of the sync engine.
//
// It lets a popup, a settings page or a script trigger a cycle, read the
// last outcome and the offline queue, drain the queue and follow progress
// over a websocket. Tracing, access logging, optional bearer
// authentication, compression and ETags are handled here before requests
// reach the service layer.
package http
