// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// control API handlers.
//
// The Msg* constants are written into plain-text error responses.
package app

const (
	// MsgSyncStatusUnavailable is returned when the persisted sync state
	// cannot be read.
	MsgSyncStatusUnavailable = "error getting sync status"

	// MsgQueueUnavailable is returned when the offline queue cannot be
	// listed.
	MsgQueueUnavailable = "error listing pending operations"

	MsgHistoryUnavailable   = "error getting sync history"
	MsgRevisionsUnavailable = "error listing remote revisions"
	MsgInvalidLimit         = "limit must be a non-negative integer"
	MsgInvalidJSON          = "Invalid JSON was passed"

	// MsgTokenIsExpired is returned when a bearer token is well formed but
	// its expiry time has passed.
	MsgTokenIsExpired = "token is expired"

	// MsgEmptyAuthorization is returned when neither the Authorization
	// header nor the access_token parameter is present.
	MsgEmptyAuthorization = "empty authorization header"

	MsgUnauthorized = "unauthorized"
)
