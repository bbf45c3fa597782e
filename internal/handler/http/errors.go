// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"

	"github.com/MKhiriev/go-bookmark-sync/internal/app"
)

// Sentinel errors used by the authentication middleware. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned when the request carries neither
	// an "Authorization" header nor an access_token query parameter.
	ErrEmptyAuthorizationHeader = errors.New(app.MsgEmptyAuthorization)

	// ErrTokenExpired is reported when the bearer token is past its expiry.
	ErrTokenExpired = errors.New(app.MsgTokenIsExpired)

	errHijackUnsupported = errors.New("response writer does not support hijacking")
)
