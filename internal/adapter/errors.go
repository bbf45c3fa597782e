// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrBadRequest    = errors.New("bad request")
	ErrUnauthorized  = errors.New("client unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrNotFound      = errors.New("remote object not found")
	ErrConflict      = errors.New("remote document changed since it was read")
	ErrUnprocessable = errors.New("unprocessable entity")
	ErrRateLimited   = errors.New("rate limited by remote")
	ErrServerError   = errors.New("remote server error")

	ErrInvalidPayload   = errors.New("remote document is not a valid envelope")
	ErrUnsupportedKind  = errors.New("unsupported remote kind")
	ErrInvalidLocation  = errors.New("invalid remote location")
	ErrEmptyToken       = errors.New("remote access token is empty")
	ErrUnexpectedResult = errors.New("unexpected remote response")
)

// rateLimitError is returned for 429 and exhausted-quota 403 responses. It
// carries the wait the server asked for.
type rateLimitError struct {
	wait time.Duration
	body string
}

func (e *rateLimitError) Error() string {
	if e.wait > 0 {
		return fmt.Sprintf("%s (retry after %s): %s", ErrRateLimited, e.wait, e.body)
	}
	return fmt.Sprintf("%s: %s", ErrRateLimited, e.body)
}

func (e *rateLimitError) Unwrap() error {
	return ErrRateLimited
}

// RetryAfter returns the server-provided minimum wait.
func (e *rateLimitError) RetryAfter() time.Duration {
	return e.wait
}
