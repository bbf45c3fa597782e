// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package retry

import (
	"errors"
	"fmt"
	"time"
)

// ErrRetriesExhausted is matched by every error returned after the attempt
// budget was spent on transient failures.
var ErrRetriesExhausted = errors.New("retries exhausted")

// ExhaustedError carries the last transient error and the number of
// attempts made.
type ExhaustedError struct {
	Attempts int
	Err      error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("%s after %d attempts: %v", ErrRetriesExhausted, e.Attempts, e.Err)
}

// Unwrap exposes both [ErrRetriesExhausted] and the last underlying error.
func (e *ExhaustedError) Unwrap() []error {
	return []error{ErrRetriesExhausted, e.Err}
}

// RetryAfterHinter is implemented by errors that carry a server-provided
// minimum wait (for example a Retry-After header).
type RetryAfterHinter interface {
	RetryAfter() time.Duration
}
