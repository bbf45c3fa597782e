// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package retry

import (
	"context"
	"errors"
	"io"
	"net"
	"syscall"
)

// Classifier reports whether err is transient and worth another attempt.
type Classifier func(err error) bool

// Transient returns a [Classifier] that treats network-level failures and
// any error matching one of sentinels as retryable.
func Transient(sentinels ...error) Classifier {
	return func(err error) bool {
		if err == nil {
			return false
		}
		for _, s := range sentinels {
			if errors.Is(err, s) {
				return true
			}
		}
		return IsNetworkError(err)
	}
}

// IsNetworkError reports timeouts, connection resets and refusals, DNS
// failures and truncated responses. Cancellation is never transient.
func IsNetworkError(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return false
	}

	if errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNABORTED) ||
		errors.Is(err, syscall.ETIMEDOUT) ||
		errors.Is(err, syscall.EPIPE) ||
		errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	return false
}
