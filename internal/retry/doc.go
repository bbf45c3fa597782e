// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package retry wraps fallible network operations with bounded exponential
// backoff, optional jitter and an error classification policy.
//
// Only errors the [Classifier] reports as transient are retried. Everything
// else is returned to the caller unchanged on the first occurrence. When the
// attempt budget is spent, the last error is returned wrapped in an
// [ExhaustedError] that matches [ErrRetriesExhausted].
package retry
