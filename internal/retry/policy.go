// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package retry

import (
	"math"
	"time"
)

// Policy configures an [Engine].
type Policy struct {
	// MaxAttempts is the total number of calls, including the first one.
	MaxAttempts int
	// InitialDelay is the wait before the second attempt.
	InitialDelay time.Duration
	// MaxDelay caps every single wait.
	MaxDelay time.Duration
	// BackoffFactor multiplies the wait after every failed attempt.
	BackoffFactor float64
	// Jitter scales every wait by a uniform random factor in [0.75, 1.0].
	Jitter bool
}

// DefaultPolicy returns 3 attempts, 1s initial delay, 10s cap, factor 2,
// with jitter.
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts:   3,
		InitialDelay:  time.Second,
		MaxDelay:      10 * time.Second,
		BackoffFactor: 2,
		Jitter:        true,
	}
}

// Backoff returns the jitter-free wait scheduled after the given failed
// attempt (1-based): min(InitialDelay * BackoffFactor^(attempt-1), MaxDelay).
func (p Policy) Backoff(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	factor := p.BackoffFactor
	if factor < 1 {
		factor = 1
	}

	d := float64(p.InitialDelay) * math.Pow(factor, float64(attempt-1))
	if p.MaxDelay > 0 && d > float64(p.MaxDelay) {
		return p.MaxDelay
	}
	return time.Duration(d)
}

// MaxTotalDelay is the upper bound of the time spent waiting before the
// final failure. Server-provided retry hints never raise it.
func (p Policy) MaxTotalDelay() time.Duration {
	var total time.Duration
	for attempt := 1; attempt < p.MaxAttempts; attempt++ {
		total += p.Backoff(attempt)
	}
	return total
}

func (p Policy) normalized() Policy {
	if p.MaxAttempts < 1 {
		p.MaxAttempts = 1
	}
	if p.BackoffFactor < 1 {
		p.BackoffFactor = 1
	}
	return p
}
