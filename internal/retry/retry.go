// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package retry

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"
)

// Sleeper waits for d or until ctx is done.
type Sleeper func(ctx context.Context, d time.Duration) error

// Notifier is called before every wait with the failed attempt number, the
// chosen delay and the error that caused the retry.
type Notifier func(attempt int, delay time.Duration, err error)

// Engine executes operations under a [Policy]. It is safe for concurrent use
// when its options are.
type Engine struct {
	policy   Policy
	classify Classifier
	sleep    Sleeper
	random   func() float64
	onRetry  Notifier
}

// Option customizes an [Engine].
type Option func(*Engine)

// WithSleeper replaces the context-aware timer wait. Used by tests.
func WithSleeper(s Sleeper) Option {
	return func(e *Engine) { e.sleep = s }
}

// WithRandom replaces the jitter source. f must return values in [0, 1).
func WithRandom(f func() float64) Option {
	return func(e *Engine) { e.random = f }
}

// WithNotifier registers a callback invoked before every retry.
func WithNotifier(n Notifier) Option {
	return func(e *Engine) { e.onRetry = n }
}

// New creates an [Engine]. A nil classifier retries nothing.
func New(policy Policy, classify Classifier, opts ...Option) *Engine {
	if classify == nil {
		classify = func(error) bool { return false }
	}

	e := &Engine{
		policy:   policy.normalized(),
		classify: classify,
		sleep:    waitWithContext,
		random:   rand.Float64,
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Policy returns the effective policy.
func (e *Engine) Policy() Policy {
	return e.policy
}

// With returns a copy of the engine with additional options applied.
func (e *Engine) With(opts ...Option) *Engine {
	cp := *e
	for _, opt := range opts {
		opt(&cp)
	}
	return &cp
}

// Execute runs op until it succeeds, fails with a non-transient error, or
// the attempt budget is spent.
func (e *Engine) Execute(ctx context.Context, op func(ctx context.Context) error) error {
	_, err := Do(ctx, e, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, op(ctx)
	})
	return err
}

// Do is the value-returning form of [Engine.Execute].
func Do[T any](ctx context.Context, e *Engine, op func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		result, err := op(ctx)
		if err == nil {
			return result, nil
		}

		if !e.classify(err) {
			return zero, err
		}
		if attempt >= e.policy.MaxAttempts {
			return zero, &ExhaustedError{Attempts: attempt, Err: err}
		}

		delay := e.delay(attempt, err)
		if e.onRetry != nil {
			e.onRetry(attempt, delay, err)
		}

		if sleepErr := e.sleep(ctx, delay); sleepErr != nil {
			return zero, fmt.Errorf("retry interrupted after %d attempts: %w", attempt, errors.Join(sleepErr, err))
		}
	}
}

// delay never exceeds Backoff(attempt). A retry hint can only take back
// the jitter reduction, so MaxTotalDelay holds for hinted errors too.
func (e *Engine) delay(attempt int, err error) time.Duration {
	base := e.policy.Backoff(attempt)
	d := base
	if e.policy.Jitter {
		d = time.Duration(float64(base) * (0.75 + 0.25*e.random()))
	}

	var hint RetryAfterHinter
	if errors.As(err, &hint) {
		d = max(d, min(hint.RetryAfter(), base))
	}

	return d
}

func waitWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
