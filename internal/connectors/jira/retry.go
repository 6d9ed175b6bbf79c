package jira

import (
	"context"
	"time"
)

const (
	// MaxRetries is the default number of attempts for transient errors.
	MaxRetries = 3

	// RetryDelay is the default initial delay between attempts.
	RetryDelay = time.Second
)

// WithRetry runs op up to maxAttempts times, sleeping
// baseDelay * 2^(attempt-1) between attempts. The last error is
// returned once attempts are exhausted. Retry is an explicit
// composition: Client.Do never retries on its own, and callers decide
// which failures are worth repeating (see IsRetryable).
func WithRetry(ctx context.Context, maxAttempts int, baseDelay time.Duration, op func(ctx context.Context) error) error {
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	var lastErr error
	delay := baseDelay
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		lastErr = op(ctx)
		if lastErr == nil {
			return nil
		}
		if attempt == maxAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}
	return lastErr
}

// RetryTransient runs op with the default retry policy, but only
// re-attempts failures IsRetryable considers transient. Terminal
// classifications (authentication, not-found, 4xx, decode defects)
// surface immediately.
func RetryTransient(ctx context.Context, op func(ctx context.Context) error) error {
	var lastErr error
	delay := RetryDelay
	for attempt := 1; attempt <= MaxRetries; attempt++ {
		lastErr = op(ctx)
		if lastErr == nil || !IsRetryable(lastErr) || attempt == MaxRetries {
			return lastErr
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}
	return lastErr
}
