package jira

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	// ProactiveRate is the proactive throttle rate in requests per second.
	// Jira Cloud does not publish a fixed quota; this keeps a single
	// process well under the point where 429s start appearing.
	ProactiveRate = 5

	// ProactiveBurst allows short bursts of concurrent tool calls.
	ProactiveBurst = 10

	// HeaderRetryAfter is the retry-after header (seconds).
	HeaderRetryAfter = "Retry-After"
)

// RateLimiter combines a proactive token bucket with reactive handling
// of the server's Retry-After responses.
type RateLimiter struct {
	mu         sync.Mutex
	retryAfter time.Time // Earliest time the next request may be sent
	bucket     *rate.Limiter
}

// NewRateLimiter creates a rate limiter with proactive throttling.
func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		bucket: rate.NewLimiter(rate.Limit(ProactiveRate), ProactiveBurst),
	}
}

// Wait blocks until it is safe to make a request.
func (r *RateLimiter) Wait(ctx context.Context) error {
	if err := r.bucket.Wait(ctx); err != nil {
		return err
	}

	r.mu.Lock()
	until := r.retryAfter
	r.mu.Unlock()

	if wait := time.Until(until); wait > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
	return nil
}

// UpdateFromResponse records a Retry-After directive if the server sent
// one. A 429 without the header imposes no hold; the caller's retry
// policy backs off on its own.
func (r *RateLimiter) UpdateFromResponse(resp *http.Response) {
	if resp == nil {
		return
	}
	raw := resp.Header.Get(HeaderRetryAfter)
	if raw == "" {
		return
	}
	secs, err := strconv.Atoi(raw)
	if err != nil || secs <= 0 {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	hold := time.Now().Add(time.Duration(secs) * time.Second)
	if hold.After(r.retryAfter) {
		r.retryAfter = hold
	}
}

// HoldUntil returns the earliest time the next request may be sent.
// Zero when no server hold is active.
func (r *RateLimiter) HoldUntil() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.retryAfter
}
