// Package ratelimit throttles outgoing completion requests.
package ratelimit

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	// DefaultBurst lets a retry follow a failed attempt without waiting.
	DefaultBurst = 2

	// DefaultBackoff applies when a 429 carries no retry hint.
	DefaultBackoff = 60 * time.Second
)

// ErrBackingOff is returned by callers that skip a request instead of
// waiting out a backoff window.
var ErrBackingOff = errors.New("ratelimit: backing off after quota error")

// Limiter is a token bucket with an optional backoff window set after a
// provider reports a quota error.
type Limiter struct {
	mu      sync.Mutex
	limiter *rate.Limiter
	retryAt time.Time
	now     func() time.Time
}

// New creates a limiter allowing perMinute requests per minute.
// A non-positive perMinute disables throttling.
func New(perMinute int) *Limiter {
	limit := rate.Inf
	if perMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(perMinute))
	}
	return &Limiter{
		limiter: rate.NewLimiter(limit, DefaultBurst),
		now:     time.Now,
	}
}

// Wait blocks until a request may be sent. It honours any backoff window
// and returns early with ctx.Err() when ctx is done.
func (l *Limiter) Wait(ctx context.Context) error {
	l.mu.Lock()
	retryAt := l.retryAt
	l.mu.Unlock()

	if delay := retryAt.Sub(l.now()); delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	return l.limiter.Wait(ctx)
}

// WaitToken blocks until the token bucket admits a request. It ignores the
// backoff window.
func (l *Limiter) WaitToken(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}

// BackingOff returns the time left in the backoff window, if one is active.
func (l *Limiter) BackingOff() (time.Duration, bool) {
	l.mu.Lock()
	retryAt := l.retryAt
	l.mu.Unlock()

	left := retryAt.Sub(l.now())
	return left, left > 0
}

// Backoff blocks further requests for d. A non-positive d uses DefaultBackoff.
// Call it when the provider answers 429.
func (l *Limiter) Backoff(d time.Duration) {
	if d <= 0 {
		d = DefaultBackoff
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.retryAt = l.now().Add(d)
}

// Allow reports whether a request may be sent immediately, consuming a token if so.
func (l *Limiter) Allow() bool {
	l.mu.Lock()
	retryAt := l.retryAt
	l.mu.Unlock()

	if l.now().Before(retryAt) {
		return false
	}
	return l.limiter.Allow()
}
