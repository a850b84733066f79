package services

import (
	"sync"
	"time"
)

// SourceRateLimiter implements sliding-window rate limiting per source.
// A saturated window means the source is skipped for the cycle; it does not
// count as a failure.
type SourceRateLimiter struct {
	mu          sync.Mutex
	requests    map[string][]time.Time
	maxRequests int
	window      time.Duration
	Clock       func() time.Time
}

// NewSourceRateLimiter creates a new rate limiter
// maxRequests: maximum number of requests per window
// window: time window for rate limiting (e.g., 1 minute)
func NewSourceRateLimiter(maxRequests int, window time.Duration) *SourceRateLimiter {
	return &SourceRateLimiter{
		requests:    make(map[string][]time.Time),
		maxRequests: maxRequests,
		window:      window,
		Clock:       time.Now,
	}
}

// Allow checks whether a request to the source is admitted, recording it if
// so. Returns false when the window is saturated.
func (rl *SourceRateLimiter) Allow(source string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.Clock()
	rl.cleanupOldRequests(source, now)

	if len(rl.requests[source]) >= rl.maxRequests {
		return false
	}

	rl.requests[source] = append(rl.requests[source], now)
	return true
}

// InWindow returns the number of requests currently counted for a source
func (rl *SourceRateLimiter) InWindow(source string) int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.cleanupOldRequests(source, rl.Clock())
	return len(rl.requests[source])
}

// cleanupOldRequests removes requests outside the time window
func (rl *SourceRateLimiter) cleanupOldRequests(source string, now time.Time) {
	requests, exists := rl.requests[source]
	if !exists {
		return
	}
	cutoff := now.Add(-rl.window)
	valid := requests[:0]
	for _, req := range requests {
		if req.After(cutoff) {
			valid = append(valid, req)
		}
	}
	if len(valid) == 0 {
		delete(rl.requests, source)
	} else {
		rl.requests[source] = valid
	}
}

// Reset clears all rate limiting state
func (rl *SourceRateLimiter) Reset() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.requests = make(map[string][]time.Time)
}
