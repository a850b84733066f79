package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiterAllowsUpToMax(t *testing.T) {
	limiter := NewSourceRateLimiter(3, time.Minute)

	assert.True(t, limiter.Allow("espn"))
	assert.True(t, limiter.Allow("espn"))
	assert.True(t, limiter.Allow("espn"))
	assert.False(t, limiter.Allow("espn"))
	assert.Equal(t, 3, limiter.InWindow("espn"))
}

func TestRateLimiterTracksSourcesIndependently(t *testing.T) {
	limiter := NewSourceRateLimiter(1, time.Minute)

	assert.True(t, limiter.Allow("espn"))
	assert.False(t, limiter.Allow("espn"))
	assert.True(t, limiter.Allow("oddsapi"))
}

func TestRateLimiterWindowSlides(t *testing.T) {
	limiter := NewSourceRateLimiter(2, time.Minute)
	now := fixedNow
	limiter.Clock = func() time.Time { return now }

	assert.True(t, limiter.Allow("espn"))
	now = now.Add(30 * time.Second)
	assert.True(t, limiter.Allow("espn"))
	assert.False(t, limiter.Allow("espn"))

	// The first request falls out of the window; one slot frees up
	now = fixedNow.Add(61 * time.Second)
	assert.True(t, limiter.Allow("espn"))
	assert.False(t, limiter.Allow("espn"))
}

func TestRateLimiterReset(t *testing.T) {
	limiter := NewSourceRateLimiter(1, time.Minute)

	assert.True(t, limiter.Allow("espn"))
	assert.False(t, limiter.Allow("espn"))

	limiter.Reset()
	assert.Equal(t, 0, limiter.InWindow("espn"))
	assert.True(t, limiter.Allow("espn"))
}
