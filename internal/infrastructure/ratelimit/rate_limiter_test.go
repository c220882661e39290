package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokenBucketExhaustion(t *testing.T) {
	bucket := NewTokenBucket(3, 1, time.Minute)

	for i := 0; i < 3; i++ {
		allowed, _ := bucket.Allow()
		assert.True(t, allowed)
	}

	allowed, wait := bucket.Allow()
	assert.False(t, allowed)
	assert.Greater(t, wait, time.Duration(0))
}

func TestRateLimiterIsolatesClientsAndActions(t *testing.T) {
	limiter := NewRateLimiter()

	for i := 0; i < 5; i++ {
		allowed, _ := limiter.Allow("10.0.0.1", "submit_request")
		assert.True(t, allowed)
	}
	allowed, _ := limiter.Allow("10.0.0.1", "submit_request")
	assert.False(t, allowed)

	// a different client and a different action are unaffected
	allowed, _ = limiter.Allow("10.0.0.2", "submit_request")
	assert.True(t, allowed)
	allowed, _ = limiter.Allow("10.0.0.1", "verify_order")
	assert.True(t, allowed)
}
