package ratelimit

import (
	"context"
	"time"
)

// RateLimitConfig bounds request counts over sliding windows. A zero limit
// disables that window.
type RateLimitConfig struct {
	RequestsPerMinute int
	RequestsPerHour   int
}

// RateLimiter guards the unauthenticated surfaces (access requests, login
// link re-issuance) against abuse.
type RateLimiter interface {
	Allow(ctx context.Context, key string, config RateLimitConfig) (bool, error)
	GetRemaining(ctx context.Context, key string, window time.Duration) (int64, error)
	Reset(ctx context.Context, key string) error
}
