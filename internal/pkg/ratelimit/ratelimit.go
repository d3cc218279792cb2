package ratelimit

import (
	"context"
	"time"
)

// Result reports the outcome of a single Allow call.
type Result struct {
	// Allowed is false when the caller exceeded the rule within the window.
	Allowed bool
	// Count is the number of requests observed in the current window.
	Count int64
	// RetryAfter is how long until the window resets.
	RetryAfter time.Duration
}

// Rule describes a fixed-window limit.
type Rule struct {
	// Prefix namespaces the counter key (e.g. "ratelimit:otp").
	Prefix string
	// Window is the counting window length.
	Window time.Duration
	// MaxRequests is the number of requests allowed per window.
	MaxRequests int
}

// Limiter counts requests per key within a fixed window.
type Limiter interface {
	// Allow records one request for key and reports whether it is within the rule.
	Allow(ctx context.Context, key string, rule Rule) (Result, error)
}
