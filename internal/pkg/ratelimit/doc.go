// Package ratelimit provides fixed-window request throttling.
//
// Counters live in Redis so the window survives process restarts and is shared
// between replicas. Callers depend on the Limiter interface so tests can use a
// deterministic fake.
package ratelimit
