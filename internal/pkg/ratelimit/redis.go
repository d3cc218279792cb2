package ratelimit

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrUnexpectedReply indicates the counter script returned a malformed reply.
var ErrUnexpectedReply = errors.New("ratelimit: unexpected script reply")

var counterScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
	redis.call("EXPIRE", KEYS[1], ARGV[1])
end
local ttl = redis.call("TTL", KEYS[1])
return {current, ttl}
`)

// RedisLimiter implements Limiter with an INCR+EXPIRE counter in Redis.
type RedisLimiter struct {
	client *redis.Client
}

// NewRedis returns a Redis-backed limiter.
func NewRedis(client *redis.Client) *RedisLimiter {
	return &RedisLimiter{client: client}
}

// Allow increments the window counter for key and compares it against the rule.
func (l *RedisLimiter) Allow(ctx context.Context, key string, rule Rule) (Result, error) {
	if rule.Window <= 0 || rule.MaxRequests <= 0 {
		return Result{Allowed: true}, nil
	}

	if rule.Prefix != "" {
		key = rule.Prefix + ":" + key
	}

	windowSeconds := int(rule.Window / time.Second)
	if windowSeconds < 1 {
		windowSeconds = 1
	}

	reply, err := counterScript.Run(ctx, l.client, []string{key}, windowSeconds).Result()
	if err != nil {
		return Result{}, err
	}

	values, ok := reply.([]any)
	if !ok || len(values) < 2 {
		return Result{}, ErrUnexpectedReply
	}

	count, ok := toInt64(values[0])
	if !ok {
		return Result{}, ErrUnexpectedReply
	}

	ttlSeconds, _ := toInt64(values[1])
	if ttlSeconds < 1 {
		ttlSeconds = int64(windowSeconds)
	}

	return Result{
		Allowed:    count <= int64(rule.MaxRequests),
		Count:      count,
		RetryAfter: time.Duration(ttlSeconds) * time.Second,
	}, nil
}

func toInt64(value any) (int64, bool) {
	switch v := value.(type) {
	case int64:
		return v, true
	case int:
		return int64(v), true
	case int32:
		return int64(v), true
	case uint64:
		return int64(v), true
	case uint32:
		return int64(v), true
	case float64:
		return int64(v), true
	default:
		return 0, false
	}
}
