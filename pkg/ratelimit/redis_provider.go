package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/loyal-labs/loyal-backend/pkg/identity"
)

// tokenBucketScript implements the same refill-then-deduct step as the
// in-process limiter, executed atomically inside Redis so budgets are shared
// across gateway replicas. KEYS[1] is the bucket key; ARGV are
// now_ms, refill_per_sec, capacity, cost, ttl_ms.
//
// Returns {allowed, remaining_millitokens, retry_after_ms}.
const tokenBucketScript = `
local key = KEYS[1]
local now = tonumber(ARGV[1])
local rate = tonumber(ARGV[2])
local capacity = tonumber(ARGV[3])
local cost = tonumber(ARGV[4])
local ttl = tonumber(ARGV[5])

local state = redis.call('HMGET', key, 'tokens', 'last_refill')
local tokens = tonumber(state[1])
local last = tonumber(state[2])
if tokens == nil then
  tokens = capacity
  last = now
end

local elapsed = now - last
if elapsed < 0 then
  elapsed = 0
end
tokens = math.min(capacity, tokens + (elapsed / 1000.0) * rate)

local allowed = 0
local retry_after = 0
if tokens >= cost then
  tokens = tokens - cost
  allowed = 1
else
  retry_after = math.ceil(((cost - tokens) / rate) * 1000)
end

redis.call('HSET', key, 'tokens', tokens, 'last_refill', now)
redis.call('PEXPIRE', key, ttl)

return {allowed, math.floor(tokens * 1000), retry_after}
`

// RedisLimiter is a distributed token bucket backed by Redis. Bucket TTL in
// Redis doubles as the idle eviction policy: an idle surrogate's key simply
// expires.
type RedisLimiter struct {
	rdb       *redis.Client
	script    *redis.Script
	capacity  float64
	refillPS  float64
	idleTTL   time.Duration
	keyPrefix string
	timeout   time.Duration
}

// RedisLimiterOptions configures a RedisLimiter.
type RedisLimiterOptions struct {
	Addr         string
	Capacity     float64
	RefillPerSec float64
	IdleTTL      time.Duration
}

// NewRedisLimiter creates a Redis-backed limiter.
func NewRedisLimiter(opts RedisLimiterOptions) *RedisLimiter {
	if opts.Capacity <= 0 {
		opts.Capacity = 1
	}
	if opts.RefillPerSec <= 0 {
		opts.RefillPerSec = 1
	}
	if opts.IdleTTL <= 0 {
		opts.IdleTTL = 10 * time.Minute
	}
	return &RedisLimiter{
		rdb:       redis.NewClient(&redis.Options{Addr: opts.Addr}),
		script:    redis.NewScript(tokenBucketScript),
		capacity:  opts.Capacity,
		refillPS:  opts.RefillPerSec,
		idleTTL:   opts.IdleTTL,
		keyPrefix: "loyal:rl:",
		timeout:   2 * time.Second,
	}
}

func (l *RedisLimiter) Name() string { return "redis" }

// Check runs the token bucket script for the surrogate's key. Network or
// script errors surface as provider errors for the chain's fail-open /
// fail-closed policy to handle.
func (l *RedisLimiter) Check(rctx Context) (*Decision, error) {
	cost := rctx.Cost
	if cost <= 0 {
		cost = 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), l.timeout)
	defer cancel()

	res, err := l.script.Run(ctx, l.rdb, []string{l.bucketKey(rctx.Surrogate)},
		time.Now().UnixMilli(), l.refillPS, l.capacity, cost, l.idleTTL.Milliseconds(),
	).Result()
	if err != nil {
		return nil, fmt.Errorf("redis token bucket: %w", err)
	}

	arr, ok := res.([]interface{})
	if !ok || len(arr) != 3 {
		return nil, fmt.Errorf("redis token bucket: unexpected reply %v", res)
	}
	allowed := arr[0].(int64) == 1
	remaining := float64(arr[1].(int64)) / 1000.0
	retryAfter := time.Duration(arr[2].(int64)) * time.Millisecond

	return &Decision{
		Allowed:    allowed,
		Remaining:  remaining,
		Limit:      l.capacity,
		RetryAfter: retryAfter,
		Provider:   l.Name(),
	}, nil
}

// Close releases the Redis connection.
func (l *RedisLimiter) Close() error {
	return l.rdb.Close()
}

func (l *RedisLimiter) bucketKey(s identity.Surrogate) string {
	return l.keyPrefix + strconv.FormatUint(uint64(s), 16)
}
