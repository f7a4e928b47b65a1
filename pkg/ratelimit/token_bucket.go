package ratelimit

import (
	"math"
	"sync"
	"time"

	"github.com/loyal-labs/loyal-backend/pkg/identity"
	"github.com/loyal-labs/loyal-backend/pkg/observability/logging"
	"github.com/loyal-labs/loyal-backend/pkg/observability/metrics"
)

// TokenBucketLimiter is the in-process limiter keyed by identity surrogate.
//
// Buckets are created lazily on first sight of a surrogate and evicted by a
// background sweep after idle_ttl, bounding memory against surrogate churn.
// Synchronization is per-bucket: unrelated surrogates never contend on a
// shared lock, and refill+deduct is one atomic step under the bucket mutex.
type TokenBucketLimiter struct {
	capacity  float64
	refillPS  float64
	idleTTL   time.Duration
	sweepTick time.Duration

	buckets sync.Map // identity.Surrogate → *bucket
	live    int64
	liveMu  sync.Mutex

	now func() time.Time

	stopOnce sync.Once
	stop     chan struct{}
}

type bucket struct {
	mu         sync.Mutex
	tokens     float64
	lastRefill time.Time
	lastSeen   time.Time
	evicted    bool
}

// TokenBucketOptions configures a TokenBucketLimiter.
type TokenBucketOptions struct {
	Capacity      float64
	RefillPerSec  float64
	IdleTTL       time.Duration
	SweepInterval time.Duration
}

// NewTokenBucketLimiter creates a limiter and starts its eviction sweep.
// Call Close to stop the sweep.
func NewTokenBucketLimiter(opts TokenBucketOptions) *TokenBucketLimiter {
	if opts.Capacity <= 0 {
		opts.Capacity = 1
	}
	if opts.RefillPerSec <= 0 {
		opts.RefillPerSec = 1
	}
	if opts.IdleTTL <= 0 {
		opts.IdleTTL = 10 * time.Minute
	}
	if opts.SweepInterval <= 0 {
		opts.SweepInterval = time.Minute
	}
	l := &TokenBucketLimiter{
		capacity:  opts.Capacity,
		refillPS:  opts.RefillPerSec,
		idleTTL:   opts.IdleTTL,
		sweepTick: opts.SweepInterval,
		now:       time.Now,
		stop:      make(chan struct{}),
	}
	go l.sweepLoop()
	return l
}

func (l *TokenBucketLimiter) Name() string { return "token-bucket" }

// Check refills the surrogate's bucket for elapsed time, then admits if the
// balance covers the cost. Never returns a hard error: the only outcomes
// are accept and reject.
func (l *TokenBucketLimiter) Check(ctx Context) (*Decision, error) {
	cost := ctx.Cost
	if cost <= 0 {
		cost = 1
	}
	allowed, remaining, retryAfter := l.tryAcquire(ctx.Surrogate, cost)
	return &Decision{
		Allowed:    allowed,
		Remaining:  remaining,
		Limit:      l.capacity,
		RetryAfter: retryAfter,
		Provider:   l.Name(),
	}, nil
}

func (l *TokenBucketLimiter) tryAcquire(key identity.Surrogate, cost float64) (bool, float64, time.Duration) {
	for {
		b := l.getOrCreateBucket(key)
		b.mu.Lock()
		if b.evicted {
			// Lost a race with the sweeper; the bucket is no longer in the
			// map. Start over with a fresh one.
			b.mu.Unlock()
			continue
		}

		now := l.now()
		// Clock skew tolerance: a non-monotonic timestamp clamps the refill
		// delta to zero instead of draining the bucket.
		elapsed := now.Sub(b.lastRefill)
		if elapsed < 0 {
			elapsed = 0
		}
		b.tokens = math.Min(l.capacity, b.tokens+elapsed.Seconds()*l.refillPS)
		b.lastRefill = now
		b.lastSeen = now

		if b.tokens >= cost {
			b.tokens -= cost
			remaining := b.tokens
			b.mu.Unlock()
			return true, remaining, 0
		}

		missing := cost - b.tokens
		remaining := b.tokens
		b.mu.Unlock()

		retryAfter := time.Duration(math.Ceil(missing/l.refillPS)) * time.Second
		return false, remaining, retryAfter
	}
}

func (l *TokenBucketLimiter) getOrCreateBucket(key identity.Surrogate) *bucket {
	if v, ok := l.buckets.Load(key); ok {
		return v.(*bucket)
	}
	now := l.now()
	b := &bucket{tokens: l.capacity, lastRefill: now, lastSeen: now}
	actual, loaded := l.buckets.LoadOrStore(key, b)
	if !loaded {
		l.liveMu.Lock()
		l.live++
		metrics.RateBuckets.Set(float64(l.live))
		l.liveMu.Unlock()
	}
	return actual.(*bucket)
}

// Close stops the eviction sweep.
func (l *TokenBucketLimiter) Close() {
	l.stopOnce.Do(func() { close(l.stop) })
}

func (l *TokenBucketLimiter) sweepLoop() {
	ticker := time.NewTicker(l.sweepTick)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			l.sweep()
		case <-l.stop:
			return
		}
	}
}

// sweep removes buckets idle longer than idleTTL. Eviction takes the bucket
// mutex, so it never interleaves with an in-progress tryAcquire on the same
// bucket; unrelated surrogates are untouched.
func (l *TokenBucketLimiter) sweep() {
	now := l.now()
	evictedCount := 0
	l.buckets.Range(func(k, v any) bool {
		b := v.(*bucket)
		b.mu.Lock()
		if now.Sub(b.lastSeen) >= l.idleTTL {
			b.evicted = true
			l.buckets.Delete(k)
			evictedCount++
		}
		b.mu.Unlock()
		return true
	})
	if evictedCount > 0 {
		l.liveMu.Lock()
		l.live -= int64(evictedCount)
		if l.live < 0 {
			l.live = 0
		}
		metrics.RateBuckets.Set(float64(l.live))
		l.liveMu.Unlock()
		logging.Debugf("Rate limiter sweep evicted %d idle buckets", evictedCount)
	}
}
