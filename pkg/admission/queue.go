// Package admission implements the bounded, fair, priority-aware queue that
// sits between rate limiting and dispatch, together with the in-flight
// concurrency permit.
package admission

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/loyal-labs/loyal-backend/pkg/inquiry"
	"github.com/loyal-labs/loyal-backend/pkg/observability/logging"
	"github.com/loyal-labs/loyal-backend/pkg/observability/metrics"
)

// ErrQueueClosed is returned once the queue has been shut down: enqueues
// are refused and blocked DispatchNext callers are released with it.
var ErrQueueClosed = errors.New("admission queue closed")

// tierHigh and tierNormal are the two priority tiers. Client-asserted
// priority is only a hint; anything above zero lands in the high tier.
const (
	tierNormal = 0
	tierHigh   = 1
)

// Queue is a bounded multiset of queued sessions plus the counting permit
// that caps concurrently dispatched sessions.
//
// Ordering: FIFO within a tier; the high tier drains first, but after
// starvationBound consecutive high-tier dispatches while the normal tier
// waits, one normal-tier session is dispatched. With priority disabled
// every session is normalized to the normal tier and ordering is plain
// FIFO.
type Queue struct {
	maxDepth        int
	maxInFlight     int64
	priorityEnabled bool
	starvationBound int

	mu         sync.Mutex
	cond       *sync.Cond
	high       []*inquiry.Session
	normal     []*inquiry.Session
	highStreak int
	closed     bool

	permits *semaphore.Weighted
}

// QueueOptions configures a Queue.
type QueueOptions struct {
	MaxQueueDepth   int
	MaxInFlight     int
	PriorityEnabled bool
	StarvationBound int
}

// NewQueue creates an open queue.
func NewQueue(opts QueueOptions) *Queue {
	if opts.MaxQueueDepth <= 0 {
		opts.MaxQueueDepth = 256
	}
	if opts.MaxInFlight <= 0 {
		opts.MaxInFlight = 8
	}
	if opts.StarvationBound <= 0 {
		opts.StarvationBound = 8
	}
	q := &Queue{
		maxDepth:        opts.MaxQueueDepth,
		maxInFlight:     int64(opts.MaxInFlight),
		priorityEnabled: opts.PriorityEnabled,
		starvationBound: opts.StarvationBound,
		permits:         semaphore.NewWeighted(int64(opts.MaxInFlight)),
	}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// Enqueue admits a session into the queue. Rejects with KindQueueFull when
// the depth bound is reached, without touching rate limiter state, and with
// ErrQueueClosed after shutdown. The session must be in the queued state.
func (q *Queue) Enqueue(s *inquiry.Session) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return ErrQueueClosed
	}
	if len(q.high)+len(q.normal) >= q.maxDepth {
		return inquiry.NewError(inquiry.KindQueueFull, errors.New("admission queue at capacity"))
	}

	if q.tierOf(s) == tierHigh {
		q.high = append(q.high, s)
	} else {
		q.normal = append(q.normal, s)
	}
	metrics.QueueDepth.Set(float64(len(q.high) + len(q.normal)))
	q.cond.Signal()
	return nil
}

// DispatchNext blocks until a session is available or the queue is closed.
// Sessions cancelled while still queued are discarded here rather than
// handed to a dispatcher worker.
func (q *Queue) DispatchNext() (*inquiry.Session, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for {
		if s := q.popLocked(); s != nil {
			metrics.QueueDepth.Set(float64(len(q.high) + len(q.normal)))
			if s.State() != inquiry.StateQueued {
				// Cancelled between enqueue and dispatch.
				continue
			}
			return s, nil
		}
		if q.closed {
			return nil, ErrQueueClosed
		}
		q.cond.Wait()
	}
}

func (q *Queue) popLocked() *inquiry.Session {
	takeNormal := len(q.high) == 0 ||
		(len(q.normal) > 0 && q.highStreak >= q.starvationBound)

	if takeNormal && len(q.normal) > 0 {
		s := q.normal[0]
		q.normal = q.normal[1:]
		q.highStreak = 0
		return s
	}
	if len(q.high) > 0 {
		s := q.high[0]
		q.high = q.high[1:]
		if len(q.normal) > 0 {
			q.highStreak++
		}
		return s
	}
	return nil
}

// AcquirePermit takes one in-flight permit, blocking while max_in_flight
// sessions are already dispatched. The returned release function is
// idempotent so every exit path can call it safely; the permit is released
// exactly once.
func (q *Queue) AcquirePermit(ctx context.Context) (func(), error) {
	if err := q.permits.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	metrics.InFlight.Inc()
	var once sync.Once
	return func() {
		once.Do(func() {
			q.permits.Release(1)
			metrics.InFlight.Dec()
		})
	}, nil
}

// Depth returns the number of sessions waiting for dispatch.
func (q *Queue) Depth() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.high) + len(q.normal)
}

// Close stops accepting new enqueues, cancels sessions still waiting in the
// queue, releases blocked DispatchNext callers, and waits for in-flight
// sessions to reach a terminal state (bounded by ctx).
func (q *Queue) Close(ctx context.Context) error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return nil
	}
	q.closed = true
	waiting := make([]*inquiry.Session, 0, len(q.high)+len(q.normal))
	waiting = append(waiting, q.high...)
	waiting = append(waiting, q.normal...)
	q.high = nil
	q.normal = nil
	metrics.QueueDepth.Set(0)
	q.cond.Broadcast()
	q.mu.Unlock()

	for _, s := range waiting {
		s.Cancel()
	}
	if len(waiting) > 0 {
		logging.Infof("Admission queue closed, cancelled %d queued sessions", len(waiting))
	}

	// Draining: acquiring the full permit weight only succeeds once every
	// in-flight session has released its permit.
	if err := q.permits.Acquire(ctx, q.maxInFlight); err != nil {
		return err
	}
	q.permits.Release(q.maxInFlight)
	return nil
}

func (q *Queue) tierOf(s *inquiry.Session) int {
	if !q.priorityEnabled {
		return tierNormal
	}
	if s.Inquiry.Priority > 0 {
		return tierHigh
	}
	return tierNormal
}
