// Package dispatch runs the worker pool that pulls admitted sessions from
// the queue and executes them against the LLM backend.
package dispatch

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/loyal-labs/loyal-backend/pkg/admission"
	"github.com/loyal-labs/loyal-backend/pkg/backend"
	"github.com/loyal-labs/loyal-backend/pkg/inquiry"
	"github.com/loyal-labs/loyal-backend/pkg/observability/logging"
	"github.com/loyal-labs/loyal-backend/pkg/observability/metrics"
)

// Dispatcher owns N workers running the same loop: pull the next session,
// acquire the in-flight permit, invoke the backend, and relay chunks into
// the session's outward stream. N bounds true backend-call parallelism and
// normally equals max_in_flight.
type Dispatcher struct {
	queue   *admission.Queue
	backend backend.Backend

	workers    int
	maxRetries int
	backoff    time.Duration

	wg sync.WaitGroup
}

// Options configures a Dispatcher.
type Options struct {
	Workers    int
	MaxRetries int           // BackendUnavailable retry budget per session
	Backoff    time.Duration // base backoff between establishment retries
}

// New creates a dispatcher over the given queue and backend.
func New(q *admission.Queue, b backend.Backend, opts Options) *Dispatcher {
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	if opts.MaxRetries < 0 {
		opts.MaxRetries = 0
	}
	if opts.Backoff <= 0 {
		opts.Backoff = 250 * time.Millisecond
	}
	return &Dispatcher{
		queue:      q,
		backend:    b,
		workers:    opts.Workers,
		maxRetries: opts.MaxRetries,
		backoff:    opts.Backoff,
	}
}

// Start launches the worker pool. Workers exit when the queue closes or ctx
// is cancelled; Wait blocks until they have all drained.
func (d *Dispatcher) Start(ctx context.Context) {
	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go func(worker int) {
			defer d.wg.Done()
			d.workerLoop(ctx, worker)
		}(i)
	}
	logging.Infof("Dispatcher started with %d workers", d.workers)
}

// Wait blocks until all workers have exited.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

func (d *Dispatcher) workerLoop(ctx context.Context, worker int) {
	for {
		sess, err := d.queue.DispatchNext()
		if err != nil {
			if !errors.Is(err, admission.ErrQueueClosed) {
				logging.Errorf("Worker %d: dispatch error: %v", worker, err)
			}
			return
		}

		release, err := d.queue.AcquirePermit(ctx)
		if err != nil {
			// Shutdown while waiting for a permit; the session never
			// started executing.
			sess.Cancel()
			sess.FinishCancelled()
			return
		}
		d.execute(ctx, sess, release)
	}
}

// execute runs a single session to a terminal state. A panic or error in
// one session never takes the worker down: the permit is released on every
// exit path and the next session is picked up.
func (d *Dispatcher) execute(ctx context.Context, sess *inquiry.Session, release func()) {
	defer release()

	if !sess.BeginDispatch() {
		// Cancelled between pop and permit acquisition.
		sess.FinishCancelled()
		return
	}

	inq := sess.Inquiry
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	if !inq.Deadline.IsZero() {
		var cancelDL context.CancelFunc
		runCtx, cancelDL = context.WithDeadline(runCtx, inq.Deadline)
		defer cancelDL()
	}

	// Propagate the session's cancel flag into the backend call's context.
	watchDone := make(chan struct{})
	defer close(watchDone)
	go func() {
		select {
		case <-sess.Cancelled():
			cancel()
		case <-watchDone:
		}
	}()

	stream, firstChunk, hasFirst, err := d.openStream(runCtx, inq)
	if err != nil {
		d.failEstablish(sess, runCtx, err)
		return
	}
	defer func() { _ = stream.Close() }()

	if sess.CancelRequested() {
		sess.FinishCancelled()
		return
	}
	if !sess.BeginStreaming() {
		sess.FinishCancelled()
		return
	}
	metrics.DispatchLatency.Observe(time.Since(inq.SubmittedAt).Seconds())

	chunk, have := firstChunk, hasFirst
	for {
		if have {
			if !sess.Relay(runCtx, chunk) {
				d.failRelay(sess, runCtx)
				return
			}
		}
		if !stream.Next() {
			break
		}
		chunk, have = stream.Current(), true
	}

	if err := stream.Err(); err != nil {
		d.failStream(sess, runCtx, err)
		return
	}
	if !sess.Complete() {
		// Cancel won the race at the final boundary.
		sess.FinishCancelled()
	}
}

// openStream establishes the backend stream, retrying with linear backoff
// while the call cannot be established at all. Errors after the first chunk
// are not retried here; they surface through the relay loop.
func (d *Dispatcher) openStream(ctx context.Context, inq inquiry.Inquiry) (backend.ChunkStream, inquiry.Chunk, bool, error) {
	var lastErr error
	for attempt := 0; attempt <= d.maxRetries; attempt++ {
		if attempt > 0 {
			logging.Warnf("Inquiry %s: backend unavailable (attempt %d/%d): %v",
				inq.ID, attempt, d.maxRetries, lastErr)
			select {
			case <-ctx.Done():
				return nil, inquiry.Chunk{}, false, ctx.Err()
			case <-time.After(time.Duration(attempt) * d.backoff):
			}
		}

		stream, err := d.backend.Invoke(ctx, inq)
		if err != nil {
			lastErr = err
			continue
		}
		if stream.Next() {
			return stream, stream.Current(), true, nil
		}
		if streamErr := stream.Err(); streamErr != nil {
			_ = stream.Close()
			if ctx.Err() != nil {
				return nil, inquiry.Chunk{}, false, ctx.Err()
			}
			lastErr = streamErr
			continue
		}
		// Established and immediately finished: a valid empty completion.
		return stream, inquiry.Chunk{}, false, nil
	}
	return nil, inquiry.Chunk{}, false, inquiry.NewError(inquiry.KindBackendUnavailable, lastErr)
}

// failEstablish classifies a failure to establish the backend call.
func (d *Dispatcher) failEstablish(sess *inquiry.Session, ctx context.Context, err error) {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		sess.Fail(inquiry.NewError(inquiry.KindDeadlineExceeded, err))
	case errors.Is(err, context.Canceled) && sess.CancelRequested():
		sess.FinishCancelled()
	case errors.Is(err, context.Canceled):
		// Pool shutdown.
		sess.FinishCancelled()
	default:
		logging.Errorf("Inquiry %s: backend unavailable after %d retries: %v",
			sess.Inquiry.ID, d.maxRetries, err)
		sess.Fail(err)
	}
}

// failRelay classifies a relay that stopped before the facade took the
// chunk: client cancel, the session deadline, or pool shutdown.
func (d *Dispatcher) failRelay(sess *inquiry.Session, ctx context.Context) {
	switch {
	case sess.CancelRequested():
		logging.Debugf("Inquiry %s cancelled mid-stream after %d chunks", sess.Inquiry.ID, len(sess.PartialOutput()))
		sess.FinishCancelled()
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		logging.Warnf("Inquiry %s exceeded its deadline mid-stream after %d chunks", sess.Inquiry.ID, len(sess.PartialOutput()))
		sess.Fail(inquiry.NewError(inquiry.KindDeadlineExceeded, ctx.Err()))
	default:
		// Pool shutdown.
		sess.Cancel()
		sess.FinishCancelled()
	}
}

// failStream classifies a mid-stream failure. Partial output may already
// have reached the client, so backend errors are surfaced as-is and never
// retried.
func (d *Dispatcher) failStream(sess *inquiry.Session, ctx context.Context, err error) {
	switch {
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded):
		sess.Fail(inquiry.NewError(inquiry.KindDeadlineExceeded, err))
	case sess.CancelRequested():
		sess.FinishCancelled()
	case errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled):
		// Pool shutdown tore the backend call down; the session was aborted,
		// not failed.
		sess.FinishCancelled()
	default:
		logging.Errorf("Inquiry %s: backend error mid-stream: %v", sess.Inquiry.ID, err)
		sess.Fail(inquiry.NewError(inquiry.KindBackendError, err))
	}
}
