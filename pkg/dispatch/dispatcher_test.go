package dispatch

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/loyal-labs/loyal-backend/pkg/admission"
	"github.com/loyal-labs/loyal-backend/pkg/backend"
	"github.com/loyal-labs/loyal-backend/pkg/inquiry"
)

// fakeStream replays scripted chunks, optionally failing afterwards.
type fakeStream struct {
	chunks []string
	pos    int
	err    error
	closed atomic.Bool
}

func (s *fakeStream) Next() bool {
	if s.pos < len(s.chunks) {
		s.pos++
		return true
	}
	return false
}

func (s *fakeStream) Current() inquiry.Chunk { return inquiry.Chunk{Data: s.chunks[s.pos-1]} }
func (s *fakeStream) Err() error             { return s.err }
func (s *fakeStream) Close() error           { s.closed.Store(true); return nil }

// endlessStream never finishes on its own; only the run context stops it.
type endlessStream struct{ n int }

func (s *endlessStream) Next() bool             { s.n++; return true }
func (s *endlessStream) Current() inquiry.Chunk { return inquiry.Chunk{Data: "tok"} }
func (s *endlessStream) Err() error             { return nil }
func (s *endlessStream) Close() error           { return nil }

// fakeBackend fails the first failures invocations, then serves streams.
type fakeBackend struct {
	failures  int32
	invokeErr error
	stream    func() backend.ChunkStream
	invoked   atomic.Int32
	blockCtx  bool
}

func (b *fakeBackend) Invoke(ctx context.Context, _ inquiry.Inquiry) (backend.ChunkStream, error) {
	n := b.invoked.Add(1)
	if b.blockCtx {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if n <= atomic.LoadInt32(&b.failures) {
		if b.invokeErr != nil {
			return nil, b.invokeErr
		}
		return nil, errors.New("connection refused")
	}
	return b.stream(), nil
}

func runOne(t *testing.T, b backend.Backend, opts Options, sess *inquiry.Session) []inquiry.Chunk {
	t.Helper()
	q := admission.NewQueue(admission.QueueOptions{MaxQueueDepth: 4, MaxInFlight: 1})
	if err := q.Enqueue(sess); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}

	d := New(q, b, opts)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	var got []inquiry.Chunk
	for c := range sess.Output() {
		got = append(got, c)
	}

	q.Close(context.Background())
	d.Wait()
	return got
}

// ── Happy path ──

func TestDispatchSuccess(t *testing.T) {
	b := &fakeBackend{stream: func() backend.ChunkStream {
		return &fakeStream{chunks: []string{"hel", "lo"}}
	}}
	sess := inquiry.NewSession(inquiry.Inquiry{ID: "ok", SubmittedAt: time.Now()})

	got := runOne(t, b, Options{Workers: 1}, sess)

	if sess.State() != inquiry.StateCompleted {
		t.Fatalf("state = %v, want completed", sess.State())
	}
	var sb strings.Builder
	for _, c := range got {
		sb.WriteString(c.Data)
	}
	if sb.String() != "hello" {
		t.Errorf("relayed output = %q, want %q", sb.String(), "hello")
	}
}

func TestDispatchEmptyCompletion(t *testing.T) {
	b := &fakeBackend{stream: func() backend.ChunkStream {
		return &fakeStream{}
	}}
	sess := inquiry.NewSession(inquiry.Inquiry{ID: "empty", SubmittedAt: time.Now()})

	got := runOne(t, b, Options{Workers: 1}, sess)

	if sess.State() != inquiry.StateCompleted {
		t.Fatalf("state = %v, want completed for a valid empty stream", sess.State())
	}
	if len(got) != 0 {
		t.Errorf("chunks = %v, want none", got)
	}
}

// ── Establishment failures ──

func TestDispatchRetriesThenSucceeds(t *testing.T) {
	b := &fakeBackend{failures: 2, stream: func() backend.ChunkStream {
		return &fakeStream{chunks: []string{"late"}}
	}}
	sess := inquiry.NewSession(inquiry.Inquiry{ID: "retry", SubmittedAt: time.Now()})

	got := runOne(t, b, Options{Workers: 1, MaxRetries: 3, Backoff: time.Millisecond}, sess)

	if sess.State() != inquiry.StateCompleted {
		t.Fatalf("state = %v, want completed after retries", sess.State())
	}
	if b.invoked.Load() != 3 {
		t.Errorf("invocations = %d, want 3 (two failures then success)", b.invoked.Load())
	}
	if len(got) != 1 || got[0].Data != "late" {
		t.Errorf("chunks = %v, want [late]", got)
	}
}

func TestDispatchExhaustsRetries(t *testing.T) {
	b := &fakeBackend{failures: 100}
	sess := inquiry.NewSession(inquiry.Inquiry{ID: "down", SubmittedAt: time.Now()})

	runOne(t, b, Options{Workers: 1, MaxRetries: 2, Backoff: time.Millisecond}, sess)

	if sess.State() != inquiry.StateFailed {
		t.Fatalf("state = %v, want failed", sess.State())
	}
	if kind := inquiry.KindOf(sess.Err()); kind != inquiry.KindBackendUnavailable {
		t.Errorf("error kind = %v, want backend unavailable", kind)
	}
	if b.invoked.Load() != 3 {
		t.Errorf("invocations = %d, want 1 + 2 retries", b.invoked.Load())
	}
}

// ── Mid-stream failures ──

func TestDispatchMidStreamErrorNotRetried(t *testing.T) {
	b := &fakeBackend{stream: func() backend.ChunkStream {
		return &fakeStream{chunks: []string{"partial"}, err: errors.New("stream reset")}
	}}
	sess := inquiry.NewSession(inquiry.Inquiry{ID: "mid", SubmittedAt: time.Now()})

	got := runOne(t, b, Options{Workers: 1, MaxRetries: 5, Backoff: time.Millisecond}, sess)

	if sess.State() != inquiry.StateFailed {
		t.Fatalf("state = %v, want failed", sess.State())
	}
	if kind := inquiry.KindOf(sess.Err()); kind != inquiry.KindBackendError {
		t.Errorf("error kind = %v, want backend error", kind)
	}
	if b.invoked.Load() != 1 {
		t.Errorf("invocations = %d: mid-stream errors must not be retried", b.invoked.Load())
	}
	if len(got) != 1 || got[0].Data != "partial" {
		t.Errorf("partial output = %v, want the chunk delivered before the error", got)
	}
}

// ── Deadline ──

func TestDispatchDeadlineExceeded(t *testing.T) {
	b := &fakeBackend{blockCtx: true}
	sess := inquiry.NewSession(inquiry.Inquiry{
		ID:          "slow",
		SubmittedAt: time.Now(),
		Deadline:    time.Now().Add(30 * time.Millisecond),
	})

	runOne(t, b, Options{Workers: 1}, sess)

	if sess.State() != inquiry.StateFailed {
		t.Fatalf("state = %v, want failed", sess.State())
	}
	if kind := inquiry.KindOf(sess.Err()); kind != inquiry.KindDeadlineExceeded {
		t.Errorf("error kind = %v, want deadline exceeded", kind)
	}
}

func TestDeadlineReleasesUndrainedRelay(t *testing.T) {
	b := &fakeBackend{stream: func() backend.ChunkStream {
		return &endlessStream{}
	}}

	q := admission.NewQueue(admission.QueueOptions{MaxQueueDepth: 4, MaxInFlight: 1})
	sess := inquiry.NewSession(inquiry.Inquiry{
		ID:          "stalled",
		SubmittedAt: time.Now(),
		Deadline:    time.Now().Add(50 * time.Millisecond),
	})
	q.Enqueue(sess)

	d := New(q, b, Options{Workers: 1})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	// Take one chunk, then stop reading. The worker blocks on the unbuffered
	// channel; the deadline must still release it and its permit.
	<-sess.Output()

	giveUp := time.After(2 * time.Second)
	for !sess.State().Terminal() {
		select {
		case <-giveUp:
			t.Fatalf("state = %v long after the deadline; worker pinned on an undrained relay", sess.State())
		case <-time.After(10 * time.Millisecond):
		}
	}

	if sess.State() != inquiry.StateFailed {
		t.Fatalf("state = %v, want failed", sess.State())
	}
	if kind := inquiry.KindOf(sess.Err()); kind != inquiry.KindDeadlineExceeded {
		t.Errorf("error kind = %v, want deadline exceeded", kind)
	}

	// The worker came back to the queue; shutdown must not hang on it.
	q.Close(context.Background())
	d.Wait()
}

func TestShutdownMidStreamFinishesCancelled(t *testing.T) {
	b := &fakeBackend{stream: func() backend.ChunkStream {
		return &fakeStream{chunks: []string{"cut"}, err: context.Canceled}
	}}
	sess := inquiry.NewSession(inquiry.Inquiry{ID: "halt", SubmittedAt: time.Now()})

	runOne(t, b, Options{Workers: 1}, sess)

	// The pool tearing down the backend call is an abort, not a backend
	// fault.
	if sess.State() != inquiry.StateCancelled {
		t.Fatalf("state = %v, want cancelled", sess.State())
	}
	if sess.Err() != nil {
		t.Errorf("Err = %v, want none for a shutdown-aborted session", sess.Err())
	}
}

// ── Cancellation ──

func TestDispatchCancelMidStream(t *testing.T) {
	b := &fakeBackend{stream: func() backend.ChunkStream {
		return &fakeStream{chunks: []string{"one", "two", "three"}}
	}}

	q := admission.NewQueue(admission.QueueOptions{MaxQueueDepth: 4, MaxInFlight: 1})
	sess := inquiry.NewSession(inquiry.Inquiry{ID: "cxl", SubmittedAt: time.Now()})
	q.Enqueue(sess)

	d := New(q, b, Options{Workers: 1})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	// Take one chunk, then cancel while the dispatcher blocks on the next
	// relay.
	<-sess.Output()
	sess.Cancel()

	for range sess.Output() {
	}

	if sess.State() != inquiry.StateCancelled {
		t.Fatalf("state = %v, want cancelled", sess.State())
	}
	if got := len(sess.PartialOutput()); got == 0 || got > 2 {
		t.Errorf("partial output = %d chunks, want the pre-cancel prefix", got)
	}

	q.Close(context.Background())
	d.Wait()
}

func TestDispatchCancelledBeforeExecution(t *testing.T) {
	b := &fakeBackend{stream: func() backend.ChunkStream {
		return &fakeStream{chunks: []string{"never"}}
	}}

	q := admission.NewQueue(admission.QueueOptions{MaxQueueDepth: 4, MaxInFlight: 1})
	sess := inquiry.NewSession(inquiry.Inquiry{ID: "pre", SubmittedAt: time.Now()})
	q.Enqueue(sess)
	sess.Cancel()

	d := New(q, b, Options{Workers: 1})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for range sess.Output() {
	}

	if b.invoked.Load() != 0 {
		t.Error("a session cancelled while queued must never reach the backend")
	}
	if sess.State() != inquiry.StateCancelled {
		t.Errorf("state = %v, want cancelled", sess.State())
	}

	q.Close(context.Background())
	d.Wait()
}

// ── Worker reuse ──

func TestWorkerSurvivesFailedSession(t *testing.T) {
	b := &fakeBackend{failures: 1, stream: func() backend.ChunkStream {
		return &fakeStream{chunks: []string{"ok"}}
	}}

	q := admission.NewQueue(admission.QueueOptions{MaxQueueDepth: 4, MaxInFlight: 1})
	bad := inquiry.NewSession(inquiry.Inquiry{ID: "bad", SubmittedAt: time.Now()})
	good := inquiry.NewSession(inquiry.Inquiry{ID: "good", SubmittedAt: time.Now()})
	q.Enqueue(bad)
	q.Enqueue(good)

	d := New(q, b, Options{Workers: 1, MaxRetries: 0, Backoff: time.Millisecond})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for range bad.Output() {
	}
	for range good.Output() {
	}

	if bad.State() != inquiry.StateFailed {
		t.Errorf("bad state = %v, want failed", bad.State())
	}
	if good.State() != inquiry.StateCompleted {
		t.Errorf("good state = %v, want completed: one failure must not take the worker down", good.State())
	}

	q.Close(context.Background())
	d.Wait()
}
