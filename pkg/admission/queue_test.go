package admission

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/loyal-labs/loyal-backend/pkg/inquiry"
)

func newTestSession(id string, priority int) *inquiry.Session {
	return inquiry.NewSession(inquiry.Inquiry{
		ID:          id,
		Priority:    priority,
		SubmittedAt: time.Now(),
	})
}

// ── FIFO ordering ──

func TestQueueFIFO(t *testing.T) {
	q := NewQueue(QueueOptions{MaxQueueDepth: 10, MaxInFlight: 1})

	for i := 0; i < 3; i++ {
		if err := q.Enqueue(newTestSession(fmt.Sprintf("inq-%d", i), 0)); err != nil {
			t.Fatalf("Enqueue: %v", err)
		}
	}
	for i := 0; i < 3; i++ {
		s, err := q.DispatchNext()
		if err != nil {
			t.Fatalf("DispatchNext: %v", err)
		}
		if want := fmt.Sprintf("inq-%d", i); s.Inquiry.ID != want {
			t.Errorf("dispatch %d = %s, want %s", i, s.Inquiry.ID, want)
		}
	}
}

// ── Depth bound ──

func TestQueueFull(t *testing.T) {
	q := NewQueue(QueueOptions{MaxQueueDepth: 2, MaxInFlight: 1})

	q.Enqueue(newTestSession("a", 0))
	q.Enqueue(newTestSession("b", 0))

	err := q.Enqueue(newTestSession("c", 0))
	if err == nil {
		t.Fatal("enqueue beyond max depth should fail")
	}
	if inquiry.KindOf(err) != inquiry.KindQueueFull {
		t.Errorf("error kind = %v, want queue full", inquiry.KindOf(err))
	}
	if q.Depth() != 2 {
		t.Errorf("Depth = %d, want 2", q.Depth())
	}

	// A dispatch frees a slot.
	q.DispatchNext()
	if err := q.Enqueue(newTestSession("c", 0)); err != nil {
		t.Errorf("enqueue after a dispatch should succeed: %v", err)
	}
}

// ── Priority tiers ──

func TestPriorityOrdering(t *testing.T) {
	q := NewQueue(QueueOptions{MaxQueueDepth: 10, MaxInFlight: 1, PriorityEnabled: true, StarvationBound: 8})

	q.Enqueue(newTestSession("n1", 0))
	q.Enqueue(newTestSession("h1", 1))
	q.Enqueue(newTestSession("n2", 0))
	q.Enqueue(newTestSession("h2", 1))

	var got []string
	for i := 0; i < 4; i++ {
		s, _ := q.DispatchNext()
		got = append(got, s.Inquiry.ID)
	}
	want := []string{"h1", "h2", "n1", "n2"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("dispatch order = %v, want %v", got, want)
		}
	}
}

func TestPriorityDisabledIsPlainFIFO(t *testing.T) {
	q := NewQueue(QueueOptions{MaxQueueDepth: 10, MaxInFlight: 1, PriorityEnabled: false})

	q.Enqueue(newTestSession("n1", 0))
	q.Enqueue(newTestSession("h1", 5))
	q.Enqueue(newTestSession("n2", 0))

	var got []string
	for i := 0; i < 3; i++ {
		s, _ := q.DispatchNext()
		got = append(got, s.Inquiry.ID)
	}
	want := []string{"n1", "h1", "n2"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("dispatch order = %v, want %v", got, want)
		}
	}
}

func TestStarvationBound(t *testing.T) {
	q := NewQueue(QueueOptions{MaxQueueDepth: 20, MaxInFlight: 1, PriorityEnabled: true, StarvationBound: 2})

	q.Enqueue(newTestSession("n1", 0))
	for i := 0; i < 5; i++ {
		q.Enqueue(newTestSession(fmt.Sprintf("h%d", i), 1))
	}

	var got []string
	for i := 0; i < 3; i++ {
		s, _ := q.DispatchNext()
		got = append(got, s.Inquiry.ID)
	}
	// Two high dispatches hit the bound, then the waiting normal goes out.
	want := []string{"h0", "h1", "n1"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("dispatch order = %v, want %v", got, want)
		}
	}
}

// ── Cancelled sessions ──

func TestCancelledQueuedSessionDiscarded(t *testing.T) {
	q := NewQueue(QueueOptions{MaxQueueDepth: 10, MaxInFlight: 1})

	victim := newTestSession("victim", 0)
	q.Enqueue(victim)
	q.Enqueue(newTestSession("survivor", 0))
	victim.Cancel()

	s, err := q.DispatchNext()
	if err != nil {
		t.Fatalf("DispatchNext: %v", err)
	}
	if s.Inquiry.ID != "survivor" {
		t.Errorf("dispatched %s, want the cancelled session skipped", s.Inquiry.ID)
	}
}

// ── Blocking and close ──

func TestDispatchNextBlocksUntilEnqueue(t *testing.T) {
	q := NewQueue(QueueOptions{MaxQueueDepth: 10, MaxInFlight: 1})

	got := make(chan *inquiry.Session)
	go func() {
		s, _ := q.DispatchNext()
		got <- s
	}()

	select {
	case <-got:
		t.Fatal("DispatchNext should block on an empty queue")
	case <-time.After(20 * time.Millisecond):
	}

	q.Enqueue(newTestSession("late", 0))
	select {
	case s := <-got:
		if s.Inquiry.ID != "late" {
			t.Errorf("got %s, want late", s.Inquiry.ID)
		}
	case <-time.After(time.Second):
		t.Fatal("DispatchNext did not wake up on enqueue")
	}
}

func TestCloseReleasesDispatchers(t *testing.T) {
	q := NewQueue(QueueOptions{MaxQueueDepth: 10, MaxInFlight: 1})

	errc := make(chan error)
	go func() {
		_, err := q.DispatchNext()
		errc <- err
	}()

	time.Sleep(10 * time.Millisecond)
	if err := q.Close(context.Background()); err != nil {
		t.Fatalf("Close: %v", err)
	}

	select {
	case err := <-errc:
		if !errors.Is(err, ErrQueueClosed) {
			t.Errorf("DispatchNext after close = %v, want ErrQueueClosed", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Close did not release the blocked dispatcher")
	}

	if err := q.Enqueue(newTestSession("late", 0)); !errors.Is(err, ErrQueueClosed) {
		t.Errorf("Enqueue after close = %v, want ErrQueueClosed", err)
	}
}

func TestCloseCancelsQueuedSessions(t *testing.T) {
	q := NewQueue(QueueOptions{MaxQueueDepth: 10, MaxInFlight: 1})

	s := newTestSession("stranded", 0)
	q.Enqueue(s)
	if err := q.Close(context.Background()); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if s.State() != inquiry.StateCancelled {
		t.Errorf("stranded session state = %v, want cancelled", s.State())
	}
}

// ── In-flight permits ──

func TestPermitCeiling(t *testing.T) {
	q := NewQueue(QueueOptions{MaxQueueDepth: 10, MaxInFlight: 2})

	r1, err := q.AcquirePermit(context.Background())
	if err != nil {
		t.Fatalf("AcquirePermit: %v", err)
	}
	r2, err := q.AcquirePermit(context.Background())
	if err != nil {
		t.Fatalf("AcquirePermit: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if _, err := q.AcquirePermit(ctx); err == nil {
		t.Fatal("third permit should block at max_in_flight=2")
	}

	r1()
	r3, err := q.AcquirePermit(context.Background())
	if err != nil {
		t.Fatalf("permit after release: %v", err)
	}
	r3()
	r2()
}

func TestPermitReleaseIdempotent(t *testing.T) {
	q := NewQueue(QueueOptions{MaxQueueDepth: 10, MaxInFlight: 1})

	release, _ := q.AcquirePermit(context.Background())
	release()
	release() // must not over-release

	// If the double release leaked a permit, this second acquire+drain
	// sequence would find the semaphore miscounted. Close drains fully.
	release2, _ := q.AcquirePermit(context.Background())
	release2()
	if err := q.Close(context.Background()); err != nil {
		t.Errorf("Close after balanced permits: %v", err)
	}
}

func TestCloseWaitsForInFlight(t *testing.T) {
	q := NewQueue(QueueOptions{MaxQueueDepth: 10, MaxInFlight: 1})

	release, _ := q.AcquirePermit(context.Background())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := q.Close(ctx); err == nil {
		t.Fatal("Close should not return while a permit is held")
	}

	release()
	if err := q.Close(context.Background()); err != nil {
		t.Errorf("Close after drain: %v", err)
	}
}
