package inquiry

import (
	"context"
	"sync"

	"github.com/loyal-labs/loyal-backend/pkg/observability/metrics"
)

// State is a session lifecycle state.
type State int32

const (
	StateQueued State = iota
	StateDispatching
	StateStreaming
	StateCompleted
	StateFailed
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateQueued:
		return "queued"
	case StateDispatching:
		return "dispatching"
	case StateStreaming:
		return "streaming"
	case StateCompleted:
		return "completed"
	case StateFailed:
		return "failed"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transitions are possible.
func (s State) Terminal() bool {
	return s == StateCompleted || s == StateFailed || s == StateCancelled
}

// Session owns one Inquiry and its mutable lifecycle state.
//
// Transition ownership is exclusive: the dispatcher advances
// queued→dispatching→streaming→{completed,failed}; only the RPC facade (on
// client disconnect) or the admission queue (on shutdown) may force a
// transition to cancelled, and only from queued or streaming. A second
// cancel on a terminal session is a no-op.
//
// Output is an unbuffered channel: the dispatcher blocks on Relay until the
// facade forwards the chunk to the client, which is how transport
// backpressure reaches the backend call.
type Session struct {
	Inquiry Inquiry

	mu      sync.Mutex
	state   State
	partial []Chunk
	err     error

	out        chan Chunk
	outOnce    sync.Once
	cancelled  chan struct{}
	cancelOnce sync.Once
}

// NewSession creates a session in the queued state.
func NewSession(inq Inquiry) *Session {
	return &Session{
		Inquiry:   inq,
		state:     StateQueued,
		out:       make(chan Chunk),
		cancelled: make(chan struct{}),
	}
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Err returns the terminal error, if the session failed.
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Output is the ordered stream of chunks for the facade to forward. Closed
// when the session reaches a terminal state.
func (s *Session) Output() <-chan Chunk { return s.out }

// Cancelled is closed when a cancel has been requested. The dispatcher
// observes it at chunk boundaries.
func (s *Session) Cancelled() <-chan struct{} { return s.cancelled }

// CancelRequested reports whether a cancel has been requested, whether or
// not the state transition has happened yet.
func (s *Session) CancelRequested() bool {
	select {
	case <-s.cancelled:
		return true
	default:
		return false
	}
}

// PartialOutput returns a copy of the chunks relayed so far.
func (s *Session) PartialOutput() []Chunk {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]Chunk, len(s.partial))
	copy(cp, s.partial)
	return cp
}

// BeginDispatch moves queued→dispatching. Returns false if the session was
// cancelled before dispatch, in which case the caller must not execute it.
func (s *Session) BeginDispatch() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateQueued {
		return false
	}
	s.state = StateDispatching
	return true
}

// BeginStreaming moves dispatching→streaming, after the backend call is
// established.
func (s *Session) BeginStreaming() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateDispatching {
		return false
	}
	s.state = StateStreaming
	return true
}

// Relay appends a chunk to the partial output and forwards it to the
// facade. Blocks until the facade takes the chunk, a cancel is observed, or
// ctx ends; ctx is the dispatcher's run context, so a session deadline or
// pool shutdown unblocks a relay the facade never drains. Returns false once
// relaying must stop; the caller classifies why via ctx and the cancel flag.
func (s *Session) Relay(ctx context.Context, c Chunk) bool {
	s.mu.Lock()
	if s.state != StateStreaming {
		s.mu.Unlock()
		return false
	}
	s.partial = append(s.partial, c)
	s.mu.Unlock()

	select {
	case s.out <- c:
		metrics.ChunksRelayed.Inc()
		return true
	case <-s.cancelled:
		return false
	case <-ctx.Done():
		return false
	}
}

// Complete moves streaming→completed. Dispatcher-only.
func (s *Session) Complete() bool {
	return s.finish(StateStreaming, StateCompleted, nil)
}

// Fail moves dispatching|streaming→failed with a classified error.
// Dispatcher-only.
func (s *Session) Fail(err error) bool {
	s.mu.Lock()
	if s.state != StateDispatching && s.state != StateStreaming {
		s.mu.Unlock()
		return false
	}
	s.state = StateFailed
	s.err = err
	s.mu.Unlock()

	metrics.SessionsCompleted.WithLabelValues(StateFailed.String()).Inc()
	s.closeOut()
	return true
}

// Cancel requests cancellation. From queued (client disconnected before
// dispatch, or shutdown) the session moves to cancelled directly. From
// streaming the state moves to cancelled and the dispatcher observes the
// flag at the next chunk boundary. During the transient dispatching state
// only the flag is raised; the dispatcher converts it. Idempotent:
// cancelling a terminal session is a no-op returning false.
func (s *Session) Cancel() bool {
	s.mu.Lock()
	switch s.state {
	case StateQueued:
		s.state = StateCancelled
		s.mu.Unlock()
		s.cancelOnce.Do(func() { close(s.cancelled) })
		metrics.SessionsCompleted.WithLabelValues(StateCancelled.String()).Inc()
		// No dispatcher ever owned this session, so the canceller closes
		// the output stream.
		s.closeOut()
		return true
	case StateStreaming:
		s.state = StateCancelled
		s.mu.Unlock()
		s.cancelOnce.Do(func() { close(s.cancelled) })
		metrics.SessionsCompleted.WithLabelValues(StateCancelled.String()).Inc()
		// The dispatcher holds the execution right and closes the output
		// once it observes the cancel.
		return true
	case StateDispatching:
		s.mu.Unlock()
		s.cancelOnce.Do(func() { close(s.cancelled) })
		return true
	default:
		s.mu.Unlock()
		return false
	}
}

// FinishCancelled is called by the dispatcher once it observes a cancel.
// It completes a transition left pending by Cancel during dispatching and
// releases the output stream.
func (s *Session) FinishCancelled() {
	s.mu.Lock()
	if s.state == StateDispatching || s.state == StateStreaming {
		s.state = StateCancelled
		s.mu.Unlock()
		metrics.SessionsCompleted.WithLabelValues(StateCancelled.String()).Inc()
	} else {
		s.mu.Unlock()
	}
	s.closeOut()
}

func (s *Session) finish(from, to State, err error) bool {
	s.mu.Lock()
	if s.state != from {
		s.mu.Unlock()
		return false
	}
	s.state = to
	s.err = err
	s.mu.Unlock()

	metrics.SessionsCompleted.WithLabelValues(to.String()).Inc()
	s.closeOut()
	return true
}

func (s *Session) closeOut() {
	s.outOnce.Do(func() { close(s.out) })
}
