// Package inquiry holds the core domain types of the gateway: the inquiry
// itself, its per-session lifecycle state machine, and the error kinds the
// pipeline produces.
package inquiry

import (
	"errors"
	"fmt"
	"time"

	"github.com/loyal-labs/loyal-backend/pkg/identity"
)

// Inquiry is one accepted request payload. Immutable after creation; all
// mutable lifecycle state lives on the Session that owns it.
type Inquiry struct {
	ID          string
	Surrogate   identity.Surrogate
	Prompt      string
	Model       string
	Temperature float64
	MaxTokens   int
	Priority    int
	SubmittedAt time.Time
	Deadline    time.Time // zero means no deadline
}

// Chunk is one unit of streamed model output.
type Chunk struct {
	Data string
}

// Kind classifies a pipeline failure for RPC status mapping and retry
// advice.
type Kind string

const (
	KindRateLimited        Kind = "RATE_LIMITED"
	KindQueueFull          Kind = "QUEUE_FULL"
	KindBackendUnavailable Kind = "BACKEND_UNAVAILABLE"
	KindBackendError       Kind = "BACKEND_ERROR"
	KindDeadlineExceeded   Kind = "DEADLINE_EXCEEDED"
	KindCancelled          Kind = "CANCELLED"
)

// Error is a classified pipeline error. RetryAfter is advisory and only set
// for transient rejections.
type Error struct {
	Kind       Kind
	RetryAfter time.Duration
	cause      error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.cause)
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error { return e.cause }

// NewError builds a classified error wrapping a cause.
func NewError(kind Kind, cause error) *Error {
	return &Error{Kind: kind, cause: cause}
}

// NewRetryableError builds a classified error carrying retry-after advice.
func NewRetryableError(kind Kind, retryAfter time.Duration, cause error) *Error {
	return &Error{Kind: kind, RetryAfter: retryAfter, cause: cause}
}

// KindOf extracts the kind from an error chain. Unclassified errors map to
// KindBackendError, the unrecoverable default.
func KindOf(err error) Kind {
	var ie *Error
	if errors.As(err, &ie) {
		return ie.Kind
	}
	return KindBackendError
}

// RetryAfterOf extracts retry-after advice from an error chain, or zero.
func RetryAfterOf(err error) time.Duration {
	var ie *Error
	if errors.As(err, &ie) {
		return ie.RetryAfter
	}
	return 0
}
