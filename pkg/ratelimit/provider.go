// Package ratelimit provides a pluggable rate limiting framework for the
// inquiry gateway.
//
// Admission can enforce limits from multiple sources:
//
//   - Token bucket: an in-process limiter keyed by identity surrogate, with
//     linear refill and idle-TTL eviction. This is the default and the only
//     provider most deployments need.
//
//   - Redis: a distributed token bucket for multi-replica deployments,
//     sharing budgets across gateway instances.
//
// The Resolver chains providers using first-deny semantics: if any provider
// denies, the inquiry is rejected before it ever touches the admission
// queue.
package ratelimit

import (
	"time"

	"github.com/loyal-labs/loyal-backend/pkg/identity"
)

// Provider is a source of rate limiting decisions.
type Provider interface {
	// Name returns a human-readable name for logging (e.g. "token-bucket",
	// "redis").
	Name() string

	// Check determines whether the inquiry described by ctx should be
	// admitted. Errors indicate provider failures (network, etc.), not
	// denials.
	Check(ctx Context) (*Decision, error)
}

// Context carries the per-inquiry information needed for evaluation.
type Context struct {
	Surrogate identity.Surrogate

	// Cost is the budget consumed by this inquiry. Defaults to 1; larger
	// payloads may cost more so expensive inquiries drain budget faster.
	Cost float64
}

// Decision is the result of a rate limit check.
type Decision struct {
	Allowed    bool
	Remaining  float64
	Limit      float64
	RetryAfter time.Duration
	Provider   string // which provider made this decision
}
