// Package backend defines the LLM execution interface the dispatcher
// depends on, plus the Phala TEE chat-completions implementation.
//
// The core only depends on the Invoke shape: a lazy, finite, non-restartable
// sequence of output chunks with context-based cancellation. Any
// OpenAI-compatible endpoint satisfies it.
package backend

import (
	"context"

	"github.com/loyal-labs/loyal-backend/pkg/inquiry"
)

// ChunkStream is a pull-based lazy sequence of model output. Not
// restartable; Close releases the underlying connection.
type ChunkStream interface {
	// Next advances to the next chunk, blocking until the backend produces
	// one. Returns false at end of output or on error.
	Next() bool

	// Current returns the chunk Next advanced to.
	Current() inquiry.Chunk

	// Err returns the error that ended the stream, if any.
	Err() error

	// Close aborts the stream.
	Close() error
}

// Backend executes inquiries against an LLM.
type Backend interface {
	// Invoke starts generation for the inquiry. Cancelling ctx asks the
	// backend to stop producing output; cancellation is best-effort and
	// observed at chunk boundaries.
	Invoke(ctx context.Context, inq inquiry.Inquiry) (ChunkStream, error)
}
