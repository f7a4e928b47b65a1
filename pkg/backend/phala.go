package backend

import (
	"context"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/packages/ssestream"

	"github.com/loyal-labs/loyal-backend/pkg/inquiry"
	"github.com/loyal-labs/loyal-backend/pkg/observability/logging"
)

// PhalaBackend executes inquiries against the Phala serverless TEE, which
// exposes an OpenAI-compatible chat completions API.
type PhalaBackend struct {
	client       openai.Client
	defaultModel string
}

// PhalaBackendOptions configures a PhalaBackend. Endpoint and APIKey come
// from the secrets manager at startup.
type PhalaBackendOptions struct {
	Endpoint     string
	APIKey       string
	DefaultModel string
}

// NewPhalaBackend creates a client for the TEE endpoint.
func NewPhalaBackend(opts PhalaBackendOptions) *PhalaBackend {
	c := openai.NewClient(
		option.WithBaseURL(opts.Endpoint),
		option.WithAPIKey(opts.APIKey),
	)
	return &PhalaBackend{client: c, defaultModel: opts.DefaultModel}
}

// Invoke starts a streaming chat completion. The first chunk reaches the
// caller as soon as the TEE produces it; nothing is buffered.
func (b *PhalaBackend) Invoke(ctx context.Context, inq inquiry.Inquiry) (ChunkStream, error) {
	model := inq.Model
	if model == "" {
		model = b.defaultModel
	}
	logging.Debugf("Invoking TEE model %q for inquiry %s", model, inq.ID)

	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(inq.Prompt),
		},
	}
	if inq.Temperature > 0 {
		params.Temperature = openai.Float(inq.Temperature)
	}
	if inq.MaxTokens > 0 {
		params.MaxCompletionTokens = openai.Int(int64(inq.MaxTokens))
	}

	stream := b.client.Chat.Completions.NewStreaming(ctx, params)
	return &phalaStream{stream: stream}, nil
}

// phalaStream adapts the SSE completion stream to ChunkStream, skipping
// deltas with no content (role-only frames, usage frames).
type phalaStream struct {
	stream  *ssestream.Stream[openai.ChatCompletionChunk]
	current inquiry.Chunk
}

func (s *phalaStream) Next() bool {
	for s.stream.Next() {
		chunk := s.stream.Current()
		if len(chunk.Choices) == 0 {
			continue
		}
		delta := chunk.Choices[0].Delta.Content
		if delta == "" {
			continue
		}
		s.current = inquiry.Chunk{Data: delta}
		return true
	}
	return false
}

func (s *phalaStream) Current() inquiry.Chunk { return s.current }

func (s *phalaStream) Err() error { return s.stream.Err() }

func (s *phalaStream) Close() error { return s.stream.Close() }
