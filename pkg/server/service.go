// Package server exposes the inquiry pipeline over gRPC.
//
// The facade is intentionally thin: it resolves the caller's surrogate,
// consults the rate limiter, enqueues a session, and relays the session's
// output stream to the client. All scheduling and backend interaction
// happens behind the admission queue.
package server

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	inquiryv1 "github.com/loyal-labs/loyal-backend/api/inquiry/v1"
	"github.com/loyal-labs/loyal-backend/pkg/admission"
	"github.com/loyal-labs/loyal-backend/pkg/config"
	"github.com/loyal-labs/loyal-backend/pkg/identity"
	"github.com/loyal-labs/loyal-backend/pkg/inquiry"
	"github.com/loyal-labs/loyal-backend/pkg/observability/logging"
	"github.com/loyal-labs/loyal-backend/pkg/observability/metrics"
	"github.com/loyal-labs/loyal-backend/pkg/ratelimit"
)

// maxPromptBytes bounds a single inquiry payload. Larger prompts are
// rejected before they reach the rate limiter.
const maxPromptBytes = 1 << 20

// InquiryServer implements inquiry.v1.InquiryService.
type InquiryServer struct {
	inquiryv1.UnimplementedInquiryServiceServer

	cfg      *config.GatewayConfig
	resolver *identity.Resolver
	limits   *ratelimit.Resolver
	queue    *admission.Queue
}

// NewInquiryServer wires the facade to the pipeline.
func NewInquiryServer(cfg *config.GatewayConfig, resolver *identity.Resolver, limits *ratelimit.Resolver, queue *admission.Queue) *InquiryServer {
	return &InquiryServer{
		cfg:      cfg,
		resolver: resolver,
		limits:   limits,
		queue:    queue,
	}
}

// SubmitInquiry admits one inquiry and streams its output. Admission
// rejections are delivered in-band as a terminal status chunk so the stream
// itself stays on transport code OK; transport errors are reserved for
// malformed requests and internal faults.
func (s *InquiryServer) SubmitInquiry(req *inquiryv1.SubmitInquiryRequest, stream inquiryv1.InquiryService_SubmitInquiryServer) error {
	ctx := stream.Context()

	sess, reject, err := s.admit(ctx, req)
	if err != nil {
		return err
	}
	if reject != nil {
		return stream.Send(statusChunk(reject))
	}

	for {
		select {
		case c, ok := <-sess.Output():
			if !ok {
				return stream.Send(statusChunk(terminalStatus(sess)))
			}
			if err := stream.Send(dataChunk(c.Data)); err != nil {
				// Client went away mid-stream; stop the backend call.
				sess.Cancel()
				return err
			}
		case <-ctx.Done():
			sess.Cancel()
			return status.FromContextError(ctx.Err()).Err()
		}
	}
}

// Query runs the same pipeline as SubmitInquiry but collects the streamed
// output into one response. Rejections surface as gRPC status errors since
// there is no stream to carry an in-band status.
func (s *InquiryServer) Query(ctx context.Context, req *inquiryv1.SubmitInquiryRequest) (*inquiryv1.QueryResponse, error) {
	sess, reject, err := s.admit(ctx, req)
	if err != nil {
		return nil, err
	}
	if reject != nil {
		return nil, status.Error(grpcCode(reject.Code), reject.Message)
	}

	var sb strings.Builder
	for {
		select {
		case c, ok := <-sess.Output():
			if !ok {
				st := terminalStatus(sess)
				if st.Code != inquiryv1.Status_OK {
					return nil, status.Error(grpcCode(st.Code), st.Message)
				}
				return &inquiryv1.QueryResponse{Response: sb.String()}, nil
			}
			sb.WriteString(c.Data)
		case <-ctx.Done():
			sess.Cancel()
			return nil, status.FromContextError(ctx.Err()).Err()
		}
	}
}

// Check reports liveness for deployment probes.
func (s *InquiryServer) Check(ctx context.Context, _ *inquiryv1.HealthRequest) (*inquiryv1.HealthResponse, error) {
	return &inquiryv1.HealthResponse{Status: "SERVING"}, nil
}

// admit runs validation, identity resolution, rate limiting and enqueue.
// Returns exactly one of: a queued session, an in-band rejection status, or
// a transport error.
func (s *InquiryServer) admit(ctx context.Context, req *inquiryv1.SubmitInquiryRequest) (*inquiry.Session, *inquiryv1.Status, error) {
	if strings.TrimSpace(req.GetPrompt()) == "" {
		return nil, nil, status.Error(codes.InvalidArgument, "prompt must not be empty")
	}
	if len(req.GetPrompt()) > maxPromptBytes {
		return nil, nil, status.Errorf(codes.InvalidArgument, "prompt exceeds %d bytes", maxPromptBytes)
	}

	surrogate := s.resolver.Resolve(identity.TokenBacked(peerAddr(ctx), req.GetClientToken()))

	decision, err := s.limits.Check(ratelimit.Context{
		Surrogate: surrogate,
		Cost:      s.inquiryCost(len(req.GetPrompt())),
	})
	if err != nil || !decision.Allowed {
		metrics.AdmissionDecisions.WithLabelValues("rate_limited").Inc()
		return nil, &inquiryv1.Status{
			Code:         inquiryv1.Status_RATE_LIMITED,
			Message:      "rate limit exceeded",
			RetryAfterMs: decision.RetryAfter.Milliseconds(),
		}, nil
	}

	inq := s.buildInquiry(req, surrogate)
	sess := inquiry.NewSession(inq)
	if err := s.queue.Enqueue(sess); err != nil {
		if errors.Is(err, admission.ErrQueueClosed) {
			metrics.AdmissionDecisions.WithLabelValues("rejected_shutdown").Inc()
			return nil, &inquiryv1.Status{
				Code:    inquiryv1.Status_BACKEND_UNAVAILABLE,
				Message: "gateway is shutting down",
			}, nil
		}
		metrics.AdmissionDecisions.WithLabelValues("queue_full").Inc()
		logging.Warnf("Inquiry rejected, queue full (depth=%d)", s.queue.Depth())
		return nil, &inquiryv1.Status{
			Code:         inquiryv1.Status_QUEUE_FULL,
			Message:      "admission queue at capacity",
			RetryAfterMs: inquiry.RetryAfterOf(err).Milliseconds(),
		}, nil
	}
	metrics.AdmissionDecisions.WithLabelValues("admitted").Inc()
	logging.Debugf("Inquiry %s admitted (surrogate=%x, depth=%d)", inq.ID, surrogate, s.queue.Depth())
	return sess, nil, nil
}

func (s *InquiryServer) buildInquiry(req *inquiryv1.SubmitInquiryRequest, surrogate identity.Surrogate) inquiry.Inquiry {
	now := time.Now()

	model := req.GetModel()
	if model == "" {
		model = s.cfg.Backend.Model
	}

	temperature := req.GetTemperature()
	if temperature < 0 {
		temperature = 0
	} else if temperature > 2 {
		temperature = 2
	}

	maxTokens := int(req.GetMaxTokens())
	if maxTokens < 0 {
		maxTokens = 0
	}

	// Priority is a hint, not a contract: anything above zero is one tier.
	priority := 0
	if req.GetPriority() > 0 {
		priority = 1
	}

	var deadline time.Time
	if ms := req.GetDeadlineMs(); ms > 0 {
		deadline = now.Add(time.Duration(ms) * time.Millisecond)
	} else if d := s.cfg.Admission.DefaultDeadline(); d > 0 {
		deadline = now.Add(d)
	}

	return inquiry.Inquiry{
		ID:          uuid.NewString(),
		Surrogate:   surrogate,
		Prompt:      req.GetPrompt(),
		Model:       model,
		Temperature: temperature,
		MaxTokens:   maxTokens,
		Priority:    priority,
		SubmittedAt: now,
		Deadline:    deadline,
	}
}

// inquiryCost scales the rate limit cost with payload size so one large
// prompt cannot be cheaper than many small ones. Always at least one token.
func (s *InquiryServer) inquiryCost(promptBytes int) float64 {
	per := s.cfg.RateLimit.CostPer4KiB
	if per <= 0 {
		return 1
	}
	cost := per * math.Ceil(float64(promptBytes)/4096)
	if cost < 1 {
		return 1
	}
	return cost
}

func peerAddr(ctx context.Context) string {
	if p, ok := peer.FromContext(ctx); ok && p.Addr != nil {
		return p.Addr.String()
	}
	return "unknown"
}

func dataChunk(data string) *inquiryv1.OutputChunk {
	return &inquiryv1.OutputChunk{Payload: &inquiryv1.OutputChunk_Data{Data: data}}
}

func statusChunk(st *inquiryv1.Status) *inquiryv1.OutputChunk {
	return &inquiryv1.OutputChunk{Payload: &inquiryv1.OutputChunk_Status{Status: st}}
}

// terminalStatus derives the final in-band status once the session's output
// channel has closed. The session is guaranteed terminal by then.
func terminalStatus(sess *inquiry.Session) *inquiryv1.Status {
	switch sess.State() {
	case inquiry.StateCompleted:
		return &inquiryv1.Status{Code: inquiryv1.Status_OK}
	case inquiry.StateCancelled:
		return &inquiryv1.Status{Code: inquiryv1.Status_CANCELLED, Message: "inquiry cancelled"}
	default:
		err := sess.Err()
		st := &inquiryv1.Status{
			Code:         statusCode(inquiry.KindOf(err)),
			RetryAfterMs: inquiry.RetryAfterOf(err).Milliseconds(),
		}
		if err != nil {
			st.Message = err.Error()
		}
		return st
	}
}

func statusCode(kind inquiry.Kind) inquiryv1.Status_Code {
	switch kind {
	case inquiry.KindRateLimited:
		return inquiryv1.Status_RATE_LIMITED
	case inquiry.KindQueueFull:
		return inquiryv1.Status_QUEUE_FULL
	case inquiry.KindBackendUnavailable:
		return inquiryv1.Status_BACKEND_UNAVAILABLE
	case inquiry.KindDeadlineExceeded:
		return inquiryv1.Status_DEADLINE_EXCEEDED
	case inquiry.KindCancelled:
		return inquiryv1.Status_CANCELLED
	default:
		return inquiryv1.Status_BACKEND_ERROR
	}
}

func grpcCode(code inquiryv1.Status_Code) codes.Code {
	switch code {
	case inquiryv1.Status_RATE_LIMITED, inquiryv1.Status_QUEUE_FULL:
		return codes.ResourceExhausted
	case inquiryv1.Status_BACKEND_UNAVAILABLE:
		return codes.Unavailable
	case inquiryv1.Status_DEADLINE_EXCEEDED:
		return codes.DeadlineExceeded
	case inquiryv1.Status_CANCELLED:
		return codes.Canceled
	default:
		return codes.Internal
	}
}
