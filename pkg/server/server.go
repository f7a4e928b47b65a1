package server

import (
	"fmt"
	"net"

	"google.golang.org/grpc"

	inquiryv1 "github.com/loyal-labs/loyal-backend/api/inquiry/v1"
	"github.com/loyal-labs/loyal-backend/pkg/observability/logging"
)

// Server owns the gRPC listener lifecycle.
type Server struct {
	addr string
	grpc *grpc.Server
	lis  net.Listener
}

// New creates a server for the given address and registers the inquiry
// service on it.
func New(addr string, svc inquiryv1.InquiryServiceServer) *Server {
	gs := grpc.NewServer()
	inquiryv1.RegisterInquiryServiceServer(gs, svc)
	return &Server{addr: addr, grpc: gs}
}

// Start binds the listener and serves until Stop. Blocks.
func (s *Server) Start() error {
	lis, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.addr, err)
	}
	s.lis = lis
	logging.Infof("gRPC server listening on %s", s.addr)
	return s.grpc.Serve(lis)
}

// GracefulStop drains open streams and stops the server. The caller bounds
// the drain externally and may follow up with Stop.
func (s *Server) GracefulStop() {
	s.grpc.GracefulStop()
}

// Stop hard-stops the server, aborting open streams.
func (s *Server) Stop() {
	s.grpc.Stop()
}
