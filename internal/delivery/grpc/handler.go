package grpc

import (
	"context"
	"log/slog"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

const ServiceName = "epc.PayloadService"

// Server exposes the standard gRPC health service so orchestrators can probe
// the process on the gRPC port.
type Server struct {
	*grpc.Server

	health *health.Server
}

func NewServer(logger *slog.Logger) *Server {
	srv := grpc.NewServer(grpc.UnaryInterceptor(loggingInterceptor(logger)))

	hs := health.NewServer()
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, hs)
	reflection.Register(srv)

	return &Server{Server: srv, health: hs}
}

// GracefulStop reports NOT_SERVING before draining connections.
func (s *Server) GracefulStop() {
	s.health.Shutdown()
	s.Server.GracefulStop()
}

func loggingInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err != nil {
			logger.Warn("grpc call failed", "method", info.FullMethod, "error", err)
		}
		return resp, err
	}
}
