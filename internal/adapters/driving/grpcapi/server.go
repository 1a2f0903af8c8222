// Package grpcapi exposes the user and service record operations as two
// gRPC services, servico.v1.UserService and servico.v1.ServiceService.
//
// Messages are plain Go structs carried by a JSON codec, so clients need
// no generated code; Client wraps a connection with typed methods.
// Service errors become NOT_FOUND, INVALID_ARGUMENT, ALREADY_EXISTS or
// INTERNAL statuses carrying the client message only.
package grpcapi

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net"

	"golang.org/x/time/rate"
	"google.golang.org/grpc"

	"github.com/custodia-labs/servico/internal/logger"
)

// Options configures NewServer.
type Options struct {
	// RateLimit is the sustained calls per second across all methods.
	// Zero disables limiting.
	RateLimit float64

	// RateBurst is the bucket size. Zero means ceil(RateLimit).
	RateBurst int

	// Observer, when set, receives every call outcome.
	Observer Observer
}

// NewServer creates a gRPC server with both services registered.
func NewServer(h *Handler, opts Options) *grpc.Server {
	interceptors := []grpc.UnaryServerInterceptor{
		recoveryInterceptor(),
		requestLogInterceptor(),
	}
	if opts.Observer != nil {
		interceptors = append(interceptors, metricsInterceptor(opts.Observer))
	}
	if opts.RateLimit > 0 {
		burst := opts.RateBurst
		if burst <= 0 {
			burst = int(math.Ceil(opts.RateLimit))
		}
		interceptors = append(interceptors, rateLimitInterceptor(rate.NewLimiter(rate.Limit(opts.RateLimit), burst)))
	}

	srv := grpc.NewServer(
		grpc.ForceServerCodec(jsonCodec{}),
		grpc.ChainUnaryInterceptor(interceptors...),
	)
	RegisterUserServer(srv, h)
	RegisterServiceServer(srv, h)
	return srv
}

// Serve runs srv on lis until ctx is cancelled, then stops gracefully.
func Serve(ctx context.Context, srv *grpc.Server, lis net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("gRPC listening on %s", lis.Addr())
		errCh <- srv.Serve(lis)
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("grpc server: %w", err)
		}
		return nil
	case <-ctx.Done():
		logger.Info("Shutting down gRPC server")
		srv.GracefulStop()
		return nil
	}
}
