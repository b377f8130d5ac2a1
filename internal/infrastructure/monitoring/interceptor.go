package monitoring

import (
	"context"
	"time"

	"google.golang.org/grpc"

	"github.com/pipecat-ai/tracebacker/perf"
)

// GRPCUnaryInterceptor times every unary handler into the performance
// tracker and Prometheus, keyed by the full RPC method name. Hosts that
// serve their pipeline over gRPC get per-method stats without touching
// handler code.
func GRPCUnaryInterceptor(metrics *Metrics, tracker *perf.Tracker) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		duration := time.Since(start)

		metrics.RecordFunctionCall(info.FullMethod, duration)
		tracker.Record(info.FullMethod, duration)

		return resp, err
	}
}

// GRPCStreamInterceptor times every stream handler the same way; the
// recorded duration covers the stream's whole lifetime.
func GRPCStreamInterceptor(metrics *Metrics, tracker *perf.Tracker) grpc.StreamServerInterceptor {
	return func(
		srv interface{},
		ss grpc.ServerStream,
		info *grpc.StreamServerInfo,
		handler grpc.StreamHandler,
	) error {
		start := time.Now()
		err := handler(srv, ss)
		duration := time.Since(start)

		metrics.RecordFunctionCall(info.FullMethod, duration)
		tracker.Record(info.FullMethod, duration)

		return err
	}
}
