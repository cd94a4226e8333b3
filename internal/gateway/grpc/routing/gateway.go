package routing

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"tracking/internal/entities"
	retrierconfig "tracking/pkg/retrier"
	"tracking/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "routing-service"

	findShortestPathMethod = "/pathfinder.GraphTraversalService/FindShortestPath"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 1 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

type RoutingGateway struct {
	conn    invoker
	retrier retrier
}

func New(conn invoker) *RoutingGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryableCode,
	}

	return &RoutingGateway{
		conn:    conn,
		retrier: backoff_adapter.New(retryConfig),
	}
}

func (g *RoutingGateway) FetchRoutesForSpecification(ctx context.Context, spec entities.RouteSpecification) ([]entities.Itinerary, error) {
	req, err := toRequest(spec)
	if err != nil {
		return nil, fmt.Errorf("gateway routing, build request: %w", err)
	}

	var resp *structpb.Struct

	err = g.executeWithMetrics(ctx, "FindShortestPath", func(ctx context.Context) error {
		resp = &structpb.Struct{}
		return g.conn.Invoke(ctx, findShortestPathMethod, req, resp)
	})
	if err != nil {
		return nil, fmt.Errorf("gateway routing, find shortest path %s -> %s: %w", spec.Origin, spec.Destination, err)
	}

	itineraries, skipped := toDomainList(resp)
	if skipped > 0 {
		RoutingPathsSkippedTotal.Add(float64(skipped))
	}

	return itineraries, nil
}

func isRetryableCode(err error) bool {
	if err == nil {
		return false
	}
	st, ok := status.FromError(err)
	if !ok {
		return false
	}

	switch st.Code() {
	case codes.ResourceExhausted,
		codes.Unavailable,
		codes.DeadlineExceeded:
		return true
	default:
		return false
	}
}

func (g *RoutingGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	grpcCode := getGRPCCode(err)
	GatewayRequestDuration.WithLabelValues(serviceName, method, grpcCode).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, grpcCode).Inc()
	}

	return err
}

func getGRPCCode(err error) string {
	if err == nil {
		return "OK"
	}
	if st, ok := status.FromError(err); ok {
		return st.Code().String()
	}
	return "UNKNOWN"
}
