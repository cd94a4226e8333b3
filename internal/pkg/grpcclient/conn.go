package grpcclient

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/status"
	"tracking/internal/pkg/config"
	"tracking/pkg/logger"
	"tracking/pkg/retrier"
	"tracking/pkg/retrier/backoff_adapter"
)

const (
	KeepaliveTime                = 5 * time.Minute
	KeepaliveTimeout             = 3 * time.Second
	KeepalivePermitWithoutStream = false
)

func NewConnClient(ctx context.Context, log logger.Logger, cfg *config.RoutingService) (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(
		cfg.GRPCHost,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:                KeepaliveTime,
			Timeout:             KeepaliveTimeout,
			PermitWithoutStream: KeepalivePermitWithoutStream,
		}),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create gRPC client: %w", err)
	}

	grpcLog := log.With(
		logger.NewField("component", "grpc-client"),
		logger.NewField("host", cfg.GRPCHost),
	)

	err = pingGRPC(ctx, grpcLog, conn)
	if err != nil {
		connCloseErr := conn.Close()
		if connCloseErr != nil {
			return nil, fmt.Errorf("gRPC connection: %w (failed to close: %v)", err, connCloseErr)
		}
		return nil, fmt.Errorf("gRPC connection: %w", err)
	}

	return conn, nil
}

// pingGRPC ждёт SERVING от стандартного health-сервиса. Сервер без
// health-сервиса (Unimplemented) считается доступным.
func pingGRPC(ctx context.Context, log logger.Logger, conn *grpc.ClientConn) error {
	client := healthpb.NewHealthClient(conn)

	retryConfig := retrier.ConnectConfig()
	retryConfig.OnRetry = func(err error, wait time.Duration) {
		log.With(
			logger.NewField("error", err),
			logger.NewField("retry_in", wait.String()),
		).Warn("routing service is not ready")
	}

	var attempt uint64
	err := backoff_adapter.New(retryConfig).ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++

		resp, err := client.Check(ctx, &healthpb.HealthCheckRequest{})
		if status.Code(err) == codes.Unimplemented {
			return nil
		}
		if err != nil {
			return err
		}
		if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
			return fmt.Errorf("routing service is %s", resp.GetStatus())
		}
		return nil
	})
	if err != nil {
		log.With(
			logger.NewField("error", err),
			logger.NewField("attempts", attempt),
		).Error("gRPC connection failed after retries")
		return fmt.Errorf("failed to establish gRPC connection: %w", err)
	}

	log.With(
		logger.NewField("attempts", attempt),
	).Info("gRPC connection established")
	return nil
}
