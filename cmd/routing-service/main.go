package main

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	application "tracking/internal/app"
	"tracking/internal/handlers/grpc/find_shortest_path"
	"tracking/internal/handlers/rest/healthcheck_head"
	"tracking/internal/pkg/config"
	"tracking/internal/pkg/dotenv"
	metrics_system "tracking/internal/pkg/metrics"
	"tracking/internal/pkg/postgres"
	"tracking/internal/pkg/tracing"
	"tracking/pkg/logger"
	"tracking/pkg/logger/zap_adapter"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting routing-service application")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.LoadRoutingServer()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	if err := zapLogger.SetLevel(cfg.Logging.Level); err != nil {
		mainLog.Warn("invalid LOG_LEVEL, keeping info", logger.NewField("error", err))
	}

	err = run(context.Background(), appLogger, cfg)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

// run отдаёт pathfinder.GraphTraversalService по gRPC. Расписания рейсов
// берутся из postgres или из встроенного справочника.
//
//nolint:contextcheck // Получаю предупреждения от линтера в местах де наследуюсь от context.Background(), хотя это часть gracefull shutdown
func run(ctx context.Context, log logger.Logger, cfg *config.Config) error {
	const (
		shutdownPeriod      = 15 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	shutdownTracing, err := tracing.Setup(ctx, log, &cfg.Tracing)
	if err != nil {
		return fmt.Errorf("tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			runLog.Error("failed to shutdown tracing",
				logger.NewField("error", err),
			)
		}
	}()

	var (
		routingApp *application.RoutingApp
		readiness  []healthcheck_head.Dependency
	)
	switch cfg.Storage.Driver {
	case config.StorageDriverMemory:
		routingApp, err = application.InitializeInMemoryRoutingApp(ctx, log)
	default:
		pool, poolErr := postgres.NewConnPool(ctx, log, &cfg.Database)
		if poolErr != nil {
			return fmt.Errorf("database: %w", poolErr)
		}
		defer pool.Close()
		readiness = append(readiness, pool)

		routingApp, err = application.InitializeRoutingApp(ctx, log, pool, pgxv5.DefaultCtxGetter)
	}
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector(ctx)

	healthService := health.NewServer()

	grpcServer := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
	)
	healthpb.RegisterHealthServer(grpcServer, healthService)
	find_shortest_path.Register(grpcServer, find_shortest_path.New(log, routingApp.Pathfinder))

	listener, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.RoutingServer.GRPCPort))
	if err != nil {
		return fmt.Errorf("listen gRPC: %w", err)
	}

	grpcServerErr := make(chan error, 1)
	go func() {
		defer close(grpcServerErr)

		runLog.With(
			logger.NewField("port", cfg.RoutingServer.GRPCPort),
		).Info("gRPC server starting")
		if err := grpcServer.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			grpcServerErr <- err
		}
	}()
	healthService.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	healthServer := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.RoutingServer.PortHealthcheck),
		Handler: initHealthcheckRouter(&isShuttingDown, readiness),

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	healthServerErr := make(chan error, 1)
	go func() {
		defer close(healthServerErr)

		runLog.With(
			logger.NewField("port", cfg.RoutingServer.PortHealthcheck),
		).Info("Server starting")
		if err := healthServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			healthServerErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-grpcServerErr:
		return fmt.Errorf("gRPC server: %w", err)
	case err := <-healthServerErr:
		return fmt.Errorf("healthcheck server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)
	healthService.Shutdown()

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	stopped := make(chan struct{})
	go func() {
		grpcServer.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-shutdownCtx.Done():
		runLog.Info("Graceful shutdown timeout, forcing close")
		grpcServer.Stop()
	}

	if err := healthServer.Shutdown(shutdownCtx); err != nil {
		runLog.Error("healthcheck server shutdown error", logger.NewField("error", err))
	}

	runLog.Info("Server stopped")
	return nil
}

func initHealthcheckRouter(isShuttingDown *atomic.Bool, readiness []healthcheck_head.Dependency) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, readiness...)).Methods("HEAD")
	router.Handle("/metrics", promhttp.Handler())

	return router
}
