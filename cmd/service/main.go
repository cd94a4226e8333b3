package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"
	application "tracking/internal/app"
	"tracking/internal/handlers/rest/cargo_get"
	"tracking/internal/handlers/rest/cargo_itinerary_put"
	"tracking/internal/handlers/rest/cargo_post"
	"tracking/internal/handlers/rest/cargo_route_put"
	"tracking/internal/handlers/rest/cargo_routes_get"
	"tracking/internal/handlers/rest/cargos_get"
	"tracking/internal/handlers/rest/handling_event_post"
	"tracking/internal/handlers/rest/handling_events_get"
	"tracking/internal/handlers/rest/healthcheck_head"
	"tracking/internal/handlers/rest/ping_get"
	"tracking/internal/pkg/config"
	"tracking/internal/pkg/dotenv"
	"tracking/internal/pkg/grpcclient"
	"tracking/internal/pkg/kafka"
	metrics_system "tracking/internal/pkg/metrics"
	"tracking/internal/pkg/middlewares/graceful_shutdown"
	"tracking/internal/pkg/middlewares/metrics"
	"tracking/internal/pkg/middlewares/rate_limiter"
	"tracking/internal/pkg/middlewares/timeout"
	"tracking/internal/pkg/postgres"
	"tracking/internal/pkg/tracing"
	"tracking/pkg/logger"
	"tracking/pkg/logger/zap_adapter"
	"tracking/pkg/token_bucket"
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

	mainLog.Info("starting cargo-tracking application")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	if err := zapLogger.SetLevel(cfg.Logging.Level); err != nil {
		mainLog.Warn("invalid LOG_LEVEL, keeping info", logger.NewField("error", err))
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // Получаю предупреждения от линтера в местах де наследуюсь от context.Background(), хотя это часть gracefull shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
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

	// без хоста сервиса маршрутов conn остаётся nil и работает локальный pathfinder
	var conn *grpc.ClientConn
	if cfg.RoutingService.GRPCHost != "" {
		conn, err = grpcclient.NewConnClient(ctx, log, &cfg.RoutingService)
		if err != nil {
			return fmt.Errorf("gRPC client: %w", err)
		}
		defer func() {
			err := conn.Close()
			if err != nil {
				runLog.Error("failed to close gRPC connection",
					logger.NewField("error", err),
				)
			}
		}()
	}

	var producer sarama.SyncProducer
	if cfg.UsesKafka() {
		producer, err = kafka.NewSyncProducer(ctx, log, &cfg.Kafka)
		if err != nil {
			return fmt.Errorf("kafka producer: %w", err)
		}
		defer func() {
			err := producer.Close()
			if err != nil {
				runLog.Error("failed to close kafka producer",
					logger.NewField("error", err),
				)
			}
		}()
	}

	var (
		businessApp *application.Application
		readiness   []healthcheck_head.Dependency
	)
	switch cfg.Storage.Driver {
	case config.StorageDriverMemory:
		runLog.Warn("using in-memory storage, state is lost on restart")
		businessApp, err = application.InitializeInMemoryApplication(ctx, log, conn, producer, cfg)
	default:
		pool, poolErr := postgres.NewConnPool(ctx, log, &cfg.Database)
		if poolErr != nil {
			return fmt.Errorf("database: %w", poolErr)
		}
		defer pool.Close()
		readiness = append(readiness, pool)

		businessApp, err = application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, conn, producer, cfg)
	}
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector(ctx)

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, readiness, businessApp, cfg),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()
	// основной http сервер

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofMux := http.NewServeMux()
		pprofMux.Handle("/debug/pprof/", http.DefaultServeMux)

		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}
	// pprof http сервер

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // if !cfg.Server.PprofEnabled будет nil по умолчанию, и данный кейс будет проигнорирован
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)

	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	businessApp.BackgroundWorkers.Wait()

	runLog.Info("Server stopped")
	return nil
}

func initRouter(ongoingCtx context.Context, log logger.Logger, isShuttingDown *atomic.Bool, readiness []healthcheck_head.Dependency, app *application.Application, cfg *config.Config) http.Handler {
	mode := ping_get.Mode{Storage: cfg.Storage.Driver, Routing: "pathfinder"}
	if cfg.RoutingService.GRPCHost != "" {
		mode.Routing = "grpc"
	}

	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.Server.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.Server.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.Server.RateLimiterQPS, float64(cfg.Server.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, readiness...)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log, mode)).Methods("GET")

	router.Handle("/cargo", cargo_post.New(log, app.ServiceBooking)).Methods("POST")
	router.Handle("/cargo", cargos_get.New(log, app.ServiceBooking)).Methods("GET")
	router.Handle("/cargo/{tracking_id}", cargo_get.New(log, app.ServiceBooking)).Methods("GET")
	router.Handle("/cargo/{tracking_id}/routes", cargo_routes_get.New(log, app.ServiceBooking)).Methods("GET")
	router.Handle("/cargo/{tracking_id}/itinerary", cargo_itinerary_put.New(log, app.ServiceBooking)).Methods("PUT")
	router.Handle("/cargo/{tracking_id}/route", cargo_route_put.New(log, app.ServiceBooking)).Methods("PUT")
	router.Handle("/cargo/{tracking_id}/handling-events", handling_events_get.New(log, app.ServiceHandling)).Methods("GET")

	router.Handle("/handling-events", handling_event_post.New(log, app.ServiceHandling)).Methods("POST")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
