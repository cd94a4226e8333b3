package main

import (
	"context"
	"flag"
	"fmt"
	stdlog "log"
	"os"

	"tracking/internal/pkg/config"
	"tracking/internal/pkg/dotenv"
	"tracking/internal/pkg/migrations"
	"tracking/internal/pkg/postgres"
	"tracking/pkg/logger"
	"tracking/pkg/logger/zap_adapter"
)

// migrate [up|down|status], по умолчанию up.
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
	mainLog := appLogger.With(logger.NewField("component", "migrate"))

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			os.Exit(1)
		}
	} else {
		flag.Parse()
		mainLog.Warn("No .env file found, using system environment variables")
	}

	command := flag.Arg(0)
	if command == "" {
		command = "up"
	}

	cfg, err := config.LoadDatabase()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		os.Exit(1)
	}

	if err := run(context.Background(), appLogger, cfg, command); err != nil {
		mainLog.Error("migrations failed", logger.NewField("error", err))
		os.Exit(1)
	}

	mainLog.Info("migrations done", logger.NewField("command", command))
}

func run(ctx context.Context, log logger.Logger, cfg *config.Database, command string) error {
	pool, err := postgres.NewConnPool(ctx, log, cfg)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	switch command {
	case "up":
		return migrations.Up(ctx, log, pool)
	case "down":
		return migrations.Down(ctx, log, pool)
	case "status":
		return migrations.Status(ctx, log, pool)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}
