package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"tracking/pkg/logger"
)

const dir = "sql"

//go:embed sql/*.sql
var files embed.FS

// Up применяет все миграции, включая справочники локаций и рейсов.
func Up(ctx context.Context, log logger.Logger, pool *pgxpool.Pool) error {
	return run(ctx, log, pool, func(ctx context.Context, db *sql.DB) error {
		return goose.UpContext(ctx, db, dir)
	})
}

// Down откатывает последнюю миграцию.
func Down(ctx context.Context, log logger.Logger, pool *pgxpool.Pool) error {
	return run(ctx, log, pool, func(ctx context.Context, db *sql.DB) error {
		return goose.DownContext(ctx, db, dir)
	})
}

func Status(ctx context.Context, log logger.Logger, pool *pgxpool.Pool) error {
	return run(ctx, log, pool, func(ctx context.Context, db *sql.DB) error {
		return goose.StatusContext(ctx, db, dir)
	})
}

func run(ctx context.Context, log logger.Logger, pool *pgxpool.Pool, fn func(context.Context, *sql.DB) error) error {
	goose.SetBaseFS(files)
	goose.SetLogger(gooseLogger{log: log})
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	db := stdlib.OpenDBFromPool(pool)
	defer func() {
		if err := db.Close(); err != nil {
			log.With(logger.NewField("error", err)).Warn("failed to close migrations db")
		}
	}()

	if err := fn(ctx, db); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}

	return nil
}

// gooseLogger направляет вывод goose в общий логгер.
type gooseLogger struct {
	log logger.Logger
}

func (l gooseLogger) Fatalf(format string, v ...any) {
	l.log.Error(fmt.Sprintf(format, v...))
}

func (l gooseLogger) Printf(format string, v ...any) {
	l.log.Info(fmt.Sprintf(format, v...))
}
