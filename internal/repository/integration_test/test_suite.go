// Package integration_test поднимает подключение к тестовой базе для
// тестов репозиториев с тегом integration. Схема и справочники локаций
// и рейсов накатываются миграциями один раз на процесс.
package integration_test

import (
	"context"
	"log"
	"sync"
	"testing"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/stretchr/testify/require"
	"tracking/internal/pkg/config"
	"tracking/internal/pkg/migrations"
	"tracking/internal/pkg/postgres"
	"tracking/pkg/logger/zap_adapter"
	"tracking/pkg/querier"
)

const (
	setupTimeout   = 30 * time.Second
	executeTimeout = 2 * time.Second
)

var (
	querierInstance *querier.Querier
	querierOnce     sync.Once
)

func GetQuerier() *querier.Querier {
	querierOnce.Do(func() {
		// переменные POSTGRES_* выставляет окружение тестов, .env не читаем
		cfg, err := config.LoadDatabase()
		if err != nil {
			log.Fatalf("integration database config: %v", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), setupTimeout)
		defer cancel()

		nop := zap_adapter.NewNop()

		connPool, err := postgres.NewConnPool(ctx, nop, cfg)
		if err != nil {
			log.Fatalf("integration database: %v", err)
		}

		if err := migrations.Up(ctx, nop, connPool); err != nil {
			log.Fatalf("integration migrations: %v", err)
		}

		querierInstance = querier.New(connPool, pgxv5.DefaultCtxGetter)
	})

	return querierInstance
}

func SetupDB(t *testing.T, setupSQL string) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), executeTimeout)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, setupSQL)

	require.NoError(t, err)
}

// TeardownDB чистит только данные грузов: локации и рейсы засеяны миграцией
// и нужны всем тестам.
func TeardownDB(t *testing.T) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), executeTimeout)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, `
		TRUNCATE TABLE handling_events, legs, cargoes RESTART IDENTITY CASCADE;
	`)
	require.NoError(t, err)
}
