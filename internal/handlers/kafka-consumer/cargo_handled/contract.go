//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=cargo_handled_test
package cargo_handled

import (
	"context"

	"tracking/internal/entities"
	"tracking/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	CargoHandled(ctx context.Context, event entities.HandlingEvent) error
}

type retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}
