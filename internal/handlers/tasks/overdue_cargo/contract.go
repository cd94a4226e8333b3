//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=overdue_cargo_test
package overdue_cargo

import (
	"context"
	"time"

	"tracking/internal/entities"
	"tracking/pkg/logger"
)

type taskLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
}

type Service interface {
	ListOverdue(ctx context.Context, now time.Time) ([]entities.CargoTracking, error)
}
