//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=handling_test
package handling

import (
	"context"

	"tracking/internal/entities"
	"tracking/pkg/logger"
)

type Repository interface {
	History(ctx context.Context, id entities.TrackingID) (entities.HandlingHistory, error)
	// Append возвращает false, если такое событие уже записано.
	Append(ctx context.Context, event entities.HandlingEvent) (bool, error)
}

type CargoRepository interface {
	Get(ctx context.Context, id entities.TrackingID) (entities.Cargo, error)
	GetForUpdate(ctx context.Context, id entities.TrackingID) (entities.Cargo, error)
}

type LocationRepository interface {
	Find(ctx context.Context, code entities.UnLocode) (entities.Location, error)
}

type VoyageRepository interface {
	Find(ctx context.Context, number entities.VoyageNumber) (entities.Voyage, error)
}

// InspectionTrigger вызывается ровно один раз на каждое новое событие.
type InspectionTrigger interface {
	CargoHandled(ctx context.Context, event entities.HandlingEvent) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type Locker interface {
	Lock(key string) (unlock func())
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
}
