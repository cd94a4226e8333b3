//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=booking_test
package booking

import (
	"context"
	"time"

	"tracking/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, cargo entities.Cargo) error
	Get(ctx context.Context, id entities.TrackingID) (entities.Cargo, error)
	GetForUpdate(ctx context.Context, id entities.TrackingID) (entities.Cargo, error)
	Update(ctx context.Context, cargo entities.Cargo) error
	ListTrackingIDs(ctx context.Context) ([]entities.TrackingID, error)
	ListDeadlineBefore(ctx context.Context, deadline time.Time) ([]entities.Cargo, error)
}

type HandlingRepository interface {
	History(ctx context.Context, id entities.TrackingID) (entities.HandlingHistory, error)
}

type LocationRepository interface {
	Find(ctx context.Context, code entities.UnLocode) (entities.Location, error)
}

type VoyageRepository interface {
	Find(ctx context.Context, number entities.VoyageNumber) (entities.Voyage, error)
}

// RoutingService - внешний поиск маршрутов, кандидаты не ранжируются.
type RoutingService interface {
	FetchRoutesForSpecification(ctx context.Context, spec entities.RouteSpecification) ([]entities.Itinerary, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	ReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

type Locker interface {
	Lock(key string) (unlock func())
}

type IDGenerator interface {
	NextTrackingID() entities.TrackingID
}
