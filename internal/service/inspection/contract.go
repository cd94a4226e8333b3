//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=inspection_test
package inspection

import (
	"context"

	"tracking/internal/entities"
)

type CargoRepository interface {
	Get(ctx context.Context, id entities.TrackingID) (entities.Cargo, error)
}

type HandlingRepository interface {
	History(ctx context.Context, id entities.TrackingID) (entities.HandlingHistory, error)
}

// Notifier получает сигналы о грузе. Доставка может повторяться,
// поэтому получатели должны быть идемпотентны.
type Notifier interface {
	CargoMisdirected(ctx context.Context, cargo entities.Cargo, delivery entities.Delivery) error
	CargoDelivered(ctx context.Context, cargo entities.Cargo, delivery entities.Delivery) error
}

type TxManager interface {
	ReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}
