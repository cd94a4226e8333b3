package inspection

import (
	"context"
	"errors"
	"fmt"

	"tracking/internal/entities"
	"tracking/internal/service/delivery"
)

type Inspection struct {
	cargoes   CargoRepository
	handling  HandlingRepository
	notifier  Notifier
	txManager TxManager
}

func New(
	cargoes CargoRepository,
	handling HandlingRepository,
	notifier Notifier,
	txManager TxManager,
) *Inspection {
	return &Inspection{
		cargoes:   cargoes,
		handling:  handling,
		notifier:  notifier,
		txManager: txManager,
	}
}

// CargoHandled сравнивает доставку до и после события и отправляет сигналы
// о переходах: груз отклонился от маршрута или получен. Состояние не меняет.
func (i *Inspection) CargoHandled(ctx context.Context, event entities.HandlingEvent) error {
	var (
		cargo   entities.Cargo
		history entities.HandlingHistory
	)

	err := i.txManager.ReadOnly(ctx, func(ctx context.Context) error {
		var err error
		cargo, err = i.cargoes.Get(ctx, event.TrackingID)
		if err != nil {
			if errors.Is(err, entities.ErrCargoNotFound) {
				return fmt.Errorf("%w: %s", entities.ErrUnknownCargo, event.TrackingID)
			}
			return fmt.Errorf("get cargo: %w", err)
		}

		history, err = i.handling.History(ctx, event.TrackingID)
		if err != nil {
			return fmt.Errorf("get handling history: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	// сообщения cargo.handled могут отставать: события, записанные после
	// этого, в сравнение не попадают, иначе переход будет потерян
	after := history.RegisteredUpTo(event.RegistrationTime).Record(event)
	before := after.Without(event)

	was := delivery.Derive(cargo.RouteSpecification, cargo.Itinerary, before)
	now := delivery.Derive(cargo.RouteSpecification, cargo.Itinerary, after)

	if !was.IsMisdirected && now.IsMisdirected {
		inspectedCargo.WithLabelValues(signalMisdirected).Inc()
		if err := i.notifier.CargoMisdirected(ctx, cargo, now); err != nil {
			return fmt.Errorf("notify cargo misdirected: %w", err)
		}
	}

	if was.TransportStatus != entities.Claimed && now.TransportStatus == entities.Claimed {
		inspectedCargo.WithLabelValues(signalDelivered).Inc()
		if err := i.notifier.CargoDelivered(ctx, cargo, now); err != nil {
			return fmt.Errorf("notify cargo delivered: %w", err)
		}
	}

	return nil
}
