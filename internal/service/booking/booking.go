package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tracking/internal/entities"
	"tracking/internal/service/delivery"
)

// сколько раз пробуем новый tracking id при коллизии
const bookAttempts = 3

type Booking struct {
	repository         Repository
	handlingRepository HandlingRepository
	locations          LocationRepository
	voyages            VoyageRepository
	routing            RoutingService
	txManager          TxManager
	locker             Locker
	ids                IDGenerator
}

func New(
	repository Repository,
	handlingRepository HandlingRepository,
	locations LocationRepository,
	voyages VoyageRepository,
	routing RoutingService,
	txManager TxManager,
	locker Locker,
	ids IDGenerator,
) *Booking {
	return &Booking{
		repository:         repository,
		handlingRepository: handlingRepository,
		locations:          locations,
		voyages:            voyages,
		routing:            routing,
		txManager:          txManager,
		locker:             locker,
		ids:                ids,
	}
}

func (b *Booking) BookCargo(
	ctx context.Context,
	origin, destination entities.UnLocode,
	deadline time.Time,
) (entities.TrackingID, error) {
	spec, err := b.routeSpecification(ctx, origin, destination, deadline)
	if err != nil {
		return "", err
	}

	bookedAt := time.Now().UTC()
	for range bookAttempts {
		cargo, err := entities.NewCargo(b.ids.NextTrackingID(), spec, bookedAt)
		if err != nil {
			return "", fmt.Errorf("new cargo: %w", err)
		}

		err = b.repository.Create(ctx, cargo)
		if errors.Is(err, entities.ErrCargoAlreadyExists) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("create cargo: %w", err)
		}
		return cargo.TrackingID, nil
	}

	return "", ErrTrackingIDExhausted
}

// AssignItinerary заменяет маршрут груза целиком. Маршрут, не удовлетворяющий
// спецификации, принимается: доставка покажет MISROUTED.
func (b *Booking) AssignItinerary(ctx context.Context, id entities.TrackingID, itinerary entities.Itinerary) error {
	if itinerary.IsEmpty() {
		return fmt.Errorf("%w: at least one leg is required", entities.ErrInvalidItinerary)
	}
	if err := b.checkVoyages(ctx, itinerary); err != nil {
		return err
	}

	unlock := b.locker.Lock(id.String())
	defer unlock()

	return b.txManager.Do(ctx, func(ctx context.Context) error {
		cargo, err := b.cargoForUpdate(ctx, id)
		if err != nil {
			return err
		}

		cargo, err = cargo.AssignToRoute(itinerary)
		if err != nil {
			return fmt.Errorf("assign to route: %w", err)
		}

		if err := b.repository.Update(ctx, cargo); err != nil {
			return fmt.Errorf("update cargo: %w", err)
		}
		return nil
	})
}

func (b *Booking) SpecifyNewRoute(ctx context.Context, id entities.TrackingID, spec entities.RouteSpecification) error {
	spec, err := b.routeSpecification(ctx, spec.Origin, spec.Destination, spec.ArrivalDeadline)
	if err != nil {
		return err
	}

	unlock := b.locker.Lock(id.String())
	defer unlock()

	return b.txManager.Do(ctx, func(ctx context.Context) error {
		cargo, err := b.cargoForUpdate(ctx, id)
		if err != nil {
			return err
		}

		if err := b.repository.Update(ctx, cargo.SpecifyNewRoute(spec)); err != nil {
			return fmt.Errorf("update cargo: %w", err)
		}
		return nil
	})
}

func (b *Booking) GetDelivery(ctx context.Context, id entities.TrackingID) (entities.Delivery, error) {
	tracking, err := b.GetCargo(ctx, id)
	if err != nil {
		return entities.Delivery{}, err
	}
	return tracking.Delivery, nil
}

// GetCargo читает груз и историю одним снимком и выводит доставку.
func (b *Booking) GetCargo(ctx context.Context, id entities.TrackingID) (entities.CargoTracking, error) {
	var tracking entities.CargoTracking

	err := b.txManager.ReadOnly(ctx, func(ctx context.Context) error {
		cargo, err := b.repository.Get(ctx, id)
		if err != nil {
			return unknownCargo(err, id)
		}

		history, err := b.handlingRepository.History(ctx, id)
		if err != nil {
			return fmt.Errorf("get handling history: %w", err)
		}

		tracking = entities.CargoTracking{
			Cargo:    cargo,
			History:  history,
			Delivery: delivery.Derive(cargo.RouteSpecification, cargo.Itinerary, history),
		}
		return nil
	})
	if err != nil {
		return entities.CargoTracking{}, err
	}

	return tracking, nil
}

func (b *Booking) GetCandidateRoutes(ctx context.Context, id entities.TrackingID) ([]entities.Itinerary, error) {
	cargo, err := b.repository.Get(ctx, id)
	if err != nil {
		return nil, unknownCargo(err, id)
	}

	routes, err := b.routing.FetchRoutesForSpecification(ctx, cargo.RouteSpecification)
	if err != nil {
		return nil, fmt.Errorf("fetch routes: %w", err)
	}

	// внешний сервис маршрутов может вернуть маршрут мимо спецификации,
	// порядок сервиса сохраняется
	candidates := make([]entities.Itinerary, 0, len(routes))
	for _, route := range routes {
		if cargo.RouteSpecification.IsSatisfiedBy(route) {
			candidates = append(candidates, route)
		}
	}
	return candidates, nil
}

func (b *Booking) ListTrackingIDs(ctx context.Context) ([]entities.TrackingID, error) {
	ids, err := b.repository.ListTrackingIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tracking ids: %w", err)
	}
	return ids, nil
}

// ListOverdue возвращает грузы с истёкшим сроком прибытия, которые ещё не получены.
func (b *Booking) ListOverdue(ctx context.Context, now time.Time) ([]entities.CargoTracking, error) {
	cargoes, err := b.repository.ListDeadlineBefore(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("list cargo past deadline: %w", err)
	}

	overdue := make([]entities.CargoTracking, 0, len(cargoes))
	for _, cargo := range cargoes {
		history, err := b.handlingRepository.History(ctx, cargo.TrackingID)
		if err != nil {
			return nil, fmt.Errorf("get handling history of %s: %w", cargo.TrackingID, err)
		}

		d := delivery.Derive(cargo.RouteSpecification, cargo.Itinerary, history)
		if d.TransportStatus == entities.Claimed {
			continue
		}

		overdue = append(overdue, entities.CargoTracking{
			Cargo:    cargo,
			History:  history,
			Delivery: d,
		})
	}

	return overdue, nil
}

func (b *Booking) routeSpecification(
	ctx context.Context,
	origin, destination entities.UnLocode,
	deadline time.Time,
) (entities.RouteSpecification, error) {
	if origin == "" || destination == "" || deadline.IsZero() {
		return entities.RouteSpecification{}, fmt.Errorf("%w: %w", entities.ErrInvalidRouteSpecification, ErrMissingRequiredFields)
	}

	for _, code := range []entities.UnLocode{origin, destination} {
		if _, err := b.locations.Find(ctx, code); err != nil {
			if errors.Is(err, entities.ErrLocationNotFound) {
				return entities.RouteSpecification{}, fmt.Errorf("%w: %s", entities.ErrUnknownLocation, code)
			}
			return entities.RouteSpecification{}, fmt.Errorf("find location: %w", err)
		}
	}

	return entities.NewRouteSpecification(origin, destination, deadline)
}

// checkVoyages проверяет, что каждая нога идёт реальным рейсом по его расписанию.
func (b *Booking) checkVoyages(ctx context.Context, itinerary entities.Itinerary) error {
	voyages := make(map[entities.VoyageNumber]entities.Voyage)

	for i, leg := range itinerary.Legs() {
		voyage, ok := voyages[leg.VoyageNumber]
		if !ok {
			var err error
			voyage, err = b.voyages.Find(ctx, leg.VoyageNumber)
			if err != nil {
				if errors.Is(err, entities.ErrVoyageNotFound) {
					return fmt.Errorf("%w: %w: %s", entities.ErrInvalidItinerary, entities.ErrUnknownVoyage, leg.VoyageNumber)
				}
				return fmt.Errorf("find voyage: %w", err)
			}
			voyages[leg.VoyageNumber] = voyage
		}

		if !voyage.Serves(leg) {
			return fmt.Errorf("%w: %w: leg %d %s -> %s on %s",
				entities.ErrInvalidItinerary, entities.ErrVoyageDoesNotServeLeg,
				i, leg.LoadLocation, leg.UnloadLocation, leg.VoyageNumber)
		}
	}

	return nil
}

func (b *Booking) cargoForUpdate(ctx context.Context, id entities.TrackingID) (entities.Cargo, error) {
	cargo, err := b.repository.GetForUpdate(ctx, id)
	if err != nil {
		return entities.Cargo{}, unknownCargo(err, id)
	}
	return cargo, nil
}

func unknownCargo(err error, id entities.TrackingID) error {
	if errors.Is(err, entities.ErrCargoNotFound) {
		return fmt.Errorf("%w: %s", entities.ErrUnknownCargo, id)
	}
	return fmt.Errorf("get cargo: %w", err)
}
