package entities

import (
	"fmt"
	"time"
)

// Cargo - корень агрегата. История обработки хранится отдельно,
// доставка каждый раз выводится заново.
type Cargo struct {
	TrackingID         TrackingID
	RouteSpecification RouteSpecification
	Itinerary          Itinerary
	BookedAt           time.Time
}

func NewCargo(id TrackingID, spec RouteSpecification, bookedAt time.Time) (Cargo, error) {
	if id == "" {
		return Cargo{}, ErrInvalidTrackingID
	}
	if spec.Origin == "" || spec.Destination == "" {
		return Cargo{}, fmt.Errorf("%w: empty route specification", ErrInvalidRouteSpecification)
	}

	return Cargo{
		TrackingID:         id,
		RouteSpecification: spec,
		BookedAt:           bookedAt,
	}, nil
}

// AssignToRoute заменяет маршрут целиком.
func (c Cargo) AssignToRoute(it Itinerary) (Cargo, error) {
	if it.IsEmpty() {
		return Cargo{}, fmt.Errorf("%w: at least one leg is required", ErrInvalidItinerary)
	}
	c.Itinerary = it
	return c, nil
}

// SpecifyNewRoute заменяет спецификацию маршрута. Назначенный маршрут
// остаётся, пока не назначат новый; обычно он перестаёт ей удовлетворять.
func (c Cargo) SpecifyNewRoute(spec RouteSpecification) Cargo {
	c.RouteSpecification = spec
	return c
}

func (c Cargo) IsRouted() bool {
	return !c.Itinerary.IsEmpty()
}

// CargoTracking - груз вместе с его историей и выведенной доставкой.
type CargoTracking struct {
	Cargo    Cargo
	History  HandlingHistory
	Delivery Delivery
}
