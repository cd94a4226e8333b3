package entities

import (
	"fmt"
	"time"
)

// RouteSpecification - что заказчик хочет: откуда, куда и к какому сроку.
type RouteSpecification struct {
	Origin          UnLocode
	Destination     UnLocode
	ArrivalDeadline time.Time
}

func NewRouteSpecification(origin, destination UnLocode, deadline time.Time) (RouteSpecification, error) {
	if origin == "" || destination == "" {
		return RouteSpecification{}, fmt.Errorf("%w: origin and destination are required", ErrInvalidRouteSpecification)
	}
	if origin == destination {
		return RouteSpecification{}, fmt.Errorf("%w: origin and destination are both %s", ErrInvalidRouteSpecification, origin)
	}
	if deadline.IsZero() {
		return RouteSpecification{}, fmt.Errorf("%w: arrival deadline is required", ErrInvalidRouteSpecification)
	}

	return RouteSpecification{
		Origin:          origin,
		Destination:     destination,
		ArrivalDeadline: deadline,
	}, nil
}

// IsSatisfiedBy: маршрут начинается в origin, заканчивается в destination
// и прибывает не позже срока.
func (s RouteSpecification) IsSatisfiedBy(it Itinerary) bool {
	arrival, ok := it.FinalArrivalTime()
	if !ok {
		return false
	}

	return it.InitialDepartureLocation() == s.Origin &&
		it.FinalArrivalLocation() == s.Destination &&
		!arrival.After(s.ArrivalDeadline)
}

func (s RouteSpecification) Equal(other RouteSpecification) bool {
	return s.Origin == other.Origin &&
		s.Destination == other.Destination &&
		s.ArrivalDeadline.Equal(other.ArrivalDeadline)
}
