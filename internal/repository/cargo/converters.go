package cargo

import (
	"fmt"

	"tracking/internal/entities"
)

// ToDomain собирает груз из строки и его ног. Ноги уже упорядочены по seq.
func ToDomain(c *CargoDB, legs []LegDB) (entities.Cargo, error) {
	cargo := entities.Cargo{
		TrackingID: entities.TrackingID(c.TrackingID),
		RouteSpecification: entities.RouteSpecification{
			Origin:          entities.UnLocode(c.Origin),
			Destination:     entities.UnLocode(c.Destination),
			ArrivalDeadline: c.ArrivalDeadline.UTC(),
		},
		BookedAt: c.BookedAt.UTC(),
	}

	if len(legs) == 0 {
		return cargo, nil
	}

	domainLegs := make([]entities.Leg, 0, len(legs))
	for _, l := range legs {
		domainLegs = append(domainLegs, entities.Leg{
			VoyageNumber:   entities.VoyageNumber(l.VoyageNumber),
			LoadLocation:   entities.UnLocode(l.LoadLocation),
			UnloadLocation: entities.UnLocode(l.UnloadLocation),
			LoadTime:       l.LoadTime.UTC(),
			UnloadTime:     l.UnloadTime.UTC(),
		})
	}

	itinerary, err := entities.NewItinerary(domainLegs...)
	if err != nil {
		return entities.Cargo{}, fmt.Errorf("stored itinerary of %s: %w", c.TrackingID, err)
	}
	cargo.Itinerary = itinerary

	return cargo, nil
}

func FromDomain(c entities.Cargo) (*CargoDB, []LegDB) {
	cargoDB := &CargoDB{
		TrackingID:      c.TrackingID.String(),
		Origin:          c.RouteSpecification.Origin.String(),
		Destination:     c.RouteSpecification.Destination.String(),
		ArrivalDeadline: c.RouteSpecification.ArrivalDeadline,
		BookedAt:        c.BookedAt,
	}

	legs := c.Itinerary.Legs()
	legsDB := make([]LegDB, 0, len(legs))
	for i, l := range legs {
		legsDB = append(legsDB, LegDB{
			TrackingID:     cargoDB.TrackingID,
			Seq:            i,
			VoyageNumber:   l.VoyageNumber.String(),
			LoadLocation:   l.LoadLocation.String(),
			UnloadLocation: l.UnloadLocation.String(),
			LoadTime:       l.LoadTime,
			UnloadTime:     l.UnloadTime,
		})
	}

	return cargoDB, legsDB
}
