// Package converters переводит сущности в DTO HTTP API и обратно.
package converters

import (
	"strings"

	"github.com/AlekSi/pointer"
	"tracking/internal/entities"
	"tracking/internal/generated/dto"
)

func FromItinerary(it entities.Itinerary) dto.Itinerary {
	legs := it.Legs()
	result := dto.Itinerary{Legs: make([]dto.Leg, 0, len(legs))}
	for _, l := range legs {
		result.Legs = append(result.Legs, dto.Leg{
			VoyageNumber:   l.VoyageNumber.String(),
			LoadLocation:   l.LoadLocation.String(),
			UnloadLocation: l.UnloadLocation.String(),
			LoadTime:       l.LoadTime,
			UnloadTime:     l.UnloadTime,
		})
	}
	return result
}

func FromItineraries(its []entities.Itinerary) []dto.Itinerary {
	result := make([]dto.Itinerary, 0, len(its))
	for _, it := range its {
		result = append(result, FromItinerary(it))
	}
	return result
}

// ToItinerary проверяет непрерывность ног, ошибка - entities.ErrInvalidItinerary.
func ToItinerary(it dto.Itinerary) (entities.Itinerary, error) {
	legs := make([]entities.Leg, 0, len(it.Legs))
	for _, l := range it.Legs {
		legs = append(legs, entities.Leg{
			VoyageNumber:   entities.VoyageNumber(l.VoyageNumber),
			LoadLocation:   entities.UnLocode(l.LoadLocation),
			UnloadLocation: entities.UnLocode(l.UnloadLocation),
			LoadTime:       l.LoadTime.UTC(),
			UnloadTime:     l.UnloadTime.UTC(),
		})
	}
	return entities.NewItinerary(legs...)
}

func FromRouteSpecification(spec entities.RouteSpecification) dto.RouteSpecification {
	return dto.RouteSpecification{
		Origin:          spec.Origin.String(),
		Destination:     spec.Destination.String(),
		ArrivalDeadline: spec.ArrivalDeadline,
	}
}

func FromHandlingEvent(e entities.HandlingEvent) dto.HandlingEvent {
	return dto.HandlingEvent{
		TrackingId:       e.TrackingID.String(),
		Type:             e.Type.String(),
		Location:         e.Location.String(),
		VoyageNumber:     optional(e.VoyageNumber.String()),
		CompletionTime:   e.CompletionTime,
		RegistrationTime: e.RegistrationTime,
	}
}

func FromHandlingHistory(h entities.HandlingHistory) []dto.HandlingEvent {
	events := h.Events()
	result := make([]dto.HandlingEvent, 0, len(events))
	for _, e := range events {
		result = append(result, FromHandlingEvent(e))
	}
	return result
}

// ToHandlingReport только нормализует регистр, проверка формы - в entities.NewHandlingEvent.
func ToHandlingReport(r dto.HandlingReport) entities.HandlingReport {
	return entities.HandlingReport{
		TrackingID:     entities.TrackingID(normalize(r.TrackingId)),
		Type:           entities.HandlingEventType(normalize(r.Type)),
		Location:       entities.UnLocode(normalize(r.Location)),
		VoyageNumber:   entities.VoyageNumber(normalize(pointer.Get(r.VoyageNumber))),
		CompletionTime: r.CompletionTime.UTC(),
	}
}

func FromDelivery(d entities.Delivery) dto.Delivery {
	result := dto.Delivery{
		TransportStatus:         string(d.TransportStatus),
		RoutingStatus:           string(d.RoutingStatus),
		IsMisdirected:           d.IsMisdirected,
		IsUnloadedAtDestination: d.IsUnloadedAtDestination,
		Eta:                     d.ETA,
		LastKnownLocation:       optional(d.LastKnownLocation.String()),
		CurrentVoyage:           optional(d.CurrentVoyage.String()),
	}

	if a := d.NextExpectedActivity; a != nil {
		result.NextExpectedActivity = &dto.HandlingActivity{
			Type:         a.Type.String(),
			Location:     a.Location.String(),
			VoyageNumber: optional(a.VoyageNumber.String()),
		}
	}
	if e := d.LastEvent; e != nil {
		result.LastEvent = pointer.To(FromHandlingEvent(*e))
	}

	return result
}

func FromCargoTracking(t entities.CargoTracking) dto.Cargo {
	result := dto.Cargo{
		TrackingId:         t.Cargo.TrackingID.String(),
		RouteSpecification: FromRouteSpecification(t.Cargo.RouteSpecification),
		Delivery:           FromDelivery(t.Delivery),
	}
	if t.Cargo.IsRouted() {
		result.Itinerary = pointer.To(FromItinerary(t.Cargo.Itinerary))
	}
	return result
}

func normalize(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
