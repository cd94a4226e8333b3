// Package delivery выводит состояние доставки груза из его маршрута и истории обработки.
package delivery

import (
	"tracking/internal/entities"
)

// Derive - чистая функция: одинаковые входы всегда дают одинаковый результат.
// Ничего не хранит и не читает кроме аргументов.
func Derive(
	spec entities.RouteSpecification,
	itinerary entities.Itinerary,
	history entities.HandlingHistory,
) entities.Delivery {
	d := entities.Delivery{
		TransportStatus: entities.NotReceived,
		RoutingStatus:   entities.NotRouted,
	}

	last, received := history.MostRecent()
	if received {
		d.LastEvent = &last
		d.TransportStatus = transportStatus(last.Type)
		d.LastKnownLocation = last.Location
		if last.Type == entities.Load {
			d.CurrentVoyage = last.VoyageNumber
		}
		d.IsUnloadedAtDestination = last.Type == entities.Unload &&
			last.Location == spec.Destination
	}

	if itinerary.IsEmpty() {
		return d
	}

	walk := itinerary.Walk(history)
	d.IsMisdirected = walk.Misdirected

	switch {
	case !spec.IsSatisfiedBy(itinerary), d.IsMisdirected:
		d.RoutingStatus = entities.Misrouted
	default:
		d.RoutingStatus = entities.Routed
	}

	if d.RoutingStatus != entities.Routed {
		return d
	}

	if eta, ok := itinerary.FinalArrivalTime(); ok {
		d.ETA = &eta
	}

	if d.TransportStatus == entities.Claimed {
		return d
	}

	if next, ok := walk.NextExpectedActivity(); ok {
		d.NextExpectedActivity = &next
	}

	return d
}

func transportStatus(t entities.HandlingEventType) entities.TransportStatus {
	switch t {
	case entities.Receive, entities.Unload, entities.Customs:
		return entities.InPort
	case entities.Load:
		return entities.OnboardCarrier
	case entities.Claim:
		return entities.Claimed
	}
	return entities.NotReceived
}

// IsOnTrack - маршрут назначен, груз по нему идёт и не отклонился.
func IsOnTrack(d entities.Delivery) bool {
	return d.RoutingStatus == entities.Routed && !d.IsMisdirected
}
