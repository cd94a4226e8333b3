package notification

import (
	"time"

	"tracking/internal/entities"
)

const (
	signalMisdirected = "cargo.misdirected"
	signalDelivered   = "cargo.delivered"
)

type notificationMessage struct {
	Signal            string     `json:"signal"`
	TrackingID        string     `json:"tracking_id"`
	Origin            string     `json:"origin"`
	Destination       string     `json:"destination"`
	TransportStatus   string     `json:"transport_status"`
	RoutingStatus     string     `json:"routing_status"`
	LastKnownLocation string     `json:"last_known_location,omitempty"`
	LastEventTime     *time.Time `json:"last_event_time,omitempty"`
}

func newMessage(signal string, cargo entities.Cargo, delivery entities.Delivery) notificationMessage {
	msg := notificationMessage{
		Signal:            signal,
		TrackingID:        cargo.TrackingID.String(),
		Origin:            cargo.RouteSpecification.Origin.String(),
		Destination:       cargo.RouteSpecification.Destination.String(),
		TransportStatus:   string(delivery.TransportStatus),
		RoutingStatus:     string(delivery.RoutingStatus),
		LastKnownLocation: delivery.LastKnownLocation.String(),
	}
	if delivery.LastEvent != nil {
		completed := delivery.LastEvent.CompletionTime
		msg.LastEventTime = &completed
	}
	return msg
}
