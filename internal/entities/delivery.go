package entities

import "time"

type TransportStatus string

const (
	NotReceived    TransportStatus = "NOT_RECEIVED"
	InPort         TransportStatus = "IN_PORT"
	OnboardCarrier TransportStatus = "ONBOARD_CARRIER"
	Claimed        TransportStatus = "CLAIMED"
)

type RoutingStatus string

const (
	NotRouted RoutingStatus = "NOT_ROUTED"
	Routed    RoutingStatus = "ROUTED"
	Misrouted RoutingStatus = "MISROUTED"
)

// HandlingActivity - ожидаемая или совершённая обработка без привязки ко времени.
type HandlingActivity struct {
	Type         HandlingEventType
	Location     UnLocode
	VoyageNumber VoyageNumber
}

// Delivery - производное состояние доставки. Не хранится, всегда вычисляется
// из спецификации, маршрута и истории.
type Delivery struct {
	TransportStatus         TransportStatus
	RoutingStatus           RoutingStatus
	IsMisdirected           bool
	IsUnloadedAtDestination bool
	ETA                     *time.Time
	NextExpectedActivity    *HandlingActivity
	LastKnownLocation       UnLocode
	CurrentVoyage           VoyageNumber
	LastEvent               *HandlingEvent
}
