package voyage

import "time"

type CarrierMovementDB struct {
	VoyageNumber      string
	Seq               int
	DepartureLocation string
	ArrivalLocation   string
	DepartureTime     time.Time
	ArrivalTime       time.Time
}
