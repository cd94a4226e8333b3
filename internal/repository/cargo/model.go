package cargo

import "time"

type CargoDB struct {
	TrackingID      string
	Origin          string
	Destination     string
	ArrivalDeadline time.Time
	BookedAt        time.Time
}

type LegDB struct {
	TrackingID     string
	Seq            int
	VoyageNumber   string
	LoadLocation   string
	UnloadLocation string
	LoadTime       time.Time
	UnloadTime     time.Time
}
