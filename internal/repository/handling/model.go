package handling

import "time"

type HandlingEventDB struct {
	ID               int64
	TrackingID       string
	Type             string
	Location         string
	VoyageNumber     string // пустая строка для событий без рейса
	CompletionTime   time.Time
	RegistrationTime time.Time
}
