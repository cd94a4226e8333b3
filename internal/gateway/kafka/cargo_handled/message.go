package cargo_handled

import (
	"time"

	"tracking/internal/entities"
)

type cargoHandledMessage struct {
	TrackingID       string    `json:"tracking_id"`
	Type             string    `json:"type"`
	Location         string    `json:"location"`
	VoyageNumber     string    `json:"voyage_number,omitempty"`
	CompletionTime   time.Time `json:"completion_time"`
	RegistrationTime time.Time `json:"registration_time"`
}

func fromDomain(e entities.HandlingEvent) cargoHandledMessage {
	return cargoHandledMessage{
		TrackingID:       e.TrackingID.String(),
		Type:             e.Type.String(),
		Location:         e.Location.String(),
		VoyageNumber:     e.VoyageNumber.String(),
		CompletionTime:   e.CompletionTime,
		RegistrationTime: e.RegistrationTime,
	}
}
