package cargo_handled

import (
	"time"

	"tracking/internal/entities"
)

type cargoHandledMessage struct {
	TrackingID       string    `json:"tracking_id"`
	Type             string    `json:"type"`
	Location         string    `json:"location"`
	VoyageNumber     string    `json:"voyage_number"`
	CompletionTime   time.Time `json:"completion_time"`
	RegistrationTime time.Time `json:"registration_time"`
}

func (m cargoHandledMessage) toDomain() entities.HandlingEvent {
	return entities.HandlingEvent{
		TrackingID:       entities.TrackingID(m.TrackingID),
		Type:             entities.HandlingEventType(m.Type),
		Location:         entities.UnLocode(m.Location),
		VoyageNumber:     entities.VoyageNumber(m.VoyageNumber),
		CompletionTime:   m.CompletionTime.UTC(),
		RegistrationTime: m.RegistrationTime.UTC(),
	}
}
