package handling

import "tracking/internal/entities"

func ToDomain(e *HandlingEventDB) entities.HandlingEvent {
	return entities.HandlingEvent{
		TrackingID:       entities.TrackingID(e.TrackingID),
		Type:             entities.HandlingEventType(e.Type),
		Location:         entities.UnLocode(e.Location),
		VoyageNumber:     entities.VoyageNumber(e.VoyageNumber),
		CompletionTime:   e.CompletionTime.UTC(),
		RegistrationTime: e.RegistrationTime.UTC(),
	}
}

func FromDomain(e entities.HandlingEvent) *HandlingEventDB {
	return &HandlingEventDB{
		TrackingID:       e.TrackingID.String(),
		Type:             e.Type.String(),
		Location:         e.Location.String(),
		VoyageNumber:     e.VoyageNumber.String(),
		CompletionTime:   e.CompletionTime,
		RegistrationTime: e.RegistrationTime,
	}
}
