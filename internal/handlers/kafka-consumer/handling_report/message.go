package handling_report

import (
	"time"

	"tracking/internal/entities"
)

// handlingReportMessage - отчёт об обработке от портовых систем.
type handlingReportMessage struct {
	TrackingID     string    `json:"tracking_id"`
	Type           string    `json:"type"`
	Location       string    `json:"location"`
	VoyageNumber   string    `json:"voyage_number"`
	CompletionTime time.Time `json:"completion_time"`
}

func (m handlingReportMessage) toDomain() entities.HandlingReport {
	return entities.HandlingReport{
		TrackingID:     entities.TrackingID(m.TrackingID),
		Type:           entities.HandlingEventType(m.Type),
		Location:       entities.UnLocode(m.Location),
		VoyageNumber:   entities.VoyageNumber(m.VoyageNumber),
		CompletionTime: m.CompletionTime,
	}
}
