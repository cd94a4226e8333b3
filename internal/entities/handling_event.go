package entities

import (
	"fmt"
	"time"
)

// HandlingEventType - закрытый набор типов обработки груза.
type HandlingEventType string

const (
	Receive HandlingEventType = "RECEIVE"
	Load    HandlingEventType = "LOAD"
	Unload  HandlingEventType = "UNLOAD"
	Customs HandlingEventType = "CUSTOMS"
	Claim   HandlingEventType = "CLAIM"
)

func (t HandlingEventType) String() string {
	return string(t)
}

// RequiresVoyage - погрузка и выгрузка всегда привязаны к рейсу, остальные типы - никогда.
func (t HandlingEventType) RequiresVoyage() bool {
	switch t {
	case Load, Unload:
		return true
	case Receive, Customs, Claim:
		return false
	}
	return false
}

func (t HandlingEventType) valid() bool {
	switch t {
	case Receive, Load, Unload, Customs, Claim:
		return true
	}
	return false
}

func ParseHandlingEventType(s string) (HandlingEventType, error) {
	t := HandlingEventType(s)
	if !t.valid() {
		return "", fmt.Errorf("%w: unknown event type %q", ErrInvalidEvent, s)
	}
	return t, nil
}

// HandlingEvent - факт обработки груза. После создания не меняется и не удаляется.
type HandlingEvent struct {
	TrackingID       TrackingID
	Type             HandlingEventType
	Location         UnLocode
	VoyageNumber     VoyageNumber
	CompletionTime   time.Time
	RegistrationTime time.Time
}

// HandlingReport - входящий отчёт об обработке, ещё не проверенный.
type HandlingReport struct {
	TrackingID     TrackingID
	Type           HandlingEventType
	Location       UnLocode
	VoyageNumber   VoyageNumber
	CompletionTime time.Time
}

// NewHandlingEvent проверяет форму события: тип из закрытого набора,
// рейс есть ровно у LOAD и UNLOAD.
func NewHandlingEvent(report HandlingReport, registeredAt time.Time) (HandlingEvent, error) {
	if report.TrackingID == "" {
		return HandlingEvent{}, fmt.Errorf("%w: tracking id is required", ErrInvalidEvent)
	}
	if !report.Type.valid() {
		return HandlingEvent{}, fmt.Errorf("%w: unknown event type %q", ErrInvalidEvent, report.Type)
	}
	if report.Location == "" {
		return HandlingEvent{}, fmt.Errorf("%w: location is required", ErrInvalidEvent)
	}
	if report.CompletionTime.IsZero() {
		return HandlingEvent{}, fmt.Errorf("%w: completion time is required", ErrInvalidEvent)
	}

	switch {
	case report.Type.RequiresVoyage() && report.VoyageNumber.IsEmpty():
		return HandlingEvent{}, fmt.Errorf("%w: %s requires a voyage", ErrInvalidEvent, report.Type)
	case !report.Type.RequiresVoyage() && !report.VoyageNumber.IsEmpty():
		return HandlingEvent{}, fmt.Errorf("%w: %s must not carry a voyage", ErrInvalidEvent, report.Type)
	}

	return HandlingEvent{
		TrackingID:       report.TrackingID,
		Type:             report.Type,
		Location:         report.Location,
		VoyageNumber:     report.VoyageNumber,
		CompletionTime:   report.CompletionTime,
		RegistrationTime: registeredAt,
	}, nil
}

// SameEventAs - идентичность события без учёта времени регистрации.
func (e HandlingEvent) SameEventAs(other HandlingEvent) bool {
	return e.TrackingID == other.TrackingID &&
		e.Type == other.Type &&
		e.Location == other.Location &&
		e.VoyageNumber == other.VoyageNumber &&
		e.CompletionTime.Equal(other.CompletionTime)
}

// Activity - событие без привязки к грузу и времени.
func (e HandlingEvent) Activity() HandlingActivity {
	return HandlingActivity{
		Type:         e.Type,
		Location:     e.Location,
		VoyageNumber: e.VoyageNumber,
	}
}
