package entities

import (
	"fmt"
	"time"
)

// Leg - один отрезок маршрута на конкретном рейсе. Значимый тип: сравнивается по всем полям.
type Leg struct {
	VoyageNumber   VoyageNumber
	LoadLocation   UnLocode
	UnloadLocation UnLocode
	LoadTime       time.Time
	UnloadTime     time.Time
}

func (l Leg) validate() error {
	if l.VoyageNumber.IsEmpty() {
		return fmt.Errorf("%w: voyage number is required", ErrInvalidLeg)
	}
	if l.LoadLocation == "" || l.UnloadLocation == "" {
		return fmt.Errorf("%w: load and unload locations are required", ErrInvalidLeg)
	}
	if l.LoadLocation == l.UnloadLocation {
		return fmt.Errorf("%w: load and unload location are both %s", ErrInvalidLeg, l.LoadLocation)
	}
	if l.UnloadTime.Before(l.LoadTime) {
		return fmt.Errorf("%w: unload time %s precedes load time %s",
			ErrInvalidLeg, l.UnloadTime.Format(time.RFC3339), l.LoadTime.Format(time.RFC3339))
	}
	return nil
}

// Equal сравнивает ноги с учётом того, что time.Time нельзя сравнивать через ==.
func (l Leg) Equal(other Leg) bool {
	return l.VoyageNumber == other.VoyageNumber &&
		l.LoadLocation == other.LoadLocation &&
		l.UnloadLocation == other.UnloadLocation &&
		l.LoadTime.Equal(other.LoadTime) &&
		l.UnloadTime.Equal(other.UnloadTime)
}
