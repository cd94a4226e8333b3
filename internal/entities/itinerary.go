package entities

import (
	"fmt"
	"time"
)

// Itinerary - запланированный маршрут груза. Неизменяем: при перемаршрутизации
// грузу назначается новый маршрут целиком. Нулевое значение - маршрут не назначен.
type Itinerary struct {
	legs []Leg
}

// NewItinerary собирает маршрут из непустой непрерывной последовательности ног.
// Невалидная последовательность отклоняется целиком, а не обрезается.
func NewItinerary(legs ...Leg) (Itinerary, error) {
	if len(legs) == 0 {
		return Itinerary{}, fmt.Errorf("%w: at least one leg is required", ErrInvalidItinerary)
	}

	for i, leg := range legs {
		if err := leg.validate(); err != nil {
			return Itinerary{}, fmt.Errorf("%w: leg %d: %w", ErrInvalidItinerary, i, err)
		}
		if i == 0 {
			continue
		}

		prev := legs[i-1]
		if prev.UnloadLocation != leg.LoadLocation {
			return Itinerary{}, fmt.Errorf("%w: leg %d ends at %s but leg %d starts at %s",
				ErrInvalidItinerary, i-1, prev.UnloadLocation, i, leg.LoadLocation)
		}
		if leg.LoadTime.Before(prev.UnloadTime) {
			return Itinerary{}, fmt.Errorf("%w: leg %d loads at %s before leg %d unloads at %s",
				ErrInvalidItinerary, i, leg.LoadTime.Format(time.RFC3339), i-1, prev.UnloadTime.Format(time.RFC3339))
		}
	}

	copied := make([]Leg, len(legs))
	copy(copied, legs)
	return Itinerary{legs: copied}, nil
}

// IsEmpty - маршрут ещё не назначен.
func (it Itinerary) IsEmpty() bool {
	return len(it.legs) == 0
}

// Legs возвращает копию ног маршрута.
func (it Itinerary) Legs() []Leg {
	legs := make([]Leg, len(it.legs))
	copy(legs, it.legs)
	return legs
}

func (it Itinerary) Len() int {
	return len(it.legs)
}

func (it Itinerary) FirstLeg() (Leg, bool) {
	if it.IsEmpty() {
		return Leg{}, false
	}
	return it.legs[0], true
}

func (it Itinerary) LastLeg() (Leg, bool) {
	if it.IsEmpty() {
		return Leg{}, false
	}
	return it.legs[len(it.legs)-1], true
}

func (it Itinerary) InitialDepartureLocation() UnLocode {
	leg, ok := it.FirstLeg()
	if !ok {
		return ""
	}
	return leg.LoadLocation
}

func (it Itinerary) FinalArrivalLocation() UnLocode {
	leg, ok := it.LastLeg()
	if !ok {
		return ""
	}
	return leg.UnloadLocation
}

func (it Itinerary) FinalArrivalTime() (time.Time, bool) {
	leg, ok := it.LastLeg()
	if !ok {
		return time.Time{}, false
	}
	return leg.UnloadTime, true
}

// LegMatching ищет ногу, которая начинается в location (событие открывает ногу),
// а если такой нет - ногу, которая в location заканчивается (событие её закрывает).
// Пустой voyage означает "любой рейс".
func (it Itinerary) LegMatching(location UnLocode, voyage VoyageNumber) (Leg, bool) {
	sameVoyage := func(leg Leg) bool {
		return voyage.IsEmpty() || leg.VoyageNumber == voyage
	}

	for _, leg := range it.legs {
		if leg.LoadLocation == location && sameVoyage(leg) {
			return leg, true
		}
	}
	for _, leg := range it.legs {
		if leg.UnloadLocation == location && sameVoyage(leg) {
			return leg, true
		}
	}
	return Leg{}, false
}

// IsExpected - совпадает ли событие со следующей ещё не пройденной границей ноги
// после того, как груз прошёл историю prior.
func (it Itinerary) IsExpected(prior HandlingHistory, event HandlingEvent) bool {
	if it.IsEmpty() {
		return true
	}

	if it.Walk(prior).Misdirected {
		return false
	}
	return !it.Walk(prior.Record(event)).Misdirected
}

// Equal сравнивает маршруты по ногам.
func (it Itinerary) Equal(other Itinerary) bool {
	if len(it.legs) != len(other.legs) {
		return false
	}
	for i := range it.legs {
		if !it.legs[i].Equal(other.legs[i]) {
			return false
		}
	}
	return true
}
