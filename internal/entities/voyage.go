package entities

import "time"

// CarrierMovement - перемещение судна между двумя портами по расписанию рейса.
type CarrierMovement struct {
	DepartureLocation UnLocode
	ArrivalLocation   UnLocode
	DepartureTime     time.Time
	ArrivalTime       time.Time
}

type Schedule struct {
	CarrierMovements []CarrierMovement
}

type Voyage struct {
	Number   VoyageNumber
	Schedule Schedule
}

// CallsAt - заходит ли рейс в локацию хотя бы раз (отправление или прибытие).
func (v Voyage) CallsAt(code UnLocode) bool {
	for _, m := range v.Schedule.CarrierMovements {
		if m.DepartureLocation == code || m.ArrivalLocation == code {
			return true
		}
	}
	return false
}

// Serves проверяет ногу по расписанию: рейс отправляется из места погрузки
// во время погрузки и дальше по расписанию прибывает в место выгрузки во
// время выгрузки.
func (v Voyage) Serves(leg Leg) bool {
	if leg.VoyageNumber != v.Number {
		return false
	}
	movements := v.Schedule.CarrierMovements
	for i, m := range movements {
		if m.DepartureLocation != leg.LoadLocation || !m.DepartureTime.Equal(leg.LoadTime) {
			continue
		}
		for _, next := range movements[i:] {
			if next.ArrivalLocation == leg.UnloadLocation && next.ArrivalTime.Equal(leg.UnloadTime) {
				return true
			}
		}
	}
	return false
}
