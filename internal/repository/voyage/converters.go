package voyage

import "tracking/internal/entities"

// ToDomain группирует перемещения по рейсам, сохраняя порядок первого появления.
func ToDomain(movements []CarrierMovementDB) []entities.Voyage {
	voyages := make([]entities.Voyage, 0, 4)
	index := make(map[string]int)

	for _, m := range movements {
		i, ok := index[m.VoyageNumber]
		if !ok {
			i = len(voyages)
			index[m.VoyageNumber] = i
			voyages = append(voyages, entities.Voyage{Number: entities.VoyageNumber(m.VoyageNumber)})
		}

		voyages[i].Schedule.CarrierMovements = append(voyages[i].Schedule.CarrierMovements, entities.CarrierMovement{
			DepartureLocation: entities.UnLocode(m.DepartureLocation),
			ArrivalLocation:   entities.UnLocode(m.ArrivalLocation),
			DepartureTime:     m.DepartureTime.UTC(),
			ArrivalTime:       m.ArrivalTime.UTC(),
		})
	}

	return voyages
}
