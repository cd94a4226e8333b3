// Package pathfinder ищет маршруты по расписаниям рейсов, когда внешний
// сервис маршрутизации не настроен.
//
// Поиск в глубину по перемещениям судов: следующее перемещение должно
// отправляться не раньше прибытия предыдущего, порты не повторяются.
// Соседние перемещения одного рейса склеиваются в одну ногу.
package pathfinder

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"tracking/internal/entities"
)

const (
	DefaultMaxLegs       = 4
	DefaultMaxCandidates = 5
)

type Pathfinder struct {
	voyages       VoyageLister
	maxLegs       int
	maxCandidates int
}

func New(voyages VoyageLister) *Pathfinder {
	return &Pathfinder{
		voyages:       voyages,
		maxLegs:       DefaultMaxLegs,
		maxCandidates: DefaultMaxCandidates,
	}
}

type edge struct {
	voyage   entities.VoyageNumber
	movement entities.CarrierMovement
}

// FetchRoutesForSpecification возвращает до maxCandidates маршрутов из
// origin в destination, прибывающих не позже срока. Раньше прибывающие идут
// первыми, при равенстве - с меньшим числом ног.
func (p *Pathfinder) FetchRoutesForSpecification(ctx context.Context, spec entities.RouteSpecification) ([]entities.Itinerary, error) {
	voyages, err := p.voyages.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list voyages: %w", err)
	}

	graph := make(map[entities.UnLocode][]edge)
	for _, v := range voyages {
		for _, m := range v.Schedule.CarrierMovements {
			graph[m.DepartureLocation] = append(graph[m.DepartureLocation], edge{voyage: v.Number, movement: m})
		}
	}

	var found []entities.Itinerary
	visited := map[entities.UnLocode]bool{spec.Origin: true}

	var walk func(at entities.UnLocode, path []edge)
	walk = func(at entities.UnLocode, path []edge) {
		if at == spec.Destination {
			if it, ok := p.toItinerary(path); ok {
				found = append(found, it)
			}
			return
		}

		for _, e := range graph[at] {
			if visited[e.movement.ArrivalLocation] {
				continue
			}
			if len(path) > 0 && e.movement.DepartureTime.Before(path[len(path)-1].movement.ArrivalTime) {
				continue
			}
			if e.movement.ArrivalTime.After(spec.ArrivalDeadline) {
				continue
			}

			next := append(slices.Clone(path), e)
			if countLegs(next) > p.maxLegs {
				continue
			}

			visited[e.movement.ArrivalLocation] = true
			walk(e.movement.ArrivalLocation, next)
			visited[e.movement.ArrivalLocation] = false
		}
	}
	walk(spec.Origin, nil)

	slices.SortStableFunc(found, func(a, b entities.Itinerary) int {
		aArrival, _ := a.FinalArrivalTime()
		bArrival, _ := b.FinalArrivalTime()
		if c := aArrival.Compare(bArrival); c != 0 {
			return c
		}
		return cmp.Compare(a.Len(), b.Len())
	})

	if len(found) > p.maxCandidates {
		found = found[:p.maxCandidates]
	}

	return found, nil
}

func (p *Pathfinder) toItinerary(path []edge) (entities.Itinerary, bool) {
	legs := make([]entities.Leg, 0, len(path))
	for _, e := range path {
		if n := len(legs); n > 0 && legs[n-1].VoyageNumber == e.voyage {
			legs[n-1].UnloadLocation = e.movement.ArrivalLocation
			legs[n-1].UnloadTime = e.movement.ArrivalTime
			continue
		}
		legs = append(legs, entities.Leg{
			VoyageNumber:   e.voyage,
			LoadLocation:   e.movement.DepartureLocation,
			UnloadLocation: e.movement.ArrivalLocation,
			LoadTime:       e.movement.DepartureTime,
			UnloadTime:     e.movement.ArrivalTime,
		})
	}

	it, err := entities.NewItinerary(legs...)
	if err != nil {
		return entities.Itinerary{}, false
	}
	return it, true
}

func countLegs(path []edge) int {
	legs := 0
	for i, e := range path {
		if i == 0 || path[i-1].voyage != e.voyage {
			legs++
		}
	}
	return legs
}
