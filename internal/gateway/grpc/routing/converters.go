package routing

import (
	"fmt"
	"time"

	"google.golang.org/protobuf/types/known/structpb"
	"tracking/internal/entities"
)

// Формат сообщений сервиса pathfinder:
//
//	запрос: {"origin": "CNHKG", "destination": "SESTO", "deadline": RFC3339}
//	ответ:  {"paths": [{"edges": [{"edge": "V100", "fromNode": "CNHKG",
//	         "toNode": "USNYC", "fromDate": RFC3339, "toDate": RFC3339}]}]}
//
// Ребро - одна нога маршрута.

func toRequest(spec entities.RouteSpecification) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{
		"origin":      spec.Origin.String(),
		"destination": spec.Destination.String(),
		"deadline":    spec.ArrivalDeadline.UTC().Format(time.RFC3339),
	})
}

// toDomainList пропускает пути, из которых не собирается корректный маршрут:
// кандидаты внешнего сервиса ничем не гарантированы.
func toDomainList(resp *structpb.Struct) ([]entities.Itinerary, int) {
	paths := resp.GetFields()["paths"].GetListValue().GetValues()

	itineraries := make([]entities.Itinerary, 0, len(paths))
	skipped := 0
	for _, path := range paths {
		it, err := toDomain(path.GetStructValue())
		if err != nil {
			skipped++
			continue
		}
		itineraries = append(itineraries, it)
	}

	return itineraries, skipped
}

func toDomain(path *structpb.Struct) (entities.Itinerary, error) {
	edges := path.GetFields()["edges"].GetListValue().GetValues()

	legs := make([]entities.Leg, 0, len(edges))
	for i, e := range edges {
		fields := e.GetStructValue().GetFields()

		loadTime, err := time.Parse(time.RFC3339, fields["fromDate"].GetStringValue())
		if err != nil {
			return entities.Itinerary{}, fmt.Errorf("edge %d fromDate: %w", i, err)
		}
		unloadTime, err := time.Parse(time.RFC3339, fields["toDate"].GetStringValue())
		if err != nil {
			return entities.Itinerary{}, fmt.Errorf("edge %d toDate: %w", i, err)
		}

		legs = append(legs, entities.Leg{
			VoyageNumber:   entities.VoyageNumber(fields["edge"].GetStringValue()),
			LoadLocation:   entities.UnLocode(fields["fromNode"].GetStringValue()),
			UnloadLocation: entities.UnLocode(fields["toNode"].GetStringValue()),
			LoadTime:       loadTime.UTC(),
			UnloadTime:     unloadTime.UTC(),
		})
	}

	return entities.NewItinerary(legs...)
}
