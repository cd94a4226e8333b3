package find_shortest_path

import (
	"fmt"
	"time"

	"google.golang.org/protobuf/types/known/structpb"
	"tracking/internal/entities"
)

func toRouteSpecification(req *structpb.Struct) (entities.RouteSpecification, error) {
	fields := req.GetFields()

	origin, err := entities.ParseUnLocode(fields["origin"].GetStringValue())
	if err != nil {
		return entities.RouteSpecification{}, fmt.Errorf("origin: %w", err)
	}
	destination, err := entities.ParseUnLocode(fields["destination"].GetStringValue())
	if err != nil {
		return entities.RouteSpecification{}, fmt.Errorf("destination: %w", err)
	}
	deadline, err := time.Parse(time.RFC3339, fields["deadline"].GetStringValue())
	if err != nil {
		return entities.RouteSpecification{}, fmt.Errorf("deadline: %w", err)
	}

	return entities.NewRouteSpecification(origin, destination, deadline.UTC())
}

func toResponse(itineraries []entities.Itinerary) (*structpb.Struct, error) {
	paths := make([]any, 0, len(itineraries))
	for _, it := range itineraries {
		edges := make([]any, 0, it.Len())
		for _, leg := range it.Legs() {
			edges = append(edges, map[string]any{
				"edge":     leg.VoyageNumber.String(),
				"fromNode": leg.LoadLocation.String(),
				"toNode":   leg.UnloadLocation.String(),
				"fromDate": leg.LoadTime.UTC().Format(time.RFC3339),
				"toDate":   leg.UnloadTime.UTC().Format(time.RFC3339),
			})
		}
		paths = append(paths, map[string]any{"edges": edges})
	}

	return structpb.NewStruct(map[string]any{"paths": paths})
}
