//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=find_shortest_path_test
package find_shortest_path

import (
	"context"

	"tracking/internal/entities"
	"tracking/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	FetchRoutesForSpecification(ctx context.Context, spec entities.RouteSpecification) ([]entities.Itinerary, error)
}
