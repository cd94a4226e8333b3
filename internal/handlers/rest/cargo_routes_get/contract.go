//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=cargo_routes_get_test
package cargo_routes_get

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
	GetCandidateRoutes(ctx context.Context, id entities.TrackingID) ([]entities.Itinerary, error)
}
