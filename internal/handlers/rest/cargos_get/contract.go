//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=cargos_get_test
package cargos_get

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
	ListTrackingIDs(ctx context.Context) ([]entities.TrackingID, error)
}
