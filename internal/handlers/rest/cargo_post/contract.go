//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=cargo_post_test
package cargo_post

import (
	"context"
	"time"

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
	BookCargo(ctx context.Context, origin, destination entities.UnLocode, deadline time.Time) (entities.TrackingID, error)
}
