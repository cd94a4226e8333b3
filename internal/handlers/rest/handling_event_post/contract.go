//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=handling_event_post_test
package handling_event_post

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
	RecordEvent(ctx context.Context, report entities.HandlingReport) (entities.HandlingEvent, error)
}
