//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=handling_report_test
package handling_report

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
