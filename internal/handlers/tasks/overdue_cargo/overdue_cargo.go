// Package overdue_cargo периодически ищет грузы с истёкшим сроком прибытия.
package overdue_cargo

import (
	"context"
	"time"

	"tracking/pkg/logger"
)

// логируем не больше стольких грузов за проход
const reportLimit = 20

type OverdueCargo struct {
	log      taskLogger
	service  Service
	interval time.Duration
	now      func() time.Time
}

func NewOverdueCargo(log taskLogger, service Service, interval time.Duration) *OverdueCargo {
	return &OverdueCargo{
		log:      log,
		service:  service,
		interval: interval,
		now:      time.Now,
	}
}

// WithClock подменяет часы, используется в тестах.
func (o *OverdueCargo) WithClock(now func() time.Time) *OverdueCargo {
	o.now = now
	return o
}

func (o *OverdueCargo) TTL() time.Duration {
	return o.interval
}

func (o *OverdueCargo) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	overdue, err := o.service.ListOverdue(ctxWithTimeout, o.now().UTC())
	if err != nil {
		return err
	}

	overdueCargo.Set(float64(len(overdue)))
	if len(overdue) == 0 {
		return nil
	}

	o.log.Info("overdue cargo found",
		logger.NewField("count", len(overdue)),
	)
	for i, tracking := range overdue {
		if i == reportLimit {
			break
		}
		o.log.Warn("cargo past arrival deadline",
			logger.NewField("tracking_id", tracking.Cargo.TrackingID.String()),
			logger.NewField("deadline", tracking.Cargo.RouteSpecification.ArrivalDeadline),
			logger.NewField("transport_status", string(tracking.Delivery.TransportStatus)),
			logger.NewField("last_known_location", tracking.Delivery.LastKnownLocation.String()),
		)
	}

	return nil
}

func (o *OverdueCargo) Info() string {
	return "overdue cargo scan"
}
