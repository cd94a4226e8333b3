// Package notification пишет сигналы инспекции в лог, когда Kafka для
// уведомлений не настроена.
package notification

import (
	"context"

	"tracking/internal/entities"
	"tracking/pkg/logger"
)

type Notifier struct {
	log notifierLogger
}

func New(log notifierLogger) *Notifier {
	return &Notifier{log: log}
}

func (n *Notifier) CargoMisdirected(_ context.Context, cargo entities.Cargo, delivery entities.Delivery) error {
	n.log.Warn("cargo misdirected",
		logger.NewField("tracking_id", cargo.TrackingID),
		logger.NewField("last_known_location", delivery.LastKnownLocation),
		logger.NewField("routing_status", delivery.RoutingStatus),
	)
	return nil
}

func (n *Notifier) CargoDelivered(_ context.Context, cargo entities.Cargo, delivery entities.Delivery) error {
	n.log.Info("cargo delivered",
		logger.NewField("tracking_id", cargo.TrackingID),
		logger.NewField("destination", cargo.RouteSpecification.Destination),
		logger.NewField("location", delivery.LastKnownLocation),
	)
	return nil
}
