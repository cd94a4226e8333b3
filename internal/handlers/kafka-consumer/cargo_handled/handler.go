package cargo_handled

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"tracking/internal/entities"
	"tracking/pkg/logger"
	retrierconfig "tracking/pkg/retrier"
	"tracking/pkg/retrier/backoff_adapter"
)

// Повторы ограничены таймаутом обработки сообщения.
const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

type Handler struct {
	inspectionService        Service
	log                      handlerLogger
	retrier                  retrier
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, inspectionService Service, timeout time.Duration) *Handler {
	handlerLog := log.With(logger.NewField("handler", "cargo.handled"))

	return &Handler{
		inspectionService: inspectionService,
		log:               handlerLog,
		retrier: backoff_adapter.New(retrierconfig.Config{
			InitialInterval: initialInterval,
			MaxInterval:     maxInterval,
			MaxElapsedTime:  timeout,
			Randomization:   randomization,
			Multiplier:      multiplier,
			ShouldRetry:     isRetryable,
		}),
		messageProcessingTimeout: timeout,
	}
}

func isRetryable(err error) bool {
	return !errors.Is(err, entities.ErrUnknownCargo) &&
		!errors.Is(err, context.Canceled) &&
		!errors.Is(err, context.DeadlineExceeded)
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			h.log.Info("session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing инспектирует груз по одному событию. Если инспекция так
// и не прошла, сообщение не помечается и ConsumeClaim выходит: сессия
// перезапускается с последнего закоммиченного offset. Сигналы при этом могут
// повториться, получатели уведомлений идемпотентны.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var msg cargoHandledMessage
	err := json.Unmarshal(message.Value, &msg)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("received bad cargo handled message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("tracking_id", msg.TrackingID),
		logger.NewField("type", msg.Type),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Debug("cargo inspection processing")

	event := msg.toDomain()
	err = h.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		return h.inspectionService.CargoHandled(ctx, event)
	})
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("cargo inspection context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, entities.ErrUnknownCargo):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("cargo inspection for unknown cargo")
			sess.MarkMessage(message, "")
			return false

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Error("cargo inspection failed, message will be reprocessed")
			return true
		}
	}

	msgLog.Info("cargo inspected")

	sess.MarkMessage(message, "")
	return false
}
