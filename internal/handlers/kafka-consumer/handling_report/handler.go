package handling_report

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"tracking/internal/entities"
	"tracking/pkg/logger"
)

type Handler struct {
	handlingService          Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, handlingService Service, timeout time.Duration) *Handler {
	handlerLog := log.With(logger.NewField("handler", "cargo.handling-reports"))

	return &Handler{
		handlingService:          handlingService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
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

// messageProcessing записывает один отчёт. Возвращает true, если обработку
// прервала отмена контекста: сообщение не помечается и будет прочитано снова.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var report handlingReportMessage
	err := json.Unmarshal(message.Value, &report)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("received bad handling report")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("tracking_id", report.TrackingID),
		logger.NewField("type", report.Type),
		logger.NewField("location", report.Location),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Debug("handling report processing")

	event, err := h.handlingService.RecordEvent(ctx, report.toDomain())
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("handling report context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, entities.ErrInvalidEvent):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("handling report rejected")

		case errors.Is(err, entities.ErrUnknownCargo):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("handling report for unknown cargo")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Error("failed to record handling report")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.With(
		logger.NewField("registered_at", event.RegistrationTime),
	).Info("handling report recorded")

	sess.MarkMessage(message, "")
	return false
}
