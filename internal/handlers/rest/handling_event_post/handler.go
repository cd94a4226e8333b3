package handling_event_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"tracking/internal/entities"
	"tracking/internal/generated/dto"
	"tracking/internal/handlers/rest/converters"
	"tracking/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP регистрирует отчёт об обработке. Повторный отчёт отвечает 201
// с уже сохранённым событием.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var request dto.HandlingReport
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	event, err := h.service.RecordEvent(r.Context(), converters.ToHandlingReport(request))
	if err != nil {
		switch {
		case errors.Is(err, entities.ErrUnknownCargo):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, entities.ErrUnknownLocation),
			errors.Is(err, entities.ErrUnknownVoyage):
			w.WriteHeader(http.StatusUnprocessableEntity)
		case errors.Is(err, entities.ErrInvalidEvent),
			errors.Is(err, entities.ErrInvalidTrackingID),
			errors.Is(err, entities.ErrInvalidUnLocode),
			errors.Is(err, entities.ErrInvalidVoyageNumber):
			w.WriteHeader(http.StatusBadRequest)
		default:
			h.log.With(
				logger.NewField("tracking_id", request.TrackingId),
				logger.NewField("error", err),
			).Error("record handling event")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(converters.FromHandlingEvent(event))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
