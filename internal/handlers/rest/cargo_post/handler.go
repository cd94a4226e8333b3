package cargo_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"tracking/internal/entities"
	"tracking/internal/generated/dto"
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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var request dto.BookCargoRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	origin, err := entities.ParseUnLocode(request.Origin)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	destination, err := entities.ParseUnLocode(request.Destination)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	id, err := h.service.BookCargo(r.Context(), origin, destination, request.ArrivalDeadline.UTC())
	if err != nil {
		switch {
		case errors.Is(err, entities.ErrUnknownLocation):
			w.WriteHeader(http.StatusUnprocessableEntity)
		case errors.Is(err, entities.ErrInvalidRouteSpecification):
			w.WriteHeader(http.StatusBadRequest)
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("book cargo")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.BookCargoResponse{
		TrackingId: id.String(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Location", "/cargo/"+id.String())
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
