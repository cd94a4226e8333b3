package cargo_itinerary_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := entities.ParseTrackingID(mux.Vars(r)["tracking_id"])
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var request dto.Itinerary
	err = json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	itinerary, err := converters.ToItinerary(request)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	err = h.service.AssignItinerary(r.Context(), id, itinerary)
	if err != nil {
		switch {
		case errors.Is(err, entities.ErrUnknownCargo):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, entities.ErrUnknownVoyage),
			errors.Is(err, entities.ErrVoyageDoesNotServeLeg):
			w.WriteHeader(http.StatusUnprocessableEntity)
		case errors.Is(err, entities.ErrInvalidItinerary):
			w.WriteHeader(http.StatusBadRequest)
		default:
			h.log.With(
				logger.NewField("tracking_id", id.String()),
				logger.NewField("error", err),
			).Error("assign itinerary")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
