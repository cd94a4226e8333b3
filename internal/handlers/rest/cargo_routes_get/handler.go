package cargo_routes_get

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
		service: service,
		log:     handlerLog,
	}
}

// ServeHTTP отдаёт кандидатов маршрута. Пустой список - нормальный ответ.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := entities.ParseTrackingID(mux.Vars(r)["tracking_id"])
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	routes, err := h.service.GetCandidateRoutes(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, entities.ErrUnknownCargo):
			w.WriteHeader(http.StatusNotFound)
		default:
			h.log.With(
				logger.NewField("tracking_id", id.String()),
				logger.NewField("error", err),
			).Error("get candidate routes")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.CandidateRoutesResponse{
		Routes: converters.FromItineraries(routes),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
