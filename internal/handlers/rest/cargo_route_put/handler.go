package cargo_route_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
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
	id, err := entities.ParseTrackingID(mux.Vars(r)["tracking_id"])
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var request dto.RouteSpecification
	err = json.NewDecoder(r.Body).Decode(&request)
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

	spec := entities.RouteSpecification{
		Origin:          origin,
		Destination:     destination,
		ArrivalDeadline: request.ArrivalDeadline.UTC(),
	}

	err = h.service.SpecifyNewRoute(r.Context(), id, spec)
	if err != nil {
		switch {
		case errors.Is(err, entities.ErrUnknownCargo):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, entities.ErrUnknownLocation):
			w.WriteHeader(http.StatusUnprocessableEntity)
		case errors.Is(err, entities.ErrInvalidRouteSpecification):
			w.WriteHeader(http.StatusBadRequest)
		default:
			h.log.With(
				logger.NewField("tracking_id", id.String()),
				logger.NewField("error", err),
			).Error("specify new route")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
