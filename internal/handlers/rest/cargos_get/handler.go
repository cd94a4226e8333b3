package cargos_get

import (
	"encoding/json"
	"net/http"

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
	ids, err := h.service.ListTrackingIDs(r.Context())
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("list tracking ids")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := dto.CargoListResponse{
		TrackingIds: make([]string, 0, len(ids)),
	}
	for _, id := range ids {
		response.TrackingIds = append(response.TrackingIds, id.String())
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
