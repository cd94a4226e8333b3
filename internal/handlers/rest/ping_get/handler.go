package ping_get

import (
	"encoding/json"
	"net/http"

	"tracking/internal/generated/dto"
	"tracking/pkg/logger"
)

// Mode - в каком режиме запущен экземпляр, для диагностики.
type Mode struct {
	Storage string
	Routing string
}

type Handler struct {
	log  handlerLogger
	mode Mode
}

func New(log handlerLogger, mode Mode) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:  handlerLog,
		mode: mode,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	message := "pong"
	res := dto.PingResponse{
		Message: &message,
	}
	if h.mode.Storage != "" {
		res.Storage = &h.mode.Storage
	}
	if h.mode.Routing != "" {
		res.Routing = &h.mode.Routing
	}

	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(res)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
