package healthcheck_head

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"
)

const pingTimeout = time.Second

type Handler struct {
	isShuttingDown *atomic.Bool
	dependencies   []Dependency
}

func New(isShuttingDown *atomic.Bool, dependencies ...Dependency) *Handler {
	return &Handler{
		isShuttingDown: isShuttingDown,
		dependencies:   dependencies,
	}
}

// ServeHTTP: 204 - готов, 503 - останавливается или недоступна зависимость.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.isShuttingDown.Load() {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	if len(h.dependencies) > 0 {
		ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
		defer cancel()

		for _, dep := range h.dependencies {
			if err := dep.Ping(ctx); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
		}
	}

	w.WriteHeader(http.StatusNoContent)
}
