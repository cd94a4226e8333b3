package graceful_shutdown

import (
	"context"
	"net/http"
	"sync/atomic"
)

// Middleware отвечает 503 на новые запросы, когда сервер уже останавливается
// и ongoingCtx отменён. Клиенту предлагается переподключиться к другой реплике.
func Middleware(isShuttingDown *atomic.Bool, ongoingCtx context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if ongoingCtx.Err() != nil && isShuttingDown.Load() {
				w.Header().Set("Connection", "close")
				w.Header().Set("Retry-After", "5")
				http.Error(w, "Service is shutting down", http.StatusServiceUnavailable)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
