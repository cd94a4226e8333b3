package timeout

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"tracking/internal/pkg/middlewares"
)

var RequestTimeoutsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "http_request_timeouts_total",
		Help: "Requests whose context deadline expired before the handler returned",
	},
	[]string{"method", "route"},
)

// Middleware ограничивает время обработки запроса. timeout <= 0 - без ограничения.
func Middleware(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if timeout <= 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// r.Context() = ongoingCtx (из BaseContext)
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))

			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				RequestTimeoutsTotal.WithLabelValues(r.Method, middlewares.RouteTemplate(r)).Inc()
			}
		})
	}
}
