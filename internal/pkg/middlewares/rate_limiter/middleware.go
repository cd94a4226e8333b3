package rate_limiter

import (
	"net/http"
	"strconv"

	"tracking/internal/pkg/middlewares"
	"tracking/pkg/logger"
)

const rejectBody = `{"error":"Too Many Requests","message":"Rate limit exceeded. Try again later."}`

// пробы оркестратора и сбор метрик не расходуют токены
var exempt = map[string]bool{
	"/healthcheck": true,
	"/metrics":     true,
}

// Middleware отклоняет запрос с 429, если limiter не выдал токен.
// rateLimiterQPS уходит клиенту в X-RateLimit-Limit.
func Middleware(log handlerLogger, rateLimiterQPS int, limiter Limiter) func(http.Handler) http.Handler {
	limitHeader := strconv.Itoa(rateLimiterQPS)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route := middlewares.RouteTemplate(r)
			if exempt[route] || limiter.Allow() {
				next.ServeHTTP(w, r)
				return
			}

			RateLimitExceededTotal.WithLabelValues(r.Method, route).Inc()

			log.With(
				logger.NewField("method", r.Method),
				logger.NewField("path", r.URL.Path),
				logger.NewField("route", route),
				logger.NewField("remote_addr", r.RemoteAddr),
			).Warn("rate limit exceeded")

			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-RateLimit-Limit", limitHeader)
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)

			if _, err := w.Write([]byte(rejectBody)); err != nil {
				log.With(
					logger.NewField("error", err),
					logger.NewField("path", r.URL.Path),
				).Error("failed to write rate limit response")
			}
		})
	}
}
