package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"tracking/internal/pkg/middlewares"
	"tracking/pkg/logger"
)

// Middleware пишет метрики и лог запроса. Ответы 5xx логируются как Warn,
// tracking_id из пути попадает в лог, но не в метки.
func Middleware(log handlerLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(rw, r)

			duration := time.Since(start)
			statusCode := strconv.Itoa(rw.statusCode)
			route := middlewares.RouteTemplate(r)

			HTTPRequestDuration.WithLabelValues(r.Method, route, statusCode).Observe(duration.Seconds())
			HTTPRequestTotal.WithLabelValues(r.Method, route, statusCode).Inc()

			fields := []logger.Field{
				logger.NewField("method", r.Method),
				logger.NewField("path", r.URL.Path),
				logger.NewField("route", route),
				logger.NewField("status", statusCode),
				logger.NewField("duration", duration.String()),
			}
			if id, ok := mux.Vars(r)["tracking_id"]; ok {
				fields = append(fields, logger.NewField("tracking_id", id))
			}

			requestLog := log.With(fields...)
			if rw.statusCode >= http.StatusInternalServerError {
				requestLog.Warn("HTTP request failed")
				return
			}
			requestLog.Info("HTTP request")
		})
	}
}

type responseWriter struct {
	http.ResponseWriter
	statusCode  int
	wroteHeader bool
}

func (rw *responseWriter) WriteHeader(code int) {
	if !rw.wroteHeader {
		rw.statusCode = code
		rw.wroteHeader = true
	}
	rw.ResponseWriter.WriteHeader(code)
}
