package middlewares

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RouteTemplate - шаблон маршрута mux (/cargo/{tracking_id}) вместо пути
// запроса: метки метрик не должны зависеть от tracking id.
func RouteTemplate(r *http.Request) string {
	route := mux.CurrentRoute(r)
	if route == nil {
		return "unmatched"
	}
	template, err := route.GetPathTemplate()
	if err != nil {
		return "unmatched"
	}
	return template
}
