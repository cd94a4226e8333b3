package handling

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var recordedEvents = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "handling_events_recorded_total",
		Help: "Number of newly recorded handling events by type",
	},
	[]string{"type"},
)
