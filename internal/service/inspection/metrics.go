package inspection

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	signalMisdirected = "misdirected"
	signalDelivered   = "delivered"
)

var inspectedCargo = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "cargo_inspection_signals_total",
		Help: "Number of signals emitted by cargo inspection",
	},
	[]string{"signal"},
)
