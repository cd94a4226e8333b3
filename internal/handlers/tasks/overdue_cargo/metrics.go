package overdue_cargo

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var overdueCargo = promauto.NewGauge(
	prometheus.GaugeOpts{
		Name: "cargo_overdue",
		Help: "Number of not yet claimed cargoes past their arrival deadline",
	},
)
