// traffic-generator гоняет грузы через HTTP API сервиса: бронирование,
// выбор маршрута и события обработки по каждой ноге до получения груза.
package main

import (
	"context"
	"errors"
	"flag"
	stdlog "log"
	"math/rand/v2"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"tracking/internal/generated/dto"
	"tracking/pkg/logger"
	"tracking/pkg/logger/zap_adapter"
)

var (
	opsCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "traffic_generator_operations_total",
		Help: "Количество запросов к API по операциям и результату",
	}, []string{"operation", "result"})

	opsDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "traffic_generator_operation_duration_seconds",
		Help:    "Длительность запроса к API в секундах",
		Buckets: []float64{0.01, 0.05, 0.1, 0.3, 0.5, 1, 2},
	}, []string{"operation"})

	cargoCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "traffic_generator_cargo_claimed_total",
		Help: "Грузы, прошедшие путь до получения",
	})
)

// пары портов, между которыми в справочных расписаниях есть маршрут
var lanes = []struct {
	origin      string
	destination string
}{
	{origin: "CNHKG", destination: "SESTO"},
	{origin: "JNTKO", destination: "NLRTM"},
	{origin: "CNSHA", destination: "AUMEL"},
	{origin: "USNYC", destination: "FIHEL"},
	{origin: "DEHAM", destination: "SEGOT"},
}

var deadline = time.Date(2009, time.March, 25, 0, 0, 0, 0, time.UTC)

func main() {
	target := flag.String("target", "http://localhost:8080", "Cargo tracking service base URL")
	interval := flag.Duration("interval", 5*time.Second, "Pause between cargo journeys")
	metricsAddr := flag.String("metrics", ":2112", "Metrics listen address")
	flag.Parse()

	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		_ = zapLogger.Sync()
	}()

	var log logger.Logger = zapLogger

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		server := &http.Server{
			Addr:              *metricsAddr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics server", logger.NewField("error", err))
		}
	}()

	api := newClient(*target, 10*time.Second)
	log.Info("traffic generator started",
		logger.NewField("target", *target),
		logger.NewField("interval", interval.String()),
	)

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()

	for {
		lane := lanes[rand.IntN(len(lanes))]
		if err := journey(ctx, api, lane.origin, lane.destination); err != nil && ctx.Err() == nil {
			log.Warn("journey failed",
				logger.NewField("origin", lane.origin),
				logger.NewField("destination", lane.destination),
				logger.NewField("error", err),
			)
		}

		select {
		case <-ctx.Done():
			log.Info("traffic generator stopped")
			return
		case <-ticker.C:
		}
	}
}

// journey бронирует груз, назначает первый предложенный маршрут и
// регистрирует получение, погрузки и выгрузки по ногам и выдачу.
func journey(ctx context.Context, api *client, origin, destination string) error {
	var id string
	err := observe("book_cargo", func() error {
		var err error
		id, err = api.bookCargo(ctx, dto.BookCargoRequest{
			Origin:          origin,
			Destination:     destination,
			ArrivalDeadline: deadline,
		})
		return err
	})
	if err != nil {
		return err
	}

	var routes []dto.Itinerary
	err = observe("candidate_routes", func() error {
		var err error
		routes, err = api.candidateRoutes(ctx, id)
		return err
	})
	if err != nil || len(routes) == 0 {
		return err
	}
	route := routes[0]

	err = observe("assign_itinerary", func() error {
		return api.assignItinerary(ctx, id, route)
	})
	if err != nil {
		return err
	}

	for _, report := range reportsAlong(id, route) {
		err = observe("register_event", func() error {
			return api.registerEvent(ctx, report)
		})
		if err != nil {
			return err
		}
	}

	err = observe("get_cargo", func() error {
		cargo, err := api.cargo(ctx, id)
		if err == nil && cargo.Delivery.TransportStatus == "CLAIMED" {
			cargoCompleted.Inc()
		}
		return err
	})
	return err
}

func reportsAlong(id string, route dto.Itinerary) []dto.HandlingReport {
	legs := route.Legs
	reports := make([]dto.HandlingReport, 0, 2*len(legs)+2)

	first, last := legs[0], legs[len(legs)-1]
	reports = append(reports, dto.HandlingReport{
		TrackingId:     id,
		Type:           "RECEIVE",
		Location:       first.LoadLocation,
		CompletionTime: first.LoadTime.Add(-time.Hour),
	})
	for _, leg := range legs {
		voyage := leg.VoyageNumber
		reports = append(reports,
			dto.HandlingReport{TrackingId: id, Type: "LOAD", Location: leg.LoadLocation, VoyageNumber: &voyage, CompletionTime: leg.LoadTime},
			dto.HandlingReport{TrackingId: id, Type: "UNLOAD", Location: leg.UnloadLocation, VoyageNumber: &voyage, CompletionTime: leg.UnloadTime},
		)
	}
	reports = append(reports, dto.HandlingReport{
		TrackingId:     id,
		Type:           "CLAIM",
		Location:       last.UnloadLocation,
		CompletionTime: last.UnloadTime.Add(time.Hour),
	})

	return reports
}

func observe(operation string, fn func() error) error {
	start := time.Now()
	err := fn()
	opsDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())

	result := "ok"
	if err != nil {
		result = "error"
	}
	opsCounter.WithLabelValues(operation, result).Inc()

	return err
}
