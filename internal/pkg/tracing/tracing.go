package tracing

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"tracking/internal/pkg/config"
	"tracking/pkg/logger"
)

// Setup регистрирует глобальный TracerProvider. Без OTLP endpoint трассировка
// выключена и возвращается пустой shutdown.
func Setup(ctx context.Context, log logger.Logger, cfg *config.Tracing) (func(context.Context) error, error) {
	noop := func(context.Context) error { return nil }

	// propagator нужен и без экспортёра: trace context пробрасывается дальше
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	if cfg.OTLPEndpoint == "" {
		log.Info("tracing disabled, OTEL_EXPORTER_OTLP_ENDPOINT is empty")
		return noop, nil
	}

	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(cfg.OTLPEndpoint))
	if err != nil {
		return noop, fmt.Errorf("otlp exporter: %w", err)
	}

	res, err := resource.New(ctx, resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)))
	if err != nil {
		return noop, fmt.Errorf("otel resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)

	log.Info("tracing enabled",
		logger.NewField("endpoint", cfg.OTLPEndpoint),
		logger.NewField("service", cfg.ServiceName),
	)

	return tp.Shutdown, nil
}
