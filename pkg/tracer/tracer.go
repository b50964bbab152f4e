// Package tracer wires the global OpenTelemetry tracer provider with a
// jaeger collector exporter. Facade operations pick spans up from the
// context, so a process that never calls Setup simply records nothing.
package tracer

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"go.uber.org/zap"

	"github.com/project/dbcentral/pkg/logger"
)

// Setup installs the global tracer provider exporting to the jaeger
// collector at url. The returned shutdown flushes pending spans and must
// be called before the process exits.
func Setup(l *zap.Logger, url, serviceName string) (func(ctx context.Context) error, error) {
	exporter, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(url)))

	if err != nil {
		return nil, fmt.Errorf("can not create jaeger exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
		)),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	logger.MakeInfo(l, "tracing enabled", zap.String("collector_url", url))
	return tp.Shutdown, nil
}
