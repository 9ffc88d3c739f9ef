package common

import (
	"context"
	"time"

	"github.com/bsthun/gut"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.38.0"
	"go.opentelemetry.io/otel/trace"
)

type Telemetry struct {
	Meter      metric.Meter
	Tracer     trace.Tracer
	Instrument *Instrument
}

// NewTelemetry wires OTLP gRPC exporters for traces and metrics. When no
// telemetry endpoint is configured it returns nil and the middleware stays
// off the app.
func NewTelemetry(config *Config) *Telemetry {
	if config.TelemetryUrl == nil {
		return nil
	}

	// * construct resource
	attributes := make([]attribute.KeyValue, 0)
	if config.AppName != nil {
		attributes = append(attributes, semconv.ServiceName(*config.AppName))
	}
	res, err := resource.New(context.Background(), resource.WithAttributes(attributes...))
	if err != nil {
		gut.Fatal("unable to initialize resource", err)
	}

	telemetry := new(Telemetry)

	// * construct meter
	telemetry.Meter, err = NewMeter(config, res)
	if err != nil {
		gut.Fatal("unable to initialize meter", err)
	}

	// * construct tracer
	telemetry.Tracer, err = NewTracer(config, res)
	if err != nil {
		gut.Fatal("unable to initialize tracer", err)
	}

	// * construct instrument
	telemetry.Instrument, err = NewInstrument(telemetry.Meter)
	if err != nil {
		gut.Fatal("unable to initialize instrument", err)
	}

	return telemetry
}

func NewMeter(config *Config, res *resource.Resource) (metric.Meter, error) {
	// * construct exporter
	headers := map[string]string{}
	if config.TelemetryOrganization != nil {
		headers["X-Scope-OrgID"] = *config.TelemetryOrganization
	}
	exporter, err := otlpmetricgrpc.New(
		context.Background(),
		otlpmetricgrpc.WithEndpoint(*config.TelemetryUrl),
		otlpmetricgrpc.WithHeaders(headers),
		otlpmetricgrpc.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	// * construct provider
	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(
			exporter,
			sdkmetric.WithInterval(time.Minute),
		)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(provider)

	return otel.Meter("grove-meter"), nil
}

func NewTracer(config *Config, res *resource.Resource) (trace.Tracer, error) {
	// * construct exporter
	headers := map[string]string{}
	if config.TelemetryOrganization != nil {
		headers["X-Scope-OrgID"] = *config.TelemetryOrganization
	}
	exporter, err := otlptracegrpc.New(
		context.Background(),
		otlptracegrpc.WithEndpoint(*config.TelemetryUrl),
		otlptracegrpc.WithHeaders(headers),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	// * construct provider
	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return otel.Tracer("grove-tracer"), nil
}
