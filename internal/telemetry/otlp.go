// Package telemetry wires OpenTelemetry tracing for the card panel.
package telemetry

import (
	"context"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// DefaultServiceName is used when OTEL_SERVICE_NAME is unset.
const DefaultServiceName = "cardpanel"

// Provider owns the tracer provider for the process.
type Provider struct {
	provider *sdktrace.TracerProvider
	enabled  bool
}

// NewProvider creates an OTLP/HTTP provider if OTEL_EXPORTER_OTLP_ENDPOINT is
// set and installs it globally. Returns nil if the endpoint is not
// configured (disabled).
func NewProvider(ctx context.Context) (*Provider, error) {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		return nil, nil // Disabled
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(), // local collectors only
	)
	if err != nil {
		return nil, err
	}
	p := NewProviderWith(sdktrace.WithBatcher(exporter))
	otel.SetTracerProvider(p.provider)
	return p, nil
}

// NewProviderWith builds a provider around an exporter registration such
// as sdktrace.WithBatcher or sdktrace.WithSyncer. The provider is not
// installed globally.
func NewProviderWith(export sdktrace.TracerProviderOption) *Provider {
	serviceName := os.Getenv("OTEL_SERVICE_NAME")
	if serviceName == "" {
		serviceName = DefaultServiceName
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	return &Provider{
		provider: sdktrace.NewTracerProvider(
			export,
			sdktrace.WithResource(res),
		),
		enabled: true,
	}
}

// Tracer returns a named tracer, or a no-op tracer when tracing is disabled.
func (p *Provider) Tracer(name string) oteltrace.Tracer {
	if p == nil || !p.enabled {
		return noop.NewTracerProvider().Tracer(name)
	}
	return p.provider.Tracer(name)
}

// Shutdown flushes pending spans. Safe on a nil provider.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p == nil || !p.enabled {
		return nil
	}
	return p.provider.Shutdown(ctx)
}
