// Package trace wires OpenTelemetry tracing for kickview. Export is enabled
// only when OTEL_EXPORTER_OTLP_ENDPOINT (or its traces variant) is set.
package trace

import (
	"context"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// DefaultServiceName is reported when OTEL_SERVICE_NAME is unset.
const DefaultServiceName = "kickview"

// Provider owns the tracer provider installed by Setup.
type Provider struct {
	provider *sdktrace.TracerProvider
}

// Setup installs a global tracer provider exporting over OTLP/HTTP.
// Returns a disabled Provider (nil error) if no endpoint is configured.
// The exporter reads the OTEL_EXPORTER_OTLP_* variables itself, so the
// endpoint is a URL such as http://localhost:4318.
func Setup(ctx context.Context) (*Provider, error) {
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" && os.Getenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT") == "" {
		return &Provider{}, nil
	}

	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, err
	}

	serviceName := os.Getenv("OTEL_SERVICE_NAME")
	if serviceName == "" {
		serviceName = DefaultServiceName
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(provider)

	return &Provider{provider: provider}, nil
}

// Enabled reports whether spans are exported.
func (p *Provider) Enabled() bool {
	return p != nil && p.provider != nil
}

// Tracer returns a named tracer from the installed provider, or the global
// (no-op by default) one when disabled.
func (p *Provider) Tracer(name string) oteltrace.Tracer {
	if !p.Enabled() {
		return otel.Tracer(name)
	}
	return p.provider.Tracer(name)
}

// Shutdown flushes pending spans and closes the exporter.
func (p *Provider) Shutdown(ctx context.Context) error {
	if !p.Enabled() {
		return nil
	}
	return p.provider.Shutdown(ctx)
}
