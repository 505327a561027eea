package main

import (
	"context"
	"fmt"
	"os"
	"time"

	// Packages
	otel "go.opentelemetry.io/otel"
	otlptracehttp "go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	trace "go.opentelemetry.io/otel/trace"
)

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// otelInit creates an OTLP trace exporter for the endpoint and installs it
// as the global tracer provider. The returned function flushes pending
// spans and shuts the provider down.
func otelInit(ctx context.Context, endpoint, name string) (trace.Tracer, func(), error) {
	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(endpoint))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create OTLP exporter: %w", err)
	}

	provider := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
	otel.SetTracerProvider(provider)

	shutdown := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := provider.Shutdown(ctx); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
	return provider.Tracer(name), shutdown, nil
}
