// Package tracing builds the OpenTelemetry tracer a viewing reports to.
//
// Tracing is off unless configured. When off, the returned Provider hands out
// a no-op tracer so callers never branch on it.
package tracing

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/zjrosen/valentine/internal/config"
	"github.com/zjrosen/valentine/internal/log"
)

// ServiceName is reported as service.name on every span.
const ServiceName = "valentine"

// InstrumentationName names the tracer handed to the app.
const InstrumentationName = "github.com/zjrosen/valentine"

// Provider owns the tracer provider and whatever the exporter writes to.
type Provider struct {
	tp     *sdktrace.TracerProvider
	closer io.Closer
	tracer trace.Tracer
}

// Setup builds a Provider for cfg. A disabled config yields a no-op provider.
func Setup(ctx context.Context, cfg config.TracingConfig, version string) (*Provider, error) {
	if !cfg.Enabled {
		return &Provider{tracer: noop.NewTracerProvider().Tracer(InstrumentationName)}, nil
	}

	exp, closer, err := newExporter(ctx, cfg)
	if err != nil {
		return nil, err
	}

	res := resource.NewSchemaless(
		attribute.String("service.name", ServiceName),
		attribute.String("service.version", version),
	)
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(res),
	)
	log.Info(log.CatTrace, "Tracing enabled", "exporter", cfg.Exporter)
	return &Provider{tp: tp, closer: closer, tracer: tp.Tracer(InstrumentationName)}, nil
}

func newExporter(ctx context.Context, cfg config.TracingConfig) (sdktrace.SpanExporter, io.Closer, error) {
	switch cfg.Exporter {
	case config.ExporterFile, "":
		path := cfg.File
		if path == "" {
			path = filepath.Join(config.DefaultDir(), "traces.jsonl")
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			return nil, nil, fmt.Errorf("creating trace directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("opening trace file: %w", err)
		}
		exp, err := stdouttrace.New(stdouttrace.WithWriter(f))
		if err != nil {
			_ = f.Close()
			return nil, nil, fmt.Errorf("creating file exporter: %w", err)
		}
		return exp, f, nil

	case config.ExporterOTLP:
		opts := []otlptracegrpc.Option{otlptracegrpc.WithEndpoint(cfg.Endpoint)}
		if cfg.Insecure {
			opts = append(opts, otlptracegrpc.WithInsecure())
		}
		exp, err := otlptracegrpc.New(ctx, opts...)
		if err != nil {
			return nil, nil, fmt.Errorf("creating otlp exporter: %w", err)
		}
		return exp, nil, nil
	}
	return nil, nil, fmt.Errorf("unknown trace exporter %q", cfg.Exporter)
}

// Tracer returns the tracer to pass to the app.
func (p *Provider) Tracer() trace.Tracer {
	return p.tracer
}

// Enabled reports whether spans are exported anywhere.
func (p *Provider) Enabled() bool {
	return p.tp != nil
}

// Shutdown flushes pending spans and releases the exporter.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p.tp == nil {
		return nil
	}
	var errs []error
	if err := p.tp.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("shutting down tracer provider: %w", err))
	}
	if p.closer != nil {
		if err := p.closer.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing trace file: %w", err))
		}
	}
	return errors.Join(errs...)
}
