// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	trace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/autheliarr/autheliarr/internal/logging"
)

var _ TracingInterface = (*Tracer)(nil)

type Config struct {
	Enabled      bool
	GRPCEndpoint string
	HTTPEndpoint string

	Logger logging.LoggerInterface
}

func NewConfig(enabled bool, grpcEndpoint, httpEndpoint string, logger logging.LoggerInterface) *Config {
	c := new(Config)

	c.Enabled = enabled
	c.GRPCEndpoint = grpcEndpoint
	c.HTTPEndpoint = httpEndpoint
	c.Logger = logger

	return c
}

type Tracer struct {
	tracer trace.Tracer

	logger logging.LoggerInterface
}

func (t *Tracer) Start(ctx context.Context, spanName string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, spanName, opts...)
}

// NewTracer sets up the global otel provider with an OTLP exporter when
// tracing is enabled, preferring the gRPC endpoint over HTTP. When disabled
// it hands out no-op spans.
func NewTracer(config *Config) *Tracer {
	t := new(Tracer)
	t.logger = config.Logger

	if !config.Enabled {
		t.tracer = noop.NewTracerProvider().Tracer("autheliarr")
		return t
	}

	var client otlptrace.Client
	switch {
	case config.GRPCEndpoint != "":
		client = otlptracegrpc.NewClient(
			otlptracegrpc.WithEndpoint(config.GRPCEndpoint),
			otlptracegrpc.WithInsecure(),
		)
	case config.HTTPEndpoint != "":
		client = otlptracehttp.NewClient(
			otlptracehttp.WithEndpoint(config.HTTPEndpoint),
			otlptracehttp.WithInsecure(),
		)
	default:
		t.logger.Warn("tracing enabled but no otel endpoint provided, spans are dropped")
		t.tracer = noop.NewTracerProvider().Tracer("autheliarr")
		return t
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	exporter, err := otlptrace.New(ctx, client)
	if err != nil {
		t.logger.Errorf("failed to create otlp exporter: %v", err)
		t.tracer = noop.NewTracerProvider().Tracer("autheliarr")
		return t
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
	)
	otel.SetTracerProvider(provider)

	t.tracer = provider.Tracer("autheliarr")

	return t
}
