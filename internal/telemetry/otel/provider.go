// Package otel wires OpenTelemetry metrics and traces for a mining run,
// following the Setup/Shutdown/env-toggle shape of
// internal/telemetry/otel/provider.go, rewired from MCP proxy traffic to
// mining-level instrumentation (SPEC_FULL.md §11).
package otel

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// Config controls OTEL exporter behaviour.
type Config struct {
	ServiceName   string
	RunID         string
	EnableMetrics bool
	EnableTraces  bool
}

// Provider owns OTEL meter/tracer providers and the derived mining
// instruments.
type Provider struct {
	cfg            Config
	meterProvider  *sdkmetric.MeterProvider
	tracerProvider *sdktrace.TracerProvider
	meter          metric.Meter
	tracer         trace.Tracer

	mineInstruments *MineInstruments
	shutdownOnce    sync.Once
}

// Setup initializes OTEL exporters for metrics and traces following cfg. A
// Config with both toggles off returns a no-op Provider whose instruments
// silently discard every call, so callers never need to nil-check it.
func Setup(ctx context.Context, cfg Config) (*Provider, error) {
	if !cfg.EnableMetrics && !cfg.EnableTraces {
		p := &Provider{cfg: cfg}
		p.mineInstruments = newMineInstruments(p)
		return p, nil
	}

	if strings.TrimSpace(cfg.ServiceName) == "" {
		cfg.ServiceName = "mdcopminer"
	}

	attrs := []attribute.KeyValue{attribute.String("service.name", cfg.ServiceName)}
	if cfg.RunID != "" {
		attrs = append(attrs, attribute.String("mdcopminer.run_id", cfg.RunID))
	}
	res, err := resource.Merge(resource.Default(), resource.NewSchemaless(attrs...))
	if err != nil {
		return nil, fmt.Errorf("build resource: %w", err)
	}

	p := &Provider{cfg: cfg}

	if cfg.EnableMetrics {
		mp := sdkmetric.NewMeterProvider(
			sdkmetric.WithReader(sdkmetric.NewManualReader()),
			sdkmetric.WithResource(res),
		)
		p.meterProvider = mp
		otel.SetMeterProvider(mp)
		p.meter = mp.Meter("github.com/integeruser/closedmdcop-miner/mining")
	}

	if cfg.EnableTraces {
		tp, err := createTracerProvider(res)
		if err != nil {
			return nil, err
		}
		p.tracerProvider = tp
		otel.SetTracerProvider(tp)
		p.tracer = tp.Tracer("github.com/integeruser/closedmdcop-miner/mining")
	}

	p.mineInstruments = newMineInstruments(p)
	return p, nil
}

func createTracerProvider(res *resource.Resource) (*sdktrace.TracerProvider, error) {
	exp, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, fmt.Errorf("init stdout trace exporter: %w", err)
	}
	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp, sdktrace.WithMaxExportBatchSize(64)),
		sdktrace.WithResource(res),
	), nil
}

// Shutdown flushes and stops the configured providers.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p == nil {
		return nil
	}
	var err error
	p.shutdownOnce.Do(func() {
		var errs []error
		if p.meterProvider != nil {
			if shutdownErr := p.meterProvider.Shutdown(ctx); shutdownErr != nil {
				errs = append(errs, shutdownErr)
			}
		}
		if p.tracerProvider != nil {
			if shutdownErr := p.tracerProvider.Shutdown(ctx); shutdownErr != nil {
				errs = append(errs, shutdownErr)
			}
		}
		if len(errs) > 0 {
			err = errors.Join(errs...)
		}
	})
	return err
}

// Mine returns the mining-specific instruments.
func (p *Provider) Mine() *MineInstruments {
	if p == nil {
		return nil
	}
	return p.mineInstruments
}

// EnvBool interprets MDCOPMINER_OTEL_* env toggles.
func EnvBool(value string, defaultOn bool) bool {
	value = strings.TrimSpace(strings.ToLower(value))
	switch value {
	case "":
		return defaultOn
	case "1", "true", "on", "enable", "enabled", "yes":
		return true
	case "0", "false", "off", "disable", "disabled", "no":
		return false
	default:
		return defaultOn
	}
}

// LoadConfigFromEnv reads OTEL config from the environment. runID tags the
// resulting resource attributes with the run's identifier (see
// internal/cli, which generates it with google/uuid).
func LoadConfigFromEnv(runID string) Config {
	return Config{
		ServiceName:   "mdcopminer",
		RunID:         runID,
		EnableMetrics: EnvBool(os.Getenv("MDCOPMINER_OTEL_METRICS"), false),
		EnableTraces:  EnvBool(os.Getenv("MDCOPMINER_OTEL_TRACES"), false),
	}
}
