package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/optkit/optkit/logger"
	"github.com/optkit/optkit/version"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName is the name of the application embedding the library.
	ServiceName string
	// ServiceVersion is the application version.
	ServiceVersion string
	// Environment is the deployment environment (dev, staging, prod).
	Environment string
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string
	// Insecure allows insecure connections (for development).
	Insecure bool
	// Interval is the metric export interval.
	Interval time.Duration
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: version.Get().Version,
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter initializes the OpenTelemetry meter provider.
// Returns a MeterProvider that should be shut down on application exit.
func InitMeter(ctx context.Context, config MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Info("meter initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metrics holds OpenTelemetry metric instruments for pipeline observability.
type Metrics struct {
	applyTotal    metric.Int64Counter
	applyDuration metric.Float64Histogram
	dropTotal     metric.Int64Counter
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	applyTotal, err := meter.Int64Counter("pipeline.apply.total",
		metric.WithDescription("Total number of pipe applications"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating pipeline.apply.total counter: %w", err)
	}

	applyDuration, err := meter.Float64Histogram("pipeline.apply.duration",
		metric.WithDescription("Duration of pipe applications in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating pipeline.apply.duration histogram: %w", err)
	}

	dropTotal, err := meter.Int64Counter("pipeline.drop.total",
		metric.WithDescription("Total number of values dropped by a pipe"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating pipeline.drop.total counter: %w", err)
	}

	return &Metrics{
		applyTotal:    applyTotal,
		applyDuration: applyDuration,
		dropTotal:     dropTotal,
	}, nil
}

// RecordApply records a single pipe application.
func (m *Metrics) RecordApply(ctx context.Context, sequencer, pipe, status string, duration time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String(AttrSequencerName, sequencer),
		attribute.String(AttrPipeName, pipe),
		attribute.String(AttrStatus, status),
	)
	m.applyTotal.Add(ctx, 1, attrs)
	m.applyDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String(AttrSequencerName, sequencer),
		attribute.String(AttrPipeName, pipe),
	))
}

// RecordDrop records a value dropped by the named pipe.
func (m *Metrics) RecordDrop(ctx context.Context, sequencer, pipe string, step int) {
	m.dropTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String(AttrSequencerName, sequencer),
		attribute.String(AttrPipeName, pipe),
		attribute.Int(AttrSequencerStep, step),
	))
}
