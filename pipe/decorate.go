package pipe

import (
	"context"
	"time"

	"github.com/optkit/optkit/logger"
	"github.com/optkit/optkit/observability"
	"github.com/optkit/optkit/option"
)

// WithLogging wraps a pipe with execution logging.
// Logs: pipe name, duration, and whether the value survived.
func WithLogging[T any](p Pipe[T], log *logger.Logger) Pipe[T] {
	return &loggingPipe[T]{inner: p, log: log}
}

type loggingPipe[T any] struct {
	inner Pipe[T]
	log   *logger.Logger
}

func (p *loggingPipe[T]) Name() string { return p.inner.Name() }

func (p *loggingPipe[T]) Map(ctx context.Context, data option.Option[T]) option.Option[T] {
	start := time.Now()
	result := p.inner.Map(ctx, data)
	duration := time.Since(start)

	status := "ok"
	if result.IsNone() {
		status = "dropped"
	}
	p.log.Debug("pipe applied", logger.Fields(
		logger.FieldPipe, p.inner.Name(),
		logger.FieldStatus, status,
		logger.FieldDuration, duration.Milliseconds(),
	))

	return result
}

// WithTracing wraps a pipe with OpenTelemetry span creation.
// Each application creates a span named "{prefix}.{pipeName}".
func WithTracing[T any](p Pipe[T], prefix string) Pipe[T] {
	return &tracingPipe[T]{inner: p, prefix: prefix}
}

type tracingPipe[T any] struct {
	inner  Pipe[T]
	prefix string
}

func (p *tracingPipe[T]) Name() string { return p.inner.Name() }

func (p *tracingPipe[T]) Map(ctx context.Context, data option.Option[T]) option.Option[T] {
	spanName := p.prefix + "." + p.inner.Name()
	ctx, span := observability.StartSpan(ctx, spanName)
	defer span.End()

	observability.SetSpanAttribute(ctx, observability.AttrPipeName, p.inner.Name())

	result := p.inner.Map(ctx, data)
	if result.IsNone() {
		observability.SetSpanAttribute(ctx, observability.AttrStatus, "dropped")
	}

	return result
}

// WithMetrics wraps a pipe with apply-count and duration recording.
func WithMetrics[T any](p Pipe[T], sequencer string, metrics *observability.Metrics) Pipe[T] {
	return &metricsPipe[T]{inner: p, sequencer: sequencer, metrics: metrics}
}

type metricsPipe[T any] struct {
	inner     Pipe[T]
	sequencer string
	metrics   *observability.Metrics
}

func (p *metricsPipe[T]) Name() string { return p.inner.Name() }

func (p *metricsPipe[T]) Map(ctx context.Context, data option.Option[T]) option.Option[T] {
	start := time.Now()
	result := p.inner.Map(ctx, data)
	duration := time.Since(start)

	status := "ok"
	if result.IsNone() {
		status = "dropped"
	}
	p.metrics.RecordApply(ctx, p.sequencer, p.inner.Name(), status, duration)

	return result
}
