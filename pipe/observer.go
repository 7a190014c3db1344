package pipe

import (
	"context"

	"github.com/optkit/optkit/logger"
	"github.com/optkit/optkit/observability"
)

// DropEvent describes a value dropped by a pipe inside a sequencer.
type DropEvent struct {
	// Sequencer is the name of the sequencer that was running.
	Sequencer string
	// SequencerID is the sequencer's unique instance id.
	SequencerID string
	// Pipe is the name of the pipe that returned None for a present input.
	Pipe string
	// Step is the zero-based position of the pipe in the sequencer.
	Step int
}

// Observer receives drop events. Implementations must not affect the
// sequencer's returned value or control flow, and must be safe for
// concurrent use: an external batch driver may run one sequencer over many
// items at once.
type Observer interface {
	PipeDropped(ctx context.Context, e DropEvent)
}

// NopObserver discards all events. It is the default.
type NopObserver struct{}

func (NopObserver) PipeDropped(context.Context, DropEvent) {}

// MultiObserver fans an event out to several observers in order.
func MultiObserver(obs ...Observer) Observer {
	return multiObserver(obs)
}

type multiObserver []Observer

func (m multiObserver) PipeDropped(ctx context.Context, e DropEvent) {
	for _, o := range m {
		o.PipeDropped(ctx, e)
	}
}

// NewLogObserver returns an observer that logs each drop through log.
func NewLogObserver(log *logger.Logger) Observer {
	return &logObserver{log: log}
}

type logObserver struct {
	log *logger.Logger
}

func (o *logObserver) PipeDropped(_ context.Context, e DropEvent) {
	o.log.Info("value filtered out", logger.Fields(
		logger.FieldSequencer, e.Sequencer,
		logger.FieldSequencerID, e.SequencerID,
		logger.FieldPipe, e.Pipe,
		logger.FieldStep, e.Step,
	))
}

// NewTraceObserver returns an observer that records each drop as an event
// on the span in ctx, if one is recording.
func NewTraceObserver() Observer {
	return traceObserver{}
}

type traceObserver struct{}

func (traceObserver) PipeDropped(ctx context.Context, e DropEvent) {
	span := observability.SpanFromContext(ctx)
	if span == nil || !span.IsRecording() {
		return
	}
	span.AddEvent("pipe.drop")
	observability.SetSpanAttribute(ctx, observability.AttrSequencerName, e.Sequencer)
	observability.SetSpanAttribute(ctx, observability.AttrSequencerID, e.SequencerID)
	observability.SetSpanAttribute(ctx, observability.AttrPipeName, e.Pipe)
	observability.SetSpanAttribute(ctx, observability.AttrSequencerStep, e.Step)
}

// NewMetricsObserver returns an observer that counts drops on the given
// metrics bundle.
func NewMetricsObserver(metrics *observability.Metrics) Observer {
	return &metricsObserver{metrics: metrics}
}

type metricsObserver struct {
	metrics *observability.Metrics
}

func (o *metricsObserver) PipeDropped(ctx context.Context, e DropEvent) {
	o.metrics.RecordDrop(ctx, e.Sequencer, e.Pipe, e.Step)
}
