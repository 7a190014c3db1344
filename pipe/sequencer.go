package pipe

import (
	"context"

	"github.com/google/uuid"

	"github.com/optkit/optkit/option"
)

// Sequencer applies an ordered list of pipes left to right, stopping at
// the first pipe that drops the value. The pipe list is fixed at
// construction. Sequencer itself implements Pipe, so sequencers nest.
type Sequencer[T any] struct {
	name     string
	id       string
	pipes    []Pipe[T]
	observer Observer
}

// SequencerOption configures a Sequencer at construction.
type SequencerOption[T any] func(*Sequencer[T])

// WithObserver sets the observer notified when a pipe drops the value.
func WithObserver[T any](obs Observer) SequencerOption[T] {
	return func(s *Sequencer[T]) { s.observer = obs }
}

// NewSequencer creates a sequencer over the given pipes. The slice is
// copied; later mutation of the caller's slice has no effect.
func NewSequencer[T any](name string, pipes []Pipe[T], opts ...SequencerOption[T]) *Sequencer[T] {
	s := &Sequencer[T]{
		name:     name,
		id:       uuid.NewString(),
		pipes:    append([]Pipe[T](nil), pipes...),
		observer: NopObserver{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name identifies the sequencer in diagnostics.
func (s *Sequencer[T]) Name() string { return s.name }

// ID returns the sequencer's unique instance id.
func (s *Sequencer[T]) ID() string { return s.id }

// Len returns the number of pipes.
func (s *Sequencer[T]) Len() int { return len(s.pipes) }

// Map threads data through the pipes in order. When a pipe turns a present
// value into None, the remaining pipes are not invoked, the observer is
// notified once, and None is returned. An input that is already None passes
// through without invoking any pipe and without a drop event, since no pipe
// caused the absence. A panic inside a member pipe propagates unchanged.
func (s *Sequencer[T]) Map(ctx context.Context, data option.Option[T]) option.Option[T] {
	for i, p := range s.pipes {
		if data.IsNone() {
			break
		}
		next := Apply(ctx, p, data)
		if next.IsNone() {
			s.observer.PipeDropped(ctx, DropEvent{
				Sequencer:   s.name,
				SequencerID: s.id,
				Pipe:        p.Name(),
				Step:        i,
			})
			return next
		}
		data = next
	}
	return data
}
