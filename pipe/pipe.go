package pipe

import (
	"context"

	"github.com/optkit/optkit/option"
)

// Pipe is a named unit transformation over optional values.
// Implementations compute new payloads through option.Map or
// option.AndThen; they never force-unwrap their input.
type Pipe[T any] interface {
	// Name identifies the pipe in diagnostics.
	Name() string
	// Map transforms the input. Callers go through Apply, which guarantees
	// Map is only invoked on present values.
	Map(ctx context.Context, data option.Option[T]) option.Option[T]
}

// Apply invokes p on data. If data is None it returns None immediately
// without calling the pipe; this is the short-circuit that makes absence
// propagate through chains.
func Apply[T any](ctx context.Context, p Pipe[T], data option.Option[T]) option.Option[T] {
	if data.IsNone() {
		return data
	}
	return p.Map(ctx, data)
}

// MapFunc returns a pipe that transforms the payload with fn.
func MapFunc[T any](name string, fn func(T) T) Pipe[T] {
	return &funcPipe[T]{
		name: name,
		fn: func(_ context.Context, data option.Option[T]) option.Option[T] {
			return data.Map(fn)
		},
	}
}

// FilterFunc returns a pipe that drops payloads failing pred.
func FilterFunc[T any](name string, pred func(T) bool) Pipe[T] {
	return &funcPipe[T]{
		name: name,
		fn: func(_ context.Context, data option.Option[T]) option.Option[T] {
			return data.Filter(pred)
		},
	}
}

// Func returns a pipe from an arbitrary Option transformation.
func Func[T any](name string, fn func(ctx context.Context, data option.Option[T]) option.Option[T]) Pipe[T] {
	return &funcPipe[T]{name: name, fn: fn}
}

type funcPipe[T any] struct {
	name string
	fn   func(ctx context.Context, data option.Option[T]) option.Option[T]
}

func (p *funcPipe[T]) Name() string { return p.name }

func (p *funcPipe[T]) Map(ctx context.Context, data option.Option[T]) option.Option[T] {
	return p.fn(ctx, data)
}

// Identity returns the identity pipe: it returns its input unchanged.
// For any pipe f, composing with Identity on either side equals f.
func Identity[T any]() Pipe[T] {
	return identityPipe[T]{}
}

type identityPipe[T any] struct{}

func (identityPipe[T]) Name() string { return "identity" }

func (identityPipe[T]) Map(_ context.Context, data option.Option[T]) option.Option[T] {
	return data
}
