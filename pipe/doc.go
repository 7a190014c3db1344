// Package pipe provides composable transformations over option.Option
// values with automatic short-circuit on absence.
//
// A Pipe is a named unit transformation Option[T] -> Option[T]. Apply is
// the invoking contract: it returns None immediately, without calling the
// pipe, when the input is already None. Absence therefore propagates
// through arbitrary chains with no per-pipe absence checks.
//
// A Sequencer threads a value through an ordered list of pipes, stopping at
// the first pipe that drops it. Drops are reported to a pluggable Observer
// (log, trace, metrics, or any combination); with no observer configured
// the event is silently discarded and the returned value is unaffected.
//
// # Usage
//
//	addOne := pipe.MapFunc("add-one", func(n int) int { return n + 1 })
//	keepEven := pipe.FilterFunc("keep-even", func(n int) bool { return n%2 == 0 })
//
//	seq := pipe.NewSequencer("cleanup", []pipe.Pipe[int]{addOne, keepEven},
//	    pipe.WithObserver[int](pipe.NewLogObserver(log)))
//
//	out := seq.Map(ctx, option.Some(5)) // Some(6)
//
// Pipes constructed with MapFunc and FilterFunc resolve their filter-vs-map
// behavior once, at construction time, not per item.
package pipe
