// Package instrument provides a generic timing decorator for arbitrary
// computations.
//
// The decorator is polymorphic over the wrapped function's signature: Go
// closures carry the arguments, so Measure and Wrap only ever see a
// nullary func() (T, error) and never need to know the arity or parameter
// types of the underlying computation. Errors pass through untouched; the
// wrapper never swallows a failure and never returns a partial result.
package instrument

import (
	"context"
	"time"
)

// Timed bundles the result of a wrapped computation with the wall-clock
// duration of its invocation. A Timed value is constructed fresh on each
// call and is immutable once returned.
type Timed[T any] struct {
	// Value is the wrapped computation's return value.
	Value T
	// Elapsed is the wall-clock duration of the invocation. Never negative.
	Elapsed time.Duration
}

// Measure invokes f exactly once, measuring wall-clock time around the
// call. On success it returns the value bundled with the elapsed duration.
// If f fails, the error is propagated unchanged and the zero Timed is
// returned; no partial result carries over.
func Measure[T any](f func() (T, error)) (Timed[T], error) {
	start := time.Now()
	value, err := f()
	elapsed := time.Since(start)
	if err != nil {
		return Timed[T]{}, err
	}
	return Timed[T]{Value: value, Elapsed: elapsed}, nil
}

// Wrap returns a decorated form of f that measures every invocation.
// The returned function is safe for concurrent use if f is.
func Wrap[T any](f func() (T, error)) func() (Timed[T], error) {
	return func() (Timed[T], error) {
		return Measure(f)
	}
}

// MeasureCtx is Measure for context-aware computations: the context is
// forwarded to f unmodified and is not inspected by the wrapper.
func MeasureCtx[T any](ctx context.Context, f func(context.Context) (T, error)) (Timed[T], error) {
	return Measure(func() (T, error) { return f(ctx) })
}

// WrapCtx returns a decorated form of a context-aware f.
func WrapCtx[T any](f func(context.Context) (T, error)) func(context.Context) (Timed[T], error) {
	return func(ctx context.Context) (Timed[T], error) {
		return MeasureCtx(ctx, f)
	}
}
