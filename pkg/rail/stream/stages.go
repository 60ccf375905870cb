package stream

import (
	"context"

	"github.com/ib-77/rail/pkg/rail"
	"github.com/ib-77/rail/pkg/rail/solo"
)

// Map lifts a pure transformation into a stage.
func Map[In, Out any](f func(ctx context.Context, in In) Out) Stage[In, Out] {
	return func(ctx context.Context, in rail.Result[In]) rail.Result[Out] {
		return solo.Map(in, func(v In) Out {
			return f(ctx, v)
		})
	}
}

// Bind lifts a Result-returning step into a stage with short-circuit
// semantics per item.
func Bind[In, Out any](f func(ctx context.Context, in In) rail.Result[Out]) Stage[In, Out] {
	return func(ctx context.Context, in rail.Result[In]) rail.Result[Out] {
		return solo.Bind(in, func(v In) rail.Result[Out] {
			return f(ctx, v)
		})
	}
}

// Try lifts a conventional (Out, error) call into a stage; returned errors
// and panics both become failures.
func Try[In, Out any](f func(ctx context.Context, in In) (Out, error)) Stage[In, Out] {
	return func(ctx context.Context, in rail.Result[In]) rail.Result[Out] {
		return solo.TryWith(in, func(v In) (Out, error) {
			return f(ctx, v)
		})
	}
}

// Ensure lifts a predicate into a stage demoting rejected values to err.
func Ensure[T any](pred func(ctx context.Context, in T) bool, err error) Stage[T, T] {
	return func(ctx context.Context, in rail.Result[T]) rail.Result[T] {
		return in.Ensure(func(v T) bool {
			return pred(ctx, v)
		}, err)
	}
}

// Validate lifts a message-producing validator into a stage, rejecting
// values with a validation fault.
func Validate[T any](validate func(ctx context.Context, in T) (valid bool, errMsg string)) Stage[T, T] {
	return func(ctx context.Context, in rail.Result[T]) rail.Result[T] {
		return solo.Validate(in, func(v T) (bool, string) {
			return validate(ctx, v)
		})
	}
}

// Tap lifts a side effect over the whole Result into a pass-through stage.
func Tap[T any](effect func(ctx context.Context, in rail.Result[T])) Stage[T, T] {
	return func(ctx context.Context, in rail.Result[T]) rail.Result[T] {
		effect(ctx, in)
		return in
	}
}
