package chain

import (
	"context"

	"github.com/ib-77/rail/pkg/rail"
	"github.com/ib-77/rail/pkg/rail/joint"
	"github.com/ib-77/rail/pkg/rail/solo"
	"github.com/ib-77/rail/pkg/rail/tuple"
)

// Chain wraps a rail.Result with a context to enable fluent chaining.
type Chain[T any] struct {
	ctx context.Context
	res rail.Result[T]
}

// Start creates a new chain from a rail.Result.
func Start[T any](ctx context.Context, r rail.Result[T]) Chain[T] {
	return Chain[T]{ctx: ctx, res: r}
}

// FromValue creates a new chain from a successful value.
func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, rail.Success(v))
}

// Result returns the underlying rail.Result.
func (c Chain[T]) Result() rail.Result[T] {
	return c.res
}

// Then composes a function that already returns a rail.Result[T].
func (c Chain[T]) Then(onSuccess func(ctx context.Context, t T) rail.Result[T]) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: onSuccess(c.ctx, c.res.Value())}
}

// ThenTry composes a function that returns (T, error), like repo calls.
func (c Chain[T]) ThenTry(try func(ctx context.Context, t T) (T, error)) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: solo.TryWith(c.res, func(t T) (T, error) {
		return try(c.ctx, t)
	})}
}

// Map transforms the successful value in place.
func (c Chain[T]) Map(onSuccess func(ctx context.Context, t T) T) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: rail.Success(onSuccess(c.ctx, c.res.Value()))}
}

// Ensure demotes the chain to a failure when pred rejects the value.
func (c Chain[T]) Ensure(pred func(ctx context.Context, t T) bool, err error) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: c.res.Ensure(func(t T) bool {
		return pred(c.ctx, t)
	}, err)}
}

// Tap triggers side effects for success or failure without changing the
// result. Either handler may be nil.
func (c Chain[T]) Tap(onSuccess func(ctx context.Context, t T), onFailure func(ctx context.Context, err error)) Chain[T] {
	if c.res.IsFailure() {
		if onFailure != nil {
			onFailure(c.ctx, c.res.Err())
		}
		return c
	}
	if onSuccess != nil {
		onSuccess(c.ctx, c.res.Value())
	}
	return c
}

// OrElse recovers a failed chain with a fallback result.
func (c Chain[T]) OrElse(recover func(ctx context.Context, err error) rail.Result[T]) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: c.res.OrElse(func(err error) rail.Result[T] {
		return recover(c.ctx, err)
	})}
}

// RepeatUntil applies onSuccess repeatedly until the chain fails or the
// until predicate reports true.
func (c Chain[T]) RepeatUntil(onSuccess func(ctx context.Context, t T) rail.Result[T],
	until func(ctx context.Context, t T) bool) Chain[T] {

	if c.res.IsFailure() {
		return c
	}

	for {
		c = c.Then(onSuccess)

		if c.res.IsFailure() || until(c.ctx, c.res.Value()) {
			return c
		}
	}
}

// While applies onSuccess for as long as the chain succeeds and the while
// predicate holds.
func (c Chain[T]) While(onSuccess func(ctx context.Context, t T) rail.Result[T],
	while func(ctx context.Context, t T) bool) Chain[T] {

	for c.res.IsSuccess() && while(c.ctx, c.res.Value()) {
		c = c.Then(onSuccess)
	}
	return c
}

// Finally collapses the chain to a final value.
func (c Chain[T]) Finally(onSuccess func(ctx context.Context, t T) T,
	onFailure func(ctx context.Context, err error) T) T {
	return Finally(c, onSuccess, onFailure)
}

// Then chains a function that switches the value type.
func Then[T, U any](c Chain[T], onSuccess func(ctx context.Context, t T) rail.Result[U]) Chain[U] {
	return Chain[U]{ctx: c.ctx, res: solo.Bind(c.res, func(t T) rail.Result[U] {
		return onSuccess(c.ctx, t)
	})}
}

// Map chains a pure transformation switching the value type.
func Map[T, U any](c Chain[T], onSuccess func(ctx context.Context, t T) U) Chain[U] {
	return Chain[U]{ctx: c.ctx, res: solo.Map(c.res, func(t T) U {
		return onSuccess(c.ctx, t)
	})}
}

// Append grows a single-value chain into a pair chain, preserving order.
func Append[T, U any](c Chain[T], binder func(ctx context.Context, t T) rail.Result[U]) Chain[tuple.T2[T, U]] {
	return Chain[tuple.T2[T, U]]{ctx: c.ctx, res: joint.Append1(c.res, func(t T) rail.Result[U] {
		return binder(c.ctx, t)
	})}
}

// Finally collapses a chain into a final value via exhaustive handlers.
func Finally[T, U any](c Chain[T], onSuccess func(ctx context.Context, t T) U,
	onFailure func(ctx context.Context, err error) U) U {

	return solo.Match(c.res, func(t T) U {
		return onSuccess(c.ctx, t)
	}, func(err error) U {
		return onFailure(c.ctx, err)
	})
}
