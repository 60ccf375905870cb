package stream

import (
	"context"
	"sync"

	"github.com/ib-77/rail/pkg/rail"
	"github.com/ib-77/rail/pkg/rail/solo"
)

// Stage is a synchronous transform applied to each travelling Result.
type Stage[In, Out any] func(ctx context.Context, in rail.Result[In]) rail.Result[Out]

// Source feeds values into a channel of successes. The channel closes when
// all values are sent or the context ends.
func Source[T any](ctx context.Context, values ...T) <-chan rail.Result[T] {
	in := make(chan rail.Result[T])

	go func() {
		defer close(in)

		if ctx.Err() != nil {
			return
		}

		for _, v := range values {
			select {
			case in <- rail.Success(v):
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

// Run executes a type-preserving stage over the input channel using the
// given number of worker lines.
func Run[T any](ctx context.Context, inputCh <-chan rail.Result[T],
	stage Stage[T, T], lines int) <-chan rail.Result[T] {
	return Pipe(ctx, inputCh, stage, lines)
}

// Pipe executes a stage over the input channel using the given number of
// worker lines; the output closes once every line finishes.
func Pipe[In, Out any](ctx context.Context, inputCh <-chan rail.Result[In],
	stage Stage[In, Out], lines int) <-chan rail.Result[Out] {

	out := make(chan rail.Result[Out])
	wg := &sync.WaitGroup{}

	for n, i := Workers(ctx, lines), 0; i < n; i++ {
		wg.Add(1)
		go worker(ctx, inputCh, out, stage, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

// Finally reduces each travelling Result to a plain value via exhaustive
// handlers, mirroring solo.Match over the whole stream.
func Finally[In, Out any](ctx context.Context, inputCh <-chan rail.Result[In],
	onSuccess func(ctx context.Context, in In) Out,
	onFailure func(ctx context.Context, err error) Out) <-chan Out {

	out := make(chan Out)

	go func() {
		defer close(out)

		for in := range inputCh {
			v := solo.Match(in, func(t In) Out {
				return onSuccess(ctx, t)
			}, func(err error) Out {
				return onFailure(ctx, err)
			})

			select {
			case out <- v:
			case <-ctx.Done():
				if !DrainOnCancel(ctx, true) {
					return
				}
				out <- v
			}
		}
	}()

	return out
}

// Collect drains a channel into a slice, returning once it closes.
func Collect[T any](ch <-chan T) []T {
	res := make([]T, 0)
	for v := range ch {
		res = append(res, v)
	}
	return res
}
