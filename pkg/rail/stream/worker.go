package stream

import (
	"context"
	"sync"

	"github.com/ib-77/rail/pkg/rail"
)

// worker drives a single line: it pulls Results from inputCh, applies the
// stage and pushes downstream until the input closes or the context ends.
// On cancellation the unprocessed items are drained as failures carrying
// ctx.Err() unless WithDrainOnCancel disabled that.
func worker[In, Out any](ctx context.Context, inputCh <-chan rail.Result[In], outCh chan<- rail.Result[Out],
	stage Stage[In, Out], wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			drain(ctx, inputCh, outCh)
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			out := stage(ctx, in)

			select {
			case <-ctx.Done():
				drainOne(ctx, in, outCh)
				drain(ctx, inputCh, outCh)
				return
			case outCh <- out:
			}
		}
	}
}

func drainOne[In, Out any](ctx context.Context, in rail.Result[In], outCh chan<- rail.Result[Out]) {
	if !DrainOnCancel(ctx, true) {
		return
	}
	if in.IsFailure() {
		outCh <- rail.FailureFrom[In, Out](in)
		return
	}
	outCh <- rail.Failure[Out](ctx.Err())
}

func drain[In, Out any](ctx context.Context, inputCh <-chan rail.Result[In], outCh chan<- rail.Result[Out]) {
	if !DrainOnCancel(ctx, true) {
		return
	}
	for in := range inputCh {
		drainOne(ctx, in, outCh)
	}
}
