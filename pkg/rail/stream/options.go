package stream

import "context"

type optionKey string

const (
	workerOptionKey optionKey = "worker_options"
	drainOptionKey  optionKey = "drain_options"
)

type workerOptions struct {
	maxCount int
}

type drainOptions struct {
	drainOnCancel bool
}

// WithWorkers stores a worker ceiling on the context.
func WithWorkers(ctx context.Context, maxWorkers int) context.Context {
	return context.WithValue(ctx, workerOptionKey, workerOptions{maxCount: maxWorkers})
}

// Workers reads the worker ceiling from the context, falling back to
// defaultWorkers.
func Workers(ctx context.Context, defaultWorkers int) int {
	options, ok := ctx.Value(workerOptionKey).(workerOptions)
	if ok && options.maxCount > 0 {
		return options.maxCount
	}
	return defaultWorkers
}

// WithDrainOnCancel controls whether cancelled pipelines forward the
// remaining items as failures (true, the default) or drop them.
func WithDrainOnCancel(ctx context.Context, drain bool) context.Context {
	return context.WithValue(ctx, drainOptionKey, drainOptions{drainOnCancel: drain})
}

// DrainOnCancel reads the drain behavior from the context.
func DrainOnCancel(ctx context.Context, defaultDrain bool) bool {
	options, ok := ctx.Value(drainOptionKey).(drainOptions)
	if ok {
		return options.drainOnCancel
	}
	return defaultDrain
}
