// Package stream lifts the synchronous algebra over channels of Results
// for concurrent fan-out/fan-in pipelines. A Stage is the same transform
// solo applies, awaited per item; on context cancellation the remaining
// items surface as ordinary failures carrying ctx.Err().
//
// Common usage:
// - Source: feed values into a Result channel
// - Run/Pipe: execute a stage over a channel with a fixed number of workers
// - Map/Bind/Try/Ensure/Validate/Tap: stage builders wrapping the solo primitives
// - Finally: reduce Result[In] to Out on completion
// - Collect: drain a channel into a slice
//
// Worker counts and drain behavior can also travel on the context, see
// WithWorkers and WithDrainOnCancel.
package stream
