// Package solo contains the single-value, synchronous combinator algebra
// over rail.Result[T]. These functions are the core building blocks for
// error-aware pipelines without channels.
//
// Highlights:
// - Map: transform the success value (In -> Out)
// - Bind: short-circuit chaining of Result-returning steps
// - Match: exhaustive reduction via success/failure handlers
// - MapBoth: reduce both sides to a common value type
// - Validate: apply a predicate producing a validation fault on rejection
// - Try/TryMap: the sole boundary absorbing foreign faults (returned errors
//   and panics alike) into failures
//
// Operations that keep the value type (Ensure, MapError, OrElse, Tap,
// OnSuccess, OnFailure) live as methods on rail.Result itself.
package solo
