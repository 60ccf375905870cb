// Package chain provides a fluent wrapper around rail.Result[T] for
// building synchronous railway pipelines on top of the solo primitives.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T] or a plain value
// - Then/ThenTry: compose result-returning or (T, error) functions
// - Map: transform the successful value in place
// - Ensure: demote to failure on a rejected predicate
// - Tap: side effects on either side without changing the result
// - OrElse: recover from a failure
// - RepeatUntil/While: loop a step while the chain keeps succeeding
// - Finally: collapse into a final value via handlers
//
// Type-changing steps are package-level functions (Then, Map, Append) since
// Go methods cannot introduce new type parameters.
package chain
