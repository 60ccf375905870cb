// Package fault defines the failure model carried through Result pipelines.
//
// A Fault is an immutable domain error with a kind discriminant, an optional
// machine-readable code, a human-readable message, and insertion-ordered
// metadata. Faults flow through Bind/Map chains as ordinary data and are
// never thrown.
//
// Key constructs:
// - New/Newf/NewCoded: construct a plain fault
// - Validation/NotFound/Conflict/Authentication/Authorization: kinded constructors
// - WithMetadata: persistent update returning a new Fault
// - Aggregate: ordered composite of two or more simultaneous failures
// - Classified/KindOf: discriminant dispatch over arbitrary errors
package fault
