// Package joint generalizes the single-value algebra to N simultaneously
// tracked values carried as tuples. Callbacks receive the tuple elements
// positionally as separate arguments; all failure and short-circuit
// semantics are identical to the unary forms in solo.
//
// Two combination policies coexist:
// - ZipN: fail-fast, the first failure in declaration order wins
// - CombineN: full accumulation, every Result is evaluated and all errors
//   are collected through rail.ErrorBuilder into one Aggregate
//
// Growth operators extend a chain's tuple left to right: AppendN adds one
// value, ConcatNxM splices a whole binder tuple. Element order in every
// produced tuple always matches the declaration order of the operation.
//
// The per-arity files are emitted by the railgen command below; the arity
// ceiling of 8 is a practical cap, not a semantic one.
//
//go:generate go run ./gen
package joint
