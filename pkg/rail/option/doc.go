// Package option provides the presence/absence container Option[T] and its
// combinator algebra, mirroring the Result algebra in solo.
//
// Key operations:
// - Some/None/FromPtr/FromNillable: construction
// - Map/Bind: transform or chain, short-circuiting on None
// - Filter: demote Some to None on a rejected predicate
// - Match: exhaustive reduction via some/none handlers
// - OnSome/OnNone: side-effect pass-through for logging and debugging
// - OrElse/GetOrElse: lazy fallbacks
// - ToResult: bridge into the Result algebra with a lazy error factory
//
// N-ary forms over option tuples (Zip2..Zip8, Map2.., Bind2.., Match2..,
// Tap2..) live in nary_gen.go and are emitted by the joint generator.
package option
