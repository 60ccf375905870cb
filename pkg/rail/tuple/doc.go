// Package tuple defines the value shapes T2..T8 used by the N-ary
// combinators in joint and option. Fields V1..Vn follow declaration order.
// The types are generated by railgen (see package joint).
package tuple
