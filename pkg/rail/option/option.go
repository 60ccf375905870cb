package option

import (
	"github.com/ib-77/rail/pkg/rail"
)

// Option is an immutable presence/absence container: Some(value) or None.
// There is no third state and a nested Option is not special-cased.
type Option[T any] struct {
	value T
	some  bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{value: v, some: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPtr maps a nil pointer to None and anything else to Some of the
// pointed-to value.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// FromNillable maps any nil-like value (untyped nil or a typed nil pointer
// boxed in an interface) to None.
func FromNillable[T any](v T) Option[T] {
	if rail.IsNil(v) {
		return None[T]()
	}
	return Some(v)
}

func (o Option[T]) IsSome() bool {
	return o.some
}

func (o Option[T]) IsNone() bool {
	return !o.some
}

// Value returns the present value. Calling it on None is a contract
// violation and panics; probe with IsSome or use Unwrap instead.
func (o Option[T]) Value() T {
	if !o.some {
		panic("option: Value called on None")
	}
	return o.value
}

// Unwrap is the non-panicking comma-ok accessor.
func (o Option[T]) Unwrap() (T, bool) {
	return o.value, o.some
}

// Filter demotes Some to None when pred rejects the value; None passes
// through and pred is never invoked on it.
func (o Option[T]) Filter(pred func(T) bool) Option[T] {
	if o.some && !pred(o.value) {
		return None[T]()
	}
	return o
}

// OnSome runs a side effect on the value when present; the original Option
// is always returned.
func (o Option[T]) OnSome(effect func(T)) Option[T] {
	if o.some {
		effect(o.value)
	}
	return o
}

// OnNone runs a side effect when absent; the original Option is always
// returned.
func (o Option[T]) OnNone(effect func()) Option[T] {
	if !o.some {
		effect()
	}
	return o
}

// OrElse returns the Option itself when Some, otherwise lazily evaluates
// the fallback.
func (o Option[T]) OrElse(fallback func() Option[T]) Option[T] {
	if o.some {
		return o
	}
	return fallback()
}

// GetOrElse returns the value when Some, otherwise lazily evaluates the
// value fallback.
func (o Option[T]) GetOrElse(fallback func() T) T {
	if o.some {
		return o.value
	}
	return fallback()
}

// Map transforms the present value; None maps to None without invoking
// onSome.
func Map[In, Out any](o Option[In], onSome func(In) Out) Option[Out] {
	if o.IsNone() {
		return None[Out]()
	}
	return Some(onSome(o.value))
}

// Bind chains an Option-returning step; None short-circuits without
// invoking onSome.
func Bind[In, Out any](o Option[In], onSome func(In) Option[Out]) Option[Out] {
	if o.IsNone() {
		return None[Out]()
	}
	return onSome(o.value)
}

// Match reduces an Option exhaustively: exactly one handler runs exactly
// once.
func Match[T, Out any](o Option[T], onSome func(T) Out, onNone func() Out) Out {
	if o.some {
		return onSome(o.value)
	}
	return onNone()
}

// ToResult bridges into the Result algebra: Some becomes a success and None
// a failure built by errFactory, which is invoked only when needed.
func ToResult[T any](o Option[T], errFactory func() error) rail.Result[T] {
	if o.some {
		return rail.Success(o.value)
	}
	return rail.Failure[T](errFactory())
}
