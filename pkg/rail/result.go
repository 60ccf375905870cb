package rail

import (
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/rail/pkg/rail/fault"
)

// Unit is the value of a Result that succeeds without producing anything.
type Unit struct{}

// Result is an immutable outcome: either a success carrying a value or a
// failure carrying an error, never both. Each instance is stamped with an
// id and a UTC creation time for tracing.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	isSuccess bool
}

func Success[T any](v T) Result[T] {
	return Result[T]{
		value:     v,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Failure constructs a failed Result. A nil error is replaced with a generic
// fault so a failure can never masquerade as a success.
func Failure[T any](err error) Result[T] {
	if IsNil(err) {
		err = fault.New("failure constructed from nil error")
	}
	return Result[T]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Done is the valueless success.
func Done() Result[Unit] {
	return Success(Unit{})
}

// From converts a conventional (value, error) pair into a Result: a nil
// error yields a success, anything else a failure.
func From[T any](v T, err error) Result[T] {
	if IsNil(err) {
		return Success(v)
	}
	return Failure[T](err)
}

// FailureFrom rewraps a failed Result under a new value type, preserving the
// original id and creation time. It panics when given a success: there is no
// value conversion to perform and the call is a programming error.
func FailureFrom[In, Out any](from Result[In]) Result[Out] {
	if from.isSuccess {
		panic("rail: FailureFrom called on a success")
	}
	return Result[Out]{
		err:       from.err,
		isSuccess: false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess
}

// Value returns the success value. Calling it on a failure is a contract
// violation and panics; probe with IsSuccess or use Unwrap instead.
func (r Result[T]) Value() T {
	if !r.isSuccess {
		panic("rail: Value called on a failure: " + r.err.Error())
	}
	return r.value
}

// Err returns the failure error. Calling it on a success is a contract
// violation and panics; probe with IsFailure or use Unwrap instead.
func (r Result[T]) Err() error {
	if r.isSuccess {
		panic("rail: Err called on a success")
	}
	return r.err
}

// Unwrap is the non-panicking bridge to idiomatic (value, error) call sites.
func (r Result[T]) Unwrap() (T, error) {
	return r.value, r.err
}

func (r Result[T]) ID() uuid.UUID {
	return r.id
}

// CreatedAt is the UTC construction time.
func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

// Ensure demotes a success to Failure(err) when pred rejects the value.
// Failures pass through untouched; pred is never invoked on them.
func (r Result[T]) Ensure(pred func(T) bool, err error) Result[T] {
	if !r.isSuccess {
		return r
	}
	if pred(r.value) {
		return r
	}
	return Failure[T](err)
}

// MapError transforms the error of a failure; a success passes through.
func (r Result[T]) MapError(f func(error) error) Result[T] {
	if r.isSuccess {
		return r
	}
	return Failure[T](f(r.err))
}

// OrElse recovers from a failure: recover is evaluated lazily with the error
// and its Result replaces the failure. A success is returned unchanged.
func (r Result[T]) OrElse(recover func(error) Result[T]) Result[T] {
	if r.isSuccess {
		return r
	}
	return recover(r.err)
}

// Tap runs a side effect with the whole Result and returns it unchanged.
func (r Result[T]) Tap(effect func(Result[T])) Result[T] {
	effect(r)
	return r
}

// OnSuccess runs a side effect on the value when successful; the original
// Result is always returned.
func (r Result[T]) OnSuccess(effect func(T)) Result[T] {
	if r.isSuccess {
		effect(r.value)
	}
	return r
}

// OnFailure runs a side effect on the error when failed; the original
// Result is always returned.
func (r Result[T]) OnFailure(effect func(error)) Result[T] {
	if !r.isSuccess {
		effect(r.err)
	}
	return r
}
