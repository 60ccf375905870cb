package solo

import (
	"github.com/ib-77/rail/pkg/rail"
	"github.com/ib-77/rail/pkg/rail/fault"
)

// Map transforms the value of a success; a failure propagates untouched and
// onSuccess is never invoked.
func Map[In, Out any](input rail.Result[In], onSuccess func(r In) Out) rail.Result[Out] {
	if input.IsSuccess() {
		return rail.Success(onSuccess(input.Value()))
	}
	return rail.FailureFrom[In, Out](input)
}

// Bind chains a Result-returning step with short-circuit semantics: a
// failure is returned immediately without invoking onSuccess, otherwise the
// step's own Result is returned directly.
func Bind[In, Out any](input rail.Result[In], onSuccess func(r In) rail.Result[Out]) rail.Result[Out] {
	if input.IsSuccess() {
		return onSuccess(input.Value())
	}
	return rail.FailureFrom[In, Out](input)
}

// Match reduces a Result exhaustively: exactly one handler runs exactly once.
func Match[T, Out any](input rail.Result[T],
	onSuccess func(r T) Out,
	onFailure func(err error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(input.Value())
	}
	return onFailure(input.Err())
}

// MapBoth transforms either side into a new success, recovering failures
// into values.
func MapBoth[In, Out any](input rail.Result[In],
	onSuccess func(r In) Out,
	onFailure func(err error) Out) rail.Result[Out] {

	return rail.Success(Match(input, onSuccess, onFailure))
}

// Validate demotes a success to a validation fault when the predicate
// rejects the value; failures pass through unvalidated.
func Validate[T any](input rail.Result[T],
	validate func(in T) (valid bool, errMsg string)) rail.Result[T] {

	if input.IsSuccess() {
		if valid, errMsg := validate(input.Value()); !valid {
			return rail.Failure[T](fault.Validation("", errMsg))
		}
	}
	return input
}

// Try executes fn and converts any foreign fault into a failure: a returned
// error becomes Failure(err) and a panic is recovered into a generic fault.
// No fault escapes past this boundary.
func Try[Out any](fn func() (Out, error)) rail.Result[Out] {
	return TryMap(fn, nil)
}

// TryMap is Try with a custom fault mapper applied to whatever error was
// caught, whether returned or recovered from a panic.
func TryMap[Out any](fn func() (Out, error), mapFault func(error) error) (r rail.Result[Out]) {
	defer func() {
		if p := recover(); p != nil {
			err, ok := p.(error)
			if !ok {
				err = fault.Newf("recovered panic: %v", p)
			}
			if mapFault != nil {
				err = mapFault(err)
			}
			r = rail.Failure[Out](err)
		}
	}()

	out, err := fn()
	if err != nil {
		if mapFault != nil {
			err = mapFault(err)
		}
		return rail.Failure[Out](err)
	}
	return rail.Success(out)
}

// TryWith adapts a conventional one-argument (Out, error) function into the
// algebra, applying Try semantics on a successful input only.
func TryWith[In, Out any](input rail.Result[In], fn func(r In) (Out, error)) rail.Result[Out] {
	if input.IsFailure() {
		return rail.FailureFrom[In, Out](input)
	}
	return Try(func() (Out, error) {
		return fn(input.Value())
	})
}
