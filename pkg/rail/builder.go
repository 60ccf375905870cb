package rail

import (
	"github.com/ib-77/rail/pkg/rail/fault"
)

// ErrorBuilder accumulates failures across independently evaluated Results.
// It is the complement of Bind's short-circuit policy: every step runs and
// every error is recorded, in call order. The builder is plain local state,
// not safe for concurrent use.
//
// ErrorBuilder is the only in-core construction path for an Aggregate built
// from scratch; it applies the same recursive flattening as
// fault.NewAggregate, so appended aggregates merge into the flat list.
type ErrorBuilder struct {
	errs []error
}

func NewErrorBuilder() *ErrorBuilder {
	return &ErrorBuilder{}
}

// Append records an error. Nil is ignored; multi-errors are flattened into
// their leaves, preserving order.
func (b *ErrorBuilder) Append(err error) *ErrorBuilder {
	if IsNil(err) {
		return b
	}
	b.errs = append(b.errs, fault.Flatten([]error{err})...)
	return b
}

// HasErrors reports whether at least one error has been recorded.
func (b *ErrorBuilder) HasErrors() bool {
	return len(b.errs) > 0
}

// Len is the number of recorded leaf errors.
func (b *ErrorBuilder) Len() int {
	return len(b.errs)
}

// Build collapses the recorded errors. No errors yields (nil, false); a
// single error is returned directly, never wrapped; two or more are wrapped
// in one Aggregate preserving append order.
func (b *ErrorBuilder) Build() (error, bool) {
	switch len(b.errs) {
	case 0:
		return nil, false
	case 1:
		return b.errs[0], true
	default:
		return fault.NewAggregate(b.errs...), true
	}
}

// AppendFailure records the error of a failed Result and ignores a success;
// success values are not retained, callers collect those separately. The
// input is returned unchanged to allow inline use.
func AppendFailure[T any](b *ErrorBuilder, r Result[T]) Result[T] {
	if r.IsFailure() {
		b.Append(r.err)
	}
	return r
}
