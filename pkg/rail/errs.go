package rail

import (
	"context"
	"errors"
	"reflect"

	"github.com/ib-77/rail/pkg/rail/fault"
)

// IsNil reports whether i is nil, including typed nil pointers boxed in an
// interface.
func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

// Errors expands err into its leaf errors: nil yields an empty slice, a
// multi-error is flattened recursively, anything else yields itself.
func Errors(err error) []error {
	if IsNil(err) {
		return []error{}
	}
	return fault.Flatten([]error{err})
}

// IsCancellationError reports whether err stems from context cancellation
// or deadline expiry.
func IsCancellationError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
