package fault

import (
	"strconv"
	"strings"
)

// Aggregate is the composite variant: an ordered, non-empty list of
// component errors reporting simultaneous failures. Construction flattens
// recursively, so an Aggregate never contains another Aggregate (nor any
// errors.Join tree); the same rule is applied by rail.ErrorBuilder.
type Aggregate struct {
	faults []error
}

// NewAggregate builds an Aggregate from one or more errors, dropping nils
// and flattening nested multi-errors. It panics when no error remains;
// an empty aggregate would violate the non-empty invariant.
func NewAggregate(errs ...error) *Aggregate {
	flat := Flatten(errs)
	if len(flat) == 0 {
		panic("fault: NewAggregate requires at least one non-nil error")
	}
	return &Aggregate{faults: flat}
}

// Flatten expands every multi-error (anything exposing Unwrap() []error)
// into its leaves, preserving left-to-right order and skipping nils.
func Flatten(errs []error) []error {
	flat := make([]error, 0, len(errs))
	for _, err := range errs {
		if err == nil {
			continue
		}
		if multi, ok := err.(interface{ Unwrap() []error }); ok {
			flat = append(flat, Flatten(multi.Unwrap())...)
			continue
		}
		flat = append(flat, err)
	}
	return flat
}

func (a *Aggregate) Kind() Kind {
	return KindAggregate
}

func (a *Aggregate) Error() string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(len(a.faults)))
	b.WriteString(" errors occurred: ")
	for i, err := range a.faults {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(err.Error())
	}
	return b.String()
}

// Unwrap exposes the component errors through the standard multi-error
// protocol used by errors.Is and errors.As.
func (a *Aggregate) Unwrap() []error {
	return a.faults
}

// Errors returns a defensive copy of the component list in append order.
func (a *Aggregate) Errors() []error {
	out := make([]error, len(a.faults))
	copy(out, a.faults)
	return out
}

func (a *Aggregate) Len() int {
	return len(a.faults)
}
