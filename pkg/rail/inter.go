package rail

import (
	"time"

	"github.com/google/uuid"
)

// Outcome is the state-probe surface shared by every Result, independent of
// the value type. Adapters that only branch on success/failure can depend on
// this instead of the concrete generic type.
type Outcome interface {
	// IsSuccess reports whether the operation succeeded
	IsSuccess() bool
	// IsFailure reports whether the operation failed
	IsFailure() bool
}

// Traced adds the provenance stamp every Result carries.
type Traced interface {
	Outcome
	// ID is the unique id assigned at construction
	ID() uuid.UUID
	// CreatedAt is the construction time (UTC)
	CreatedAt() time.Time
}

// ValueProvider is satisfied by Result[T]; Value panics unless IsSuccess.
type ValueProvider[T any] interface {
	Traced
	// Value returns the success value; defined only on the success side
	Value() T
	// Unwrap returns the conventional (value, error) pair
	Unwrap() (T, error)
}
