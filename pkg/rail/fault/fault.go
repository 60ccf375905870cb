package fault

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/emirpasic/gods/v2/maps/linkedhashmap"
)

// Kind is the discriminant of the fault variant set.
type Kind uint8

const (
	KindGeneric Kind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindAuthentication
	KindAuthorization
	KindAggregate
)

func (k Kind) String() string {
	switch k {
	case KindGeneric:
		return "generic"
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindAuthentication:
		return "authentication"
	case KindAuthorization:
		return "authorization"
	case KindAggregate:
		return "aggregate"
	}
	return "unknown"
}

// Classified is the extension point for the variant set: any error exposing
// a Kind participates in discriminant dispatch without extending this package.
type Classified interface {
	error
	Kind() Kind
}

// KindOf reports the kind of an arbitrary error. Errors outside the variant
// set are classified as KindGeneric.
func KindOf(err error) Kind {
	var c Classified
	if errors.As(err, &c) {
		return c.Kind()
	}
	return KindGeneric
}

// Fault is an immutable domain failure. Metadata iterates in insertion order
// so serialization and diagnostics comparison stay deterministic.
type Fault struct {
	kind    Kind
	code    string
	message string
	meta    *linkedhashmap.Map[string, any]
}

func newFault(kind Kind, code, message string) *Fault {
	if message == "" {
		message = "unspecified failure"
	}
	return &Fault{kind: kind, code: code, message: message}
}

// New constructs a plain fault with no code.
func New(message string) *Fault {
	return newFault(KindGeneric, "", message)
}

// Newf constructs a plain fault from a format string.
func Newf(format string, args ...any) *Fault {
	return newFault(KindGeneric, "", fmt.Sprintf(format, args...))
}

// NewCoded constructs a plain fault with a machine-readable code.
func NewCoded(code, message string) *Fault {
	return newFault(KindGeneric, code, message)
}

func Validation(code, message string) *Fault {
	return newFault(KindValidation, code, message)
}

func NotFound(code, message string) *Fault {
	return newFault(KindNotFound, code, message)
}

func Conflict(code, message string) *Fault {
	return newFault(KindConflict, code, message)
}

func Authentication(code, message string) *Fault {
	return newFault(KindAuthentication, code, message)
}

func Authorization(code, message string) *Fault {
	return newFault(KindAuthorization, code, message)
}

func (f *Fault) Kind() Kind {
	return f.kind
}

// Code returns the machine-readable code; empty string means no code.
func (f *Fault) Code() string {
	return f.code
}

func (f *Fault) Message() string {
	return f.message
}

func (f *Fault) Error() string {
	if f.code != "" {
		return f.code + ": " + f.message
	}
	return f.message
}

// MetadataKeys returns the metadata keys in insertion order.
func (f *Fault) MetadataKeys() []string {
	if f.meta == nil {
		return nil
	}
	return f.meta.Keys()
}

// Metadata looks up a single metadata value.
func (f *Fault) Metadata(key string) (any, bool) {
	if f.meta == nil {
		return nil, false
	}
	return f.meta.Get(key)
}

// WithMetadata returns a copy of the fault with key set or overwritten.
// The receiver is left untouched.
func (f *Fault) WithMetadata(key string, value any) *Fault {
	clone := &Fault{kind: f.kind, code: f.code, message: f.message}
	clone.meta = linkedhashmap.New[string, any]()
	if f.meta != nil {
		for _, k := range f.meta.Keys() {
			v, _ := f.meta.Get(k)
			clone.meta.Put(k, v)
		}
	}
	clone.meta.Put(key, value)
	return clone
}

// Equal reports structural equality: kind, code, message and the ordered
// metadata sequence must all match. Identity plays no role.
func (f *Fault) Equal(other *Fault) bool {
	if f == nil || other == nil {
		return f == other
	}
	if f.kind != other.kind || f.code != other.code || f.message != other.message {
		return false
	}
	fk, ok := f.MetadataKeys(), other.MetadataKeys()
	if len(fk) != len(ok) {
		return false
	}
	for i, k := range fk {
		if k != ok[i] {
			return false
		}
		fv, _ := f.Metadata(k)
		ov, _ := other.Metadata(k)
		if !reflect.DeepEqual(fv, ov) {
			return false
		}
	}
	return true
}

// Is hooks errors.Is into structural equality, so a fault matches any
// structurally equal target regardless of identity.
func (f *Fault) Is(target error) bool {
	t, ok := target.(*Fault)
	if !ok {
		return false
	}
	return f.Equal(t)
}
