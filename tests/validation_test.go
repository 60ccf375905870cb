package tests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/rail/pkg/rail"
	"github.com/ib-77/rail/pkg/rail/fault"
	"github.com/ib-77/rail/pkg/rail/joint"
)

type registration struct {
	Name  string
	Email string
	Age   int
}

func validateName(name string) rail.Result[string] {
	return rail.Success(name).Ensure(func(n string) bool {
		return n != ""
	}, fault.Validation("name_required", "name must not be empty"))
}

func validateEmail(email string) rail.Result[string] {
	return rail.Success(email).Ensure(func(e string) bool {
		for _, c := range e {
			if c == '@' {
				return true
			}
		}
		return false
	}, fault.Validation("email_invalid", "email must contain @"))
}

func validateAge(age int) rail.Result[int] {
	return rail.Success(age).Ensure(func(a int) bool {
		return a >= 0
	}, fault.Validation("age_negative", "age must not be negative"))
}

// Three independent field validators combined with full accumulation: both
// broken fields are reported at once, in field order, while the valid email
// contributes nothing.
func TestRegistration_AccumulatesAllFieldErrors(t *testing.T) {
	t.Parallel()

	r := joint.Combine3(
		validateName(""),
		validateEmail("valid@x.com"),
		validateAge(-1),
	)

	require.True(t, r.IsFailure())

	agg, ok := r.Err().(*fault.Aggregate)
	require.True(t, ok, "two failures must surface as one aggregate")
	require.Equal(t, 2, agg.Len())

	errs := agg.Errors()
	assert.Equal(t, "name_required: name must not be empty", errs[0].Error())
	assert.Equal(t, "age_negative: age must not be negative", errs[1].Error())
	assert.Equal(t, fault.KindValidation, fault.KindOf(errs[0]))
}

func TestRegistration_SingleBrokenFieldComesBackUnwrapped(t *testing.T) {
	t.Parallel()

	r := joint.Combine3(
		validateName("ada"),
		validateEmail("valid@x.com"),
		validateAge(-1),
	)

	require.True(t, r.IsFailure())

	f, ok := r.Err().(*fault.Fault)
	require.True(t, ok, "a single failure must not be wrapped in an aggregate")
	assert.Equal(t, "age_negative", f.Code())
}

func TestRegistration_AllValid(t *testing.T) {
	t.Parallel()

	r := joint.Map3(
		joint.Combine3(
			validateName("ada"),
			validateEmail("ada@x.com"),
			validateAge(36),
		),
		func(name, email string, age int) registration {
			return registration{Name: name, Email: email, Age: age}
		})

	require.True(t, r.IsSuccess())
	assert.Equal(t, registration{Name: "ada", Email: "ada@x.com", Age: 36}, r.Value())
}

func TestRegistration_ShortCircuitStopsAtFirstField(t *testing.T) {
	t.Parallel()

	evaluated := 0
	counted := func(r rail.Result[string]) rail.Result[string] {
		evaluated++
		return r
	}

	r := joint.Zip3(
		counted(validateName("")),
		rail.Success("never validated"),
		rail.Success("never validated either"),
	)

	require.True(t, r.IsFailure())
	assert.Equal(t, 1, evaluated)
	assert.Equal(t, "name_required: name must not be empty", r.Err().Error())
}
