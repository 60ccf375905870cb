package solo

import (
	"errors"
	"strconv"
	"testing"

	"github.com/ib-77/rail/pkg/rail"
	"github.com/ib-77/rail/pkg/rail/fault"
)

func TestMap_Success(t *testing.T) {
	t.Parallel()

	r := Map(rail.Success(21), func(x int) int { return x * 2 })

	if !r.IsSuccess() || r.Value() != 42 {
		t.Fatalf("expected Success(42), got %v", r)
	}
}

func TestMap_FailurePropagatesUntouched(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	calls := 0

	r := Map(rail.Failure[int](boom), func(x int) string {
		calls++
		return strconv.Itoa(x)
	})

	if !r.IsFailure() || r.Err() != boom {
		t.Fatal("the same error must propagate")
	}
	if calls != 0 {
		t.Fatal("mapper must never run on a failure")
	}
}

func TestBind_LeftIdentity(t *testing.T) {
	t.Parallel()

	f := func(x int) rail.Result[string] {
		return rail.Success(strconv.Itoa(x))
	}

	direct := f(7)
	bound := Bind(rail.Success(7), f)

	if bound.Value() != direct.Value() {
		t.Fatalf("Bind(Success(x), f) must equal f(x): %q vs %q", bound.Value(), direct.Value())
	}
}

func TestBind_ShortCircuits(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	calls := 0

	r := Bind(rail.Failure[int](boom), func(x int) rail.Result[int] {
		calls++
		return rail.Success(x)
	})

	if !r.IsFailure() || r.Err() != boom {
		t.Fatal("failure must return immediately")
	}
	if calls != 0 {
		t.Fatal("binder must never run on a failure")
	}
}

func TestMatch_Totality(t *testing.T) {
	t.Parallel()

	var onSuccess, onFailure int

	got := Match(rail.Success(5), func(x int) string {
		onSuccess++
		return "ok"
	}, func(err error) string {
		onFailure++
		return "err"
	})
	if got != "ok" || onSuccess != 1 || onFailure != 0 {
		t.Fatalf("success must invoke exactly the success branch once: %q %d %d", got, onSuccess, onFailure)
	}

	got = Match(rail.Failure[int](errors.New("boom")), func(int) string {
		onSuccess++
		return "ok"
	}, func(error) string {
		onFailure++
		return "err"
	})
	if got != "err" || onSuccess != 1 || onFailure != 1 {
		t.Fatalf("failure must invoke exactly the failure branch once: %q %d %d", got, onSuccess, onFailure)
	}
}

func TestMapBoth(t *testing.T) {
	t.Parallel()

	ok := MapBoth(rail.Success(2), strconv.Itoa, func(error) string { return "x" })
	if ok.Value() != "2" {
		t.Fatalf("expected \"2\", got %q", ok.Value())
	}

	rec := MapBoth(rail.Failure[int](errors.New("boom")), strconv.Itoa, func(err error) string {
		return "recovered:" + err.Error()
	})
	if !rec.IsSuccess() || rec.Value() != "recovered:boom" {
		t.Fatal("failure must be recovered into a success value")
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	valid := Validate(rail.Success(10), func(x int) (bool, string) {
		return x > 0, "must be positive"
	})
	if !valid.IsSuccess() {
		t.Fatal("accepted value must stay a success")
	}

	invalid := Validate(rail.Success(-10), func(x int) (bool, string) {
		return x > 0, "must be positive"
	})
	if !invalid.IsFailure() {
		t.Fatal("rejected value must fail")
	}
	if fault.KindOf(invalid.Err()) != fault.KindValidation {
		t.Fatalf("expected a validation fault, got %v", fault.KindOf(invalid.Err()))
	}
}

func TestTry_ReturnedError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	r := Try(func() (int, error) { return 0, boom })

	if !r.IsFailure() || r.Err() != boom {
		t.Fatalf("expected boom, got %v", r)
	}
}

func TestTry_RecoverPanic(t *testing.T) {
	t.Parallel()

	r := Try(func() (int, error) { panic("blew up") })

	if !r.IsFailure() {
		t.Fatal("a panic must become a failure, never escape")
	}
	if r.Err().Error() != "recovered panic: blew up" {
		t.Fatalf("unexpected error: %v", r.Err())
	}
}

func TestTry_RecoverErrorPanic(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	r := Try(func() (int, error) { panic(boom) })

	if !r.IsFailure() || r.Err() != boom {
		t.Fatal("a panicked error must surface as-is")
	}
}

func TestTryMap_MapsBothFaultSources(t *testing.T) {
	t.Parallel()

	wrap := func(err error) error { return fault.NewCoded("wrapped", err.Error()) }

	returned := TryMap(func() (int, error) { return 0, errors.New("boom") }, wrap)
	if returned.Err().Error() != "wrapped: boom" {
		t.Fatalf("returned error must be mapped, got %v", returned.Err())
	}

	panicked := TryMap(func() (int, error) { panic(errors.New("boom")) }, wrap)
	if panicked.Err().Error() != "wrapped: boom" {
		t.Fatalf("panicked error must be mapped, got %v", panicked.Err())
	}
}

func TestTryWith(t *testing.T) {
	t.Parallel()

	parsed := TryWith(rail.Success("41"), strconv.Atoi)
	if !parsed.IsSuccess() || parsed.Value() != 41 {
		t.Fatalf("expected 41, got %v", parsed)
	}

	failed := TryWith(rail.Success("nope"), strconv.Atoi)
	if !failed.IsFailure() {
		t.Fatal("parse error must become a failure")
	}

	boom := errors.New("boom")
	skipped := TryWith(rail.Failure[string](boom), strconv.Atoi)
	if !skipped.IsFailure() || skipped.Err() != boom {
		t.Fatal("failure must short-circuit past the call")
	}
}
