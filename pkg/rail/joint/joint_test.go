package joint

import (
	"errors"
	"strconv"
	"testing"

	"github.com/ib-77/rail/pkg/rail"
	"github.com/ib-77/rail/pkg/rail/fault"
	"github.com/ib-77/rail/pkg/rail/solo"
	"github.com/ib-77/rail/pkg/rail/tuple"
)

func TestZip3_AllSuccess(t *testing.T) {
	t.Parallel()

	r := Zip3(rail.Success("a"), rail.Success(1), rail.Success(true))

	if !r.IsSuccess() {
		t.Fatalf("expected success, got %v", r.Err())
	}
	got := r.Value()
	if got.V1 != "a" || got.V2 != 1 || got.V3 != true {
		t.Fatalf("elements must keep declaration order, got %+v", got)
	}
}

func TestZip3_FailsFastOnFirstError(t *testing.T) {
	t.Parallel()

	first := fault.New("first")
	second := fault.New("second")

	r := Zip3(rail.Failure[string](first), rail.Success(1), rail.Failure[bool](second))

	if !r.IsFailure() {
		t.Fatal("expected failure")
	}
	if r.Err() != error(first) {
		t.Fatalf("the first failure in declaration order must win, got %v", r.Err())
	}
}

func TestCombine3_AccumulatesAllErrors(t *testing.T) {
	t.Parallel()

	first := fault.New("first")
	third := fault.New("third")

	r := Combine3(rail.Failure[string](first), rail.Success(1), rail.Failure[bool](third))

	if !r.IsFailure() {
		t.Fatal("expected failure")
	}
	agg, ok := r.Err().(*fault.Aggregate)
	if !ok {
		t.Fatalf("two failures must aggregate, got %T", r.Err())
	}
	if agg.Len() != 2 {
		t.Fatalf("expected exactly 2 errors, got %d", agg.Len())
	}
	got := agg.Errors()
	if got[0] != error(first) || got[1] != error(third) {
		t.Fatal("aggregate order must match declaration order")
	}
}

func TestCombine3_SingleFailureUnwrapped(t *testing.T) {
	t.Parallel()

	only := fault.New("only")
	r := Combine3(rail.Success("a"), rail.Failure[int](only), rail.Success(true))

	if r.Err() != error(only) {
		t.Fatalf("a single failure must come back unwrapped, got %T", r.Err())
	}
}

// Combine evaluates everything; a Bind chain over the same outcomes stops at
// the first failure and never looks at the rest.
func TestAccumulationVersusShortCircuit(t *testing.T) {
	t.Parallel()

	firstErr := fault.New("first failed")
	thirdErr := fault.New("third failed")

	evaluated := 0
	step := func(r rail.Result[int]) func(int) rail.Result[int] {
		return func(int) rail.Result[int] {
			evaluated++
			return r
		}
	}

	chained := solo.Bind(
		solo.Bind(
			solo.Bind(rail.Success(0), step(rail.Failure[int](firstErr))),
			step(rail.Success(2))),
		step(rail.Success(3)))

	if !chained.IsFailure() || chained.Err() != error(firstErr) {
		t.Fatal("the chain must stop at the first failure")
	}
	if evaluated != 1 {
		t.Fatalf("later steps must never be evaluated, ran %d", evaluated)
	}

	combined := Combine3(rail.Failure[int](firstErr), rail.Success(2), rail.Failure[int](thirdErr))
	agg := combined.Err().(*fault.Aggregate)
	if agg.Len() != 2 {
		t.Fatalf("accumulation must collect both failures, got %d", agg.Len())
	}
}

func TestAppend_GrowsInDeclarationOrder(t *testing.T) {
	t.Parallel()

	// string, then int, then bool: the tuple fields follow exactly.
	r := Append2(
		Append1(rail.Success("id-7"), func(s string) rail.Result[int] {
			return rail.Success(len(s))
		}),
		func(s string, n int) rail.Result[bool] {
			return rail.Success(n > 0)
		})

	if !r.IsSuccess() {
		t.Fatalf("expected success, got %v", r.Err())
	}
	got := r.Value()
	if got.V1 != "id-7" || got.V2 != 4 || got.V3 != true {
		t.Fatalf("expected (\"id-7\", 4, true), got %+v", got)
	}
}

func TestAppend_SourceErrorWins(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	calls := 0

	r := Append1(rail.Failure[string](boom), func(s string) rail.Result[int] {
		calls++
		return rail.Success(0)
	})

	if !r.IsFailure() || r.Err() != boom {
		t.Fatal("the source error must return unchanged")
	}
	if calls != 0 {
		t.Fatal("binder must never run after a source failure")
	}
}

func TestAppend_BinderErrorPropagates(t *testing.T) {
	t.Parallel()

	boom := errors.New("binder boom")
	r := Append1(rail.Success("x"), func(string) rail.Result[int] {
		return rail.Failure[int](boom)
	})

	if !r.IsFailure() || r.Err() != boom {
		t.Fatal("the binder error must propagate")
	}
}

func TestConcat2x2_SplicesInOrder(t *testing.T) {
	t.Parallel()

	src := Zip2(rail.Success("a"), rail.Success("b"))
	r := Concat2x2(src, func(a, b string) rail.Result[tuple.T2[int, int]] {
		return rail.Success(tuple.Of2(len(a), len(a)+len(b)))
	})

	if !r.IsSuccess() {
		t.Fatalf("expected success, got %v", r.Err())
	}
	got := r.Value()
	if got.V1 != "a" || got.V2 != "b" || got.V3 != 1 || got.V4 != 2 {
		t.Fatalf("concatenation must preserve left-to-right order, got %+v", got)
	}
}

func TestMap2_Positional(t *testing.T) {
	t.Parallel()

	r := Map2(Zip2(rail.Success(2), rail.Success(20)), func(a, b int) string {
		return strconv.Itoa(a + b)
	})
	if !r.IsSuccess() || r.Value() != "22" {
		t.Fatalf("expected \"22\", got %v", r)
	}
}

func TestBind2_ShortCircuits(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	calls := 0

	r := Bind2(rail.Failure[tuple.T2[int, int]](boom), func(a, b int) rail.Result[int] {
		calls++
		return rail.Success(a + b)
	})

	if !r.IsFailure() || r.Err() != boom || calls != 0 {
		t.Fatal("a failed tuple must short-circuit past the binder")
	}
}

func TestEnsure2(t *testing.T) {
	t.Parallel()

	rejected := fault.Validation("range", "out of range")
	src := Zip2(rail.Success(1), rail.Success(2))

	if r := Ensure2(src, func(a, b int) bool { return a < b }, rejected); !r.IsSuccess() {
		t.Fatal("accepted tuple must pass through")
	}
	if r := Ensure2(src, func(a, b int) bool { return a > b }, rejected); !errors.Is(r.Err(), rejected) {
		t.Fatal("rejected tuple must demote to the given error")
	}
}

func TestMatch2_Totality(t *testing.T) {
	t.Parallel()

	var successes, failures int

	got := Match2(Zip2(rail.Success(3), rail.Success(4)), func(a, b int) int {
		successes++
		return a * b
	}, func(error) int {
		failures++
		return 0
	})
	if got != 12 || successes != 1 || failures != 0 {
		t.Fatal("success must invoke exactly the success branch once")
	}
}

func TestTap3_PassThrough(t *testing.T) {
	t.Parallel()

	seen := 0
	src := Zip3(rail.Success("a"), rail.Success(1), rail.Success(true))

	got := Tap3(src, func(string, int, bool) { seen++ })

	if seen != 1 || got.Value() != src.Value() {
		t.Fatal("tap must observe once and pass the tuple through")
	}
}
