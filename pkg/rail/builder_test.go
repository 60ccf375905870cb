package rail

import (
	"errors"
	"testing"

	"github.com/ib-77/rail/pkg/rail/fault"
)

func TestErrorBuilder_Empty(t *testing.T) {
	t.Parallel()

	b := NewErrorBuilder()

	if b.HasErrors() {
		t.Fatal("fresh builder must report no errors")
	}
	if err, ok := b.Build(); ok || err != nil {
		t.Fatalf("expected (nil, false), got (%v, %v)", err, ok)
	}
}

func TestErrorBuilder_SingletonNeverWrapped(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	b := NewErrorBuilder()
	AppendFailure(b, Failure[int](boom))

	err, ok := b.Build()
	if !ok {
		t.Fatal("expected a built error")
	}
	if err != boom {
		t.Fatalf("a single error must be returned directly, got %T", err)
	}
}

func TestErrorBuilder_AggregatesInCallOrder(t *testing.T) {
	t.Parallel()

	e1 := fault.New("first")
	e2 := fault.New("second")
	b := NewErrorBuilder()
	AppendFailure(b, Failure[int](e1))
	AppendFailure(b, Success(5))
	AppendFailure(b, Failure[string](e2))

	if b.Len() != 2 {
		t.Fatalf("successes must not be recorded, got %d errors", b.Len())
	}

	err, ok := b.Build()
	if !ok {
		t.Fatal("expected a built error")
	}
	agg, isAgg := err.(*fault.Aggregate)
	if !isAgg {
		t.Fatalf("two errors must build an aggregate, got %T", err)
	}
	got := agg.Errors()
	if got[0] != error(e1) || got[1] != error(e2) {
		t.Fatal("aggregate order must match call order")
	}
}

func TestErrorBuilder_FlattensAppendedAggregates(t *testing.T) {
	t.Parallel()

	inner := fault.NewAggregate(fault.New("a"), fault.New("b"))
	b := NewErrorBuilder()
	b.Append(inner)
	b.Append(fault.New("c"))

	err, _ := b.Build()
	agg := err.(*fault.Aggregate)
	if agg.Len() != 3 {
		t.Fatalf("appended aggregates must merge flat, got %d", agg.Len())
	}
}

func TestErrorBuilder_IgnoresNil(t *testing.T) {
	t.Parallel()

	b := NewErrorBuilder()
	b.Append(nil)

	if b.HasErrors() {
		t.Fatal("nil must not be recorded")
	}
}

func TestAppendFailure_PassThrough(t *testing.T) {
	t.Parallel()

	b := NewErrorBuilder()
	in := Success(3)
	out := AppendFailure(b, in)

	if out.ID() != in.ID() {
		t.Fatal("AppendFailure must return the input unchanged")
	}
}
