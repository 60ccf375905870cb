package chain

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/ib-77/rail/pkg/rail"
	"github.com/ib-77/rail/pkg/rail/fault"
)

func TestFluentPipeline_AllSuccess(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	got := Finally(
		Then(FromValue(ctx, " 42 ").
			Map(func(_ context.Context, s string) string {
				return strings.TrimSpace(s)
			}).
			Ensure(func(_ context.Context, s string) bool {
				return s != ""
			}, fault.Validation("blank", "input is blank")),
			func(_ context.Context, s string) rail.Result[int] {
				return rail.From(strconv.Atoi(s))
			}),
		func(_ context.Context, n int) string {
			return "n=" + strconv.Itoa(n)
		},
		func(_ context.Context, err error) string {
			return "err=" + err.Error()
		})

	if got != "n=42" {
		t.Fatalf("expected n=42, got %q", got)
	}
}

func TestThen_SkippedAfterFailure(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	boom := errors.New("boom")
	calls := 0

	c := Start(ctx, rail.Failure[int](boom)).
		Then(func(_ context.Context, n int) rail.Result[int] {
			calls++
			return rail.Success(n + 1)
		})

	if !c.Result().IsFailure() || calls != 0 {
		t.Fatal("steps after a failure must be skipped")
	}
}

func TestThenTry_ConvertsError(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	c := FromValue(ctx, "not-a-number").
		ThenTry(func(_ context.Context, s string) (string, error) {
			if _, err := strconv.Atoi(s); err != nil {
				return "", err
			}
			return s, nil
		})

	if !c.Result().IsFailure() {
		t.Fatal("a returned error must become a failure")
	}
}

func TestEnsure_Demotes(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	rejected := fault.Validation("positive", "must be positive")

	c := FromValue(ctx, -3).
		Ensure(func(_ context.Context, n int) bool { return n > 0 }, rejected)

	if !errors.Is(c.Result().Err(), rejected) {
		t.Fatalf("expected the validation fault, got %v", c.Result().Err())
	}
}

func TestTap_RoutesBySide(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	var successes, failures int

	FromValue(ctx, 1).Tap(
		func(_ context.Context, _ int) { successes++ },
		func(_ context.Context, _ error) { failures++ })

	Start(ctx, rail.Failure[int](errors.New("boom"))).Tap(
		func(_ context.Context, _ int) { successes++ },
		func(_ context.Context, _ error) { failures++ })

	if successes != 1 || failures != 1 {
		t.Fatalf("each side must fire exactly once: %d/%d", successes, failures)
	}
}

func TestOrElse_Recovers(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	c := Start(ctx, rail.Failure[int](errors.New("boom"))).
		OrElse(func(_ context.Context, err error) rail.Result[int] {
			return rail.Success(0)
		})

	if !c.Result().IsSuccess() || c.Result().Value() != 0 {
		t.Fatal("recovery must produce the fallback success")
	}
}

func TestRepeatUntil(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	c := FromValue(ctx, 1).RepeatUntil(
		func(_ context.Context, n int) rail.Result[int] {
			return rail.Success(n * 2)
		},
		func(_ context.Context, n int) bool {
			return n >= 16
		})

	if c.Result().Value() != 16 {
		t.Fatalf("expected 16, got %d", c.Result().Value())
	}
}

func TestWhile(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	c := FromValue(ctx, 0).While(
		func(_ context.Context, n int) rail.Result[int] {
			return rail.Success(n + 3)
		},
		func(_ context.Context, n int) bool {
			return n < 10
		})

	if c.Result().Value() != 12 {
		t.Fatalf("expected 12, got %d", c.Result().Value())
	}
}

func TestAppend_GrowsTuple(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	c := Append(FromValue(ctx, "abc"), func(_ context.Context, s string) rail.Result[int] {
		return rail.Success(len(s))
	})

	pair := c.Result().Value()
	if pair.V1 != "abc" || pair.V2 != 3 {
		t.Fatalf("expected (abc, 3), got %+v", pair)
	}
}

func TestFinally_Method(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	got := Start(ctx, rail.Failure[string](errors.New("boom"))).Finally(
		func(_ context.Context, s string) string { return s },
		func(_ context.Context, err error) string { return "fallback" })

	if got != "fallback" {
		t.Fatalf("expected fallback, got %q", got)
	}
}
