package stream

import (
	"context"
	"sort"
	"strconv"
	"testing"
	"time"

	"github.com/ib-77/rail/pkg/rail"
	"github.com/ib-77/rail/pkg/rail/fault"
)

func TestPipeline_SingleWorker(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	out := Run(ctx,
		Source(ctx, 1, 2, 3, 4, 5),
		Map(func(_ context.Context, n int) int { return n * 2 }),
		1)

	var got []int
	for r := range out {
		if r.IsFailure() {
			t.Fatalf("unexpected failure: %v", r.Err())
		}
		got = append(got, r.Value())
	}

	sort.Ints(got)
	want := []int{2, 4, 6, 8, 10}
	if len(got) != len(want) {
		t.Fatalf("expected %d results, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestPipeline_MultipleWorkersKeepAllItems(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	input := make([]int, 100)
	for i := range input {
		input[i] = i
	}

	out := Run(ctx,
		Source(ctx, input...),
		Map(func(_ context.Context, n int) int { return n + 1000 }),
		4)

	seen := make(map[int]bool)
	for r := range out {
		seen[r.Value()] = true
	}

	if len(seen) != len(input) {
		t.Fatalf("expected %d distinct results, got %d", len(input), len(seen))
	}
}

func TestPipe_TypeSwitchAndValidate(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	parsed := Pipe(ctx,
		Run(ctx,
			Source(ctx, "1", "2", "bad", "", "5"),
			Validate(func(_ context.Context, s string) (bool, string) {
				if s == "" {
					return false, "empty input"
				}
				return true, ""
			}),
			2),
		Try(func(_ context.Context, s string) (int, error) {
			return strconv.Atoi(s)
		}),
		2)

	finalized := Collect(Finally(ctx, parsed,
		func(_ context.Context, n int) string { return "val:" + strconv.Itoa(n) },
		func(_ context.Context, err error) string { return "err" }))

	if len(finalized) != 5 {
		t.Fatalf("every input must produce exactly one output, got %d", len(finalized))
	}

	errs := 0
	for _, v := range finalized {
		if v == "err" {
			errs++
		}
	}
	if errs != 2 {
		t.Fatalf("expected 2 failed items (bad, empty), got %d", errs)
	}
}

func TestEnsureStage_RejectsWithGivenError(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	rejected := fault.Validation("positive", "must be positive")

	out := Collect(Run(ctx,
		Source(ctx, 3, -1),
		Ensure(func(_ context.Context, n int) bool { return n > 0 }, rejected),
		1))

	var failures int
	for _, r := range out {
		if r.IsFailure() {
			failures++
			if fault.KindOf(r.Err()) != fault.KindValidation {
				t.Fatalf("expected the validation fault, got %v", r.Err())
			}
		}
	}
	if failures != 1 {
		t.Fatalf("expected exactly 1 rejection, got %d", failures)
	}
}

func TestTapStage_SeesEveryItem(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	seen := make(chan int, 3)

	out := Run(ctx,
		Source(ctx, 1, 2, 3),
		Tap(func(_ context.Context, r rail.Result[int]) {
			seen <- r.Value()
		}),
		1)

	Collect(out)
	close(seen)

	if len(seen) != 3 {
		t.Fatalf("tap must observe all 3 items, saw %d", len(seen))
	}
}

func TestCancellation_DrainsRemainingAsFailures(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())

	// Prefill and close the input so every item is already committed to the
	// pipeline before cancellation hits.
	in := make(chan rail.Result[int], 50)
	for i := 0; i < 50; i++ {
		in <- rail.Success(i)
	}
	close(in)

	out := Run(ctx, in,
		Map(func(_ context.Context, n int) int {
			if n == 5 {
				cancel()
			}
			return n
		}),
		1)

	results := Collect(out)

	cancelled := 0
	for _, r := range results {
		if r.IsFailure() && rail.IsCancellationError(r.Err()) {
			cancelled++
		}
	}
	if cancelled == 0 {
		t.Fatal("cancelled items must surface as cancellation failures")
	}
}

func TestWorkersOption_OverridesDefault(t *testing.T) {
	t.Parallel()

	ctx := WithWorkers(context.Background(), 3)
	if Workers(ctx, 1) != 3 {
		t.Fatal("context worker ceiling must win over the default")
	}
	if Workers(context.Background(), 1) != 1 {
		t.Fatal("default must apply without the option")
	}
}

func TestDrainOption(t *testing.T) {
	t.Parallel()

	ctx := WithDrainOnCancel(context.Background(), false)
	if DrainOnCancel(ctx, true) {
		t.Fatal("option must override the default")
	}
	if !DrainOnCancel(context.Background(), true) {
		t.Fatal("default must apply without the option")
	}
}
