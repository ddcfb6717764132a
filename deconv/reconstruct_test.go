package deconv

import (
	"context"
	"errors"
	"testing"

	"github.com/cwbudde/algo-hrf/deconv/basis"
	"github.com/cwbudde/algo-hrf/internal/testutil"
)

func TestBetasToTimecoursesRequiresBetas(t *testing.T) {
	ctx := newContext(t, 30)
	ev, err := New(ctx, "cue", []float64{3, 12})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := ev.BetasToTimecourses(); !errors.Is(err, ErrMissingBetas) {
		t.Fatalf("unbuilt: expected ErrMissingBetas, got %v", err)
	}
	if _, err := ev.Timecourses(); !errors.Is(err, ErrMissingBetas) {
		t.Fatalf("Timecourses(): expected ErrMissingBetas, got %v", err)
	}

	if _, err := ev.CreateDesignMatrix(); err != nil {
		t.Fatal(err)
	}
	if _, err := ev.BetasToTimecourses(); !errors.Is(err, ErrMissingBetas) {
		t.Fatalf("built: expected ErrMissingBetas, got %v", err)
	}
}

func TestAttachBetasRequiresMatrix(t *testing.T) {
	ctx := newContext(t, 30)
	ev, err := New(ctx, "cue", []float64{3, 12})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ev.DesignMatrix(); !errors.Is(err, ErrNotBuilt) {
		t.Fatalf("DesignMatrix(): expected ErrNotBuilt, got %v", err)
	}
	if err := ev.AttachBetas(make([]float64, 10), nil); !errors.Is(err, ErrNotBuilt) {
		t.Fatalf("expected ErrNotBuilt, got %v", err)
	}
}

func TestStateMachine(t *testing.T) {
	ctx := newContext(t, 40)
	ev, err := New(ctx, "cue", []float64{3, 12, 25}, WithBasis(basis.SetLegendre, 3))
	if err != nil {
		t.Fatal(err)
	}

	steps := []struct {
		do   func() error
		want State
	}{
		{do: func() error { _, err := ev.CreateDesignMatrix(); return err }, want: StateMatrixBuilt},
		{do: func() error { return ev.AttachBetas([]float64{1, 0, 0}, nil) }, want: StateBetasAttached},
		{do: func() error { _, err := ev.BetasToTimecourses(); return err }, want: StateTimecoursesComputed},
		{do: func() error { _, err := ev.CreateDesignMatrix(); return err }, want: StateMatrixBuilt},
	}

	for i, s := range steps {
		if err := s.do(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if ev.State() != s.want {
			t.Fatalf("step %d: State() = %v, want %v", i, ev.State(), s.want)
		}
	}

	// Rebuilding dropped the betas.
	if _, err := ev.BetasToTimecourses(); !errors.Is(err, ErrMissingBetas) {
		t.Fatalf("expected ErrMissingBetas after rebuild, got %v", err)
	}
}

func TestBetasToTimecoursesProjectsThroughBasis(t *testing.T) {
	ctx := newContext(t, 40)
	ev, err := New(ctx, "cue", []float64{3, 12, 25}, WithBasis(basis.SetLegendre, 3), WithInterval(0, 5))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ev.CreateDesignMatrix(); err != nil {
		t.Fatal(err)
	}

	// 2·P0 + 1·P1 on x = -1, -0.5, 0, 0.5, 1
	if err := ev.AttachBetas([]float64{2, 1, 0}, nil); err != nil {
		t.Fatal(err)
	}
	tcs, err := ev.BetasToTimecourses()
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, tcs[InterceptName], []float64{1, 1.5, 2, 2.5, 3}, 1e-12)

	// The returned map is a copy.
	tcs[InterceptName][0] = 42
	again, err := ev.Timecourses()
	if err != nil {
		t.Fatal(err)
	}
	if again[InterceptName][0] != 1 {
		t.Fatalf("Timecourses() returned aliased data: %v", again[InterceptName])
	}
}

func TestAttachBetasWithIndex(t *testing.T) {
	ctx := newContext(t, 40)
	cov, _ := NewCovariates(
		Covariate{Name: InterceptName, Values: []float64{1, 1}},
		Covariate{Name: "rt", Values: []float64{0.2, 0.6}},
	)
	ev, err := New(ctx, "cue", []float64{5, 20}, WithInterval(0, 3), WithCovariates(cov))
	if err != nil {
		t.Fatal(err)
	}
	x, err := ev.CreateDesignMatrix()
	if err != nil {
		t.Fatal(err)
	}

	// Block placed after two columns of another condition.
	joint := []float64{9, 9, 1, 2, 3, 4, 5, 6}
	if err := ev.AttachBetas(joint, x.CovariateIndex(2)); err != nil {
		t.Fatal(err)
	}
	tcs, err := ev.BetasToTimecourses()
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, tcs[InterceptName], []float64{1, 2, 3}, 0)
	testutil.RequireSliceNearlyEqual(t, tcs["rt"], []float64{4, 5, 6}, 0)
}

func TestAttachBetasShapeErrors(t *testing.T) {
	ctx := newContext(t, 40)
	ev, err := New(ctx, "cue", []float64{5, 20}, WithInterval(0, 3))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ev.CreateDesignMatrix(); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		betas []float64
		index map[string][]int
	}{
		{name: "wrong length", betas: []float64{1, 2}},
		{name: "missing covariate", betas: []float64{1, 2, 3}, index: map[string][]int{"rt": {0, 1, 2}}},
		{name: "short index", betas: []float64{1, 2, 3}, index: map[string][]int{InterceptName: {0, 1}}},
		{name: "out of range", betas: []float64{1, 2, 3}, index: map[string][]int{InterceptName: {0, 1, 3}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ev.AttachBetas(tt.betas, tt.index); !errors.Is(err, ErrShapeMismatch) {
				t.Fatalf("expected ErrShapeMismatch, got %v", err)
			}
		})
	}
	if ev.State() != StateMatrixBuilt {
		t.Fatalf("failed attach changed state to %v", ev.State())
	}
}

func TestBuildDesignMatrices(t *testing.T) {
	ctx := newContext(t, 80)
	a, _ := New(ctx, "a", []float64{2, 30, 55}, WithInterval(0, 6))
	b, _ := New(ctx, "b", []float64{10, 44}, WithBasis(basis.SetFourier, 5), WithInterval(0, 12))

	blocks, err := BuildDesignMatrices(context.Background(), a, b)
	if err != nil {
		t.Fatal(err)
	}
	if len(blocks) != 2 {
		t.Fatalf("got %d blocks", len(blocks))
	}

	for i, ev := range []*EventType{a, b} {
		serial, err := ev.DesignMatrix()
		if err != nil {
			t.Fatal(err)
		}
		testutil.RequireMatrixNearlyEqual(t, blocks[i].Data, serial.Data, 0)
		if blocks[i].Columns[0].Event != ev.Name() {
			t.Fatalf("block %d belongs to %q", i, blocks[i].Columns[0].Event)
		}
	}

	offsets := ColumnOffsets(blocks)
	if offsets[0] != 0 || offsets[1] != 6 {
		t.Fatalf("ColumnOffsets() = %v, want [0 6]", offsets)
	}

	dup, _ := New(ctx, "a", []float64{1})
	if _, err := BuildDesignMatrices(context.Background(), a, dup); !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}
	if _, err := BuildDesignMatrices(context.Background(), a, nil); err == nil {
		t.Fatal("expected error for nil event")
	}
}

func TestBuildDesignMatricesFailureLeavesFailedEvent(t *testing.T) {
	ctx := newContext(t, 20)
	good, _ := New(ctx, "good", []float64{2, 9}, WithInterval(0, 3))
	bad, _ := New(ctx, "bad", []float64{4}, WithInterval(0, 3), WithWeighting(DiagonalWeighting{1}))

	if _, err := BuildDesignMatrices(context.Background(), good, bad); !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("expected ErrShapeMismatch, got %v", err)
	}
	if bad.State() != StateUnbuilt {
		t.Fatalf("failed event state = %v, want %v", bad.State(), StateUnbuilt)
	}
	if _, err := bad.DesignMatrix(); !errors.Is(err, ErrNotBuilt) {
		t.Fatalf("failed event DesignMatrix(): expected ErrNotBuilt, got %v", err)
	}
	if st := good.State(); st != StateUnbuilt && st != StateMatrixBuilt {
		t.Fatalf("good event state = %v", st)
	}
}

func TestBuildDesignMatricesCanceled(t *testing.T) {
	ctx := newContext(t, 20)
	a, _ := New(ctx, "a", []float64{2})

	cctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := BuildDesignMatrices(cctx, a); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestStateString(t *testing.T) {
	if StateBetasAttached.String() != "betas-attached" {
		t.Fatalf("String() = %q", StateBetasAttached.String())
	}
	if State(12).String() != "State(12)" {
		t.Fatalf("String() = %q", State(12).String())
	}
}
