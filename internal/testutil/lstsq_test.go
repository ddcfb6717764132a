package testutil

import (
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestLeastSquaresExactFit(t *testing.T) {
	x := mat.NewDense(4, 2, []float64{
		1, 0,
		1, 1,
		1, 2,
		1, 3,
	})
	y := []float64{1, 3, 5, 7}

	beta, err := LeastSquares(x, y)
	if err != nil {
		t.Fatalf("LeastSquares error: %v", err)
	}
	RequireSliceNearlyEqual(t, beta, []float64{1, 2}, 1e-10)
}

func TestLeastSquaresRowMismatch(t *testing.T) {
	if _, err := LeastSquares(mat.NewDense(2, 1, nil), []float64{1}); err == nil {
		t.Fatal("expected error for row mismatch")
	}
}

func TestHStack(t *testing.T) {
	a := mat.NewDense(2, 1, []float64{1, 2})
	b := mat.NewDense(2, 2, []float64{3, 4, 5, 6})

	got, err := HStack(a, b)
	if err != nil {
		t.Fatal(err)
	}
	want := mat.NewDense(2, 3, []float64{1, 3, 4, 2, 5, 6})
	RequireMatrixNearlyEqual(t, got, want, 0)

	if _, err := HStack(a, mat.NewDense(3, 1, nil)); err == nil {
		t.Fatal("expected row mismatch error")
	}
}
