package testutil

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// LeastSquares returns the coefficients b minimizing |x*b - y|.
// It stands in for the regression step that sits between design-matrix
// construction and response reconstruction.
func LeastSquares(x mat.Matrix, y []float64) ([]float64, error) {
	rows, _ := x.Dims()
	if rows != len(y) {
		return nil, fmt.Errorf("least squares: %d rows, %d observations", rows, len(y))
	}

	var beta mat.VecDense
	if err := beta.SolveVec(x, mat.NewVecDense(len(y), y)); err != nil {
		return nil, fmt.Errorf("least squares: %w", err)
	}
	return mat.Col(nil, 0, &beta), nil
}

// HStack concatenates matrices with equal row counts column-wise.
func HStack(blocks ...mat.Matrix) (*mat.Dense, error) {
	if len(blocks) == 0 {
		return nil, fmt.Errorf("hstack: no blocks")
	}

	rows, _ := blocks[0].Dims()
	cols := 0
	for i, b := range blocks {
		r, c := b.Dims()
		if r != rows {
			return nil, fmt.Errorf("hstack: block %d has %d rows, want %d", i, r, rows)
		}
		cols += c
	}

	out := mat.NewDense(rows, cols, nil)
	offset := 0
	for _, b := range blocks {
		_, c := b.Dims()
		out.Slice(0, rows, offset, offset+c).(*mat.Dense).Copy(b)
		offset += c
	}
	return out, nil
}
