package deconv

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// Weighting transforms design-matrix columns after convolution, for example
// to prewhiten them for generalized least squares. The same transform has to
// be applied to the signal by the solver.
type Weighting interface {
	WeightColumn(col []float64) error
}

// DiagonalWeighting scales sample i of every column by w[i].
type DiagonalWeighting []float64

// WeightColumn multiplies col in place by the weights.
func (w DiagonalWeighting) WeightColumn(col []float64) error {
	if len(w) != len(col) {
		return fmt.Errorf("%w: %d weights for %d samples", ErrShapeMismatch, len(w), len(col))
	}
	vecmath.MulBlockInPlace(col, w)
	return nil
}
