package basis

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

var (
	errNoTimepoints = errors.New("basis: timepoints must not be empty")
	errRegressors   = errors.New("basis: regressor count must be >= 1")
)

// FIR returns the n×n identity: row r selects response lag r.
func FIR(timepoints []float64, n int) *mat.Dense {
	l := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		l.Set(i, i, 1)
	}
	return l
}

// Fourier returns a constant row followed by n/2 sine rows and n/2 cosine
// rows, each scaled by √2. Harmonic k (1-based) completes k periods over the
// window. n must be odd.
func Fourier(timepoints []float64, n int) *mat.Dense {
	m := len(timepoints)
	half := n / 2

	l := mat.NewDense(1+2*half, m, nil)
	for j := 0; j < m; j++ {
		l.Set(0, j, 1)
	}

	phase := make([]float64, m)
	for r := 0; r < half; r++ {
		linspace(phase, 0, 2*math.Pi*float64(r+1))
		for j, x := range phase {
			l.Set(1+r, j, math.Sqrt2*math.Sin(x))
			l.Set(1+r+half, j, math.Sqrt2*math.Cos(x))
		}
	}
	return l
}

// Legendre evaluates the Legendre polynomials P0..P(n-1) on len(timepoints)
// evenly spaced points spanning [-1, 1], one polynomial per row.
func Legendre(timepoints []float64, n int) *mat.Dense {
	m := len(timepoints)
	x := make([]float64, m)
	linspace(x, -1, 1)

	l := mat.NewDense(n, m, nil)
	for j, xj := range x {
		// Bonnet recursion: (k+1) P(k+1) = (2k+1) x P(k) - k P(k-1)
		prev, cur := 0.0, 1.0
		for k := 0; k < n; k++ {
			l.Set(k, j, cur)
			next := (float64(2*k+1)*xj*cur - float64(k)*prev) / float64(k+1)
			prev, cur = cur, next
		}
	}
	return l
}

// Build validates the inputs, resolves the regressor count and returns the
// basis matrix with one label per row.
func Build(s Set, requested int, timepoints []float64) (*mat.Dense, []string, error) {
	if len(timepoints) == 0 {
		return nil, nil, errNoTimepoints
	}

	n, err := RegressorCount(s, requested, len(timepoints))
	if err != nil {
		return nil, nil, err
	}
	if n < 1 {
		return nil, nil, fmt.Errorf("%w: %d", errRegressors, n)
	}

	var l *mat.Dense
	switch s {
	case SetFIR:
		l = FIR(timepoints, n)
	case SetFourier:
		l = Fourier(timepoints, n)
	case SetLegendre:
		l = Legendre(timepoints, n)
	}
	return l, Labels(s, n, timepoints), nil
}

// linspace fills dst with evenly spaced values from lo to hi inclusive.
// A single-element dst holds lo.
func linspace(dst []float64, lo, hi float64) {
	switch len(dst) {
	case 0:
	case 1:
		dst[0] = lo
	default:
		floats.Span(dst, lo, hi)
	}
}
