package deconv

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/mat"
)

// AttachBetas stores fitted coefficients for this event type.
//
// index maps every covariate to the positions of its NRegressors
// coefficients in betas, in regressor order. A nil index means betas holds
// exactly this block's coefficients in column order.
func (e *EventType) AttachBetas(betas []float64, index map[string][]int) error {
	if e.state == StateUnbuilt {
		return ErrNotBuilt
	}

	if index == nil {
		_, cols := e.x.Dims()
		if len(betas) != cols {
			return fmt.Errorf("%w: %d betas for %d columns", ErrShapeMismatch, len(betas), cols)
		}
		index = e.x.CovariateIndex(0)
	}

	checked := make(map[string][]int, e.covariates.Len())
	for _, name := range e.covariates.Names() {
		idx, ok := index[name]
		if !ok {
			return fmt.Errorf("%w: no betas for covariate %q", ErrShapeMismatch, name)
		}
		if len(idx) != e.nRegressors {
			return fmt.Errorf("%w: covariate %q has %d betas, want %d", ErrShapeMismatch, name, len(idx), e.nRegressors)
		}
		for _, i := range idx {
			if i < 0 || i >= len(betas) {
				return fmt.Errorf("%w: beta index %d out of range [0, %d)", ErrShapeMismatch, i, len(betas))
			}
		}
		checked[name] = slices.Clone(idx)
	}

	e.betas = slices.Clone(betas)
	e.index = checked
	e.timecourses = nil
	e.state = StateBetasAttached
	return nil
}

// BetasToTimecourses projects each covariate's coefficients back through the
// basis: timecourse = betasᵀ · L, one value per window timepoint.
func (e *EventType) BetasToTimecourses() (map[string][]float64, error) {
	if e.betas == nil {
		return nil, ErrMissingBetas
	}

	coef := mat.NewVecDense(e.nRegressors, nil)
	out := make(map[string][]float64, len(e.index))
	for _, name := range e.covariates.Names() {
		for r, i := range e.index[name] {
			coef.SetVec(r, e.betas[i])
		}

		var tc mat.VecDense
		tc.MulVec(e.l.T(), coef)
		out[name] = mat.Col(nil, 0, &tc)
	}

	e.timecourses = out
	e.state = StateTimecoursesComputed
	return cloneTimecourses(out), nil
}

// Timecourses returns the last reconstructed timecourses.
func (e *EventType) Timecourses() (map[string][]float64, error) {
	if e.timecourses == nil {
		if e.betas == nil {
			return nil, ErrMissingBetas
		}
		return e.BetasToTimecourses()
	}
	return cloneTimecourses(e.timecourses), nil
}

func cloneTimecourses(in map[string][]float64) map[string][]float64 {
	out := make(map[string][]float64, len(in))
	for k, v := range in {
		out[k] = slices.Clone(v)
	}
	return out
}
