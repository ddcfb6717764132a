package deconv

import (
	"fmt"
	"slices"

	"github.com/cwbudde/algo-hrf/dsp/conv"
	"gonum.org/v1/gonum/mat"
)

// Column labels one design-matrix column.
type Column struct {
	Event     string
	Covariate string
	Regressor string
}

func (c Column) String() string {
	return c.Event + "/" + c.Covariate + "/" + c.Regressor
}

// DesignMatrix is one event type's block of the regression design.
// Rows follow the signal samples, columns follow Columns.
type DesignMatrix struct {
	Data    *mat.Dense
	Columns []Column
	Time    []float64
}

// Dims returns the number of samples and columns.
func (d *DesignMatrix) Dims() (rows, cols int) {
	return d.Data.Dims()
}

// CovariateIndex maps each covariate to its column positions, shifted by
// offset. Use the block's column offset within a joined design matrix to get
// the index expected by AttachBetas.
func (d *DesignMatrix) CovariateIndex(offset int) map[string][]int {
	index := make(map[string][]int)
	for i, c := range d.Columns {
		index[c.Covariate] = append(index[c.Covariate], offset+i)
	}
	return index
}

// CreateDesignMatrix convolves the event timeline of every covariate with
// every basis row. Columns are ordered by covariate, then by regressor.
//
// Rebuilding discards attached betas and computed timecourses. The returned
// block is a copy; changing it does not affect the event type.
func (e *EventType) CreateDesignMatrix() (*DesignMatrix, error) {
	names := e.covariates.Names()
	rows := e.ctx.Len()

	data := mat.NewDense(rows, len(names)*e.nRegressors, nil)
	columns := make([]Column, 0, len(names)*e.nRegressors)
	kernel := make([]float64, len(e.timepoints))

	for _, name := range names {
		timeline, err := e.EventTimecourse(name)
		if err != nil {
			return nil, err
		}

		for r, label := range e.labels {
			mat.Row(kernel, r, e.l)

			col, err := conv.ConvolveMode(timeline, kernel, conv.ModeHead)
			if err != nil {
				return nil, fmt.Errorf("deconv: convolving %s/%s: %w", name, label, err)
			}
			if e.weighting != nil {
				if err := e.weighting.WeightColumn(col); err != nil {
					return nil, err
				}
			}

			data.SetCol(len(columns), col)
			columns = append(columns, Column{Event: e.name, Covariate: name, Regressor: label})
		}
	}

	e.x = &DesignMatrix{
		Data:    data,
		Columns: columns,
		Time:    e.ctx.TimeIndex(),
	}
	e.state = StateMatrixBuilt
	e.betas = nil
	e.index = nil
	e.timecourses = nil

	return e.x.clone(), nil
}

// DesignMatrix returns a copy of the last built block.
func (e *EventType) DesignMatrix() (*DesignMatrix, error) {
	if e.x == nil {
		return nil, ErrNotBuilt
	}
	return e.x.clone(), nil
}

func (d *DesignMatrix) clone() *DesignMatrix {
	return &DesignMatrix{
		Data:    mat.DenseCopyOf(d.Data),
		Columns: slices.Clone(d.Columns),
		Time:    slices.Clone(d.Time),
	}
}
