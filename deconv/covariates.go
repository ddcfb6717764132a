package deconv

import (
	"fmt"
	"slices"
)

// InterceptName is the covariate used when none are supplied.
const InterceptName = "intercept"

// Covariate is one named per-event weight column.
type Covariate struct {
	Name   string
	Values []float64
}

// Covariates is an ordered table of per-event weight columns.
// Column order determines design-matrix column order.
type Covariates struct {
	names   []string
	columns map[string][]float64
}

// NewCovariates builds a table from the given columns in order.
func NewCovariates(cols ...Covariate) (*Covariates, error) {
	c := &Covariates{columns: make(map[string][]float64, len(cols))}
	for _, col := range cols {
		if err := c.Add(col.Name, col.Values); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Add appends a copy of values as column name.
func (c *Covariates) Add(name string, values []float64) error {
	if name == "" {
		return fmt.Errorf("%w: empty covariate name", ErrInvalidName)
	}
	if c.columns == nil {
		c.columns = make(map[string][]float64)
	}
	if _, ok := c.columns[name]; ok {
		return fmt.Errorf("%w: covariate %q", ErrDuplicateName, name)
	}
	c.names = append(c.names, name)
	c.columns[name] = slices.Clone(values)
	return nil
}

// Names returns the column names in order.
func (c *Covariates) Names() []string {
	return slices.Clone(c.names)
}

// Values returns the column with the given name. The slice must not be modified.
func (c *Covariates) Values(name string) ([]float64, bool) {
	v, ok := c.columns[name]
	return v, ok
}

// Len returns the number of columns.
func (c *Covariates) Len() int {
	return len(c.names)
}

func (c *Covariates) clone() *Covariates {
	out := &Covariates{
		names:   slices.Clone(c.names),
		columns: make(map[string][]float64, len(c.names)),
	}
	for _, name := range c.names {
		out.columns[name] = slices.Clone(c.columns[name])
	}
	return out
}

func interceptCovariates(n int) *Covariates {
	ones := make([]float64, n)
	for i := range ones {
		ones[i] = 1
	}
	return &Covariates{
		names:   []string{InterceptName},
		columns: map[string][]float64{InterceptName: ones},
	}
}

// validate checks that every column has one value per event.
func (c *Covariates) validate(events int) error {
	if len(c.names) == 0 {
		return fmt.Errorf("%w: no covariate columns", ErrShapeMismatch)
	}
	for _, name := range c.names {
		if got := len(c.columns[name]); got != events {
			return fmt.Errorf("%w: covariate %q has %d values for %d events", ErrShapeMismatch, name, got, events)
		}
	}
	return nil
}
