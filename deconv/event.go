package deconv

import (
	"fmt"
	"slices"

	"github.com/cwbudde/algo-hrf/deconv/basis"
	"github.com/cwbudde/algo-hrf/dsp/core"
	"gonum.org/v1/gonum/mat"
)

// Interval is the response window in seconds relative to event onset.
type Interval struct {
	Start float64
	End   float64
}

// Width returns End - Start.
func (iv Interval) Width() float64 { return iv.End - iv.Start }

// Option configures an EventType.
type Option func(*settings)

type settings struct {
	set         basis.Set
	nRegressors int
	interval    Interval
	durations   []float64
	covariates  *Covariates
	weighting   Weighting
	err         error
}

func defaultSettings() settings {
	return settings{
		set:      basis.SetFIR,
		interval: Interval{Start: 0, End: 10},
	}
}

// WithBasis selects the basis family. n is the requested number of basis
// functions; it is ignored for FIR and rounded up to an odd number for
// Fourier and Legendre.
func WithBasis(set basis.Set, n int) Option {
	return func(s *settings) {
		s.set = set
		s.nRegressors = n
	}
}

// WithBasisName is WithBasis with the family given by name
// ("fir", "fourier" or "legendre").
func WithBasisName(name string, n int) Option {
	return func(s *settings) {
		set, err := basis.ParseSet(name)
		if err != nil {
			s.err = err
			return
		}
		s.set = set
		s.nRegressors = n
	}
}

// WithInterval sets the response window relative to onset. Default [0, 10).
func WithInterval(start, end float64) Option {
	return func(s *settings) {
		s.interval = Interval{Start: start, End: end}
	}
}

// WithDurations sets per-event durations in seconds. Without it every event
// lasts one sample.
func WithDurations(durations []float64) Option {
	return func(s *settings) {
		s.durations = slices.Clone(durations)
	}
}

// WithCovariates sets the per-event covariate table. Without it a single
// intercept column of ones is used. The table is copied by New, so later
// changes to c do not affect the event type.
func WithCovariates(c *Covariates) Option {
	return func(s *settings) {
		s.covariates = c
	}
}

// WithWeighting installs a column weighting applied after convolution.
func WithWeighting(w Weighting) Option {
	return func(s *settings) {
		s.weighting = w
	}
}

// EventType holds one condition's events, its basis and the derived
// design-matrix block and response estimates.
type EventType struct {
	ctx  *Context
	name string

	set         basis.Set
	interval    Interval
	nRegressors int
	onsets      []float64
	durations   []float64
	covariates  *Covariates
	weighting   Weighting

	timepoints []float64
	l          *mat.Dense
	labels     []string

	state       State
	x           *DesignMatrix
	betas       []float64
	index       map[string][]int
	timecourses map[string][]float64
}

// New creates an event type for the given onset times in seconds.
func New(ctx *Context, name string, onsets []float64, opts ...Option) (*EventType, error) {
	if ctx == nil {
		return nil, fmt.Errorf("%w: nil context", ErrInvalidContext)
	}

	s := defaultSettings()
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	if s.err != nil {
		return nil, s.err
	}
	if !s.set.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedBasisSet, s.set)
	}
	if s.set != basis.SetFIR && s.nRegressors < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRegressors, s.nRegressors)
	}

	timepoints, err := windowTimepoints(ctx, s.interval)
	if err != nil {
		return nil, err
	}

	n := len(onsets)
	durations := s.durations
	if durations == nil {
		durations = make([]float64, n)
		for i := range durations {
			durations[i] = ctx.SampleDuration()
		}
	}
	if len(durations) != n {
		return nil, fmt.Errorf("%w: %d durations for %d events", ErrShapeMismatch, len(durations), n)
	}
	for i, d := range durations {
		if d < 0 {
			return nil, fmt.Errorf("%w: negative duration %v at event %d", ErrInvalidDuration, d, i)
		}
	}

	var covariates *Covariates
	if s.covariates != nil {
		covariates = s.covariates.clone()
	} else {
		covariates = interceptCovariates(n)
	}
	if err := covariates.validate(n); err != nil {
		return nil, err
	}

	l, labels, err := basis.Build(s.set, s.nRegressors, timepoints)
	if err != nil {
		return nil, err
	}
	nRegressors, _ := l.Dims()

	return &EventType{
		ctx:         ctx,
		name:        name,
		set:         s.set,
		interval:    s.interval,
		nRegressors: nRegressors,
		onsets:      slices.Clone(onsets),
		durations:   durations,
		covariates:  covariates,
		weighting:   s.weighting,
		timepoints:  timepoints,
		l:           l,
		labels:      labels,
	}, nil
}

// windowTimepoints samples [start, end) at the context's sample duration.
func windowTimepoints(ctx *Context, iv Interval) ([]float64, error) {
	if !(iv.Start < iv.End) {
		return nil, fmt.Errorf("%w: [%v, %v)", ErrInvalidInterval, iv.Start, iv.End)
	}

	n := ctx.Config().Samples(iv.Width())
	if n < 1 {
		return nil, fmt.Errorf("%w: [%v, %v) is shorter than one sample", ErrInvalidInterval, iv.Start, iv.End)
	}

	dt := ctx.SampleDuration()
	tp := make([]float64, n)
	for i := range tp {
		tp[i] = iv.Start + float64(i)*dt
	}
	return tp, nil
}

// Name returns the condition name.
func (e *EventType) Name() string { return e.name }

// BasisSet returns the basis family.
func (e *EventType) BasisSet() basis.Set { return e.set }

// Interval returns the response window.
func (e *EventType) Interval() Interval { return e.interval }

// NRegressors returns the resolved number of basis functions.
func (e *EventType) NRegressors() int { return e.nRegressors }

// Timepoints returns the response window sample times relative to onset.
func (e *EventType) Timepoints() []float64 { return slices.Clone(e.timepoints) }

// Basis returns a copy of the basis matrix L (regressors × timepoints).
func (e *EventType) Basis() *mat.Dense { return mat.DenseCopyOf(e.l) }

// RegressorLabels returns one label per basis row.
func (e *EventType) RegressorLabels() []string { return slices.Clone(e.labels) }

// Covariates returns a copy of the covariate table.
func (e *EventType) Covariates() *Covariates { return e.covariates.clone() }

// State returns the lifecycle state.
func (e *EventType) State() State { return e.state }

// eventSamples converts an event to its first sample and sample count.
func (e *EventType) eventSamples(i int) (start, width int) {
	cfg := e.ctx.Config()
	start = core.RoundIndex((e.onsets[i] + e.interval.Start) * cfg.SampleRate)
	width = cfg.Samples(e.durations[i])
	return start, width
}
