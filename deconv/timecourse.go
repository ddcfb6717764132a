package deconv

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// EventTimecourse returns the occurrence timeline of this event type for one
// covariate, sampled on the full signal. An empty name selects the
// intercept.
//
// Every event writes c/meanDur over its samples, where c is the event's
// covariate value and meanDur the mean event duration in samples, so the
// regressor amplitude reflects intensity per unit time. Samples before the
// start or past the end of the signal are dropped. Overlapping events do not
// accumulate: the later event overwrites the earlier one.
func (e *EventType) EventTimecourse(covariate string) ([]float64, error) {
	if covariate == "" {
		covariate = InterceptName
	}
	values, ok := e.covariates.Values(covariate)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCovariate, covariate)
	}

	out := make([]float64, e.ctx.Len())
	if len(e.onsets) == 0 {
		return out, nil
	}

	meanDur := stat.Mean(e.durations, nil) * e.ctx.SampleRate()

	for i := range e.onsets {
		start, width := e.eventSamples(i)
		lo := max(start, 0)
		hi := min(start+width, len(out))
		for j := lo; j < hi; j++ {
			out[j] = values[i] / meanDur
		}
	}

	return out, nil
}
