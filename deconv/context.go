package deconv

import (
	"fmt"

	"github.com/cwbudde/algo-hrf/dsp/core"
)

// Context describes the measured signal shared by all event types of one
// analysis. It is immutable once created.
type Context struct {
	cfg    core.ProcessorConfig
	length int
}

// NewContext creates a context for a signal of the given number of samples.
// The sample rate defaults to 1 Hz.
func NewContext(samples int, opts ...core.ProcessorOption) (*Context, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("%w: signal length must be > 0: %d", ErrInvalidContext, samples)
	}
	return &Context{
		cfg:    core.ApplyProcessorOptions(opts...),
		length: samples,
	}, nil
}

// SampleRate returns the sample frequency in Hz.
func (c *Context) SampleRate() float64 { return c.cfg.SampleRate }

// SampleDuration returns the duration of one sample in seconds.
func (c *Context) SampleDuration() float64 { return c.cfg.SampleDuration() }

// Len returns the number of samples in the signal.
func (c *Context) Len() int { return c.length }

// Config returns the processing configuration.
func (c *Context) Config() core.ProcessorConfig { return c.cfg }

// TimeIndex returns the time in seconds of every sample.
func (c *Context) TimeIndex() []float64 {
	t := make([]float64, c.length)
	dt := c.SampleDuration()
	for i := range t {
		t[i] = float64(i) * dt
	}
	return t
}
