package core

// ProcessorConfig defines the sampling settings shared by all components that
// operate on one signal.
type ProcessorConfig struct {
	// SampleRate is the number of samples per second (1/TR for fMRI data).
	SampleRate float64
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns one sample per second.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate: 1,
	}
}

// WithSampleRate sets the sample rate in Hz.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithSampleDuration sets the sample rate from the duration of one sample
// (the repetition time), in seconds.
func WithSampleDuration(seconds float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if seconds > 0 {
			cfg.SampleRate = 1 / seconds
		}
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// SampleDuration returns the duration of one sample in seconds.
func (c ProcessorConfig) SampleDuration() float64 {
	return 1 / c.SampleRate
}

// Samples converts a duration in seconds to the nearest whole number of samples.
func (c ProcessorConfig) Samples(seconds float64) int {
	return RoundIndex(seconds * c.SampleRate)
}
