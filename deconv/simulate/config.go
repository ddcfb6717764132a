package simulate

// Config holds experiment-wide settings.
type Config struct {
	TR           float64 // seconds per sample, default 1
	Subjects     int     // default 1
	Runs         int     // runs per subject, default 1
	ROIs         int     // regions sharing the evoked signal with independent noise, default 1
	Trials       int     // trials per condition without explicit onsets, default 40
	RunDuration  float64 // seconds, default 300
	NoiseStd     float64 // standard deviation of additive noise, default 1
	KernelLength float64 // seconds of kernel support, default 20
	Kernel       Kernel  // used by conditions without a kernel, default DoubleGammaKernel
	Seed         uint64  // default 1
}

// Option mutates a Config. Invalid values are ignored.
type Option func(*Config)

// DefaultConfig returns the default experiment.
func DefaultConfig() Config {
	return Config{
		TR:           1,
		Subjects:     1,
		Runs:         1,
		ROIs:         1,
		Trials:       40,
		RunDuration:  300,
		NoiseStd:     1,
		KernelLength: 20,
		Kernel:       DefaultDoubleGammaKernel(),
		Seed:         1,
	}
}

// WithTR sets the sample duration in seconds.
func WithTR(tr float64) Option {
	return func(c *Config) {
		if tr > 0 {
			c.TR = tr
		}
	}
}

// WithSubjects sets the number of subjects.
func WithSubjects(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.Subjects = n
		}
	}
}

// WithRuns sets the number of runs per subject.
func WithRuns(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.Runs = n
		}
	}
}

// WithTrials sets the default number of trials per condition.
func WithTrials(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.Trials = n
		}
	}
}

// WithRunDuration sets the run length in seconds.
func WithRunDuration(seconds float64) Option {
	return func(c *Config) {
		if seconds > 0 {
			c.RunDuration = seconds
		}
	}
}

// WithNoiseStd sets the noise standard deviation. Zero gives a noiseless signal.
func WithNoiseStd(std float64) Option {
	return func(c *Config) {
		if std >= 0 {
			c.NoiseStd = std
		}
	}
}

// WithKernel sets the default response kernel.
func WithKernel(k Kernel) Option {
	return func(c *Config) {
		if k != nil {
			c.Kernel = k
		}
	}
}

// WithROIs sets the number of simulated regions per run.
func WithROIs(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.ROIs = n
		}
	}
}

// WithKernelLength sets the kernel support in seconds.
func WithKernelLength(seconds float64) Option {
	return func(c *Config) {
		if seconds > 0 {
			c.KernelLength = seconds
		}
	}
}

// WithSeed sets the random seed.
func WithSeed(seed uint64) Option {
	return func(c *Config) {
		c.Seed = seed
	}
}

// ApplyOptions applies opts to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Condition describes one experimental condition.
type Condition struct {
	Name          string
	MeanAmplitude float64
	AmplitudeStd  float64   // between-subject standard deviation
	Trials        int       // 0 uses Config.Trials
	Onsets        []float64 // fixed onsets in seconds; nil draws random onsets per run
	Kernel        Kernel    // nil uses Config.Kernel
}

// DefaultConditions returns two conditions, A with amplitude 1 and B with
// amplitude 2, without between-subject variance.
func DefaultConditions() []Condition {
	return []Condition{
		{Name: "A", MeanAmplitude: 1},
		{Name: "B", MeanAmplitude: 2},
	}
}
