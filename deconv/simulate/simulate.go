package simulate

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/cwbudde/algo-hrf/dsp/conv"
	"github.com/cwbudde/algo-hrf/dsp/core"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// Errors returned by Simulate.
var (
	ErrInvalidConfig = errors.New("simulate: invalid configuration")
	ErrOnsetDraw     = errors.New("simulate: could not draw onsets")
)

// maxOnsetDraws bounds the redraws of a random onset sequence that ended
// before enough trials fit into the run.
const maxOnsetDraws = 1000

// Run is the simulated data of one run of one subject.
type Run struct {
	Subject int
	Run     int
	Time    []float64
	Signal  []float64            // first region, same as ROIs[0]
	ROIs    [][]float64          // one noisy copy of the evoked signal per region
	Onsets  map[string][]float64 // per condition, sorted, in seconds
}

// Parameter is the response amplitude drawn for one subject and condition.
type Parameter struct {
	Subject   int
	Condition string
	Amplitude float64
	Kernel    Kernel
}

// Result holds the output of Simulate.
type Result struct {
	Conditions []string
	Parameters []Parameter
	Runs       []Run
}

// Amplitude returns the amplitude drawn for subject and condition.
func (r *Result) Amplitude(subject int, condition string) (float64, bool) {
	for _, p := range r.Parameters {
		if p.Subject == subject && p.Condition == condition {
			return p.Amplitude, true
		}
	}
	return 0, false
}

// Simulate generates an experiment for the given conditions. A nil or empty
// conditions slice uses DefaultConditions.
func Simulate(conditions []Condition, opts ...Option) (*Result, error) {
	cfg := ApplyOptions(opts...)
	if len(conditions) == 0 {
		conditions = DefaultConditions()
	}
	if err := validate(cfg, conditions); err != nil {
		return nil, err
	}

	proc := core.ApplyProcessorOptions(core.WithSampleDuration(cfg.TR))
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))

	kernels := make([][]float64, len(conditions))
	for i, c := range conditions {
		k, err := Sample(conditionKernel(cfg, c), proc, cfg.KernelLength)
		if err != nil {
			return nil, fmt.Errorf("simulate: condition %q: %w", c.Name, err)
		}
		kernels[i] = k
	}

	res := &Result{}
	for _, c := range conditions {
		res.Conditions = append(res.Conditions, c.Name)
	}

	for subject := 1; subject <= cfg.Subjects; subject++ {
		for _, c := range conditions {
			amp := distuv.Normal{Mu: c.MeanAmplitude, Sigma: c.AmplitudeStd, Src: rng}
			res.Parameters = append(res.Parameters, Parameter{
				Subject:   subject,
				Condition: c.Name,
				Amplitude: amp.Rand(),
				Kernel:    conditionKernel(cfg, c),
			})
		}
	}

	frames := frameCount(cfg.RunDuration, cfg.TR)
	noise := distuv.Normal{Mu: 0, Sigma: cfg.NoiseStd, Src: rng}

	for subject := 1; subject <= cfg.Subjects; subject++ {
		for run := 1; run <= cfg.Runs; run++ {
			r := Run{
				Subject: subject,
				Run:     run,
				Time:    make([]float64, frames),
				Onsets:  make(map[string][]float64, len(conditions)),
			}
			clean := make([]float64, frames)
			for i := range r.Time {
				r.Time[i] = float64(i) * cfg.TR
			}

			for i, c := range conditions {
				onsets := slices.Clone(c.Onsets)
				if onsets == nil {
					var err error
					onsets, err = drawOnsets(rng, conditionTrials(cfg, c), cfg.RunDuration)
					if err != nil {
						return nil, fmt.Errorf("simulate: condition %q: %w", c.Name, err)
					}
				}
				slices.Sort(onsets)
				r.Onsets[c.Name] = onsets

				amp, _ := res.Amplitude(subject, c.Name)
				response, err := evoked(onsets, amp, kernels[i], proc, frames)
				if err != nil {
					return nil, fmt.Errorf("simulate: condition %q: %w", c.Name, err)
				}
				floats.Add(clean, response)
			}

			r.ROIs = make([][]float64, cfg.ROIs)
			for roi := range r.ROIs {
				signal := slices.Clone(clean)
				if cfg.NoiseStd > 0 {
					for i := range signal {
						signal[i] += noise.Rand()
					}
				}
				r.ROIs[roi] = signal
			}
			r.Signal = r.ROIs[0]

			res.Runs = append(res.Runs, r)
		}
	}

	return res, nil
}

// evoked places an impulse of height amp at every onset sample and
// convolves the impulses with the kernel.
func evoked(onsets []float64, amp float64, kernel []float64, proc core.ProcessorConfig, frames int) ([]float64, error) {
	impulses := make([]float64, frames)
	for _, onset := range onsets {
		if idx := proc.Samples(onset); idx >= 0 && idx < frames {
			impulses[idx] = amp
		}
	}
	return conv.ConvolveMode(impulses, kernel, conv.ModeHead)
}

// drawOnsets accumulates gamma-distributed inter-stimulus intervals with
// mean runDuration/trials and picks trials of the onsets inside the run.
func drawOnsets(rng *rand.Rand, trials int, runDuration float64) ([]float64, error) {
	isi := distuv.Gamma{Alpha: runDuration / float64(trials), Beta: 1, Src: rng}

	for attempt := 0; attempt < maxOnsetDraws; attempt++ {
		var candidates []float64
		t := 0.0
		for i := 0; i < 10*trials; i++ {
			t += isi.Rand()
			if t >= runDuration {
				break
			}
			candidates = append(candidates, t)
		}
		if len(candidates) < trials {
			continue
		}

		picked := make([]float64, trials)
		for i, j := range rng.Perm(len(candidates))[:trials] {
			picked[i] = candidates[j]
		}
		return picked, nil
	}

	return nil, fmt.Errorf("%w: %d trials in %v s", ErrOnsetDraw, trials, runDuration)
}

func frameCount(runDuration, tr float64) int {
	return int(math.Ceil(runDuration/tr - 1e-9))
}

func conditionKernel(cfg Config, c Condition) Kernel {
	if c.Kernel != nil {
		return c.Kernel
	}
	return cfg.Kernel
}

func conditionTrials(cfg Config, c Condition) int {
	if c.Trials > 0 {
		return c.Trials
	}
	return cfg.Trials
}

func validate(cfg Config, conditions []Condition) error {
	if cfg.Kernel == nil {
		return fmt.Errorf("%w: no kernel", ErrInvalidConfig)
	}
	if frameCount(cfg.RunDuration, cfg.TR) < 1 {
		return fmt.Errorf("%w: run of %v s at TR %v s has no samples", ErrInvalidConfig, cfg.RunDuration, cfg.TR)
	}

	seen := make(map[string]struct{}, len(conditions))
	for _, c := range conditions {
		if c.Name == "" {
			return fmt.Errorf("%w: condition without name", ErrInvalidConfig)
		}
		if _, ok := seen[c.Name]; ok {
			return fmt.Errorf("%w: duplicate condition %q", ErrInvalidConfig, c.Name)
		}
		seen[c.Name] = struct{}{}

		if c.AmplitudeStd < 0 {
			return fmt.Errorf("%w: condition %q has negative amplitude std", ErrInvalidConfig, c.Name)
		}
		if c.Trials < 0 {
			return fmt.Errorf("%w: condition %q has negative trial count", ErrInvalidConfig, c.Name)
		}
	}
	return nil
}
