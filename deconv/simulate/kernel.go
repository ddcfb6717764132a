package simulate

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-hrf/dsp/core"
)

var errKernelParam = errors.New("simulate: invalid kernel parameter")

// Kernel is a response function of time since event onset in seconds.
type Kernel interface {
	At(t float64) float64
	Validate() error
}

// GammaKernel is a single gamma-shaped response
//
//	h(t) = (t/Delay)^Shape · exp(-(t-Delay)/Scale)
//
// which peaks with height 1 at t = Shape·Scale.
type GammaKernel struct {
	Shape float64 // default 6
	Scale float64 // default 0.9 s
	Delay float64 // default 5.4 s
}

// DefaultGammaKernel returns the gamma kernel peaking at 5.4 s.
func DefaultGammaKernel() GammaKernel {
	return GammaKernel{Shape: 6, Scale: 0.9, Delay: 5.4}
}

// At evaluates the kernel. It is zero for t <= 0.
func (k GammaKernel) At(t float64) float64 {
	return gammaShape(t, k.Shape, k.Scale, k.Delay)
}

// Validate reports non-positive parameters.
func (k GammaKernel) Validate() error {
	return positive([]string{"shape", "scale", "delay"}, k.Shape, k.Scale, k.Delay)
}

// DoubleGammaKernel is a peak minus a delayed undershoot:
//
//	h(t) = (t/D1)^A1 · exp(-(t-D1)/B1) - C · (t/D2)^A2 · exp(-(t-D2)/B2)
type DoubleGammaKernel struct {
	A1 float64 // peak shape, default 6
	A2 float64 // undershoot shape, default 12
	B1 float64 // peak scale, default 0.9 s
	B2 float64 // undershoot scale, default 0.9 s
	C  float64 // undershoot ratio, default 0.35
	D1 float64 // peak time, default 5.4 s
	D2 float64 // undershoot time, default 10.8 s
}

// DefaultDoubleGammaKernel returns the canonical double-gamma response.
func DefaultDoubleGammaKernel() DoubleGammaKernel {
	return DoubleGammaKernel{A1: 6, A2: 12, B1: 0.9, B2: 0.9, C: 0.35, D1: 5.4, D2: 10.8}
}

// At evaluates the kernel. It is zero for t <= 0.
func (k DoubleGammaKernel) At(t float64) float64 {
	return gammaShape(t, k.A1, k.B1, k.D1) - k.C*gammaShape(t, k.A2, k.B2, k.D2)
}

// Validate reports non-positive shape, scale and delay parameters and a
// negative undershoot ratio.
func (k DoubleGammaKernel) Validate() error {
	if k.C < 0 {
		return fmt.Errorf("%w: undershoot ratio must be >= 0: %f", errKernelParam, k.C)
	}
	return positive([]string{"a1", "a2", "b1", "b2", "d1", "d2"}, k.A1, k.A2, k.B1, k.B2, k.D1, k.D2)
}

// Sample evaluates k at every sample of a window of the given length in
// seconds, starting at t = 0.
func Sample(k Kernel, cfg core.ProcessorConfig, length float64) ([]float64, error) {
	if err := k.Validate(); err != nil {
		return nil, err
	}
	n := cfg.Samples(length)
	if n < 1 {
		return nil, fmt.Errorf("simulate: kernel length %v s is shorter than one sample", length)
	}

	out := make([]float64, n)
	dt := cfg.SampleDuration()
	for i := range out {
		out[i] = k.At(float64(i) * dt)
	}
	return out, nil
}

func gammaShape(t, shape, scale, delay float64) float64 {
	if t <= 0 {
		return 0
	}
	return math.Pow(t/delay, shape) * math.Exp(-(t-delay)/scale)
}

func positive(names []string, values ...float64) error {
	for i, v := range values {
		if !(v > 0) {
			return fmt.Errorf("%w: %s must be > 0: %f", errKernelParam, names[i], v)
		}
	}
	return nil
}
