// Package simulate generates synthetic fMRI-style experiments: event onsets
// per condition and the measured signal they evoke.
//
// Each condition's events are impulses scaled by a per-subject amplitude
// drawn from Normal(MeanAmplitude, AmplitudeStd). The impulses are convolved
// with the condition's response [Kernel], conditions are summed, and Gaussian
// noise with standard deviation Config.NoiseStd is added.
//
// Kernels are closed configuration records with documented defaults:
// [GammaKernel] and [DoubleGammaKernel].
package simulate
