// Package conv provides the linear convolution routines used to expand event
// timelines into design-matrix columns.
//
// Two strategies are available:
//
//   - Direct convolution: O(N*M) time-domain convolution, used for short kernels
//   - Overlap-add (OLA): FFT-based block convolution for longer kernels
//
// # Usage
//
//	full, err := conv.Convolve(signal, kernel)                  // auto-selects algorithm
//	head, err := conv.ConvolveMode(signal, kernel, conv.ModeHead) // same length, onset aligned
//
// For repeated convolution with the same kernel, create a reusable convolver:
//
//	c, err := conv.NewOverlapAdd(kernel, blockSize)
//	result, err := c.Process(signal)
//
// # Output modes
//
// [ModeHead] keeps the first len(signal) samples of the full result, so an
// impulse at index i produces kernel[0] at index i. [ModeSame] keeps the
// centered window instead, which shifts the response by (len(kernel)-1)/2
// samples.
package conv
