// Package basis generates the function families used to approximate an
// unknown event-related response.
//
// Each generator returns an (n_regressors × n_timepoints) matrix L. Row r is
// one basis function sampled on the response window; a response estimate is
// the coefficient-weighted sum of the rows.
//
//   - [FIR]: one indicator row per response lag (the identity matrix)
//   - [Fourier]: a constant row followed by sine and cosine harmonics
//   - [Legendre]: Legendre polynomials of increasing degree on [-1, 1]
//
// The generators are pure. They assume n >= 1 and a non-empty timepoint grid;
// [Build] validates its inputs and applies the per-family regressor count rule
// from [RegressorCount].
package basis
