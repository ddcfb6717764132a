package basis

import "fmt"

// Labels names the rows of a basis matrix.
//
//	fir:      fir_<lag>s with the lag in seconds, one per timepoint
//	fourier:  intercept, sin_1..sin_h, cos_1..cos_h with h = n/2
//	legendre: order_1..order_n
func Labels(s Set, n int, timepoints []float64) []string {
	labels := make([]string, 0, n)

	switch s {
	case SetFIR:
		for i := 0; i < n && i < len(timepoints); i++ {
			labels = append(labels, fmt.Sprintf("fir_%.3fs", timepoints[i]))
		}
	case SetFourier:
		labels = append(labels, "intercept")
		half := n / 2
		for k := 1; k <= half; k++ {
			labels = append(labels, fmt.Sprintf("sin_%d", k))
		}
		for k := 1; k <= half; k++ {
			labels = append(labels, fmt.Sprintf("cos_%d", k))
		}
	case SetLegendre:
		for k := 1; k <= n; k++ {
			labels = append(labels, fmt.Sprintf("order_%d", k))
		}
	}

	return labels
}
