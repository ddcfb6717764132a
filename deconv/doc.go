// Package deconv estimates event-related response shapes from onset times
// without assuming a fixed response kernel.
//
// One [EventType] describes one experimental condition: its onsets,
// durations and per-event covariates, the response window ([Interval])
// and the basis family used to model the response (see package basis).
// All event types of an analysis share one read-only [Context] that fixes
// the sample rate and the length of the measured signal.
//
// # Workflow
//
//	ctx, _ := deconv.NewContext(len(signal), core.WithSampleDuration(tr))
//	ev, _ := deconv.New(ctx, "stimulus", onsets,
//		deconv.WithBasis(basis.SetFourier, 7),
//		deconv.WithInterval(0, 20))
//	x, _ := ev.CreateDesignMatrix()
//	// ... an external solver fits x (usually joined with other blocks) ...
//	_ = ev.AttachBetas(betas, x.CovariateIndex(offset))
//	curves, _ := ev.BetasToTimecourses()
//
// An EventType moves through the states Unbuilt, MatrixBuilt, BetasAttached
// and TimecoursesComputed. Calls made out of order fail with [ErrNotBuilt]
// or [ErrMissingBetas] instead of returning empty results.
//
// # Event timelines
//
// Each event writes covariate/(mean duration in samples) over the samples it
// covers, starting at round((onset+Interval.Start)*fs). When the windows of
// two events overlap, the later event overwrites the earlier one.
//
// # Concurrency
//
// An EventType is not safe for concurrent use. Different event types may be
// built concurrently; [BuildDesignMatrices] does so and returns the blocks in
// input order.
package deconv
