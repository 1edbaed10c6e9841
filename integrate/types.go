// Package integrate defines tunable options, the interval model and the
// result shape for the summation engine.
package integrate

import (
	"context"
	"fmt"
	"math"
	"time"
)

const (
	// MinRefinement is the smallest accepted partition count.
	MinRefinement = 1

	// MaxRefinement is the largest accepted partition count.
	MaxRefinement = 20_000_000

	// DefaultRefinement is the partition count used when WithRefinement
	// is not supplied.
	DefaultRefinement = 1_000

	// DefaultStep is the fixed grid-probe step used by the extremum
	// search, applied uniformly to infimum and supremum scans.
	DefaultStep = 1e-5
)

// ExtremumKind selects whether the grid probe tracks the running minimum
// or the running maximum of the evaluated expression.
type ExtremumKind int

const (
	// Infimum seeks the least sampled value.
	Infimum ExtremumKind = iota
	// Supremum seeks the greatest sampled value.
	Supremum
)

// Option configures integration via functional arguments.  An invalid
// Option (refinement out of range, non-positive step) is recorded
// internally and surfaced when Integrate is invoked.
type Option func(*Options)

// Options holds the parameters driving one integration request.
type Options struct {
	// Ctx allows cancellation of the summation loops.
	Ctx context.Context

	// Refinement is the number of equal-width subintervals the domain is
	// split into; must lie in [MinRefinement ; MaxRefinement].
	Refinement int

	// Step is the extremum probe's grid spacing inside each subinterval.
	Step float64

	// Parallel runs the three summation passes in separate goroutines.
	// The passes only read the shared immutable tree and write disjoint
	// outputs, so no locking is involved.
	Parallel bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - Refinement = DefaultRefinement
//   - Step = DefaultStep
//   - sequential execution.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		Refinement: DefaultRefinement,
		Step:       DefaultStep,
		Parallel:   false,
		err:        nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithRefinement sets the partition count.
//
//	n in [MinRefinement ; MaxRefinement]: accepted
//	anything else: invalid option → ErrRefinementRange
func WithRefinement(n int) Option {
	return func(o *Options) {
		if n < MinRefinement || n > MaxRefinement {
			o.err = fmt.Errorf("%w: %d not in [%d ; %d]",
				ErrRefinementRange, n, MinRefinement, MaxRefinement)

			return
		}
		o.Refinement = n
	}
}

// WithStep sets the extremum probe step; s must be positive.
func WithStep(s float64) Option {
	return func(o *Options) {
		if s <= 0 || math.IsNaN(s) {
			o.err = fmt.Errorf("%w: %g", ErrStepNotPositive, s)

			return
		}
		o.Step = s
	}
}

// WithParallel runs the three summation passes concurrently.
func WithParallel() Option {
	return func(o *Options) {
		o.Parallel = true
	}
}

// Timing records the wall time spent in each summation pass.
type Timing struct {
	Riemann time.Duration
	Lower   time.Duration
	Upper   time.Duration
}

// Result holds the three sign-corrected estimates of one definite
// integral.  For a well-behaved integrand and an ascending interval,
// Lower ≤ Riemann ≤ Upper up to the extremum probe's sampling error;
// for a reversed (descending) interval all three are negated without
// relabeling, so the ordering flips accordingly.
type Result struct {
	// Riemann is the left-endpoint Riemann sum.
	Riemann float64

	// Lower is the lower Darboux sum (per-subinterval infimum).
	Lower float64

	// Upper is the upper Darboux sum (per-subinterval supremum).
	Upper float64

	// Timing is the wall time spent computing each sum.
	Timing Timing
}

// DarbouxDifference is |Upper − Lower|, a direct bound on the
// discretization error.
func (r Result) DarbouxDifference() float64 {
	return math.Abs(r.Upper - r.Lower)
}

// DarbouxAverage is the midpoint of the two Darboux sums, usually the
// best single estimate of the integral.
func (r Result) DarbouxAverage() float64 {
	return (r.Upper + r.Lower) / 2
}

// RiemannDeviation is |DarbouxAverage − Riemann|, the disagreement
// between the two estimation families.
func (r Result) RiemannDeviation() float64 {
	return math.Abs(r.DarbouxAverage() - r.Riemann)
}
