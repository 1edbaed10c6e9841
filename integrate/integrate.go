package integrate

import (
	"sync"
	"time"

	"github.com/katalvlaran/darboux/rpn"
)

// Integrate — definite integral of an RPN expression tree
//
// Description:
//
//	Integrate approximates ∫ f over iv with three independent estimators
//	computed over the identical uniform partition: a left-endpoint
//	Riemann sum and the lower/upper Darboux sums.
//
// Algorithm Outline:
//  1. Validate: non-nil expression, finite bounds, Start != End, and any
//     recorded option violations.  Failure: typed error, nothing computed.
//  2. Normalize direction: if Start > End, swap the bounds and set a
//     negation flag (∫[a,b] f = −∫[b,a] f).
//  3. dx = (hi − lo) / refinement; run the three passes, timing each.
//     With WithParallel the passes run in three goroutines; they only
//     read the shared immutable tree and write disjoint results.
//  4. Apply the negation flag uniformly to all three sums.  The sums are
//     negated, not relabeled: for a descending interval the reported
//     Lower is ≥ Upper by construction.
//
// Numeric-domain errors (ln of a non-positive number, division by zero,
// tg at a pole) are not detected: the resulting NaN/±Inf values are part
// of the reported sums.
//
// Complexity:
//
//	Evaluator calls ≈ refinement × (2·dx/step + 1); memory O(1).
//
// Errors:
//   - ErrNilExpression, ErrNonFiniteBound, ErrDegenerateInterval
//   - ErrRefinementRange, ErrStepNotPositive (recorded by options)
//   - context.Canceled / DeadlineExceeded from the summation loops.
func Integrate(expr rpn.Node, iv Interval, opts ...Option) (Result, error) {
	if expr == nil {
		return Result{}, ErrNilExpression
	}

	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}

	if err := iv.validate(); err != nil {
		return Result{}, err
	}
	lo, hi, negate := iv.normalized()

	e := &engine{
		expr:       expr,
		lo:         lo,
		dx:         (hi - lo) / float64(o.Refinement),
		step:       o.Step,
		refinement: o.Refinement,
		ctx:        o.Ctx,
	}

	var res Result
	var err error
	if o.Parallel {
		res, err = runParallel(e)
	} else {
		res, err = runSequential(e)
	}
	if err != nil {
		return Result{}, err
	}

	if negate {
		res.Riemann = -res.Riemann
		res.Lower = -res.Lower
		res.Upper = -res.Upper
	}

	return res, nil
}

// runSequential executes the three passes one after another.
func runSequential(e *engine) (Result, error) {
	var res Result
	var err error

	if res.Riemann, res.Timing.Riemann, err = timed(e.riemannSum); err != nil {
		return Result{}, err
	}
	lower := func() (float64, error) { return e.darbouxSum(Infimum) }
	if res.Lower, res.Timing.Lower, err = timed(lower); err != nil {
		return Result{}, err
	}
	upper := func() (float64, error) { return e.darbouxSum(Supremum) }
	if res.Upper, res.Timing.Upper, err = timed(upper); err != nil {
		return Result{}, err
	}

	return res, nil
}

// runParallel executes the three passes in separate goroutines.  Each
// pass writes a disjoint slot; the first error wins.
func runParallel(e *engine) (Result, error) {
	var res Result
	errs := make([]error, 3)

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		res.Riemann, res.Timing.Riemann, errs[0] = timed(e.riemannSum)
	}()
	go func() {
		defer wg.Done()
		res.Lower, res.Timing.Lower, errs[1] = timed(func() (float64, error) {
			return e.darbouxSum(Infimum)
		})
	}()
	go func() {
		defer wg.Done()
		res.Upper, res.Timing.Upper, errs[2] = timed(func() (float64, error) {
			return e.darbouxSum(Supremum)
		})
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return Result{}, err
		}
	}

	return res, nil
}

// timed runs one summation pass and measures its wall time.
func timed(pass func() (float64, error)) (float64, time.Duration, error) {
	started := time.Now()
	sum, err := pass()

	return sum, time.Since(started), err
}
