package integrate

import "github.com/katalvlaran/darboux/rpn"

// Extremum — fixed-step grid probe for the minimum or maximum of an
// expression over [lo, hi].
//
// Description:
//
//	The probe evaluates the expression at lo, then advances by step while
//	the sample point stays ≤ hi, keeping the running extremum under a
//	strict </> comparison.  It samples finitely many points, so it is a
//	heuristic: peaks thinner than step can be missed.  The same step is
//	used uniformly for infimum- and supremum-seeking scans.
//
// Complexity:
//
//	Time = O((hi−lo)/step) evaluator calls, O(1) memory.
//
// Errors:
//   - ErrNilExpression — expr is nil; a nil tree reaching the probe is a
//     precondition violation, never expected after a successful Parse.
func Extremum(expr rpn.Node, lo, hi, step float64, kind ExtremumKind) (float64, error) {
	if expr == nil {
		return 0, ErrNilExpression
	}

	return scanExtremum(expr, lo, hi, step, kind), nil
}

// scanExtremum is the probe body, shared with the summation engine's hot
// loop where the nil check has already been done once per request.
func scanExtremum(expr rpn.Node, lo, hi, step float64, kind ExtremumKind) float64 {
	best := rpn.Evaluate(expr, lo)
	for x := lo; x <= hi; x += step {
		value := rpn.Evaluate(expr, x)
		if kind == Supremum {
			if value > best {
				best = value
			}
		} else if value < best {
			best = value
		}
	}

	return best
}
