// Package integrate approximates definite integrals of parsed RPN
// expression trees with three independent estimators: a left-endpoint
// Riemann sum and the lower/upper Darboux sums.
//
// 🚀 How does it work?
//
//	The interval [start, end] is split into `refinement` equal
//	subintervals of width dx.  Three passes run over the identical
//	partition:
//	  • Riemann sum:        Σ f(xᵢ)·dx, sampling the left endpoint
//	  • lower Darboux sum:  Σ inf f·dx, infimum probed per subinterval
//	  • upper Darboux sum:  Σ sup f·dx, supremum probed per subinterval
//	For any bounded integrand, lower ≤ ∫ ≤ upper holds up to the
//	extremum probe's sampling error, so the spread of the three results
//	bounds the approximation error without any analysis of f.
//
// ✨ Key features:
//   - interval parsing from the textual "[a ; b]" form
//   - automatic direction normalization: ∫[a,b] f = −∫[b,a] f
//   - per-subinterval extremum search via a fixed-step grid probe
//   - optional parallel execution of the three passes
//   - context-aware loops for cancelling large refinements
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/darboux/integrate"
//	  "github.com/katalvlaran/darboux/rpn"
//	)
//
//	expr, _ := rpn.Parse("x x *")
//	iv, _ := integrate.ParseInterval("[0 ; 1]")
//	res, err := integrate.Integrate(expr, iv,
//	  integrate.WithRefinement(10000))
//	// res.Riemann ≈ 1/3, res.Lower ≤ 1/3 ≤ res.Upper
//
// The extremum search is a heuristic: it samples finitely many points,
// so peaks thinner than the step can be missed.  Numeric-domain errors
// (ln of a negative number, division by zero) are not detected — the
// resulting NaN/±Inf values flow into the reported sums unchanged.
//
// Performance:
//
//	Evaluator calls ≈ refinement × (2·dx/step + 1), so the Darboux
//	passes dominate.  WithParallel runs the three passes concurrently;
//	the expression tree is immutable and shared without locking.
package integrate
