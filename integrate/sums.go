package integrate

import (
	"context"

	"github.com/katalvlaran/darboux/rpn"
)

// engine carries the shared state of one integration request: the
// immutable expression tree and the validated, direction-normalized
// partition parameters.  All three passes run over the identical
// partition x_i = lo + i·dx for i in [0, refinement), a half-open
// [lo, hi) convention that visits each subinterval exactly once and
// never double-counts the right boundary of the whole interval.
type engine struct {
	expr       rpn.Node
	lo         float64
	dx         float64
	step       float64
	refinement int
	ctx        context.Context
}

// riemannSum accumulates f(x_i)·dx over the left endpoints.
func (e *engine) riemannSum() (float64, error) {
	sum := 0.0
	for i := 0; i < e.refinement; i++ {
		// cancellation check (once per subinterval)
		select {
		case <-e.ctx.Done():
			return 0, e.ctx.Err()
		default:
		}

		x := e.lo + float64(i)*e.dx
		sum += rpn.Evaluate(e.expr, x) * e.dx
	}

	return sum, nil
}

// darbouxSum accumulates extremum(x_i, x_i+dx)·dx per subinterval; kind
// selects the lower (Infimum) or upper (Supremum) sum.
func (e *engine) darbouxSum(kind ExtremumKind) (float64, error) {
	sum := 0.0
	for i := 0; i < e.refinement; i++ {
		select {
		case <-e.ctx.Done():
			return 0, e.ctx.Err()
		default:
		}

		x := e.lo + float64(i)*e.dx
		sum += scanExtremum(e.expr, x, x+e.dx, e.step, kind) * e.dx
	}

	return sum, nil
}
