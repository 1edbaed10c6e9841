package rpn

import "math"

// Evaluate computes the value of the expression tree rooted at n for the
// variable sample point x.  A nil node evaluates to 0.0; this is a safety
// fallback only and never occurs in a tree returned by Parse.
//
// No domain checking is performed: division by zero, ln of a non-positive
// number or tg at a pole produce IEEE NaN/±Inf, which propagate through
// the surrounding arithmetic and out of Evaluate unchanged.
func Evaluate(n Node, x float64) float64 {
	if n == nil {
		return 0.0
	}

	return n.Eval(x)
}

// Eval for Variable returns the sample point.
func (v *Variable) Eval(x float64) float64 { return x }

// Eval for Number returns the stored literal.
func (n *Number) Eval(x float64) float64 { return n.Value }

// Eval for Function applies the built-in function to its argument's value.
func (f *Function) Eval(x float64) float64 {
	return f.ID.apply(Evaluate(f.Arg, x))
}

// Eval for Operator combines the operand values, left then right.
func (o *Operator) Eval(x float64) float64 {
	left := Evaluate(o.Left, x)
	right := Evaluate(o.Right, x)

	switch o.Op {
	case OpAdd:
		return left + right
	case OpSub:
		return left - right
	case OpMul:
		return left * right
	case OpDiv:
		return left / right
	case OpPow:
		return math.Pow(left, right)
	default:
		return math.NaN()
	}
}
