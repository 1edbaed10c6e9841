// Package rpn parses single-variable mathematical expressions written in
// Reverse Polish Notation into immutable expression trees, and evaluates
// them in float64 for a given sample point.
//
// 🚀 What is RPN?
//
//	Reverse Polish (postfix) notation places operators and functions after
//	their operands, so "x 2 ^ 3 +" means x²+3.  No precedence rules, no
//	parentheses — a single left-to-right pass with an operand stack builds
//	the whole tree.
//
// ✨ Key features:
//   - four node variants: variable, number, function, binary operator
//   - six built-in functions: sin, cos, tg, ctg, ln, exp
//   - five operators: + - * / ^ (right operand popped first)
//   - one linear parsing pass, O(tokens) time and memory
//   - typed parse errors (unknown token, missing operand, unbalanced input)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/darboux/rpn"
//
//	expr, err := rpn.Parse("x sin x *")
//	if err != nil {
//	  // handle ErrUnknownToken, ErrMissingOperand, ...
//	}
//	y := rpn.Evaluate(expr, 1.5) // sin(1.5) * 1.5
//
// Evaluation performs no domain checking: ln of a non-positive number,
// division by zero or tg at a pole yield IEEE NaN/±Inf values that
// propagate through the surrounding arithmetic.  Callers that feed the
// tree into a summation loop receive those values in the final sums;
// this is deliberate, documented behavior.
//
// The tree is never mutated after Parse returns, so it may be shared
// across goroutines without locking.
package rpn
