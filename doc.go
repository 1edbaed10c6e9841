// Package darboux computes definite integrals of single-variable real
// functions written in Reverse Polish Notation, bracketing the result
// between lower and upper Darboux sums.
//
// 🚀 What is darboux?
//
//	A small numerical-integration toolkit that brings together:
//		• RPN parsing: postfix token strings → immutable expression trees
//		• Evaluation: recursive float64 tree walk with six built-in functions
//		• Riemann sums: left-endpoint sampling over a uniform partition
//		• Darboux sums: per-subinterval infimum/supremum grid probes
//		• Interval handling: [a ; b] parsing, direction normalization
//		• Journaling: a flat text log of past integrands and intervals
//
// ✨ Why choose darboux?
//
//   - Three independent estimators – their spread bounds the error
//   - Typed errors – malformed input never terminates your process
//   - Pure Go – no cgo, no hidden deps
//   - Cancellable – context-aware summation loops for large refinements
//
// Under the hood, everything is organized under three subpackages:
//
//	rpn/       — tokenizer, stack-based tree builder & recursive evaluator
//	integrate/ — extremum finder, summation engine & orchestrator
//	journal/   — persisted log of integrand/interval pairs
//
// Quick example:
//
//	expr, _ := rpn.Parse("x sin")
//	iv, _ := integrate.ParseInterval("[0 ; 3.14159]")
//	res, _ := integrate.Integrate(expr, iv)
//	// res.Lower ≤ true integral ≤ res.Upper (up to grid-probe error)
//
// The interactive front-end lives in cmd/darboux; see each package's
// doc.go for full contracts, edge cases and complexity notes.
//
//	go get github.com/katalvlaran/darboux
package darboux
