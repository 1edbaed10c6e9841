package rpn_test

import (
	"testing"

	"github.com/katalvlaran/darboux/rpn"
)

// benchmarkEvaluate parses expression once and evaluates it b.N times.
func benchmarkEvaluate(b *testing.B, expression string) {
	expr, err := rpn.Parse(expression)
	if err != nil {
		b.Fatalf("Parse failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rpn.Evaluate(expr, float64(i))
	}
}

// BenchmarkParse_Polynomial benchmarks parsing a mid-size polynomial.
func BenchmarkParse_Polynomial(b *testing.B) {
	const expression = "x 3 ^ 2 x 2 ^ * - x 5 * + 7 -"
	for i := 0; i < b.N; i++ {
		if _, err := rpn.Parse(expression); err != nil {
			b.Fatalf("Parse failed: %v", err)
		}
	}
}

// BenchmarkEvaluate_Linear benchmarks the cheapest interesting tree.
func BenchmarkEvaluate_Linear(b *testing.B) {
	benchmarkEvaluate(b, "x 2 *")
}

// BenchmarkEvaluate_Trigonometric benchmarks a function-heavy tree, the
// shape that dominates the integration hot loop.
func BenchmarkEvaluate_Trigonometric(b *testing.B) {
	benchmarkEvaluate(b, "x sin x cos * x tg +")
}
