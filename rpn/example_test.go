package rpn_test

import (
	"fmt"

	"github.com/katalvlaran/darboux/rpn"
)

// ExampleParse demonstrates building a tree from postfix tokens and
// evaluating it at a sample point.
//
// Scenario:
//
//	"x 2 ^ 1 +" is x²+1 in postfix.  At x=3 it evaluates to 10.
func ExampleParse() {
	expr, err := rpn.Parse("x 2 ^ 1 +")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("nodes=%d value=%v\n", rpn.CountNodes(expr), rpn.Evaluate(expr, 3))
	// Output:
	// nodes=5 value=10
}

// ExampleParse_malformed shows the typed errors surfaced for malformed
// postfix input instead of terminating the process.
func ExampleParse_malformed() {
	_, err := rpn.Parse("1 2")
	fmt.Println(err)

	_, err = rpn.Parse("2 +")
	fmt.Println(err)
	// Output:
	// rpn: unbalanced expression: 2 operands left on the stack
	// rpn: missing operand: "+" has no operand to consume
}

// ExampleEvaluate demonstrates evaluating the same immutable tree at
// several sample points.
func ExampleEvaluate() {
	expr, _ := rpn.Parse("x x * x -") // x² - x
	for _, x := range []float64{0, 1, 2, 3} {
		fmt.Println(rpn.Evaluate(expr, x))
	}
	// Output:
	// 0
	// 0
	// 2
	// 6
}
