// Package rpn defines the expression tree node variants and the fixed
// operator/function vocabularies recognized by the parser.
package rpn

import (
	"math"
	"strconv"
)

// MaxExpressionLen bounds the raw integrand string accepted by Parse.
const MaxExpressionLen = 100

// VariableName is the single variable identifier recognized by the parser.
const VariableName = "x"

// Node is the closed interface implemented by the four expression tree
// variants: *Variable, *Number, *Function and *Operator.
//
// Trees are acyclic and single-owner: a node is pushed only after all of
// its children are fully built, and no node is ever shared between two
// parents.  A tree is immutable once Parse returns.
type Node interface {
	// Eval computes the node's value for the variable sample point x.
	Eval(x float64) float64

	// String renders the subtree back to space-separated postfix tokens.
	String() string

	isNode()
}

// Variable is a reference to the single recognized variable; it evaluates
// to the externally supplied sample point.
type Variable struct {
	Name string
}

// Number is a finite numeric literal; it evaluates to itself.
type Number struct {
	Value float64
}

// Function applies one of the six built-in unary functions to its argument.
type Function struct {
	Name string
	ID   FuncID
	Arg  Node
}

// Operator combines its two operands with one of the five arithmetic
// operators.  Left and Right are evaluated left-then-right; the order
// matters for -, / and ^.
type Operator struct {
	Op    Op
	Left  Node
	Right Node
}

func (*Variable) isNode() {}
func (*Number) isNode()   {}
func (*Function) isNode() {}
func (*Operator) isNode() {}

// FuncID enumerates the six built-in unary functions.  Function tokens are
// resolved to a FuncID exactly once, at parse time, through the fixed name
// table; evaluation dispatches on the ID, never on the name string.
type FuncID int

const (
	// FuncSin is the sine of an angle in radians ("sin").
	FuncSin FuncID = iota
	// FuncCos is the cosine of an angle in radians ("cos").
	FuncCos
	// FuncTan is the tangent of an angle in radians ("tg").
	FuncTan
	// FuncCot is the cotangent, 1/tan(x) ("ctg").
	FuncCot
	// FuncLn is the natural logarithm ("ln").
	FuncLn
	// FuncExp is the exponential e^x ("exp").
	FuncExp
)

// functions maps the fixed set of function names to their identifiers.
var functions = map[string]FuncID{
	"sin": FuncSin,
	"cos": FuncCos,
	"tg":  FuncTan,
	"ctg": FuncCot,
	"ln":  FuncLn,
	"exp": FuncExp,
}

// apply computes the function value.  No domain checks: ln(-1) is NaN,
// ctg(0) is ±Inf, and both propagate to the caller.
func (id FuncID) apply(x float64) float64 {
	switch id {
	case FuncSin:
		return math.Sin(x)
	case FuncCos:
		return math.Cos(x)
	case FuncTan:
		return math.Tan(x)
	case FuncCot:
		return 1 / math.Tan(x)
	case FuncLn:
		return math.Log(x)
	case FuncExp:
		return math.Exp(x)
	default:
		return math.NaN()
	}
}

// Op enumerates the five binary operators.
type Op int

const (
	// OpAdd is addition ("+").
	OpAdd Op = iota
	// OpSub is subtraction ("-").
	OpSub
	// OpMul is multiplication ("*").
	OpMul
	// OpDiv is division ("/").
	OpDiv
	// OpPow is general real exponentiation ("^").
	OpPow
)

// operators maps the five operator symbols to their identifiers.  Lookup is
// exact-match: a token is an operator only if it equals one of these keys.
var operators = map[string]Op{
	"+": OpAdd,
	"-": OpSub,
	"*": OpMul,
	"/": OpDiv,
	"^": OpPow,
}

// Symbol returns the single-character token for the operator.
func (op Op) Symbol() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpPow:
		return "^"
	default:
		return "?"
	}
}

// String renders the variable token.
func (v *Variable) String() string { return v.Name }

// String renders the literal with the shortest round-trippable form.
func (n *Number) String() string {
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

// String renders the subtree back to postfix: "<arg> <name>".
func (f *Function) String() string { return f.Arg.String() + " " + f.Name }

// String renders the subtree back to postfix: "<left> <right> <symbol>".
func (o *Operator) String() string {
	return o.Left.String() + " " + o.Right.String() + " " + o.Op.Symbol()
}

// CountNodes returns the number of nodes in the subtree rooted at n.
// A nil node counts as zero.  For a tree built from a well-formed postfix
// string the count equals the token count.
func CountNodes(n Node) int {
	switch t := n.(type) {
	case nil:
		return 0
	case *Function:
		return 1 + CountNodes(t.Arg)
	case *Operator:
		return 1 + CountNodes(t.Left) + CountNodes(t.Right)
	default:
		return 1
	}
}
