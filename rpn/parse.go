package rpn

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Parse — postfix expression → expression tree
//
// Description:
//
//	Parse consumes a string of space-separated postfix tokens and builds
//	the corresponding expression tree in one linear pass, using a local
//	operand stack.
//
// Algorithm Outline:
//  1. Trim leading/trailing whitespace; reject strings longer than
//     MaxExpressionLen.
//  2. Split into tokens on whitespace.
//  3. For each token, in order:
//     - variable identifier → push a Variable node
//     - one of "+ - * / ^"  → pop right, pop left, push an Operator node
//     - one of the six function names → pop the argument, push a Function
//     - otherwise parse as a float64 literal → push a Number node;
//     a token that is neither is ErrUnknownToken.
//  4. After the last token the stack must hold exactly one node — the root.
//     An empty stack is ErrEmptyExpression; depth > 1 is ErrUnbalanced.
//
// The operand stack grows on demand, so there is no artificial overflow
// ceiling; underflow (an operator with too few operands) is the only
// stack-shape error.
//
// Complexity:
//
//	Time   = O(tokens)
//	Memory = O(tokens)
//
// Errors:
//   - ErrExpressionTooLong — raw string exceeds MaxExpressionLen.
//   - ErrEmptyExpression   — no tokens, or tokens produced no tree.
//   - ErrUnknownToken      — unrecognized or non-finite token.
//   - ErrMissingOperand    — operator/function popped an empty stack.
//   - ErrUnbalanced        — more than one tree left on the stack.
func Parse(expression string) (Node, error) {
	expression = strings.TrimSpace(expression)
	if len(expression) > MaxExpressionLen {
		return nil, fmt.Errorf("%w: %d characters (limit %d)",
			ErrExpressionTooLong, len(expression), MaxExpressionLen)
	}

	var stack []Node
	for _, token := range strings.Fields(expression) {
		node, err := buildNode(token, &stack)
		if err != nil {
			return nil, err
		}
		stack = append(stack, node)
	}

	switch len(stack) {
	case 0:
		return nil, ErrEmptyExpression
	case 1:
		return stack[0], nil
	default:
		return nil, fmt.Errorf("%w: %d operands left on the stack",
			ErrUnbalanced, len(stack))
	}
}

// buildNode classifies one token and assembles its node, popping any
// operands the token requires.
func buildNode(token string, stack *[]Node) (Node, error) {
	if token == VariableName {
		return &Variable{Name: token}, nil
	}

	if op, ok := operators[token]; ok {
		// First pop is the right operand, second the left.
		right, err := pop(stack, token)
		if err != nil {
			return nil, err
		}
		left, err := pop(stack, token)
		if err != nil {
			return nil, err
		}
		return &Operator{Op: op, Left: left, Right: right}, nil
	}

	if id, ok := functions[token]; ok {
		arg, err := pop(stack, token)
		if err != nil {
			return nil, err
		}
		return &Function{Name: token, ID: id, Arg: arg}, nil
	}

	value, err := strconv.ParseFloat(token, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownToken, token)
	}
	return &Number{Value: value}, nil
}

// pop removes and returns the top operand, reporting which token was short
// of operands when the stack is empty.
func pop(stack *[]Node, token string) (Node, error) {
	s := *stack
	if len(s) == 0 {
		return nil, fmt.Errorf("%w: %q has no operand to consume",
			ErrMissingOperand, token)
	}
	top := s[len(s)-1]
	*stack = s[:len(s)-1]

	return top, nil
}
