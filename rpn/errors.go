package rpn

import "errors"

var (
	// ErrExpressionTooLong indicates the raw expression exceeds MaxExpressionLen.
	ErrExpressionTooLong = errors.New("rpn: expression exceeds maximum length")

	// ErrEmptyExpression indicates the token stream produced no tree at all.
	ErrEmptyExpression = errors.New("rpn: expression is empty")

	// ErrUnknownToken indicates a token that is not the variable, an operator,
	// a function name, or a finite numeric literal.
	ErrUnknownToken = errors.New("rpn: unknown token")

	// ErrMissingOperand indicates an operator or function found the operand
	// stack empty (stack underflow — too few operands for the operators).
	ErrMissingOperand = errors.New("rpn: missing operand")

	// ErrUnbalanced indicates the operand stack held more than one tree after
	// all tokens were consumed (too many operands for the operators).
	ErrUnbalanced = errors.New("rpn: unbalanced expression")
)
