package integrate

import "errors"

var (
	// ErrNilExpression is returned when a nil expression tree is supplied.
	ErrNilExpression = errors.New("integrate: expression is nil")

	// ErrIntervalFormat indicates the interval string is not of the
	// form "[<start> ; <end>]" with two decimal literals.
	ErrIntervalFormat = errors.New("integrate: malformed interval")

	// ErrIntervalUndefined indicates the literal empty interval "[ ; ]".
	ErrIntervalUndefined = errors.New("integrate: interval is not defined")

	// ErrNonFiniteBound indicates an interval bound that is NaN or ±Inf.
	ErrNonFiniteBound = errors.New("integrate: interval bound is not finite")

	// ErrDegenerateInterval indicates Start == End; the integral over
	// [c ; c] is defined to be zero and is rejected rather than computed.
	ErrDegenerateInterval = errors.New("integrate: degenerate interval")

	// ErrRefinementRange indicates a partition count outside
	// [MinRefinement ; MaxRefinement].  Out-of-range values are rejected,
	// never clamped.
	ErrRefinementRange = errors.New("integrate: refinement out of range")

	// ErrStepNotPositive indicates a non-positive extremum probe step.
	ErrStepNotPositive = errors.New("integrate: step must be positive")
)
