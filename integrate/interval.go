package integrate

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Interval is an ordered pair of finite bounds.  Start > End is legal and
// means integration in the descending direction; the orchestrator swaps
// the bounds and negates the result (∫[a,b] f = −∫[b,a] f).
type Interval struct {
	Start float64
	End   float64
}

// ParseInterval parses the textual form "[<start> ; <end>]" with a
// locale-independent floating-point scan.
//
// Errors:
//   - ErrIntervalUndefined — the literal empty interval "[ ; ]".
//   - ErrIntervalFormat    — missing brackets, missing separator, or a
//     bound that is not a decimal literal.
//   - ErrNonFiniteBound    — a bound parsed to NaN or ±Inf.
func ParseInterval(s string) (Interval, error) {
	s = strings.TrimSpace(s)
	if s == "[ ; ]" {
		return Interval{}, ErrIntervalUndefined
	}
	if !strings.HasPrefix(s, "[") || !strings.HasSuffix(s, "]") {
		return Interval{}, fmt.Errorf("%w: %q", ErrIntervalFormat, s)
	}

	parts := strings.Split(s[1:len(s)-1], ";")
	if len(parts) != 2 {
		return Interval{}, fmt.Errorf("%w: %q", ErrIntervalFormat, s)
	}

	start, err := parseBound(parts[0])
	if err != nil {
		return Interval{}, err
	}
	end, err := parseBound(parts[1])
	if err != nil {
		return Interval{}, err
	}

	return Interval{Start: start, End: end}, nil
}

// parseBound scans one decimal bound, rejecting non-finite values.
func parseBound(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bound %q", ErrIntervalFormat, raw)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: bound %q", ErrNonFiniteBound, raw)
	}

	return v, nil
}

// String renders the interval back to its textual form.
func (iv Interval) String() string {
	return fmt.Sprintf("[%s ; %s]",
		strconv.FormatFloat(iv.Start, 'g', -1, 64),
		strconv.FormatFloat(iv.End, 'g', -1, 64))
}

// Length is End − Start; negative for descending intervals.
func (iv Interval) Length() float64 { return iv.End - iv.Start }

// validate rejects non-finite and degenerate bounds before any summation.
func (iv Interval) validate() error {
	if math.IsNaN(iv.Start) || math.IsInf(iv.Start, 0) ||
		math.IsNaN(iv.End) || math.IsInf(iv.End, 0) {
		return fmt.Errorf("%w: %v", ErrNonFiniteBound, iv)
	}
	if iv.Start == iv.End {
		return fmt.Errorf("%w: integrating over [c ; c] is defined to be 0",
			ErrDegenerateInterval)
	}

	return nil
}

// normalized returns the ascending form of the interval and whether the
// original direction was descending (the caller must negate the sums).
func (iv Interval) normalized() (lo, hi float64, negate bool) {
	if iv.Start > iv.End {
		return iv.End, iv.Start, true
	}

	return iv.Start, iv.End, false
}
