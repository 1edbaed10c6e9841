package integrate_test

import (
	"testing"

	"github.com/katalvlaran/darboux/integrate"
	"github.com/katalvlaran/darboux/rpn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustParse is a test helper that parses expression or fails the test.
func mustParse(t *testing.T, expression string) rpn.Node {
	t.Helper()
	expr, err := rpn.Parse(expression)
	require.NoError(t, err, "expression %q must parse", expression)

	return expr
}

// TestExtremum_NilExpression ensures a nil tree is a typed precondition
// violation, not a crash.
func TestExtremum_NilExpression(t *testing.T) {
	_, err := integrate.Extremum(nil, 0, 1, 1e-3, integrate.Supremum)
	assert.ErrorIs(t, err, integrate.ErrNilExpression)
}

// TestExtremum_Constant verifies both scan kinds agree on a constant.
func TestExtremum_Constant(t *testing.T) {
	expr := mustParse(t, "4")

	inf, err := integrate.Extremum(expr, 0, 1, 1e-3, integrate.Infimum)
	require.NoError(t, err)
	sup, err := integrate.Extremum(expr, 0, 1, 1e-3, integrate.Supremum)
	require.NoError(t, err)

	assert.Equal(t, 4.0, inf)
	assert.Equal(t, 4.0, sup)
}

// TestExtremum_Monotonic checks that for an increasing function the
// infimum sits at the left edge and the supremum near the right edge.
func TestExtremum_Monotonic(t *testing.T) {
	expr := mustParse(t, "x")

	inf, err := integrate.Extremum(expr, 0, 1, 1e-3, integrate.Infimum)
	require.NoError(t, err)
	sup, err := integrate.Extremum(expr, 0, 1, 1e-3, integrate.Supremum)
	require.NoError(t, err)

	assert.Equal(t, 0.0, inf, "infimum of x on [0,1] is the first sample")
	assert.InDelta(t, 1.0, sup, 2e-3, "supremum of x on [0,1] is near the last sample")
}

// TestExtremum_InteriorMinimum checks the probe finds an extremum that
// sits strictly inside the scanned range.
func TestExtremum_InteriorMinimum(t *testing.T) {
	expr := mustParse(t, "x x *") // x², minimum 0 at the interior point 0

	inf, err := integrate.Extremum(expr, -1, 1, 1e-3, integrate.Infimum)
	require.NoError(t, err)
	sup, err := integrate.Extremum(expr, -1, 1, 1e-3, integrate.Supremum)
	require.NoError(t, err)

	assert.InDelta(t, 0.0, inf, 1e-5, "minimum of x² on [-1,1]")
	assert.InDelta(t, 1.0, sup, 1e-2, "maximum of x² on [-1,1]")
}

// TestExtremum_InfimumNeverAboveSupremum is the ordering property over a
// mix of shapes: both kinds scan the same sample grid, so inf ≤ sup.
func TestExtremum_InfimumNeverAboveSupremum(t *testing.T) {
	for _, expression := range []string{"x sin", "x x * 1 -", "x exp", "x ctg"} {
		expr := mustParse(t, expression)

		inf, err := integrate.Extremum(expr, 0.1, 2, 1e-3, integrate.Infimum)
		require.NoError(t, err)
		sup, err := integrate.Extremum(expr, 0.1, 2, 1e-3, integrate.Supremum)
		require.NoError(t, err)

		assert.LessOrEqual(t, inf, sup, "expression %q", expression)
	}
}
