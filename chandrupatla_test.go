package rootfind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rootfind"
)

func TestChandrupatla_LinearExact(t *testing.T) {
	res, err := rootfind.Solve(rootfind.Chandrupatla, linShift, 0, 5)
	require.NoError(t, err)
	assert.Equal(t, 2.0, res.XZero)
	assert.Equal(t, 0.0, res.FZero)
}

func TestChandrupatla_Cubic(t *testing.T) {
	res, err := rootfind.Solve(rootfind.Chandrupatla, cubic, 1, 2, tightOpts()...)
	require.NoError(t, err)
	assert.Equal(t, rootfind.Success, res.Status)
	assert.InDelta(t, cubicRoot, res.XZero, 1e-9)
	assert.Less(t, res.Iterations, 30)
}

// Outside the interpolation validity window the step must fall back to
// bisection, which is what carries it through a multiple root.
func TestChandrupatla_TripleRoot(t *testing.T) {
	f := func(x float64) float64 { return x * x * x }
	res, err := rootfind.Solve(rootfind.Chandrupatla, f, -1, 2)
	require.NoError(t, err)
	assert.Equal(t, rootfind.Success, res.Status)
	assert.InDelta(t, 0.0, res.XZero, 1e-4)
}
