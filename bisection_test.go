package rootfind_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rootfind"
)

func TestBisection_SimpleRoot(t *testing.T) {
	f := func(x float64) float64 { return x*x - 2 }
	res, err := rootfind.Solve(rootfind.Bisection, f, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, rootfind.Success, res.Status)
	assert.InDelta(t, math.Sqrt2, res.XZero, 1e-5)
}

// TestBisection_ExactMidpoint: the very first midpoint is the root, so the
// FTol acceptance fires after one iteration and three evaluations.
func TestBisection_ExactMidpoint(t *testing.T) {
	f := func(x float64) float64 { return x }
	res, err := rootfind.Solve(rootfind.Bisection, f, -1, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.XZero)
	assert.Equal(t, 0.0, res.FZero)
	assert.Equal(t, 1, res.Iterations)
	assert.Equal(t, 3, res.FuncEvals)
}

// TestBisection_EvalAccounting: one evaluation per iteration plus the two
// endpoint probes.
func TestBisection_EvalAccounting(t *testing.T) {
	f := func(x float64) float64 { return x*x - 2 }
	res, err := rootfind.Solve(rootfind.Bisection, f, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, res.Iterations+2, res.FuncEvals)
}
