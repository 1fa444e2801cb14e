package rootfind_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rootfind"
)

func TestMuller_Sine(t *testing.T) {
	res, err := rootfind.Solve(rootfind.Muller, math.Sin, 2, 4)
	require.NoError(t, err)
	assert.Equal(t, rootfind.Success, res.Status)
	assert.InDelta(t, math.Pi, res.XZero, 1e-5)
}

func TestMuller_LinearExact(t *testing.T) {
	res, err := rootfind.Solve(rootfind.Muller, linShift, 0, 5)
	require.NoError(t, err)
	assert.Equal(t, 2.0, res.XZero)
	assert.Equal(t, 0.0, res.FZero)
}

// TestMuller_FlatSingularity: once three samples share one value the fitted
// quadratic has neither curvature nor slope. Supplied endpoint values fake
// the sign change so the refiner is reached at all.
func TestMuller_FlatSingularity(t *testing.T) {
	f := func(x float64) float64 { return 1.0 }
	res, err := rootfind.Solve(rootfind.Muller, f, 0, 1,
		rootfind.WithBracketValues(-1, 1))
	assert.ErrorIs(t, err, rootfind.ErrSingularity)
	assert.Equal(t, rootfind.Singularity, res.Status)
}
