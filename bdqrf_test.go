package rootfind_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rootfind"
)

// The quadratic fitted through a linear function degenerates cleanly and the
// very first corrected step lands on the root.
func TestBDQRF_LinearExact(t *testing.T) {
	res, err := rootfind.Solve(rootfind.BDQRF, linShift, 0, 5)
	require.NoError(t, err)
	assert.Equal(t, 2.0, res.XZero)
	assert.Equal(t, 0.0, res.FZero)
	assert.Equal(t, 1, res.Iterations)
}

func TestBDQRF_Cubic(t *testing.T) {
	res, err := rootfind.Solve(rootfind.BDQRF, cubic, 1, 2, tightOpts()...)
	require.NoError(t, err)
	assert.Equal(t, rootfind.Success, res.Status)
	assert.InDelta(t, cubicRoot, res.XZero, 1e-9)
	assert.Less(t, res.Iterations, 20)
}

func TestBDQRF_Sine(t *testing.T) {
	res, err := rootfind.Solve(rootfind.BDQRF, math.Sin, 2, 4,
		rootfind.WithFTol(1e-12))
	require.NoError(t, err)
	assert.Equal(t, rootfind.Success, res.Status)
	assert.InDelta(t, math.Pi, res.XZero, 1e-9)
}
