package rootfind

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Newton on the quadratic through three exact samples of x²−4 is Newton on
// the function itself; three steps from the endpoint land near 2.
func TestNewtonQuadratic_ExactParabola(t *testing.T) {
	s := &toms748State{
		a: 1, b: 3, d: 5,
		fa: -3, fb: 5, fd: 21,
	}
	r := s.newtonQuadratic(3)
	assert.InDelta(t, 2.0, r, 1e-3)
	assert.Greater(t, r, s.a)
	assert.Less(t, r, s.b)
}

// Collinear samples collapse the quadratic to a secant step.
func TestNewtonQuadratic_CollinearSecant(t *testing.T) {
	s := &toms748State{
		a: 0, b: 5, d: 7,
		fa: -2, fb: 3, fd: 5,
	}
	assert.Equal(t, 2.0, s.newtonQuadratic(2))
}

// Four samples of a straight line make the inverse cubic interpolation
// exact.
func TestInversePolyZero_LinearData(t *testing.T) {
	got := inversePolyZero(1, 3, 0.5, 3.5, -1, 1, -1.5, 1.5)
	assert.InDelta(t, 2.0, got, 1e-12)
}

func TestPairwiseDistinct(t *testing.T) {
	assert.True(t, pairwiseDistinct(-1, 1, -2, 2))
	assert.False(t, pairwiseDistinct(-1, 1, -1, 2))
	assert.False(t, pairwiseDistinct(-1, 1, -2, -2))
}

func TestTOMS748_Sine(t *testing.T) {
	res, err := Solve(TOMS748, math.Sin, 2, 4,
		WithFTol(1e-12), WithRTol(1e-12), WithATol(1e-12))
	require.NoError(t, err)
	assert.Equal(t, Success, res.Status)
	assert.InDelta(t, math.Pi, res.XZero, 1e-9)
}

// A quintic with one real root in [1,2]; the composite interleaving of
// cubic, quadratic and double-secant substeps should need very few
// iterations.
func TestTOMS748_Quintic(t *testing.T) {
	f := func(x float64) float64 { return x*x*x*x*x - x - 1 }
	res, err := Solve(TOMS748, f, 1, 2,
		WithFTol(1e-12), WithRTol(1e-12), WithATol(1e-12))
	require.NoError(t, err)
	assert.Equal(t, Success, res.Status)
	assert.InDelta(t, 1.1673039782614187, res.XZero, 1e-9)
	assert.Less(t, res.Iterations, 15)
}
