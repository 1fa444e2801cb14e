package rootfind_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rootfind"
)

func TestBrentFamily_LinearExact(t *testing.T) {
	for _, m := range []rootfind.Method{rootfind.Brenth, rootfind.Brentq} {
		m := m
		t.Run(m.String(), func(t *testing.T) {
			res, err := rootfind.Solve(m, linShift, 0, 5)
			require.NoError(t, err)
			assert.Equal(t, 2.0, res.XZero)
			assert.Equal(t, 0.0, res.FZero)
		})
	}
}

func TestBrentFamily_Exponential(t *testing.T) {
	f := func(x float64) float64 { return math.Exp(x) - 5 }
	for _, m := range []rootfind.Method{rootfind.Brenth, rootfind.Brentq} {
		m := m
		t.Run(m.String(), func(t *testing.T) {
			res, err := rootfind.Solve(m, f, 0, 3, tightOpts()...)
			require.NoError(t, err)
			assert.Equal(t, rootfind.Success, res.Status)
			assert.InDelta(t, math.Log(5), res.XZero, 1e-9)
		})
	}
}

// The two extrapolation rules take different paths but must agree on the
// root itself.
func TestBrentFamily_VariantsAgree(t *testing.T) {
	h, err := rootfind.Solve(rootfind.Brenth, cubic, 1, 2, tightOpts()...)
	require.NoError(t, err)
	q, err := rootfind.Solve(rootfind.Brentq, cubic, 1, 2, tightOpts()...)
	require.NoError(t, err)
	assert.InDelta(t, h.XZero, q.XZero, 1e-10)
	assert.InDelta(t, cubicRoot, q.XZero, 1e-10)
}
