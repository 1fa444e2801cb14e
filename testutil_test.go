package rootfind_test

import (
	"github.com/katalvlaran/rootfind"
)

// Shared fixtures: well-understood functions with known roots, used across
// the per-method suites so failures are comparable.

// linShift has the exactly representable root x = 2 inside [0,5].
func linShift(x float64) float64 { return x - 2 }

// cubic is x³ − x − 2 with a single real root inside [1,2].
func cubic(x float64) float64 { return x*x*x - x - 2 }

// cubicRoot is the real root of cubic to full float64 precision.
const cubicRoot = 1.5213797068045676

// tightOpts makes every method chase the root to near machine precision.
func tightOpts() []rootfind.Option {
	return []rootfind.Option{
		rootfind.WithFTol(1e-12),
		rootfind.WithRTol(1e-12),
		rootfind.WithATol(1e-12),
	}
}

// countingFunc wraps f and counts invocations, independently of the
// solver's own FuncEvals bookkeeping.
func countingFunc(f rootfind.Func, n *int) rootfind.Func {
	return func(x float64) float64 {
		*n++
		return f(x)
	}
}
