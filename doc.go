// Package rootfind locates roots of continuous scalar functions inside a
// bracketing interval — from plain bisection to TOMS748-grade composite
// interpolation, behind one uniform solver contract.
//
// 🚀 What is rootfind?
//
//	A deterministic, dependency-free library that gathers the classic
//	bracketing root solvers under a single Solve call:
//	  • Bisection         — guaranteed linear convergence, the baseline
//	  • Anderson–Björck   — damped false position, superlinear
//	  • Pegasus           — false position with the Pegasus correction
//	  • Ridders           — exponential (√-based) three-point extrapolation
//	  • BDQRF             — bisected direct quadratic regula falsi
//	  • Muller            — three-point quadratic with both-roots probing
//	  • Brent             — the classic zeroin blend (IQI + bisection)
//	  • Brenth / Brentq   — hyperbolic / quadratic extrapolation skeletons
//	  • Chandrupatla      — t-parametrized IQI with a validity window
//	  • TOMS748           — 4-point cubic/quadratic composite protocol
//
// ✨ Why choose rootfind?
//
//   - One contract – every method consumes a sign-changing bracket [ax,bx]
//     and returns (XZero, FZero, Status) plus iteration/evaluation counts
//   - Strict sentinels – every failure is a comparable error, never a panic
//   - Deterministic – pure functions in, bit-identical results out
//   - Pure Go – no cgo, no hidden deps
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/rootfind"
//
//	f := func(x float64) float64 { return x*x*x - x - 2 }
//	res, err := rootfind.Solve(rootfind.Brent, f, 1, 2)
//	if err != nil {
//	    // handle ErrNoSignChange, ErrMaxIterations, …
//	}
//	fmt.Println("root:", res.XZero)
//
// Method identifiers are also available as case-insensitive strings through
// SolveNamed ("brentq", "anderson_bjorck", "toms748", …), which is the only
// place any case folding happens.
//
// Tolerances combine as rtol·|x| + atol on the abscissa, with an optional
// absolute FTol on |f(x)|; defaults are DefaultRTol, DefaultATol and
// DefaultMaxIter. Callers that already know f(ax) or f(bx) can hand the
// values over with WithFA / WithFB and skip the redundant evaluations.
//
// Concurrency: a solve call is synchronous and touches no shared state, so
// independent calls may run on independent goroutines freely; Options values
// are plain data and safe to share read-only.
package rootfind
