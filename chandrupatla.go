// Package rootfind - Chandrupatla's method.
//
// Chandrupatla reparametrizes the bracket: the trial point is always
// a + t·(b−a) with t ∈ (0,1), which makes the safeguard a pure clamp on t.
// Inverse quadratic interpolation supplies t only when the normalized
// geometry of the three tracked points admits it —
//
//	xi  = (a−b)/(c−b),  phi = (fa−fb)/(fc−fb),
//	1 − √(1−xi) < phi < √xi
//
// — otherwise the iteration bisects with t = 0.5. The accepted t is clamped
// into [tl, 1−tl], keeping every trial a tolerance away from both ends.
//
// Contracts:
//   - (ax,bx) oriented, fa·fb < 0; preflight already ran in the dispatcher.
//
// Convergence: |fm| ≤ FTol at the better endpoint, or tl > 0.5 where
// tl = (2·RTol·|xm| + ATol)/|b−c| — the bracket is too small to split.
//
// Complexity: O(MaxIter) time, O(1) space, one evaluation per iteration.
package rootfind

import "math"

// chandrupatla refines with t-parametrized IQI/bisection.
func chandrupatla(f Func, ax, bx, fax, fbx float64, o Options) Result {
	var (
		// a carries the newest point, b the opposite bracket end, c the
		// most recently discarded point.
		b, a    = ax, bx
		fb, fa  = fax, fbx
		c, fc   = a, fa
		t       = 0.5
		xt, ft  float64 // trial point
		xm, fm  float64 // better bracket endpoint
		tol, tl float64
		xi, phi float64
		res     Result
	)

	for i := 1; i <= o.MaxIter; i++ {
		res.Iterations = i

		xt = a + t*(b-a)
		ft = f(xt)

		if !oppositeSigns(ft, fa) {
			// Same side as a: a is discarded into c, b keeps the bracket.
			c, fc = a, fa
		} else {
			// Sign change between xt and a: rotate a into b, b into c.
			c, fc = b, fb
			b, fb = a, fa
		}
		a, fa = xt, ft

		if abs(fa) < abs(fb) {
			xm, fm = a, fa
		} else {
			xm, fm = b, fb
		}
		if abs(fm) <= o.FTol {
			res.XZero, res.FZero, res.Status = xm, fm, Success
			return res
		}

		tol = 2*o.RTol*abs(xm) + o.ATol
		tl = tol / abs(b-c)
		if tl > 0.5 {
			res.XZero, res.FZero, res.Status = xm, fm, Success
			return res
		}

		xi = (a - b) / (c - b)
		phi = (fa - fb) / (fc - fb)
		if 1-math.Sqrt(1-xi) < phi && phi < math.Sqrt(xi) {
			// Inverse quadratic interpolation expressed directly in t.
			t = fa/(fb-fa)*fc/(fb-fc) + (c-a)/(b-a)*fa/(fc-fa)*fb/(fc-fb)
		} else {
			t = 0.5
		}
		if t < tl {
			t = tl
		}
		if t > 1-tl {
			t = 1 - tl
		}
	}

	res.XZero, res.FZero, res.Status = xm, fm, MaxIterationsReached
	return res
}
