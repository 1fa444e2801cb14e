// Package rootfind - false-position refiners (Anderson–Björck and Pegasus).
//
// Both methods take the secant step between the two retained endpoints and
// then repair the well-known stagnation of plain regula falsi: when the new
// point lands on the same side as the retained endpoint, that endpoint's
// *secant weight* is damped instead of left untouched, so the stale endpoint
// keeps losing pull and the bracket keeps shrinking.
//
//   - Anderson–Björck damps with g = 1 − f3/f2 (or 0.5 whenever g ≤ 0).
//   - Pegasus damps with the factor f2/(f2 + f3).
//
// The damped weight is pure bookkeeping for the secant slope; the true
// function value at the retained point is tracked separately and is the only
// thing ever reported in a Result. Both damping factors are strictly
// positive, so the weight never changes sign and the bracket invariant
// fa·fb < 0 survives every update. Repeated damping can still underflow the
// weight to zero, which would collapse the secant onto the retained
// endpoint; any trial that is not strictly interior to the bracket is
// replaced by the midpoint.
//
// Contracts:
//   - (ax,bx) oriented, fa·fb < 0; preflight already ran in the dispatcher.
//
// Convergence: a trial |f| ≤ FTol, or |x2−x1| ≤ |x2|·RTol + ATol.
//
// Complexity: O(MaxIter) time, O(1) space, one evaluation per iteration.
package rootfind

// andersonBjorck runs damped false position with the Anderson–Björck
// correction factor.
func andersonBjorck(f Func, ax, bx, fa, fb float64, o Options) Result {
	var (
		x1, x2 = ax, bx // retained bracket endpoints
		f1, f2 = fa, fb // true function values at the endpoints
		w1     = fa     // damped secant weight at x1
		x3, f3 float64  // secant trial point
		g      float64  // damping factor
		res    Result
	)

	for i := 1; i <= o.MaxIter; i++ {
		res.Iterations = i

		// Secant step anchored at the most recent point. A degenerate step
		// (underflown weight collapsing the trial onto an endpoint) falls
		// back to the midpoint.
		x3 = x2 - f2*(x2-x1)/(f2-w1)
		if !between(x3, x1, x2) {
			x3 = 0.5 * (x1 + x2)
		}
		f3 = f(x3)
		if abs(f3) <= o.FTol {
			res.XZero, res.FZero, res.Status = x3, f3, Success
			return res
		}

		if oppositeSigns(f2, f3) {
			// The sign change moved: the previous point becomes the far end
			// with its weight reset to the true value.
			x1, f1, w1 = x2, f2, f2
		} else {
			// Same side: damp the weight so the far end cannot go stale.
			g = 1.0 - f3/f2
			if g <= 0 {
				g = 0.5
			}
			w1 *= g
		}
		x2, f2 = x3, f3

		if o.converged(x1, x2) {
			res.XZero, res.FZero = bestPoint(x1, f1, x2, f2)
			res.Status = Success
			return res
		}
	}

	res.XZero, res.FZero = bestPoint(x1, f1, x2, f2)
	res.Status = MaxIterationsReached
	return res
}

// pegasus runs false position with the Pegasus damping of the retained
// weight.
func pegasus(f Func, ax, bx, fa, fb float64, o Options) Result {
	var (
		x1, x2 = ax, bx
		f1, f2 = fa, fb
		w1     = fa
		x3, f3 float64
		res    Result
	)

	for i := 1; i <= o.MaxIter; i++ {
		res.Iterations = i

		// Secant step anchored at the far end, midpoint fallback as above.
		x3 = x1 - w1*(x2-x1)/(f2-w1)
		if !between(x3, x1, x2) {
			x3 = 0.5 * (x1 + x2)
		}
		f3 = f(x3)
		if abs(f3) <= o.FTol {
			res.XZero, res.FZero, res.Status = x3, f3, Success
			return res
		}

		if oppositeSigns(f2, f3) {
			x1, f1, w1 = x2, f2, f2
		} else {
			// f2 and f3 share a sign here, so the denominator cannot vanish
			// and the factor stays in (0,1): the sign of w1 is preserved.
			w1 = w1 * f2 / (f2 + f3)
		}
		x2, f2 = x3, f3

		if o.converged(x1, x2) {
			res.XZero, res.FZero = bestPoint(x1, f1, x2, f2)
			res.Status = Success
			return res
		}
	}

	res.XZero, res.FZero = bestPoint(x1, f1, x2, f2)
	res.Status = MaxIterationsReached
	return res
}
