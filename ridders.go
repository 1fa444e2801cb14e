// Package rootfind - Ridders' method.
//
// Ridders' method evaluates the midpoint of the bracket and applies an
// exponential correction: the three values (fl, fm, fh) are treated as
// samples of f(x)·e^{qx}, which turns the midpoint residual into the
// extrapolation
//
//	xnew = xm + (xm − xl) · sign(fl − fh) · fm / √(fm² − fl·fh)
//
// The radicand is strictly positive for a genuine bracket, so the step is
// always real and always lands inside it; convergence is quadratic at the
// cost of two evaluations per iteration. If the radicand flushes to exactly
// zero (subnormal function values), no direction can be extracted and the
// method reports Singularity with the midpoint as the best estimate.
//
// Contracts:
//   - (ax,bx) oriented, fa·fb < 0; preflight already ran in the dispatcher.
//
// Convergence: a trial |f| ≤ FTol, successive estimates closer than the
// mixed x-tolerance, or the bracket itself tighter than the tolerance.
//
// Complexity: O(MaxIter) time, O(1) space, two evaluations per iteration.
package rootfind

import "math"

// ridders refines the bracket with midpoint + exponential extrapolation.
func ridders(f Func, ax, bx, fa, fb float64, o Options) Result {
	var (
		xl, xh   = ax, bx      // current bracket
		fl, fh   = fa, fb      // values at the bracket ends
		ans      = math.NaN()  // previous extrapolated estimate (NaN: none yet)
		fans     float64       // value at ans
		xm, fm   float64       // midpoint sample
		s, denom float64       // radicand and its square root
		dir      float64       // sign(fl - fh)
		res      Result
	)

	for i := 1; i <= o.MaxIter; i++ {
		res.Iterations = i

		xm = 0.5 * (xl + xh)
		fm = f(xm)
		if abs(fm) <= o.FTol {
			res.XZero, res.FZero, res.Status = xm, fm, Success
			return res
		}

		s = fm*fm - fl*fh
		denom = math.Sqrt(s)
		if denom == 0 {
			// fm² = fl·fh exactly: the discriminant vanished and the
			// extrapolation direction is undefined.
			res.XZero, res.FZero, res.Status = xm, fm, Singularity
			return res
		}

		dir = 1.0
		if fl < fh {
			dir = -1.0
		}
		xnew := xm + (xm-xl)*dir*fm/denom

		// Two successive estimates within tolerance of each other.
		if !math.IsNaN(ans) && abs(xnew-ans) <= o.xtol(ans) {
			res.XZero, res.FZero, res.Status = ans, fans, Success
			return res
		}
		ans = xnew
		fans = f(ans)
		if abs(fans) <= o.FTol {
			res.XZero, res.FZero, res.Status = ans, fans, Success
			return res
		}

		// Re-bracket using whichever pair still straddles the root.
		switch {
		case oppositeSigns(fm, fans):
			xl, fl = xm, fm
			xh, fh = ans, fans
		case oppositeSigns(fl, fans):
			xh, fh = ans, fans
		default:
			xl, fl = ans, fans
		}

		if o.converged(xl, xh) {
			res.XZero, res.FZero = bestPoint(xl, fl, xh, fh)
			res.Status = Success
			return res
		}
	}

	res.XZero, res.FZero = bestPoint(xl, fl, xh, fh)
	res.Status = MaxIterationsReached
	return res
}
