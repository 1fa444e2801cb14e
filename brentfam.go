// Package rootfind - the brenth/brentq family.
//
// Both methods share one skeleton over three tracked points: xcur (best),
// xpre (previous) and xblk (the opposite bracket end). Whenever the two most
// recent values straddle zero, the pre point is promoted to blk so a genuine
// two-point bracket plus one historical point survives every iteration; and
// whenever |fblk| < |fcur| the roles of cur and blk swap so the current best
// estimate is always the one with the smaller |f|.
//
// The two variants differ only in the three-point extrapolation formula fed
// into the skeleton:
//
//	brenth: stry = −fcur·(fblk − fpre) / (fblk·dpre − fpre·dblk)
//	brentq: stry = −fcur·(fblk·dblk − fpre·dpre) / (dblk·dpre·(fblk − fpre))
//
// with dpre, dblk the secant slopes toward xcur. A trial step is taken only
// when twice its length stays under both the previous step and three
// bisection steps minus delta; otherwise the iteration bisects.
//
// Contracts:
//   - (ax,bx) oriented, fa·fb < 0; preflight already ran in the dispatcher.
//
// Convergence: f(xcur) == 0, |fcur| ≤ FTol, or |sbis| < delta with
// delta = (ATol + RTol·|xcur|)/2 and sbis the half-width toward xblk.
//
// Complexity: O(MaxIter) time, O(1) space, one evaluation per iteration.
package rootfind

import "math"

// brentExtrapolate computes the trial step from the three tracked values and
// the two secant slopes dpre, dblk.
type brentExtrapolate func(fpre, fcur, fblk, dpre, dblk float64) float64

// brenthExtrapolate is the hyperbolic extrapolation form.
func brenthExtrapolate(fpre, fcur, fblk, dpre, dblk float64) float64 {
	return -fcur * (fblk - fpre) / (fblk*dpre - fpre*dblk)
}

// brentqExtrapolate is the inverse-quadratic/secant extrapolation form.
func brentqExtrapolate(fpre, fcur, fblk, dpre, dblk float64) float64 {
	return -fcur * (fblk*dblk - fpre*dpre) / (dblk * dpre * (fblk - fpre))
}

// brentFamily runs the shared brenth/brentq skeleton with the supplied
// extrapolation formula.
func brentFamily(f Func, ax, bx, fa, fb float64, o Options, extrapolate brentExtrapolate) Result {
	var (
		xpre, xcur = ax, bx
		fpre, fcur = fa, fb
		xblk, fblk float64
		spre, scur float64 // previous and current step
		sbis       float64 // bisection step
		delta      float64 // per-iteration x-tolerance
		stry       float64 // extrapolated trial step
		dpre, dblk float64 // secant slopes toward xcur
		res        Result
	)

	for i := 1; i <= o.MaxIter; i++ {
		res.Iterations = i

		if fpre != 0 && fcur != 0 && oppositeSigns(fpre, fcur) {
			// The two newest values bracket the root: promote pre to blk.
			xblk, fblk = xpre, fpre
			spre = xcur - xpre
			scur = spre
		}
		if abs(fblk) < abs(fcur) {
			// Keep the best estimate in cur.
			xpre, xcur, xblk = xcur, xblk, xcur
			fpre, fcur, fblk = fcur, fblk, fcur
		}

		delta = 0.5 * (o.ATol + o.RTol*abs(xcur))
		sbis = 0.5 * (xblk - xcur)
		if fcur == 0 || abs(sbis) < delta {
			res.XZero, res.FZero, res.Status = xcur, fcur, Success
			return res
		}
		if abs(fcur) <= o.FTol {
			res.XZero, res.FZero, res.Status = xcur, fcur, Success
			return res
		}

		if abs(spre) > delta && abs(fcur) < abs(fpre) {
			if xpre == xblk {
				// Only two distinct points: secant.
				stry = -fcur * (xcur - xpre) / (fcur - fpre)
			} else {
				dpre = (fpre - fcur) / (xpre - xcur)
				dblk = (fblk - fcur) / (xblk - xcur)
				stry = extrapolate(fpre, fcur, fblk, dpre, dblk)
			}
			if 2*abs(stry) < math.Min(abs(spre), 3*abs(sbis)-delta) {
				// Accept the extrapolated step.
				spre, scur = scur, stry
			} else {
				spre, scur = sbis, sbis
			}
		} else {
			spre, scur = sbis, sbis
		}

		xpre, fpre = xcur, fcur
		if abs(scur) > delta {
			xcur += scur
		} else if sbis > 0 {
			xcur += delta
		} else {
			xcur -= delta
		}
		fcur = f(xcur)
	}

	res.XZero, res.FZero, res.Status = xcur, fcur, MaxIterationsReached
	return res
}
