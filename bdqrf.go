// Package rootfind - bisected direct quadratic regula falsi (BDQRF).
//
// Each iteration bisects the bracket, fits the exact quadratic through the
// two bracket ends and the midpoint, and solves for the root nearer the
// midpoint with the numerically stable form of the quadratic formula
// (multiplying through by the conjugate so the small root never suffers
// cancellation). The bisection sample and the quadratic trial both update
// the tracked "down" (f < 0) and "up" (f ≥ 0) points, so the bracket at
// least halves every iteration while the quadratic supplies the speed.
//
// Contracts:
//   - (ax,bx) oriented, fa·fb < 0; preflight already ran in the dispatcher.
//
// Convergence: a trial |f| ≤ FTol, or the quadratic estimate repeating
// exactly — the precision limit of float64, nothing further can improve.
//
// Complexity: O(MaxIter) time, O(1) space, two evaluations per iteration.
package rootfind

import "math"

// bdqrf refines the bracket with bisection plus direct quadratic steps.
func bdqrf(f Func, ax, bx, fa, fb float64, o Options) Result {
	var (
		xdn, ydn float64 // tracked point with f < 0
		xup, yup float64 // tracked point with f ≥ 0
		xm, ym   float64 // bisection sample
		x2, y2   float64 // quadratic trial
		d        float64 // signed half-width
		a2, b2   float64 // quadratic and linear coefficients at the midpoint
		disc, q  float64 // discriminant and stable-formula denominator
		prev     = math.NaN()
		res      Result
	)

	if fa < 0 {
		xdn, ydn, xup, yup = ax, fa, bx, fb
	} else {
		xdn, ydn, xup, yup = bx, fb, ax, fa
	}

	for i := 1; i <= o.MaxIter; i++ {
		res.Iterations = i

		xm = 0.5 * (xdn + xup)
		ym = f(xm)
		if abs(ym) <= o.FTol {
			res.XZero, res.FZero, res.Status = xm, ym, Success
			return res
		}

		// Quadratic through (xdn,ydn), (xm,ym), (xup,yup) in the local
		// coordinate t = x − xm: a2·t² + b2·t + ym.
		d = 0.5 * (xup - xdn)
		a2 = (yup + ydn - 2*ym) / (2 * d * d)
		b2 = (yup - ydn) / (2 * d)

		// b2 cannot vanish: yup and ydn straddle zero, so yup − ydn ≠ 0.
		disc = b2*b2 - 4*a2*ym
		if disc < 0 {
			disc = 0 // roundoff below the representable discriminant
		}
		q = b2 + math.Copysign(math.Sqrt(disc), b2)
		x2 = xm - 2*ym/q

		// Fold the bisection sample into the bracket before the trial so the
		// interval halves even when the quadratic step is poor.
		if ym < 0 {
			xdn, ydn = xm, ym
		} else {
			xup, yup = xm, ym
		}

		y2 = f(x2)
		if abs(y2) <= o.FTol {
			res.XZero, res.FZero, res.Status = x2, y2, Success
			return res
		}
		if x2 == prev {
			// Exact stagnation: float64 cannot separate successive trials.
			res.XZero, res.FZero, res.Status = x2, y2, Success
			return res
		}
		prev = x2

		if y2 < 0 {
			xdn, ydn = x2, y2
		} else {
			xup, yup = x2, y2
		}
	}

	res.XZero, res.FZero = bestPoint(xdn, ydn, xup, yup)
	res.Status = MaxIterationsReached
	return res
}
