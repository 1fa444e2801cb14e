// Package rootfind - Muller's method.
//
// Muller's method fits the exact quadratic through the three most recent
// points (via divided differences) and steps to one of its roots. Instead of
// the textbook choice of the root nearer the current vertex, both real roots
// are probed and whichever lands closer to a zero of f — the smaller |f| —
// wins; the triple then rotates and the point with the smallest |f| is kept
// as the new vertex. Complex root pairs are flattened to the real point of
// tangency by clamping the discriminant at zero.
//
// Muller does not maintain a sign-changing bracket: the three points are
// free-floating history, which is what buys its superlinear convergence and
// what makes its degeneracies explicit failure modes rather than fallbacks.
//
// Contracts:
//   - (ax,bx) oriented, fa·fb < 0; preflight already ran in the dispatcher.
//
// Convergence: a trial |f| ≤ FTol, the step shorter than ATol, or the step
// shorter than RTol times the running average of the three abscissas.
//
// Failure: a flat quadratic (both leading coefficients zero) or a vanishing
// denominator is Singularity; the iteration ceiling is MaxIterationsReached.
//
// Complexity: O(MaxIter) time, O(1) space, up to two evaluations per
// iteration (both candidate roots).
package rootfind

import "math"

// muller refines with three-point quadratic interpolation.
func muller(f Func, ax, bx, fa, fb float64, o Options) Result {
	var (
		x0, x2 = ax, bx // oldest and newest abscissas
		f0, f2 = fa, fb
		x1     = 0.5 * (ax + bx) // interior starting point
		f1     float64
		res    Result
	)

	f1 = f(x1)
	if abs(f1) <= o.FTol {
		res.XZero, res.FZero, res.Status = x1, f1, Success
		return res
	}
	// The vertex (x2) carries the smallest |f| of the pair it can see.
	if abs(f1) < abs(f2) {
		x1, x2 = x2, x1
		f1, f2 = f2, f1
	}

	var (
		h1, h2, d1, d2 float64 // divided-difference scaffolding
		qa, qb, qc     float64 // quadratic coefficients around the vertex
		disc, sq       float64
		den1, den2     float64
		xn, fn         float64 // accepted trial
		r1, r2, g1, g2 float64 // both candidate roots and their values
	)

	for i := 1; i <= o.MaxIter; i++ {
		res.Iterations = i

		h1 = x1 - x0
		h2 = x2 - x1
		if h1 == 0 || h2 == 0 || h1+h2 == 0 {
			// Two abscissas collapsed: the interpolant is not a function of
			// three points anymore.
			res.XZero, res.FZero, res.Status = x2, f2, Singularity
			return res
		}
		d1 = (f1 - f0) / h1
		d2 = (f2 - f1) / h2
		qa = (d2 - d1) / (h2 + h1)
		qb = qa*h2 + d2
		qc = f2

		if qa == 0 && qb == 0 {
			// Flat through all three points: zero leading coefficient with no
			// linear term to fall back on.
			res.XZero, res.FZero, res.Status = x2, f2, Singularity
			return res
		}

		disc = qb*qb - 4*qa*qc
		if disc < 0 {
			disc = 0 // complex pair: step to the real point of tangency
		}
		sq = math.Sqrt(disc)
		den1 = qb + sq
		den2 = qb - sq

		switch {
		case den1 == 0 && den2 == 0:
			res.XZero, res.FZero, res.Status = x2, f2, Singularity
			return res
		case den1 == 0:
			xn = x2 - 2*qc/den2
			fn = f(xn)
		case den2 == 0:
			xn = x2 - 2*qc/den1
			fn = f(xn)
		default:
			// Probe both roots; the one nearer a zero of f wins.
			r1 = x2 - 2*qc/den1
			r2 = x2 - 2*qc/den2
			g1 = f(r1)
			g2 = f(r2)
			if abs(g1) <= abs(g2) {
				xn, fn = r1, g1
			} else {
				xn, fn = r2, g2
			}
		}

		if abs(fn) <= o.FTol {
			res.XZero, res.FZero, res.Status = xn, fn, Success
			return res
		}

		step := xn - x2
		avg := (x0 + x1 + x2) / 3
		if abs(step) <= o.ATol || abs(step) <= o.RTol*abs(avg) {
			res.XZero, res.FZero, res.Status = xn, fn, Success
			return res
		}

		// Rotate history and keep the best point as the vertex.
		x0, f0 = x1, f1
		x1, f1 = x2, f2
		x2, f2 = xn, fn
		if abs(f1) < abs(f2) {
			x1, x2 = x2, x1
			f1, f2 = f2, f1
		}
	}

	res.XZero, res.FZero, res.Status = x2, f2, MaxIterationsReached
	return res
}
