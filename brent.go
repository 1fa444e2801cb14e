// Package rootfind - Brent's method (the classic zeroin).
//
// At every step three abscissas are tracked:
//
//	b — the latest and best approximation to the root
//	a — the previous approximation
//	c — an earlier approximation chosen so that |f(b)| ≤ |f(c)| and f(b),
//	    f(c) have opposite signs, i.e. b and c confine the root
//
// Each iteration chooses between the bisection midpoint of [b,c] and an
// interpolated point (linear when a == c, inverse quadratic when all three
// differ). The interpolation is accepted only when its step is smaller than
// three-quarters of the bracket and smaller than half the previous step;
// otherwise the bisection result is used. That guardrail is what gives the
// method guaranteed convergence with a superlinear tail.
//
// Contracts:
//   - (ax,bx) oriented, fa·fb < 0; preflight already ran in the dispatcher.
//
// Convergence: |(c−b)/2| ≤ tol1 with tol1 = 2·eps·|b| + RTol/2, f(b) == 0,
// or |f(b)| ≤ FTol. The loop terminates through the x-tolerance on its own;
// MaxIter is a belt-and-braces ceiling.
//
// Complexity: O(MaxIter) time, O(1) space, one evaluation per iteration.
package rootfind

import "math"

// machEps is the distance from 1.0 to the next float64.
var machEps = math.Nextafter(1.0, 2.0) - 1.0

// brentClassic runs the zeroin blend of interpolation and bisection.
func brentClassic(f Func, ax, bx, fa, fb float64, o Options) Result {
	var (
		a, b, c    = ax, bx, ax
		fA, fB, fC = fa, fb, fa
		d, e       float64 // current and previous step
		tol1, xm   float64
		p, q, r, s float64 // interpolation scratch
		res        Result
	)
	d = b - a
	e = d

	for i := 1; i <= o.MaxIter; i++ {
		res.Iterations = i

		if (fB > 0) == (fC > 0) {
			// b and c stopped confining the root: rebuild c from a.
			c, fC = a, fA
			d = b - a
			e = d
		}
		if abs(fC) < abs(fB) {
			// Keep b the best approximation.
			a, b, c = b, c, b
			fA, fB, fC = fB, fC, fB
		}

		tol1 = 2*machEps*abs(b) + 0.5*o.RTol
		xm = 0.5 * (c - b)
		if abs(xm) <= tol1 || fB == 0 {
			res.XZero, res.FZero, res.Status = b, fB, Success
			return res
		}
		if abs(fB) <= o.FTol {
			res.XZero, res.FZero, res.Status = b, fB, Success
			return res
		}

		if abs(e) >= tol1 && abs(fA) > abs(fB) {
			s = fB / fA
			if a == c {
				// Linear interpolation.
				p = 2 * xm * s
				q = 1 - s
			} else {
				// Inverse quadratic interpolation.
				q = fA / fC
				r = fB / fC
				p = s * (2*xm*q*(q-r) - (b-a)*(r-1))
				q = (q - 1) * (r - 1) * (s - 1)
			}
			if p > 0 {
				q = -q
			}
			p = abs(p)
			if 2*p < math.Min(3*xm*q-abs(tol1*q), abs(e*q)) {
				// Interpolation is within bounds: take it.
				e = d
				d = p / q
			} else {
				d = xm
				e = d
			}
		} else {
			d = xm
			e = d
		}

		a, fA = b, fB
		if abs(d) > tol1 {
			b += d
		} else {
			b += math.Copysign(tol1, xm)
		}
		fB = f(b)
	}

	res.XZero, res.FZero, res.Status = b, fB, MaxIterationsReached
	return res
}
