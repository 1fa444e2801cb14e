// Package rootfind - bisection refiner.
//
// Bisection halves the bracket every iteration and keeps whichever half still
// carries the sign change. It never extrapolates, so it converges linearly
// and unconditionally; every other method in this package is measured against
// it.
//
// Contracts:
//   - (ax,bx) oriented, fa·fb < 0; preflight already ran in the dispatcher.
//
// Convergence: |x2−x1| ≤ |x2|·RTol + ATol, or a trial |f| ≤ FTol.
//
// Complexity: O(MaxIter) time, O(1) space, exactly one evaluation per
// iteration.
package rootfind

// bisect performs classic interval halving on the oriented bracket.
func bisect(f Func, ax, bx, fa, fb float64, o Options) Result {
	var (
		x1, x2 = ax, bx // current bracket endpoints
		f1, f2 = fa, fb // function values at the endpoints
		x3, f3 float64  // trial midpoint and its value
		res    Result
	)

	for i := 1; i <= o.MaxIter; i++ {
		res.Iterations = i

		x3 = 0.5 * (x1 + x2)
		f3 = f(x3)
		if abs(f3) <= o.FTol {
			res.XZero, res.FZero, res.Status = x3, f3, Success
			return res
		}

		// Keep the half that still brackets the root.
		if oppositeSigns(f1, f3) {
			x2, f2 = x3, f3
		} else {
			x1, f1 = x3, f3
		}

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
