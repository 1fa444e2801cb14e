// Package rootfind - TOMS748-style composite interpolation solver.
//
// The most elaborate method in the package. Four points are tracked: the
// enclosing bracket [a,b], the most recently discarded point d, and the one
// discarded before that, e. Every outer iteration runs a multi-phase
// protocol:
//
//  1. recompute the termination tolerance from whichever endpoint carries
//     the smaller |f|;
//  2. build a candidate root — rational (cubic) inverse interpolation
//     through all four points when fa, fb, fd, fe are pairwise distinct,
//     falling back to safeguarded Newton steps on the quadratic through
//     (a,b,d) when they are not or when the cubic lands outside (a,b);
//  3. push the candidate through the bracket helper, which clamps it a
//     tolerance away from both ends, evaluates f, and shrinks [a,b] to the
//     half that still carries the sign change, recording the discarded end
//     as the new d;
//  4. repeat 2–3 once more (two interpolation sub-steps per iteration, the
//     second with one extra Newton step), then take a double-length secant
//     step from the better endpoint, clamped to half the bracket;
//  5. if all of that failed to halve the bracket, force one bisection
//     sub-step.
//
// Every sub-step may terminate the whole procedure early, either on
// |f| ≤ FTol at the trial or on the bracket width dropping under tolerance.
// The interpolation phases buy superlinear convergence; the bisection
// backstop guarantees termination.
//
// Contracts:
//   - (ax,bx) oriented, fa·fb < 0; preflight already ran in the dispatcher.
//
// Complexity: O(MaxIter) outer iterations, three to four evaluations each,
// O(1) space.
package rootfind

import "math"

// toms748State carries the four tracked points between sub-steps.
type toms748State struct {
	f      Func
	o      Options
	a, b   float64 // current enclosing bracket
	fa, fb float64
	d, fd  float64 // most recently discarded point
	e, fe  float64 // the discarded point before d
	haveE  bool    // e is meaningful only from the second iteration on
}

// tol is the termination tolerance anchored at the endpoint with smaller |f|.
func (s *toms748State) tol() float64 {
	u := s.a
	if abs(s.fb) < abs(s.fa) {
		u = s.b
	}
	return s.o.xtol(u)
}

// bracket clamps c into the interior, evaluates it, and shrinks [a,b] to the
// half still carrying the sign change; the discarded endpoint becomes d.
// It reports a terminal Result when the trial hits FTol or the bracket drops
// under tolerance.
func (s *toms748State) bracket(c float64) (Result, bool) {
	tol := s.tol()
	switch {
	case s.b-s.a <= 2*tol:
		c = s.a + 0.5*(s.b-s.a)
	case c <= s.a+tol:
		c = s.a + tol
	case c >= s.b-tol:
		c = s.b - tol
	}

	fc := s.f(c)
	if abs(fc) <= s.o.FTol {
		return Result{XZero: c, FZero: fc, Status: Success}, true
	}

	if oppositeSigns(s.fa, fc) {
		// Root confined to [a,c]: b is discarded.
		s.d, s.fd = s.b, s.fb
		s.b, s.fb = c, fc
	} else {
		// Root confined to [c,b]: a is discarded.
		s.d, s.fd = s.a, s.fa
		s.a, s.fa = c, fc
	}

	if s.b-s.a <= s.tol() {
		x, fx := bestPoint(s.a, s.fa, s.b, s.fb)
		return Result{XZero: x, FZero: fx, Status: Success}, true
	}
	return Result{}, false
}

// newtonQuadratic applies k safeguarded Newton steps to the quadratic
// through (a,fa), (b,fb), (d,fd) and returns the resulting abscissa,
// falling back to the midpoint whenever a step escapes the bracket.
func (s *toms748State) newtonQuadratic(k int) float64 {
	var (
		a, b, d    = s.a, s.b, s.d
		fa, fb, fd = s.fa, s.fb, s.fd
		// Divided differences: P(x) = fa + B·(x−a) + A·(x−a)(x−b).
		B = (fb - fa) / (b - a)
		A = ((fd-fb)/(d-b) - B) / (d - a)
	)

	if A == 0 {
		// The three points are collinear: plain secant.
		return a - fa/B
	}

	// Start from the endpoint on the convex side so Newton is monotone.
	r := b
	if A*fa > 0 {
		r = a
	}
	for i := 0; i < k; i++ {
		p := (A*(r-b)+B)*(r-a) + fa
		dp := B + A*(2*r-a-b)
		r1 := r - p/dp
		if !(a < r1 && r1 < b) {
			if a < r && r < b {
				return r
			}
			return 0.5 * (a + b)
		}
		r = r1
	}
	return r
}

// inversePolyZero evaluates the rational (cubic) inverse interpolation of
// zero through four points, treating f as the independent variable.
func inversePolyZero(a, b, d, e, fa, fb, fd, fe float64) float64 {
	q11 := (d - e) * fd / (fe - fd)
	q21 := (b - d) * fb / (fd - fb)
	q31 := (a - b) * fa / (fb - fa)
	d21 := (b - d) * fd / (fd - fb)
	d31 := (a - b) * fb / (fb - fa)
	q22 := (d21 - q11) * fb / (fe - fb)
	q32 := (d31 - q21) * fa / (fd - fa)
	d32 := (d31 - q21) * fd / (fd - fa)
	q33 := (d32 - q22) * fa / (fe - fa)

	return a + (q31 + q32 + q33)
}

// pairwiseDistinct reports whether the four function values are suitable for
// the cubic inverse interpolation (any tie degenerates its denominators).
func pairwiseDistinct(fa, fb, fd, fe float64) bool {
	return fa != fb && fa != fd && fa != fe && fb != fd && fb != fe && fd != fe
}

// toms748 runs the composite interpolation protocol.
func toms748(f Func, ax, bx, fa, fb float64, o Options) Result {
	s := &toms748State{f: f, o: o, a: ax, b: bx, fa: fa, fb: fb}
	var res Result

	// Startup: a plain secant step seeds d.
	res.Iterations = 1
	c := s.a - s.fa/(s.fb-s.fa)*(s.b-s.a)
	if !(s.a < c && c < s.b) {
		c = 0.5 * (s.a + s.b)
	}
	if r, done := s.bracket(c); done {
		r.Iterations = res.Iterations
		return r
	}

	for i := 2; i <= o.MaxIter; i++ {
		res.Iterations = i
		width := s.b - s.a

		// Phase 1+2: two interpolation sub-steps, the second with one more
		// safeguarded Newton iteration than the first.
		for nsteps := 2; nsteps <= 3; nsteps++ {
			interpolated := false
			if s.haveE && pairwiseDistinct(s.fa, s.fb, s.fd, s.fe) {
				c = inversePolyZero(s.a, s.b, s.d, s.e, s.fa, s.fb, s.fd, s.fe)
				interpolated = s.a < c && c < s.b
			}
			if !interpolated {
				c = s.newtonQuadratic(nsteps)
			}
			s.e, s.fe = s.d, s.fd
			s.haveE = true
			if r, done := s.bracket(c); done {
				r.Iterations = i
				return r
			}
		}

		// Phase 3: double-length secant from the better endpoint, clamped to
		// half the bracket.
		u, fu := s.a, s.fa
		if abs(s.fb) < abs(s.fa) {
			u, fu = s.b, s.fb
		}
		c = u - 2*fu*(s.b-s.a)/(s.fb-s.fa)
		if math.IsNaN(c) || abs(c-u) > 0.5*(s.b-s.a) {
			c = 0.5 * (s.a + s.b)
		}
		s.e, s.fe = s.d, s.fd
		if r, done := s.bracket(c); done {
			r.Iterations = i
			return r
		}

		// Phase 4: force a bisection sub-step unless the bracket halved.
		if s.b-s.a >= 0.5*width {
			s.e, s.fe = s.d, s.fd
			if r, done := s.bracket(0.5 * (s.a + s.b)); done {
				r.Iterations = i
				return r
			}
		}
	}

	res.XZero, res.FZero = bestPoint(s.a, s.fa, s.b, s.fb)
	res.Status = MaxIterationsReached
	return res
}
