// Package rootfind - unified dispatcher for bracketed root solvers.
//
// This file provides the canonical entry points:
//
//   - Solve: accept a Method, run the shared preflight (degenerate interval,
//     endpoint shortcuts, sign check, orientation), then route to the chosen
//     refinement procedure.
//   - SolveNamed: accept a case-insensitive method identifier string, fold it
//     to a Method, and delegate to Solve. This is the only place any case
//     folding of identifiers occurs.
//
// Design principles:
//   - Deterministic: pure function in, bit-identical Result out.
//   - Strict sentinels: only errors from types.go; no fmt.Errorf anywhere.
//   - Shared contract: every refiner receives an oriented bracket (a,b,fa,fb)
//     with fa·fb < 0 and honors FTol acceptance, the sign-change invariant
//     and the MaxIter ceiling; preflight failures never reach a refiner.
//   - Observability: function evaluations are counted through one wrapper and
//     reported in Result.FuncEvals alongside Result.Iterations.
package rootfind

import "strings"

// Method selects one of the refinement algorithms.
type Method int

const (
	// Bisection halves the bracket each step. Slow, unconditionally safe.
	Bisection Method = iota

	// AndersonBjorck runs damped false position (secant with the
	// Anderson–Björck correction factor on the retained endpoint).
	AndersonBjorck

	// Pegasus runs false position with the Pegasus damping of the retained
	// function value.
	Pegasus

	// Ridders extrapolates exponentially from three points per step.
	Ridders

	// BDQRF is the bisected direct quadratic regula falsi.
	BDQRF

	// Muller fits a quadratic through the three most recent points and probes
	// both of its roots.
	Muller

	// Brent is the classic zeroin blend of inverse quadratic interpolation
	// and bisection.
	Brent

	// Brenth is the Brent skeleton with hyperbolic extrapolation.
	Brenth

	// Brentq is the Brent skeleton with quadratic/secant extrapolation.
	Brentq

	// Chandrupatla evaluates at a + t·(b−a) with t chosen by inverse
	// quadratic interpolation inside a validity window, else bisection.
	Chandrupatla

	// TOMS748 is the composite 4-point cubic/quadratic interpolation solver.
	TOMS748
)

// canonical identifier for each Method, index-aligned with the constants.
var methodNames = [...]string{
	Bisection:      "bisection",
	AndersonBjorck: "anderson_bjorck",
	Pegasus:        "pegasus",
	Ridders:        "ridders",
	BDQRF:          "bdqrf",
	Muller:         "muller",
	Brent:          "brent",
	Brenth:         "brenth",
	Brentq:         "brentq",
	Chandrupatla:   "chandrupatla",
	TOMS748:        "toms748",
}

// String returns the canonical lower-case identifier of the method.
func (m Method) String() string {
	if m < Bisection || m > TOMS748 {
		return "invalid"
	}
	return methodNames[m]
}

// Methods returns all supported methods in stable declaration order.
func Methods() []Method {
	out := make([]Method, 0, len(methodNames))
	for m := Bisection; m <= TOMS748; m++ {
		out = append(out, m)
	}
	return out
}

// ParseMethod folds name to lower case and resolves it to a Method.
// Both "anderson_bjorck" and "anderson-bjorck" are accepted.
// Unknown identifiers yield ErrInvalidMethod.
func ParseMethod(name string) (Method, error) {
	folded := strings.ToLower(strings.TrimSpace(name))
	if folded == "anderson-bjorck" {
		folded = "anderson_bjorck"
	}
	for m := Bisection; m <= TOMS748; m++ {
		if methodNames[m] == folded {
			return m, nil
		}
	}
	return Bisection, ErrInvalidMethod
}

// SolveNamed resolves a case-insensitive method identifier and delegates to
// Solve. Unknown identifiers return the InvalidMethod status without ever
// invoking f.
func SolveNamed(name string, f Func, ax, bx float64, opts ...Option) (Result, error) {
	m, err := ParseMethod(name)
	if err != nil {
		return Result{XZero: nan(), FZero: nan(), Status: InvalidMethod}, err
	}
	return Solve(m, f, ax, bx, opts...)
}

// Solve finds a root of f inside [ax,bx] with the chosen method.
//
// Preflight, in order:
//  1. reject unknown methods and nil callables without touching f;
//  2. ax == bx fails with DegenerateInterval; no evaluation occurs;
//  3. fa comes from WithFA when supplied, else from f — reusing known
//     endpoint values is deliberate, f may be expensive; |fa| ≤ FTol returns
//     (ax, fa) immediately, before f(bx) is resolved at all;
//  4. fb is then resolved the same way; |fb| ≤ FTol returns (bx, fb);
//  5. fa and fb sharing a sign fails with NoSignChange; no iteration runs;
//  6. the interval is oriented so the lower bound comes first, then the
//     refinement procedure runs and its result is returned verbatim.
//
// The error is the sentinel matching a non-Success status; the Result always
// carries the best estimate and the iteration/evaluation counters.
func Solve(m Method, f Func, ax, bx float64, opts ...Option) (Result, error) {
	if m < Bisection || m > TOMS748 {
		return Result{XZero: nan(), FZero: nan(), Status: InvalidMethod}, ErrInvalidMethod
	}
	if f == nil {
		return Result{XZero: nan(), FZero: nan(), Status: InvalidMethod}, ErrNilFunction
	}

	o := DefaultOptions()
	var opt Option // applied in declaration order; later options win
	for _, opt = range opts {
		opt(&o)
	}
	o.normalize()

	if ax == bx {
		return Result{XZero: ax, FZero: nan(), Status: DegenerateInterval}, ErrDegenerateInterval
	}

	// Count every invocation of f through one wrapper so refiners stay free
	// of bookkeeping.
	evals := 0
	call := func(x float64) float64 {
		evals++
		return f(x)
	}

	// Trivial root at ax, checked before f(bx) is ever resolved: with a
	// supplied endpoint value the whole call can finish without touching f.
	fa := 0.0
	if o.FAx != nil {
		fa = *o.FAx
	} else {
		fa = call(ax)
	}
	if abs(fa) <= o.FTol {
		return Result{XZero: ax, FZero: fa, Status: Success, FuncEvals: evals}, nil
	}

	fb := 0.0
	if o.FBx != nil {
		fb = *o.FBx
	} else {
		fb = call(bx)
	}
	if abs(fb) <= o.FTol {
		return Result{XZero: bx, FZero: fb, Status: Success, FuncEvals: evals}, nil
	}

	if !oppositeSigns(fa, fb) {
		x, fx := bestPoint(ax, fa, bx, fb)
		return Result{XZero: x, FZero: fx, Status: NoSignChange, FuncEvals: evals}, ErrNoSignChange
	}

	// Orient the bracket so the lower bound is passed first.
	if ax > bx {
		ax, bx = bx, ax
		fa, fb = fb, fa
	}

	var res Result
	switch m {
	case Bisection:
		res = bisect(call, ax, bx, fa, fb, o)
	case AndersonBjorck:
		res = andersonBjorck(call, ax, bx, fa, fb, o)
	case Pegasus:
		res = pegasus(call, ax, bx, fa, fb, o)
	case Ridders:
		res = ridders(call, ax, bx, fa, fb, o)
	case BDQRF:
		res = bdqrf(call, ax, bx, fa, fb, o)
	case Muller:
		res = muller(call, ax, bx, fa, fb, o)
	case Brent:
		res = brentClassic(call, ax, bx, fa, fb, o)
	case Brenth:
		res = brentFamily(call, ax, bx, fa, fb, o, brenthExtrapolate)
	case Brentq:
		res = brentFamily(call, ax, bx, fa, fb, o, brentqExtrapolate)
	case Chandrupatla:
		res = chandrupatla(call, ax, bx, fa, fb, o)
	case TOMS748:
		res = toms748(call, ax, bx, fa, fb, o)
	}
	res.FuncEvals = evals

	return res, res.Status.sentinel()
}
