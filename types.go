// Package rootfind core types and configuration for bracketed root solvers.
//
// Every solver consumes the same contract: a callable f, a bracket [ax,bx]
// with f(ax)·f(bx) < 0 (or one endpoint already within FTol of zero), and an
// Options value describing tolerances and the iteration ceiling. Every solver
// produces the same Result: the accepted abscissa, its function value, a
// Status from the closed taxonomy below, and iteration/evaluation counters.
//
// Tolerances:
//
//	– FTol    ≥ 0 — absolute tolerance on |f(x)|; any trial point with
//	   |f| ≤ FTol is accepted as a root immediately. Default 0 (exact zero).
//	– RTol    ≥ 0 — relative tolerance on x. Default DefaultRTol (1e-6).
//	– ATol    ≥ 0 — absolute tolerance on x. Default DefaultATol (1e-12).
//	   The two combine as RTol·|x| + ATol to decide when a bracket is tight.
//	– MaxIter ≥ 1 — hard iteration ceiling. Default DefaultMaxIter (2000).
//
// Errors (sentinel):
//
//	– ErrNilFunction       if the supplied callable is nil.
//	– ErrDegenerateInterval if ax == bx; no evaluation is performed.
//	– ErrNoSignChange      if f(ax) and f(bx) share a sign; no iteration runs.
//	– ErrMaxIterations     if the loop exhausted MaxIter before tolerance.
//	– ErrSingularity       on an algorithm-specific numerical degeneracy
//	   (zero discriminant in Ridders, zero leading coefficient in Muller).
//	– ErrInvalidMethod     if a method identifier is not recognized.
//
// Every failure is local and recoverable: retry with looser tolerances, a
// different bracket, or a different method. Nothing here panics on numeric
// input; a callable that returns NaN/Inf is a caller responsibility (loops
// stay iteration-bounded regardless).
package rootfind

import (
	"errors"
	"math"
)

// Sentinel errors returned by the solvers. Result.Status always agrees with
// the returned error (Success ⇔ nil); ErrNilFunction is the one refinement,
// reported under the InvalidMethod status with a more specific sentinel.
var (
	// ErrNilFunction indicates that a nil callable was passed to Solve.
	ErrNilFunction = errors.New("rootfind: function callable is nil")

	// ErrDegenerateInterval indicates ax == bx; there is no interval to search.
	ErrDegenerateInterval = errors.New("rootfind: degenerate interval: ax == bx")

	// ErrNoSignChange indicates f(ax) and f(bx) share a sign, so the
	// intermediate value theorem offers no root guarantee.
	ErrNoSignChange = errors.New("rootfind: f(ax) and f(bx) have the same sign")

	// ErrMaxIterations indicates the iteration ceiling was reached before any
	// tolerance was met; the best estimate so far is still returned.
	ErrMaxIterations = errors.New("rootfind: maximum iterations reached")

	// ErrSingularity indicates an algorithm-specific numerical degeneracy that
	// prevents further progress; the best estimate so far is still returned.
	ErrSingularity = errors.New("rootfind: numerical singularity encountered")

	// ErrInvalidMethod indicates an unrecognized method identifier.
	ErrInvalidMethod = errors.New("rootfind: invalid method identifier")
)

// Default tolerances and the default iteration ceiling, visible at call sites
// rather than buried in hidden state.
const (
	// DefaultFTol accepts only exact zeros of f unless loosened.
	DefaultFTol = 0.0

	// DefaultRTol is the default relative tolerance on the abscissa.
	DefaultRTol = 1e-6

	// DefaultATol is the default absolute tolerance on the abscissa.
	DefaultATol = 1e-12

	// DefaultMaxIter is the default hard iteration ceiling.
	DefaultMaxIter = 2000
)

// Func is the scalar callable being solved: ℝ → ℝ, evaluated any number of
// times inside [ax,bx]. The library never copies or mutates it and assumes it
// returns consistently for the same input (no memoization is performed).
type Func func(x float64) float64

// Status is the discriminated outcome of a solve call.
type Status int

const (
	// Success – a point with |f| ≤ FTol (or a bracket tighter than the mixed
	// x-tolerance) was found; XZero/FZero are valid.
	Success Status = iota

	// DegenerateInterval – ax == bx; no evaluation performed.
	DegenerateInterval

	// NoSignChange – f(ax) and f(bx) share a sign; no iteration attempted.
	NoSignChange

	// MaxIterationsReached – MaxIter exhausted; best estimate still returned.
	MaxIterationsReached

	// Singularity – algorithm-specific degeneracy; best estimate returned.
	Singularity

	// InvalidMethod – the dispatch facade received an unknown identifier.
	InvalidMethod
)

// String implements fmt.Stringer for diagnostics and test output.
func (s Status) String() string {
	switch s {
	case Success:
		return "success"
	case DegenerateInterval:
		return "degenerate interval"
	case NoSignChange:
		return "no sign change"
	case MaxIterationsReached:
		return "max iterations reached"
	case Singularity:
		return "singularity"
	case InvalidMethod:
		return "invalid method"
	default:
		return "unknown status"
	}
}

// sentinel maps a Status to its sentinel error (nil for Success).
func (s Status) sentinel() error {
	switch s {
	case Success:
		return nil
	case DegenerateInterval:
		return ErrDegenerateInterval
	case NoSignChange:
		return ErrNoSignChange
	case MaxIterationsReached:
		return ErrMaxIterations
	case Singularity:
		return ErrSingularity
	default:
		return ErrInvalidMethod
	}
}

// Result holds the outcome of a solve call.
type Result struct {
	// XZero is the accepted root abscissa (best estimate on failure).
	XZero float64

	// FZero is f(XZero) as last evaluated (NaN when f was never called,
	// e.g. on a degenerate interval).
	FZero float64

	// Status is the discriminated outcome code.
	Status Status

	// Iterations is the number of outer refinement iterations performed.
	// Preflight shortcuts (endpoint already within FTol) report 0.
	Iterations int

	// FuncEvals is the total number of times f was invoked, endpoint
	// evaluations included.
	FuncEvals int
}

// Options configures a solve call.
//
// FTol/RTol/ATol/MaxIter – see the package tolerances above.
// FAx/FBx – optional precomputed endpoint values f(ax)/f(bx); nil means
// "evaluate". Reusing known values saves evaluations when f is expensive.
type Options struct {
	FTol    float64  // absolute tolerance on |f(x)|
	RTol    float64  // relative tolerance on x
	ATol    float64  // absolute tolerance on x
	MaxIter int      // hard iteration ceiling
	FAx     *float64 // precomputed f(ax), or nil
	FBx     *float64 // precomputed f(bx), or nil
}

// Option is a functional option for configuring a solve call.
type Option func(*Options)

// WithFTol sets the absolute tolerance on |f(x)|.
// Negative inputs are silently made non-negative.
func WithFTol(ftol float64) Option {
	return func(o *Options) { o.FTol = ftol }
}

// WithRTol sets the relative tolerance on the abscissa.
// Negative inputs are silently made non-negative.
func WithRTol(rtol float64) Option {
	return func(o *Options) { o.RTol = rtol }
}

// WithATol sets the absolute tolerance on the abscissa.
// Negative inputs are silently made non-negative.
func WithATol(atol float64) Option {
	return func(o *Options) { o.ATol = atol }
}

// WithMaxIter sets the hard iteration ceiling. Negative inputs are made
// non-negative; anything below 1 falls back to DefaultMaxIter.
func WithMaxIter(n int) Option {
	return func(o *Options) { o.MaxIter = n }
}

// WithFA supplies a precomputed value of f(ax), skipping that endpoint
// evaluation during preflight.
func WithFA(fa float64) Option {
	return func(o *Options) { o.FAx = &fa }
}

// WithFB supplies a precomputed value of f(bx), skipping that endpoint
// evaluation during preflight.
func WithFB(fb float64) Option {
	return func(o *Options) { o.FBx = &fb }
}

// WithBracketValues supplies both precomputed endpoint values at once.
func WithBracketValues(fa, fb float64) Option {
	return func(o *Options) {
		o.FAx = &fa
		o.FBx = &fb
	}
}

// DefaultOptions returns an Options value with the package defaults. Use it
// as the starting point for direct field overrides; Solve applies Option
// functions on top of it.
func DefaultOptions() Options {
	return Options{
		FTol:    DefaultFTol,
		RTol:    DefaultRTol,
		ATol:    DefaultATol,
		MaxIter: DefaultMaxIter,
	}
}

// normalize absolute-values negative tolerance/iteration overrides and
// restores the MaxIter floor, mirroring the contract that malformed numeric
// configuration is repaired rather than rejected.
func (o *Options) normalize() {
	o.FTol = math.Abs(o.FTol)
	o.RTol = math.Abs(o.RTol)
	o.ATol = math.Abs(o.ATol)
	if o.MaxIter < 0 {
		o.MaxIter = -o.MaxIter
	}
	if o.MaxIter < 1 {
		o.MaxIter = DefaultMaxIter
	}
}

// xtol is the mixed abscissa tolerance RTol·|x| + ATol anchored at x.
func (o Options) xtol(x float64) float64 {
	return o.RTol*math.Abs(x) + o.ATol
}

// converged reports whether the bracket [x1,x2] is tight enough under the
// mixed tolerance anchored at x2.
func (o Options) converged(x1, x2 float64) bool {
	return math.Abs(x2-x1) <= o.xtol(x2)
}

// bestPoint returns whichever of the two points has the smaller |f|.
func bestPoint(x1, f1, x2, f2 float64) (float64, float64) {
	if math.Abs(f1) < math.Abs(f2) {
		return x1, f1
	}
	return x2, f2
}

// between reports whether x lies strictly between a and b (either order).
func between(x, a, b float64) bool {
	return (a < x && x < b) || (b < x && x < a)
}

// abs is a local shorthand for math.Abs in hot paths.
func abs(x float64) float64 {
	return math.Abs(x)
}

// nan marks "f was never evaluated here" in returned results.
func nan() float64 {
	return math.NaN()
}

// oppositeSigns reports a strict sign change between two function values.
// Sign bits are compared directly so that subnormal products cannot flush a
// genuine sign change to zero.
func oppositeSigns(f1, f2 float64) bool {
	return math.Signbit(f1) != math.Signbit(f2)
}
