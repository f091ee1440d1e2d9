package rootfind

import "errors"

// Sentinel errors returned by the root-finding solvers.
//
// Configuration errors (detected before any function evaluation):
//
//	– ErrNonPositiveTolerance   if FTol or XTol is not strictly positive.
//	– ErrInitialPointsTooClose  if Both=false and |b−a| ≤ XTol, so neither
//	  stopping predicate could ever be meaningful.
//	– ErrContractionFactorRange if ContractionFactor lies outside [0.5, 1.0].
//	– ErrNegativeBisectionSteps if BisectionSteps < 0.
//
// Precondition errors (detected after evaluating f at the two starting
// points; those evaluations are required for the check):
//
//	– ErrNoBracket if the solver needs f(a) and f(b) to have opposite signs
//	  and they do not (Bisection always; FindRoot when BisectionSteps > 0).
//
// Runtime errors:
//
//	– ErrVanishingSlope  if the secant slope stays below MinSlope even after
//	  the one-shot repair shift and the interval has not collapsed.
//	– ErrIterationLimit  if the step count exceeds MaxSteps.
//
// Runtime errors are wrapped with step/limit detail; match them with
// errors.Is.
var (
	// ErrNonPositiveTolerance indicates that FTol or XTol was zero or negative.
	ErrNonPositiveTolerance = errors.New("rootfind: ftol and xtol must be positive")

	// ErrInitialPointsTooClose indicates that Both=false was combined with
	// starting points closer together than XTol.
	ErrInitialPointsTooClose = errors.New("rootfind: when Both is false, a and b must differ by more than xtol")

	// ErrContractionFactorRange indicates a ContractionFactor outside [0.5, 1.0].
	ErrContractionFactorRange = errors.New("rootfind: contraction factor must be in the interval [0.5, 1.0]")

	// ErrNegativeBisectionSteps indicates a negative BisectionSteps count.
	ErrNegativeBisectionSteps = errors.New("rootfind: BisectionSteps must be a non-negative integer")

	// ErrNoBracket indicates that f(a) and f(b) do not have opposite signs
	// although the chosen solver (or option combination) requires a bracket.
	ErrNoBracket = errors.New("rootfind: f(a) and f(b) must have opposite signs")

	// ErrVanishingSlope indicates that the secant slope is numerically
	// indistinguishable from zero and the repair shift did not help.
	ErrVanishingSlope = errors.New("rootfind: slope too close to zero")

	// ErrIterationLimit indicates that MaxSteps iterations elapsed without
	// satisfying the convergence predicate.
	ErrIterationLimit = errors.New("rootfind: iteration limit reached")
)

// Func is the scalar function under test: an opaque real→real mapping.
// The solvers assume it is deterministic and side-effect free; they invoke
// it serially and count every call.
type Func func(x float64) float64

// TraceFunc receives diagnostic messages (convergence summaries, bisection
// switch notices, anomaly reports). It replaces console printing so callers
// and tests can capture the trace. A nil TraceFunc disables tracing.
type TraceFunc func(format string, args ...any)

// ObserveFunc receives the iterate pair after each completed step:
// step index, the older abscissa a with f(a), and the newer abscissa b
// with f(b). Useful for asserting invariants such as bracket preservation.
// A nil ObserveFunc disables observation.
type ObserveFunc func(step int, a, fa, b, fb float64)

// Options configures a solver invocation.
//
// FTol, XTol         – convergence thresholds; both must be > 0.
// Both               – true: stop when |c−b| ≤ XTol AND |f(c)| ≤ FTol;
//
//	false: stop when either predicate holds.
//
// MaxSteps           – iteration ceiling; exceeding it yields ErrIterationLimit.
// MinSlope           – smallest |slope| considered usable by the secant-family
//
//	solvers (Secant, RegulaFalsi, FindRoot).
//
// ContractionFactor  – FindRoot only: when a bracketing step shrinks the
//
//	bracket by less than this factor, one bisection step
//	is interposed. Allowed range [0.5, 1.0].
//
// BisectionSteps     – FindRoot only: number of initial pure-bisection steps;
//
//	positive values require a sign-change bracket.
//
// Trace, Observe     – optional diagnostic sinks; see TraceFunc/ObserveFunc.
//
// Start from DefaultOptions and override fields as needed; a zero-value
// Options is rejected (zero tolerances).
type Options struct {
	FTol              float64
	XTol              float64
	Both              bool
	MaxSteps          int
	MinSlope          float64
	ContractionFactor float64
	BisectionSteps    int
	Trace             TraceFunc
	Observe           ObserveFunc
}

// DefaultOptions returns the canonical solver configuration.
//
// Defaults:
//   - FTol:              1e-6
//   - XTol:              1e-6
//   - Both:              true  (both thresholds must hold)
//   - MaxSteps:          3000
//   - MinSlope:          1e-60
//   - ContractionFactor: 0.7071 (≈ 1/√2; bounds FindRoot's worst case at
//     roughly twice the bisection step count)
//   - BisectionSteps:    0     (FindRoot starts with Regula Falsi)
//   - Trace, Observe:    nil   (silent)
func DefaultOptions() Options {
	return Options{
		FTol:              1e-6,
		XTol:              1e-6,
		Both:              true,
		MaxSteps:          3000,
		MinSlope:          1e-60,
		ContractionFactor: 0.7071,
		BisectionSteps:    0,
	}
}

// trace forwards a diagnostic message to the configured sink, if any.
func (o Options) trace(format string, args ...any) {
	if o.Trace != nil {
		o.Trace(format, args...)
	}
}

// observe forwards the current iterate pair to the configured sink, if any.
func (o Options) observe(step int, p pair) {
	if o.Observe != nil {
		o.Observe(step, p.a, p.fa, p.b, p.fb)
	}
}

// Result reports the outcome of a successful solve.
type Result struct {
	// Root is the approximate root satisfying the convergence predicate
	// (or the accepted iterate in the slope-degenerate case).
	Root float64

	// Steps is the number of iterations performed.
	Steps int

	// Calls is the number of evaluations of the supplied function.
	Calls int
}
