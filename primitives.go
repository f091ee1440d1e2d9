package rootfind

import (
	"fmt"
	"math"
)

// Weights for the slope-repair shift: the replacement b' = wA·a + wB·b lies
// strictly between a and b, biased toward a (wA + wB = 1).
const (
	repairWeightA = 0.3679
	repairWeightB = 0.6321
)

// pair holds the two most recent abscissa/value samples.
// Invariant for the secant-family solvers: b is the most recently generated
// point; the ordering of (a, b) on the real line is NOT assumed.
//
// All updates go through shift/setB so that the four fields can never be
// partially rebound.
type pair struct {
	a, fa float64
	b, fb float64
}

// shift makes the previous b the new a and installs (c, fc) as the new b.
func (p *pair) shift(c, fc float64) {
	*p = pair{a: p.b, fa: p.fb, b: c, fb: fc}
}

// setB replaces b with (c, fc), keeping a fixed.
func (p *pair) setB(c, fc float64) {
	p.b, p.fb = c, fc
}

// brackets reports whether f(a) and f(b) have strictly opposite signs,
// i.e. whether the pair is guaranteed (by continuity) to enclose a root.
func (p *pair) brackets() bool {
	return p.fa*p.fb < 0
}

// width returns |b−a|.
func (p *pair) width() float64 {
	return math.Abs(p.b - p.a)
}

// converged applies the shared stopping predicate to the newest point:
// dx is the displacement c−b of the new point from the previous one and fc
// its function value.
//
// both=true:  |dx| ≤ xtol AND |fc| ≤ ftol.
// both=false: |dx| ≤ xtol OR  |fc| ≤ ftol.
func converged(both bool, dx, fc, xtol, ftol float64) bool {
	if both {
		return math.Abs(dx) <= xtol && math.Abs(fc) <= ftol
	}

	return math.Abs(dx) <= xtol || math.Abs(fc) <= ftol
}

// validateTolerances rejects non-positive convergence thresholds before any
// function evaluation takes place.
func validateTolerances(o Options) error {
	if o.XTol <= 0 || o.FTol <= 0 {
		return ErrNonPositiveTolerance
	}

	return nil
}

// initialPoints evaluates f at the two starting abscissas and applies the
// pre-loop convergence screen shared by Secant, RegulaFalsi and FindRoot.
//
// Both=true:  both points are evaluated up front; if they already sit within
// XTol of each other, whichever satisfies |f| ≤ FTol is accepted.
// Both=false: starting points within XTol of each other are a configuration
// error (ErrInitialPointsTooClose); otherwise each point is evaluated and
// accepted on its own |f| ≤ FTol merit, in order, before the second
// evaluation is even made.
//
// done=true means root already holds the answer; calls is incremented by
// the number of evaluations performed.
func initialPoints(f Func, a, b float64, o Options, calls *int) (p pair, root float64, done bool, err error) {
	if o.Both {
		p = pair{a: a, fa: f(a), b: b, fb: f(b)}
		*calls += 2

		if math.Abs(b-a) <= o.XTol {
			if math.Abs(p.fa) <= o.FTol {
				return p, a, true, nil
			}
			if math.Abs(p.fb) <= o.FTol {
				return p, b, true, nil
			}
		}

		return p, 0, false, nil
	}

	if math.Abs(b-a) <= o.XTol {
		return p, 0, false, fmt.Errorf("rootfind: starting values differ by no more than xtol=%g: %w", o.XTol, ErrInitialPointsTooClose)
	}

	p.a, p.b = a, b
	p.fa = f(a)
	*calls++
	if math.Abs(p.fa) <= o.FTol {
		return p, a, true, nil
	}

	p.fb = f(b)
	*calls++
	if math.Abs(p.fb) <= o.FTol {
		return p, b, true, nil
	}

	return p, 0, false, nil
}

// repairSlope computes the secant slope and, when its magnitude falls below
// MinSlope, attempts the one-shot repair: pull b toward a by the fixed
// weights and re-evaluate. Exactly one repair is attempted per step.
//
// Outcomes:
//   - ok=true:             slope is usable.
//   - ok=false, err=nil:   slope-degenerate convergence — the interval has
//     collapsed within XTol; the caller must accept the
//     current b as the answer.
//   - ok=false, err!=nil:  ErrVanishingSlope (wrapped with the step index).
func repairSlope(f Func, p *pair, o Options, steps int, calls *int) (slope float64, ok bool, err error) {
	slope = (p.fb - p.fa) / (p.b - p.a)
	if math.Abs(slope) >= o.MinSlope {
		return slope, true, nil
	}

	p.b = repairWeightA*p.a + repairWeightB*p.b
	p.fb = f(p.b)
	*calls++

	slope = (p.fb - p.fa) / (p.b - p.a)
	if math.Abs(slope) >= o.MinSlope {
		return slope, true, nil
	}

	if p.width() <= o.XTol {
		return 0, false, nil
	}

	return 0, false, fmt.Errorf("rootfind: at step %d, the slope is too close to zero: %w", steps, ErrVanishingSlope)
}
