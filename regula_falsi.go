package rootfind

import (
	"fmt"
	"math"
)

// RegulaFalsi finds a root of f via the modified Regula Falsi method.
//
// Description:
//
//	f must be everywhere continuous but need not be differentiable.
//	Steps are generated exactly as in Secant, but updates are bracket
//	preserving: once a pair of iterates has f-values of opposite signs,
//	every subsequent pair continues to bracket that root. This makes the
//	method slower than Secant but considerably more reliable.
//
// Contracts:
//   - FTol, XTol > 0 (ErrNonPositiveTolerance otherwise).
//   - Both=false requires |b−a| > XTol (ErrInitialPointsTooClose otherwise).
//   - No bracket precondition: a non-bracketing pair simply slides like a
//     secant window until a bracket is discovered.
//   - Deterministic: identical inputs yield identical Result, including
//     step and call counts.
//
// Algorithm Outline (per iteration):
//  1. Compute slope and c = b − f(b)/slope as in Secant, including the
//     one-shot slope repair.
//  2. If f(a)·f(b) < 0 (bracketing), c must lie strictly between a and b.
//     Should it not — numerically this ought not to happen — a diagnostic
//     is traced and the step is retried unchanged. The retry makes no
//     progress by itself; only the MaxSteps ceiling bounds a pathological
//     function here. FindRoot handles the same anomaly by forcing a
//     bisection step instead.
//  3. Interior c: if f(b)·f(c) ≥ 0, b and c do not bracket, hence a and c
//     must — replace b with c. Otherwise b and c bracket — slide a ← b,
//     b ← c.
//  4. Non-bracketing pair: always slide a ← b, b ← c.
//
// Errors: ErrNonPositiveTolerance, ErrInitialPointsTooClose,
// ErrVanishingSlope, ErrIterationLimit.
//
// Reference: Papakonstantinou & Tapia, "Origin and Evolution of the Secant
// Method in One Dimension", Amer. Math. Monthly 120(6), 2013.
func RegulaFalsi(f Func, a, b float64, opts Options) (Result, error) {
	if err := validateTolerances(opts); err != nil {
		return Result{}, err
	}

	var res Result

	p, root, done, err := initialPoints(f, a, b, opts, &res.Calls)
	if err != nil {
		return Result{}, err
	}
	if done {
		opts.trace("Convergence achieved after %d steps and %d calls.", res.Steps, res.Calls)
		res.Root = root

		return res, nil
	}

	var c, fc float64
	for {
		res.Steps++
		if res.Steps > opts.MaxSteps {
			return Result{}, fmt.Errorf("rootfind: limit of %d iterations has been reached: %w", opts.MaxSteps, ErrIterationLimit)
		}

		slope, ok, serr := repairSlope(f, &p, opts, res.Steps, &res.Calls)
		if serr != nil {
			return Result{}, serr
		}
		if !ok {
			// Slope-degenerate convergence: accept the current b.
			opts.trace("Convergence achieved after %d steps and %d calls.", res.Steps, res.Calls)
			res.Root = p.b

			return res, nil
		}

		c = p.b - p.fb/slope
		fc = f(c)
		res.Calls++

		if converged(opts.Both, c-p.b, fc, opts.XTol, opts.FTol) {
			break
		}

		if p.brackets() {
			// a and b bracket a root (more precisely, an odd number of roots).
			lo := math.Min(p.a, p.b)
			hi := math.Max(p.a, p.b)

			if !(lo < c && c < hi) {
				opts.trace("At step %d, following %d calls, f(a) and f(b) have opposite signs but c is not between a and b.  This should not happen.  a=%f, b=%f, c=%f", res.Steps, res.Calls, p.a, p.b, c)

				continue
			}

			if p.fb*fc >= 0 {
				// a and b bracket; c is between them; b and c do not bracket.
				// ==> a and c must bracket (an odd number of roots).
				p.setB(c, fc)
			} else {
				// b and c bracket a root.
				p.shift(c, fc)
			}
		} else {
			// It appears that a and b do not bracket a root.
			p.shift(c, fc)
		}
		opts.observe(res.Steps, p)
	}

	opts.trace("Convergence achieved after %d steps and %d calls.", res.Steps, res.Calls)
	res.Root = c

	return res, nil
}
