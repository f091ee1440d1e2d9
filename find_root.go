package rootfind

import (
	"fmt"
	"math"
)

// FindRoot finds a root of f via a hybrid of the modified Regula Falsi
// method and bisection search. Each iteration uses one or the other,
// chosen by a per-step switching policy. It is the most capable of the
// four solvers and the recommended default.
//
// Description:
//
//	f must be everywhere continuous but need not be differentiable.
//	Design goals, in order: (1) guaranteed convergence whenever f(a) and
//	f(b) have opposite signs; (2) faster convergence than bisection when
//	f is close to a straight line, or becomes so after a few bisection
//	steps; (3) faster convergence than plain Regula Falsi when f is
//	irregular at large scale but smooth at small scale.
//
// Switching policy:
//   - The first BisectionSteps iterations use pure bisection; the counter
//     is decremented after each such step and Regula Falsi takes over when
//     it reaches zero. Positive BisectionSteps requires a sign-change
//     bracket (ErrNoBracket otherwise); the default 0 does not.
//   - After a Regula Falsi step made from a bracketing pair, the new
//     bracket width is compared with ContractionFactor × the previous
//     width. A wider-than-threshold bracket means the iteration is
//     stagnating (typical for strongly convex/concave f, where one
//     endpoint barely moves), so exactly one bisection step is interposed.
//     The default factor 0.7071 ≈ 1/√2 bounds the worst case at roughly
//     twice bisection's step count while retaining Regula Falsi's fast
//     convergence elsewhere.
//   - A Regula Falsi step from a bracketing pair whose c lands outside
//     the bracket — numerically this ought not to happen — also forces
//     one bisection step, where plain RegulaFalsi merely retries.
//
// Contracts:
//   - FTol, XTol > 0 (ErrNonPositiveTolerance otherwise).
//   - 0.5 ≤ ContractionFactor ≤ 1.0 (ErrContractionFactorRange otherwise).
//   - BisectionSteps ≥ 0 (ErrNegativeBisectionSteps otherwise).
//   - Both=false requires |b−a| > XTol (ErrInitialPointsTooClose otherwise).
//   - Deterministic: identical inputs yield identical Result, including
//     step and call counts.
//
// Errors: the configuration errors above, ErrNoBracket (only when
// BisectionSteps > 0), ErrVanishingSlope (Regula Falsi branch only;
// bisection steps cannot hit it), ErrIterationLimit.
func FindRoot(f Func, a, b float64, opts Options) (Result, error) {
	if err := validateTolerances(opts); err != nil {
		return Result{}, err
	}
	if opts.ContractionFactor < 0.5 || opts.ContractionFactor > 1.0 {
		return Result{}, ErrContractionFactorRange
	}
	if opts.BisectionSteps < 0 {
		return Result{}, ErrNegativeBisectionSteps
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

	bisect := opts.BisectionSteps
	if bisect > 0 && p.fa*p.fb > 0 {
		return Result{}, fmt.Errorf("rootfind: when BisectionSteps is positive, f(a) and f(b) must have opposite signs: %w", ErrNoBracket)
	}

	var c, fc float64
	for {
		res.Steps++
		if res.Steps > opts.MaxSteps {
			return Result{}, fmt.Errorf("rootfind: limit of %d iterations has been reached: %w", opts.MaxSteps, ErrIterationLimit)
		}

		if bisect > 0 {
			// The current step uses the bisection method.
			opts.trace("At step %d, following %d calls, using bisection.", res.Steps, res.Calls)

			c = 0.5 * (p.a + p.b)
			fc = f(c)
			res.Calls++

			if p.fa*fc < 0 {
				p.setB(c, fc)
			} else {
				// The copy through shift may look redundant, but the
				// convergence predicate compares against the most recently
				// generated point, so generation order must be tracked.
				p.shift(c, fc)
			}
			opts.observe(res.Steps, p)

			bisect--

			continue
		}

		// The current step uses the modified Regula Falsi method.
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
				bisect = 1

				continue
			}

			width := hi - lo

			if p.fb*fc >= 0 {
				// b and c do not bracket ==> a and c must.
				p.setB(c, fc)
			} else {
				// b and c bracket a root.
				p.shift(c, fc)
			}
			opts.observe(res.Steps, p)

			if p.width() > opts.ContractionFactor*width {
				// Converging too slowly ==> one bisection step next.
				opts.trace("After step %d.  Converging too slowly.  ==> Temporarily switching to bisection.", res.Steps)
				bisect = 1
			}
		} else {
			// It appears that a and b do not bracket a root.
			p.shift(c, fc)
			opts.observe(res.Steps, p)
		}
	}

	opts.trace("Convergence achieved after %d steps and %d calls.", res.Steps, res.Calls)
	res.Root = c

	return res, nil
}
