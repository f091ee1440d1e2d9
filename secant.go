package rootfind

import "fmt"

// Secant finds a root of f via the secant method, starting from two
// abscissas that need not enclose a root.
//
// Description:
//
//	Like Newton's method, the secant method uses successive linear
//	approximations to f, but it does not require a derivative. It is the
//	fastest of the four solvers on well-behaved functions, and the least
//	reliable: no bracket is maintained, so the iteration can converge to
//	a root outside the original interval or fail to converge at all.
//	That is expected behavior, not a defect; prefer RegulaFalsi or
//	FindRoot when reliability matters.
//
// Contracts:
//   - FTol, XTol > 0 (ErrNonPositiveTolerance otherwise).
//   - Both=false requires |b−a| > XTol (ErrInitialPointsTooClose otherwise).
//   - Deterministic: identical inputs yield identical Result, including
//     step and call counts.
//
// Algorithm Outline (per iteration):
//  1. slope = (f(b)−f(a)) / (b−a). If |slope| < MinSlope, attempt the
//     one-shot repair shift of b toward a; a still-flat slope either
//     accepts b (interval already within XTol) or fails.
//  2. c = b − f(b)/slope; evaluate f(c) and test convergence of (c, f(c))
//     against b.
//  3. On non-convergence, slide the window: a ← b, b ← c.
//
// Errors: ErrNonPositiveTolerance, ErrInitialPointsTooClose,
// ErrVanishingSlope, ErrIterationLimit.
//
// Reference: https://en.wikipedia.org/wiki/Secant_method
func Secant(f Func, a, b float64, opts Options) (Result, error) {
	if err := validateTolerances(opts); err != nil {
		return Result{}, err
	}

	res := Result{Steps: 1}

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
		slope, ok, serr := repairSlope(f, &p, opts, res.Steps, &res.Calls)
		if serr != nil {
			return Result{}, serr
		}
		if !ok {
			// Slope-degenerate convergence: the repair shift collapsed the
			// interval within XTol, so the current b is the answer.
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

		res.Steps++
		if res.Steps > opts.MaxSteps {
			return Result{}, fmt.Errorf("rootfind: limit of %d iterations has been reached: %w", opts.MaxSteps, ErrIterationLimit)
		}

		p.shift(c, fc)
		opts.observe(res.Steps, p)
	}

	opts.trace("Convergence achieved after %d steps and %d calls.", res.Steps, res.Calls)
	res.Root = c

	return res, nil
}
