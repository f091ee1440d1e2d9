package rootfind

import (
	"fmt"
	"math"
)

// Bisection finds a root of f via bisection search.
//
// Description:
//
//	f must be everywhere continuous but need not be differentiable.
//	The caller supplies a pair of starting abscissas a and b whose
//	function values have opposite signs; the bracket is then halved
//	until the convergence predicate holds.
//
// Contracts:
//   - FTol, XTol > 0 (ErrNonPositiveTolerance otherwise).
//   - f(a)·f(b) ≤ 0 (ErrNoBracket otherwise; FindRoot has no such
//     restriction and is suggested in the error message).
//   - Deterministic: identical inputs yield identical Result, including
//     step and call counts.
//
// Algorithm Outline:
//  1. Evaluate f(a), f(b); reject a same-sign pair.
//  2. If the starting points already satisfy the stopping rule, return
//     the qualifying endpoint without iterating.
//  3. Otherwise, repeatedly take c = (a+b)/2 and replace the endpoint
//     on c's side of the root. The endpoint test compares f(a)·f(c)
//     against f(b)·f(c) rather than checking signs directly: a naive
//     sign test misclassifies the case f(c) == 0.
//
// Errors: ErrNonPositiveTolerance, ErrNoBracket, ErrIterationLimit.
//
// Complexity: O(log₂(|b−a|/XTol)) iterations, one call to f per iteration.
func Bisection(f Func, a, b float64, opts Options) (Result, error) {
	if err := validateTolerances(opts); err != nil {
		return Result{}, err
	}

	p := pair{a: a, fa: f(a), b: b, fb: f(b)}
	res := Result{Steps: 1, Calls: 2}

	if p.fa*p.fb > 0 {
		return Result{}, fmt.Errorf("rootfind: f(a) and f(b) have the same sign; FindRoot does not have this restriction: %w", ErrNoBracket)
	}

	// Pre-loop screen: accept a starting point that already qualifies.
	if opts.Both {
		if math.Abs(b-a) <= opts.XTol {
			if math.Abs(p.fa) <= opts.FTol {
				opts.trace("Convergence achieved after %d steps and %d calls.", res.Steps, res.Calls)
				res.Root = a

				return res, nil
			}
			if math.Abs(p.fb) <= opts.FTol {
				opts.trace("Convergence achieved after %d steps and %d calls.", res.Steps, res.Calls)
				res.Root = b

				return res, nil
			}
		}
	} else {
		if math.Abs(p.fa) <= opts.FTol {
			opts.trace("Convergence achieved after %d steps and %d calls.", res.Steps, res.Calls)
			res.Root = a

			return res, nil
		}
		if math.Abs(p.fb) <= opts.FTol {
			opts.trace("Convergence achieved after %d steps and %d calls.", res.Steps, res.Calls)
			res.Root = b

			return res, nil
		}
	}

	for {
		c := 0.5 * (p.a + p.b)
		fc := f(c)
		res.Calls++

		if converged(opts.Both, c-p.b, fc, opts.XTol, opts.FTol) {
			opts.trace("Convergence achieved after %d steps and %d calls.", res.Steps, res.Calls)
			res.Root = c

			return res, nil
		}

		// One might expect the endpoint test to be f(a)·f(c) < 0, but that
		// fails to keep the right endpoint when f(c) equals zero exactly.
		if p.fa*fc < p.fb*fc {
			p.setB(c, fc)
		} else {
			p.shift(c, fc)
		}
		opts.observe(res.Steps, p)

		res.Steps++
		if res.Steps > opts.MaxSteps {
			return Result{}, fmt.Errorf("rootfind: limit of %d iterations has been reached: %w", opts.MaxSteps, ErrIterationLimit)
		}
	}
}
