package rootfind_test

import "math"

// Shared fixture functions for the solver tests. All are deterministic and
// side-effect free, so call counts are reproducible across runs.

// cubicDemo has a simple root at x = 0.7 with slope 2 there:
// f(x) = 2(x−0.7) + 0.03(x−0.7)³.
func cubicDemo(x float64) float64 {
	d := x - 0.7

	return 2*d + 0.03*d*d*d
}

// quarticDemo has a root of multiplicity 4 at x = 0.7; it touches but does
// not cross the x-axis, so no sign-change bracket exists.
func quarticDemo(x float64) float64 {
	d := x - 0.7
	d2 := d * d

	return d2 * d2
}

// clippedLinear is piecewise linear with a flat shelf on either side:
// −1 for x < −1, x on [−1, 1], +1 for x > 1. Root at 0.
func clippedLinear(x float64) float64 {
	if x < -1 {
		return -1
	}
	if x > 1 {
		return 1
	}

	return x
}

// peakedExp is f(x) = x·e^(−|x|): continuous and differentiable everywhere,
// with peaks on either side of its single root at 0.
func peakedExp(x float64) float64 {
	return x * math.Exp(-math.Abs(x))
}

// nonic is f(x) = x⁹, extremely flat around its root at 0; plain Regula
// Falsi stagnates on it.
func nonic(x float64) float64 {
	x3 := x * x * x

	return x3 * x3 * x3
}

// identity is f(x) = x.
func identity(x float64) float64 { return x }
