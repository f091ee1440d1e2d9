// Package rootfind is a small family of one-dimensional root-finding
// algorithms for continuous scalar functions — from plain bisection to a
// hybrid bisection/Regula-Falsi solver with an adaptive switching policy.
//
// 🚀 What is rootfind?
//
//	A deterministic, side-effect-free library that brings together:
//		• Bisection — simplest and most robust; needs a sign-change bracket
//		• Secant — fastest typical convergence; no bracket, may diverge
//		• RegulaFalsi — bracket-preserving modified Regula Falsi
//		• FindRoot — hybrid of the two above; interleaves bisection steps
//		  whenever Regula Falsi stagnates or misbehaves
//
// ✨ Why choose rootfind?
//
//   - Minimal API – every solver is one pure function over f: ℝ → ℝ
//   - Honest accounting – Result reports exact step and call counts
//   - Injectable diagnostics – trace and observe hooks instead of printing
//   - Strict sentinel errors – match failure classes with errors.Is
//   - Pure Go – no cgo, no hidden deps
//
// All four solvers share one contract: a callable f, two starting
// abscissas a and b, and an Options value built from DefaultOptions.
// No state flows between solvers; they are alternative strategies.
// Each invocation is independent and reentrant — solvers hold no package
// state and may run concurrently as long as f itself is thread-safe.
//
// Quick example:
//
//	f := func(x float64) float64 { return 2*(x-0.7) + 0.03*math.Pow(x-0.7, 3) }
//	res, err := rootfind.FindRoot(f, 0.6, 6.0, rootfind.DefaultOptions())
//	if err != nil {
//		// errors.Is(err, rootfind.ErrIterationLimit), etc.
//	}
//	fmt.Println(res.Root, res.Steps, res.Calls)
//
// Companion packages:
//
//	weibull/     — method-of-moments Weibull fitting built on FindRoot
//	cmd/rootfit/ — CLI driver for fitting measured data series
//
//	go get github.com/numgrove/rootfind
package rootfind
