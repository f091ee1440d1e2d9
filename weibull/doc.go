// Package weibull fits a two-parameter Weibull distribution to a measured
// data series by the method of moments, using the rootfind hybrid solver
// to pin down the shape parameter.
//
// 🚀 What does it do?
//
//	Given a sample of positive observations (wind speeds, failure times,
//	wave heights…), the fit matches two empirical quantities:
//	  • the third raw moment E[X³] = λ³·Γ(1 + 3/k), which ties the scale
//	    λ to any candidate shape k, and
//	  • the fraction of observations below the sample mean, compared with
//	    the model probability P(X < mean) = 1 − e^(−(mean/λ)^k).
//	The shape k is the root of the resulting transcendental equation,
//	located with rootfind.FindRoot over the bracket [0.1, 100]; the scale
//	then follows as λ = mean / Γ(1 + 1/k).
//
// ⚙️ Usage:
//
//	xs, err := weibull.ReadSeries(file)   // header + whitespace columns
//	s, err := weibull.NewSample(xs)
//	params, err := s.Fit(rootfind.DefaultOptions())
//	fmt.Println(params.Shape, params.Scale)
//
// All computation is deterministic and side-effect free; Sample caches its
// summary statistics at construction and never mutates afterwards.
package weibull
