package weibull

import (
	"math"

	"github.com/numgrove/rootfind"
)

// Search bracket for the shape parameter. Physical data series give shapes
// well inside (0.1, 100); the objective changes sign across this interval
// for any sample whose statistics a Weibull model can reproduce.
const (
	shapeMin = 0.1
	shapeMax = 100.0
)

// Params holds the fitted Weibull parameters.
type Params struct {
	// Shape is the dimensionless shape parameter k.
	Shape float64

	// Scale is the scale parameter λ, in the units of the data.
	Scale float64
}

// ShapeObjective returns the moment-matching objective whose root is the
// Weibull shape parameter k.
//
// For a candidate k, the third raw moment E[X³] = λ³·Γ(1 + 3/k) fixes the
// scale λ(k) = (m₃ / Γ(1 + 3/k))^(1/3) from the sample's cubed mean m₃.
// The objective then compares the model probability of falling below the
// sample mean with the empirical fraction:
//
//	F(k) = frac + e^(−(mean/λ(k))^k) − 1
//
// F crosses zero where the model and the data agree.
func (s *Sample) ShapeObjective() rootfind.Func {
	frac := s.belowMeanFrac
	mean := s.mean
	m3 := s.cubedMean

	return func(k float64) float64 {
		scale := math.Cbrt(m3 / math.Gamma(1+3/k))

		return frac + math.Exp(-math.Pow(mean/scale, k)) - 1
	}
}

// Fit locates the shape parameter as the root of ShapeObjective over
// [shapeMin, shapeMax] with rootfind.FindRoot, then derives the scale from
// the first moment: λ = mean / Γ(1 + 1/k).
//
// The supplied options are passed through unchanged, so callers control
// tolerances, the trace sink, and the switching policy; start from
// rootfind.DefaultOptions. Solver failures (stagnation, iteration limit,
// configuration errors) are returned as-is.
func (s *Sample) Fit(opts rootfind.Options) (Params, error) {
	res, err := rootfind.FindRoot(s.ShapeObjective(), shapeMin, shapeMax, opts)
	if err != nil {
		return Params{}, err
	}

	k := res.Root

	return Params{
		Shape: k,
		Scale: s.mean / math.Gamma(1+1/k),
	}, nil
}
