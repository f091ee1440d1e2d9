package weibull_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/numgrove/rootfind"
	"github.com/numgrove/rootfind/weibull"
)

// rayleighQuantiles returns n evenly spaced quantiles of the standard
// Rayleigh distribution (Weibull with shape 2, scale 1):
// x = sqrt(−ln(1−p)) at p = (i−0.5)/n. A deterministic stand-in for a
// measured series with a known underlying shape.
func rayleighQuantiles(n int) []float64 {
	xs := make([]float64, n)
	for i := 0; i < n; i++ {
		p := (float64(i) + 0.5) / float64(n)
		xs[i] = math.Sqrt(-math.Log(1 - p))
	}

	return xs
}

// TestNewSample_Validation verifies the empty and non-finite input errors.
func TestNewSample_Validation(t *testing.T) {
	_, err := weibull.NewSample(nil)
	assert.ErrorIs(t, err, weibull.ErrEmptySample)

	_, err = weibull.NewSample([]float64{1, math.NaN(), 3})
	assert.ErrorIs(t, err, weibull.ErrBadValue)

	_, err = weibull.NewSample([]float64{1, math.Inf(1)})
	assert.ErrorIs(t, err, weibull.ErrBadValue)
}

// TestSample_Statistics verifies the cached summary statistics on a small
// hand-computed series.
func TestSample_Statistics(t *testing.T) {
	s, err := weibull.NewSample([]float64{1, 2, 3, 4})
	require.NoError(t, err)

	assert.Equal(t, 4, s.Len())
	assert.InDelta(t, 2.5, s.Mean(), 1e-12)
	// (1 + 8 + 27 + 64) / 4 = 25
	assert.InDelta(t, 25.0, s.CubedMean(), 1e-12)
	// 1 and 2 lie strictly below the mean of 2.5.
	assert.InDelta(t, 0.5, s.BelowMeanFrac(), 1e-12)
}

// TestSample_Fit verifies the full moment fit on Rayleigh quantiles: the
// recovered shape must be near 2, the scale near 1, and the objective must
// actually vanish at the returned shape.
func TestSample_Fit(t *testing.T) {
	s, err := weibull.NewSample(rayleighQuantiles(20))
	require.NoError(t, err)

	opts := rootfind.DefaultOptions()
	opts.BisectionSteps = 1 // the [0.1, 100] bracket is sign-changing here

	params, err := s.Fit(opts)
	require.NoError(t, err)

	assert.InDelta(t, 2.0, params.Shape, 0.5, "20 quantiles pin the shape only roughly")
	assert.InDelta(t, 1.0, params.Scale, 0.3)
	assert.LessOrEqual(t, math.Abs(s.ShapeObjective()(params.Shape)), opts.FTol)
}

// TestSample_FitDeterministic verifies that fitting is reproducible.
func TestSample_FitDeterministic(t *testing.T) {
	s, err := weibull.NewSample(rayleighQuantiles(50))
	require.NoError(t, err)

	first, err1 := s.Fit(rootfind.DefaultOptions())
	second, err2 := s.Fit(rootfind.DefaultOptions())
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, first, second)
}

// TestShapeObjective_SignChange verifies the bracket assumption Fit relies
// on: the objective has opposite signs at the ends of [0.1, 100] for a
// well-behaved sample.
func TestShapeObjective_SignChange(t *testing.T) {
	s, err := weibull.NewSample(rayleighQuantiles(20))
	require.NoError(t, err)

	obj := s.ShapeObjective()
	assert.Negative(t, obj(0.1))
	assert.Positive(t, obj(100.0))
}
