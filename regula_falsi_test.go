package rootfind_test

import (
	"math"
	"testing"

	"github.com/numgrove/rootfind"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRegulaFalsi_Converges verifies convergence on the demo cubic with a
// bracketing start, and that the root lands inside the original bracket.
func TestRegulaFalsi_Converges(t *testing.T) {
	opts := rootfind.DefaultOptions()

	res, err := rootfind.RegulaFalsi(cubicDemo, 0.6, 6.0, opts)
	require.NoError(t, err)
	assert.InDelta(t, 0.7, res.Root, 1e-6)
	assert.GreaterOrEqual(t, res.Root, 0.6, "bracket preservation keeps the iterates inside [0.6, 6.0]")
	assert.LessOrEqual(t, res.Root, 6.0)
}

// TestRegulaFalsi_BracketPreservation instruments successive iterate pairs
// through the Observe hook and asserts the core invariant: once a pair of
// iterates brackets a root, every subsequent pair brackets it too.
func TestRegulaFalsi_BracketPreservation(t *testing.T) {
	type step struct{ fa, fb float64 }
	var observed []step

	opts := rootfind.DefaultOptions()
	opts.Observe = func(_ int, _, fa, _, fb float64) {
		observed = append(observed, step{fa: fa, fb: fb})
	}

	// f(0.6) < 0 < f(6.0): the very first pair brackets.
	_, err := rootfind.RegulaFalsi(cubicDemo, 0.6, 6.0, opts)
	require.NoError(t, err)
	require.NotEmpty(t, observed)

	for i, s := range observed {
		assert.LessOrEqual(t, s.fa*s.fb, 0.0, "pair after step %d lost the bracket", i+1)
	}
}

// TestRegulaFalsi_NoBracketSlides verifies that a non-bracketing start
// degenerates to secant-style sliding and can converge outside the
// starting interval.
func TestRegulaFalsi_NoBracketSlides(t *testing.T) {
	f := func(x float64) float64 { return x - 5 }

	res, err := rootfind.RegulaFalsi(f, 0, 1, rootfind.DefaultOptions())
	require.NoError(t, err)
	assert.InDelta(t, 5.0, res.Root, 1e-6)
}

// TestRegulaFalsi_StagnationHitsIterationLimit documents the known
// limitation of the plain (non-hybrid) solver: on f(x)=x⁹ one endpoint
// barely moves, there is no bisection rescue, and the MaxSteps ceiling is
// the only structural guard. The solver must fail loudly, not spin.
func TestRegulaFalsi_StagnationHitsIterationLimit(t *testing.T) {
	opts := rootfind.DefaultOptions()
	opts.MaxSteps = 100

	_, err := rootfind.RegulaFalsi(nonic, -0.5, 1.0, opts)
	assert.ErrorIs(t, err, rootfind.ErrIterationLimit,
		"stagnating Regula Falsi must exhaust MaxSteps rather than hang")
}

// TestRegulaFalsi_EitherModeTooClose verifies the configuration error for
// Both=false with starting points within XTol.
func TestRegulaFalsi_EitherModeTooClose(t *testing.T) {
	opts := rootfind.DefaultOptions()
	opts.Both = false

	_, err := rootfind.RegulaFalsi(identity, 0.5, 0.5+1e-9, opts)
	assert.ErrorIs(t, err, rootfind.ErrInitialPointsTooClose)
}

// TestRegulaFalsi_VanishingSlope verifies the stagnation error on a
// constant function, identical to the secant failure mode.
func TestRegulaFalsi_VanishingSlope(t *testing.T) {
	flat := func(float64) float64 { return -2.0 }

	_, err := rootfind.RegulaFalsi(flat, 0, 1, rootfind.DefaultOptions())
	assert.ErrorIs(t, err, rootfind.ErrVanishingSlope)
}

// TestRegulaFalsi_Deterministic verifies identical results and counters
// across identical invocations.
func TestRegulaFalsi_Deterministic(t *testing.T) {
	opts := rootfind.DefaultOptions()

	first, err1 := rootfind.RegulaFalsi(cubicDemo, 0.6, 6.0, opts)
	second, err2 := rootfind.RegulaFalsi(cubicDemo, 0.6, 6.0, opts)
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, first, second)
}

// TestRegulaFalsi_RootQuality verifies the convergence contract under
// Both=true: both thresholds hold for the returned root relative to f.
func TestRegulaFalsi_RootQuality(t *testing.T) {
	opts := rootfind.DefaultOptions()

	res, err := rootfind.RegulaFalsi(peakedExp, -0.5, 0.4, opts)
	require.NoError(t, err)
	assert.LessOrEqual(t, math.Abs(peakedExp(res.Root)), opts.FTol)
	assert.InDelta(t, 0.0, res.Root, 1e-4)
}
