// Package ulp_test exercises the tolerance kernel.
package ulp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/ulp"
)

func TestEpsMatchesNextafter(t *testing.T) {
	t.Parallel()

	require.Equal(t, math.Nextafter(1, 2)-1, ulp.Eps)
}

func TestIsZero(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		v    float64
		ulps int
		want bool
	}{
		{"exact zero", 0, 3, true},
		{"one ulp inside budget", ulp.Eps, 3, true},
		{"exactly on budget", 3 * ulp.Eps, 3, true},
		{"just outside budget", 4 * ulp.Eps, 3, false},
		{"negative inside budget", -2 * ulp.Eps, 3, true},
		{"unit value", 1.0, 3, false},
		{"zero budget exact zero", 0, 0, true},
		{"zero budget nonzero", ulp.Eps, 0, false},
		{"NaN never zero", math.NaN(), 1000, false},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, ulp.IsZero(tc.v, tc.ulps))
		})
	}
}

func TestStepAt(t *testing.T) {
	t.Parallel()

	// At unit magnitude the step is Eps by definition.
	require.Equal(t, ulp.Eps, ulp.StepAt(1))
	// Steps scale with the binade: ulp(2) == 2·ulp(1).
	require.Equal(t, 2*ulp.Eps, ulp.StepAt(2))
	// Sign does not matter; steps are magnitudes.
	require.Equal(t, ulp.StepAt(3.5), ulp.StepAt(-3.5))
	// Zero maps to the smallest subnormal.
	require.Equal(t, math.SmallestNonzeroFloat64, ulp.StepAt(0))
	// Non-finite inputs poison the tolerance.
	require.True(t, math.IsNaN(ulp.StepAt(math.Inf(1))))
	require.True(t, math.IsNaN(ulp.StepAt(math.NaN())))
}

func TestRound(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0.0, ulp.Round(2*ulp.Eps, 3))
	require.Equal(t, 1.5, ulp.Round(1.5, 3))
	require.Equal(t, -1.5, ulp.Round(-1.5, 3))
}
