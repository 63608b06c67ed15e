package easing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-easing/internal/testutil"
)

// TestDefaultOvershoot tests that the overshoot is the widened float32 literal.
func TestDefaultOvershoot(t *testing.T) {
	assert.Equal(t, 1.7015800476074219, DefaultOvershoot)
	assert.Equal(t, 1.524999976158142, inOutOvershootScale)
}

// TestBackOut_HalfwayScenario tests BackOut(0.5, 0, 100, 1) against the closed form.
func TestBackOut_HalfwayScenario(t *testing.T) {
	s := DefaultOvershoot
	expected := 100 * ((0.5-1)*(0.5-1)*((s+1)*(0.5-1)+s) + 1)

	assert.Equal(t, expected, BackOut(0.5, 0, 100, 1))
	assert.InDelta(t, 108.76975059509277, BackOut(0.5, 0, 100, 1), 1e-9)
}

// TestBack_Fixtures tests the Back curves against precomputed values for c=100, d=1.
func TestBack_Fixtures(t *testing.T) {
	tests := []struct {
		name     string
		f        Func
		t        float64
		expected float64
	}{
		{"In quarter", BackIn, 0.25, -6.41365647315979},
		{"In half", BackIn, 0.5, -8.769750595092773},
		{"In three quarters", BackIn, 0.75, 18.25903058052063},
		{"Out quarter", BackOut, 0.25, 81.74096941947937},
		{"Out three quarters", BackOut, 0.75, 106.41365647315979},
		{"InOut quarter", BackInOut, 0.25, -9.968184575203054},
		{"InOut half", BackInOut, 0.5, 50.0},
		{"InOut three quarters", BackInOut, 0.75, 109.96818457520305},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, tt.f(tt.t, 0, 100, 1), testutil.DefaultTolerance)
		})
	}
}

// TestBack_DefaultMatchesExtended tests that the default forms use DefaultOvershoot.
func TestBack_DefaultMatchesExtended(t *testing.T) {
	for x := 0.0; x <= 2.0; x += 0.125 {
		assert.Equal(t, BackInWith(x, 3, -7, 2, DefaultOvershoot), BackIn(x, 3, -7, 2))
		assert.Equal(t, BackOutWith(x, 3, -7, 2, DefaultOvershoot), BackOut(x, 3, -7, 2))
		assert.Equal(t, BackInOutWith(x, 3, -7, 2, DefaultOvershoot), BackInOut(x, 3, -7, 2))
	}
}

// TestBackOut_Overshoot tests that BackOut passes b+c with the default
// overshoot and stays at or below it with s=0.
func TestBackOut_Overshoot(t *testing.T) {
	const b, c, d = 10.0, 5.0, 1.0

	values, err := Sample(BackOut, b, c, d, 201)
	require.NoError(t, err)
	_, maxVal := Extent(values)
	assert.Greater(t, maxVal, b+c, "BackOut should overshoot the target")
	assert.InDelta(t, b+c+0.1*c, maxVal, 1e-3, "default overshoot is 10 percent")

	flat, err := Sample(func(t, b, c, d float64) float64 {
		return BackOutWith(t, b, c, d, 0)
	}, b, c, d, 201)
	require.NoError(t, err)
	testutil.AssertAllInRange(t, flat, b, b+c+1e-12)
	testutil.AssertMonotonic(t, flat)
}

// TestBackIn_Undershoot tests that BackIn dips below b before rising.
func TestBackIn_Undershoot(t *testing.T) {
	values, err := Sample(BackIn, 0, 1, 1, 201)
	require.NoError(t, err)
	minVal, _ := Extent(values)
	assert.Less(t, minVal, 0.0)
	assert.InDelta(t, -0.1, minVal, 1e-3)
}

// TestBackInOut_OvershootScaledOnce tests that both halves use s*1.525:
// the InOut curve over [d/2, d] is BackOut with the scaled overshoot over
// half the duration.
func TestBackInOut_OvershootScaledOnce(t *testing.T) {
	const s = 2.5
	scaled := s * inOutOvershootScale
	for x := 0.5; x <= 1.0; x += 0.0625 {
		inOut := BackInOutWith(x, 0, 2, 1, s)
		out := BackOutWith(x-0.5, 1, 1, 0.5, scaled)
		assert.InDelta(t, out, inOut, testutil.DefaultTolerance, "t=%v", x)
	}
}

// TestBack_DegenerateDuration tests that d=0 propagates IEEE-754 values.
func TestBack_DegenerateDuration(t *testing.T) {
	assert.True(t, math.IsNaN(BackIn(0, 0, 1, 0)), "0/0 should give NaN")
	assert.True(t, math.IsInf(BackIn(1, 0, 1, 0), 1), "1/0 should give +Inf")
	assert.True(t, math.IsNaN(BackInOut(0, 0, 1, 0)))
}

// BenchmarkBackInOut benchmarks the two-sided Back curve.
func BenchmarkBackInOut(b *testing.B) {
	x := 0.3
	for b.Loop() {
		_ = BackInOut(x, 0, 1, 1)
	}
}
