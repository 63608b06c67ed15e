// Package testutil provides reusable test helper functions for easing tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance    = 1e-9
	ContinuityTolerance = 1e-6
	TableTolerance      = 1e-3
)

// continuityStep is the distance from the midpoint used by AssertContinuousAt.
const continuityStep = 1e-9

// Curve is the easing function signature, repeated here so the helpers do
// not import the package under test.
type Curve = func(t, b, c, d float64) float64

// AssertBoundaries verifies f(0) == b and f(d) == b+c within tolerance.
func AssertBoundaries(t *testing.T, f Curve, b, c, d, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	ok := assert.InDelta(t, b, f(0, b, c, d), tolerance, "start value, %v", msgAndArgs)
	return assert.InDelta(t, b+c, f(d, b, c, d), tolerance, "end value, %v", msgAndArgs) && ok
}

// AssertContinuousAt verifies that f has no jump at t: values just below and
// just above t differ by less than tolerance.
func AssertContinuousAt(t *testing.T, f Curve, at, b, c, d, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	below := f(at-continuityStep*d, b, c, d)
	above := f(at+continuityStep*d, b, c, d)
	return assert.InDelta(t, below, above, tolerance,
		"discontinuity at t=%v: %v vs %v, %v", at, below, above, msgAndArgs)
}

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertAllInRange verifies that all elements are within [min, max].
func AssertAllInRange(t *testing.T, s []float64, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if v < minVal || v > maxVal {
			return assert.Fail(t, "value out of range",
				"s[%d]=%f is outside range [%f, %f]", i, v, minVal, maxVal)
		}
	}
	return true
}

// AssertMonotonic verifies that a slice is monotonically non-decreasing.
func AssertMonotonic(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return assert.Fail(t, "not monotonic",
				"s[%d]=%f < s[%d]=%f", i, s[i], i-1, s[i-1])
		}
	}
	return true
}
