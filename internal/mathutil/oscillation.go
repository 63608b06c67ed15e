// Package mathutil provides the numeric primitives shared by the easing curves.
package mathutil

import (
	"math"
)

// Oscillation evaluates the sinusoid term of the elastic curves:
//
//	sin((x*d - s) * 2π / p)
//
// x is the shifted normalized time, d the duration, s the phase shift and
// p the period, all in the caller's time units.
func Oscillation(x, d, s, p float64) float64 {
	return math.Sin((x*d - s) * twoPi / p)
}

// Decay returns 2^(rate*x), the exponential envelope of the elastic and
// exponential curves. A negative rate decays, a positive rate grows.
func Decay(rate, x float64) float64 {
	return math.Pow(2, rate*x)
}

// QuarterShift returns the phase shift used when the amplitude equals the
// change: a quarter of the period.
func QuarterShift(p float64) float64 {
	return p / quarterDivisor
}

// PhaseShift returns the shift that lets an oscillation of amplitude a start
// from c:
//
//	p / 2π * asin(c / a)
//
// |c/a| > 1 yields NaN. The result is not validated.
func PhaseShift(c, a, p float64) float64 {
	return p / twoPi * math.Asin(c/a)
}

// ElasticShape resolves the amplitude and phase shift of an elastic curve.
// An amplitude smaller than |c| cannot reach the target, so it is replaced by
// c and the quarter-period shift is used. The comparison is strict: a == |c|
// goes through PhaseShift.
func ElasticShape(a, c, p float64) (amplitude, shift float64) {
	if a < math.Abs(c) {
		return c, QuarterShift(p)
	}
	return a, PhaseShift(c, a, p)
}
