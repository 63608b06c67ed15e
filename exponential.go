package easing

import (
	"github.com/tphakala/go-easing/internal/mathutil"
)

// The pure exponential never reaches its endpoints, so the curves below
// short-circuit t == 0 and t == d.

// ExpoIn grows along 2^(10(t-1)).
func ExpoIn(t, b, c, d float64) float64 {
	if t == 0 {
		return b
	}
	return c*mathutil.Decay(expoDecayRate, t/d-1) + b
}

// ExpoOut decays along 1-2^(-10t).
func ExpoOut(t, b, c, d float64) float64 {
	if t == d {
		return b + c
	}
	return c*(-mathutil.Decay(-expoDecayRate, t/d)+1) + b
}

// ExpoInOut joins ExpoIn and ExpoOut at d/2.
func ExpoInOut(t, b, c, d float64) float64 {
	if t == 0 {
		return b
	}
	if t == d {
		return b + c
	}
	x := t / (d / halfDivisor)
	if x < 1 {
		return c/halfDivisor*mathutil.Decay(expoDecayRate, x-1) + b
	}
	x--
	return c/halfDivisor*(-mathutil.Decay(-expoDecayRate, x)+expoBase) + b
}
