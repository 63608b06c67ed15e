package easing

import "math"

// CircIn follows the lower-right quarter of a unit circle.
func CircIn(t, b, c, d float64) float64 {
	x := t / d
	return -c*(math.Sqrt(1-x*x)-1) + b
}

// CircOut follows the upper-left quarter of a unit circle.
func CircOut(t, b, c, d float64) float64 {
	x := t/d - 1
	return c*math.Sqrt(1-x*x) + b
}

// CircInOut joins CircIn and CircOut at d/2.
func CircInOut(t, b, c, d float64) float64 {
	x := t / (d / halfDivisor)
	if x < 1 {
		return -c/halfDivisor*(math.Sqrt(1-x*x)-1) + b
	}
	x -= 2
	return c/halfDivisor*(math.Sqrt(1-x*x)+1) + b
}
