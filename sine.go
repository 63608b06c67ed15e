package easing

import "math"

// SineIn follows a quarter cosine wave.
func SineIn(t, b, c, d float64) float64 {
	return -c*math.Cos(t/d*(math.Pi/halfDivisor)) + c + b
}

// SineOut follows a quarter sine wave.
func SineOut(t, b, c, d float64) float64 {
	return c*math.Sin(t/d*(math.Pi/halfDivisor)) + b
}

// SineInOut follows half a cosine wave.
func SineInOut(t, b, c, d float64) float64 {
	return -c/halfDivisor*(math.Cos(math.Pi*t/d)-1) + b
}
