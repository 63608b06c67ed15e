package mathutil

import "math"

// Elastic oscillation constants
const (
	// twoPi is one full cycle in radians. 2π is exact in binary so this equals
	// 2 * math.Pi evaluated in float64.
	twoPi = 2 * math.Pi

	// quarterDivisor places the sinusoid a quarter period before the
	// settle point, so the curve passes through zero at the boundary.
	quarterDivisor = 4.0
)
