package easing

// Back overshoot constants.
// The reference curves were published with single-precision literals, so the
// float32 value is widened here to reproduce them bit for bit.
const (
	// DefaultOvershoot is the Back overshoot used by the default forms.
	// It produces a 10% overshoot past the target.
	DefaultOvershoot = float64(float32(1.70158))

	// inOutOvershootScale stretches the overshoot for the two-sided curve
	// so each half overshoots by the same relative amount.
	inOutOvershootScale = float64(float32(1.525))
)

// Elastic shape constants.
const (
	// ElasticPeriodFactor is the default period as a fraction of the duration.
	ElasticPeriodFactor = float64(float32(0.3))

	// ElasticInOutPeriodFactor is the default InOut period (0.3 * 1.5), with
	// the product taken in single precision.
	ElasticInOutPeriodFactor = float64(float32(0.3) * float32(1.5))

	elasticDecayRate = 10.0 // exponent scale of the 2^(10x) envelope
	elasticHalfGain  = 0.5  // each InOut half covers half the change
	elasticEndpoint  = 2.0  // InOut end in half-duration units
)

// Exponential curve constants.
const (
	expoBase      = 2.0
	expoDecayRate = 10.0
)

// Bounce piecewise-parabola constants.
// The output curve is four parabolas joined at 1/2.75, 2/2.75 and 2.5/2.75.
const (
	bounceDivisor   = 2.75
	bounceCurvature = 7.5625

	bounceSecondOffset = 1.5 / bounceDivisor
	bounceThirdOffset  = 2.25 / bounceDivisor
	bounceFourthOffset = 2.625 / bounceDivisor

	bounceSecondPeak = 0.75
	bounceThirdPeak  = 0.9375
	bounceFourthPeak = 0.984375

	bounceFirstEdge  = 1 / bounceDivisor
	bounceSecondEdge = 2 / bounceDivisor
	bounceThirdEdge  = 2.5 / bounceDivisor
)

// Common division constants.
const (
	halfDivisor = 2.0 // InOut curves work in half-duration units
	halfGain    = 0.5
)

// Hermite interpolation coefficients for Table.AtCubic.
// Formula: y = ((a*x + b)*x + c)*x + d
// coefA := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
const (
	hermiteCoeff0_5 = 0.5
	hermiteCoeff1_5 = 1.5
	hermiteCoeff2_5 = 2.5
)

// Table constants.
const (
	minTableSize     = 2   // a table needs both endpoints
	DefaultTableSize = 256 // samples in a default lookup table
)
