package easing

// BounceOut drops onto b+c and bounces three times with shrinking height.
func BounceOut(t, b, c, d float64) float64 {
	x := t / d
	switch {
	case x < bounceFirstEdge:
		return c*(bounceCurvature*x*x) + b
	case x < bounceSecondEdge:
		x -= bounceSecondOffset
		return c*(bounceCurvature*x*x+bounceSecondPeak) + b
	case x < bounceThirdEdge:
		x -= bounceThirdOffset
		return c*(bounceCurvature*x*x+bounceThirdPeak) + b
	default:
		x -= bounceFourthOffset
		return c*(bounceCurvature*x*x+bounceFourthPeak) + b
	}
}

// BounceIn is BounceOut mirrored in time: the bounces grow away from b.
func BounceIn(t, b, c, d float64) float64 {
	return c - BounceOut(d-t, 0, c, d) + b
}

// BounceInOut runs BounceIn over the first half and BounceOut over the second.
func BounceInOut(t, b, c, d float64) float64 {
	if t < d/halfDivisor {
		return BounceIn(t*halfDivisor, 0, c, d)*halfGain + b
	}
	return BounceOut(t*halfDivisor-d, 0, c, d)*halfGain + c*halfGain + b
}
