package easing

import (
	"github.com/tphakala/go-easing/internal/mathutil"
)

// ElasticIn winds up with growing oscillations around b before snapping to
// b+c. The period is d*ElasticPeriodFactor and the amplitude is c.
//
// t == 0 and t == d return b and b+c exactly.
func ElasticIn(t, b, c, d float64) float64 {
	p := d * ElasticPeriodFactor
	return elasticIn(t, b, c, d, c, p, mathutil.QuarterShift(p))
}

// ElasticInWith is ElasticIn with amplitude a and period p.
// An amplitude below |c| is replaced by c.
func ElasticInWith(t, b, c, d, a, p float64) float64 {
	a, s := mathutil.ElasticShape(a, c, p)
	return elasticIn(t, b, c, d, a, p, s)
}

func elasticIn(t, b, c, d, a, p, s float64) float64 {
	if t == 0 {
		return b
	}
	x := t / d
	if x == 1 {
		return b + c
	}
	x--
	return -(a * mathutil.Decay(elasticDecayRate, x) * mathutil.Oscillation(x, d, s, p)) + b
}

// ElasticOut overshoots b+c and settles onto it with decaying oscillations.
// The period is d*ElasticPeriodFactor and the amplitude is c.
//
// t == 0 and t == d return b and b+c exactly.
func ElasticOut(t, b, c, d float64) float64 {
	p := d * ElasticPeriodFactor
	return elasticOut(t, b, c, d, c, p, mathutil.QuarterShift(p))
}

// ElasticOutWith is ElasticOut with amplitude a and period p.
// An amplitude below |c| is replaced by c.
func ElasticOutWith(t, b, c, d, a, p float64) float64 {
	a, s := mathutil.ElasticShape(a, c, p)
	return elasticOut(t, b, c, d, a, p, s)
}

func elasticOut(t, b, c, d, a, p, s float64) float64 {
	if t == 0 {
		return b
	}
	x := t / d
	if x == 1 {
		return b + c
	}
	return a*mathutil.Decay(-elasticDecayRate, x)*mathutil.Oscillation(x, d, s, p) + c + b
}

// ElasticInOut oscillates around b, crosses the midpoint and settles onto
// b+c. The period is d*ElasticInOutPeriodFactor and the amplitude is c.
//
// t == 0 and t == d return b and b+c exactly.
func ElasticInOut(t, b, c, d float64) float64 {
	p := d * ElasticInOutPeriodFactor
	return elasticInOut(t, b, c, d, c, p, mathutil.QuarterShift(p))
}

// ElasticInOutWith is ElasticInOut with amplitude a and period p.
// An amplitude below |c| is replaced by c.
func ElasticInOutWith(t, b, c, d, a, p float64) float64 {
	a, s := mathutil.ElasticShape(a, c, p)
	return elasticInOut(t, b, c, d, a, p, s)
}

// elasticInOut works in half-duration units, so the end is at x == 2.
func elasticInOut(t, b, c, d, a, p, s float64) float64 {
	if t == 0 {
		return b
	}
	x := t / (d / halfDivisor)
	if x == elasticEndpoint {
		return b + c
	}
	if x < 1 {
		x--
		return -elasticHalfGain*(a*mathutil.Decay(elasticDecayRate, x)*mathutil.Oscillation(x, d, s, p)) + b
	}
	x--
	return a*mathutil.Decay(-elasticDecayRate, x)*mathutil.Oscillation(x, d, s, p)*elasticHalfGain + c + b
}
