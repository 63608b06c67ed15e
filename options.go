package easing

import (
	"github.com/tphakala/go-easing/internal/mathutil"
)

// Option adjusts the shape parameters of a curve returned by Curve.Func.
type Option func(*shape)

// shape holds the optional shape parameters. nil means the default.
type shape struct {
	overshoot *float64
	amplitude *float64
	period    *float64
}

// WithOvershoot sets the Back overshoot s. DefaultOvershoot gives a 10%
// overshoot; 0 gives none.
func WithOvershoot(s float64) Option {
	return func(sh *shape) {
		sh.overshoot = &s
	}
}

// WithAmplitude sets the Elastic amplitude a. Amplitudes below the magnitude
// of the change are replaced by the change.
func WithAmplitude(a float64) Option {
	return func(sh *shape) {
		sh.amplitude = &a
	}
}

// WithPeriod sets the Elastic period p in the caller's time units.
// Without it the period scales with the duration.
func WithPeriod(p float64) Option {
	return func(sh *shape) {
		sh.period = &p
	}
}

func backWith(dir Direction, s float64) Func {
	switch dir {
	case In:
		return func(t, b, c, d float64) float64 { return BackInWith(t, b, c, d, s) }
	case Out:
		return func(t, b, c, d float64) float64 { return BackOutWith(t, b, c, d, s) }
	default:
		return func(t, b, c, d float64) float64 { return BackInOutWith(t, b, c, d, s) }
	}
}

// elasticWith builds an Elastic curve from partially specified parameters.
// A missing period falls back to the duration-scaled default. A missing
// amplitude uses the change with a quarter-period shift, as the default
// forms do.
func elasticWith(dir Direction, sh shape) Func {
	factor := ElasticPeriodFactor
	if dir == InOut {
		factor = ElasticInOutPeriodFactor
	}

	core := elasticInOut
	switch dir {
	case In:
		core = elasticIn
	case Out:
		core = elasticOut
	}

	return func(t, b, c, d float64) float64 {
		p := d * factor
		if sh.period != nil {
			p = *sh.period
		}
		if sh.amplitude == nil {
			return core(t, b, c, d, c, p, mathutil.QuarterShift(p))
		}
		a, s := mathutil.ElasticShape(*sh.amplitude, c, p)
		return core(t, b, c, d, a, p, s)
	}
}
