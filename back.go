package easing

// BackIn accelerates from b after first pulling back below it.
// Uses DefaultOvershoot.
func BackIn(t, b, c, d float64) float64 {
	return BackInWith(t, b, c, d, DefaultOvershoot)
}

// BackInWith is BackIn with a caller-supplied overshoot s.
// s = 0 removes the pull-back and degenerates to a cubic curve.
func BackInWith(t, b, c, d, s float64) float64 {
	x := t / d
	return c*x*x*((s+1)*x-s) + b
}

// BackOut overshoots b+c and settles back onto it. Uses DefaultOvershoot.
func BackOut(t, b, c, d float64) float64 {
	return BackOutWith(t, b, c, d, DefaultOvershoot)
}

// BackOutWith is BackOut with a caller-supplied overshoot s.
func BackOutWith(t, b, c, d, s float64) float64 {
	x := t/d - 1
	return c*(x*x*((s+1)*x+s)+1) + b
}

// BackInOut pulls back below b in the first half and overshoots b+c in the
// second half. Uses DefaultOvershoot.
func BackInOut(t, b, c, d float64) float64 {
	return BackInOutWith(t, b, c, d, DefaultOvershoot)
}

// BackInOutWith is BackInOut with a caller-supplied overshoot s.
// Both halves use s scaled by 1.525.
func BackInOutWith(t, b, c, d, s float64) float64 {
	scaled := s * inOutOvershootScale
	x := t / (d / halfDivisor)
	if x < 1 {
		return c/halfDivisor*(x*x*((scaled+1)*x-scaled)) + b
	}
	x -= 2
	return c/halfDivisor*(x*x*((scaled+1)*x+scaled)+2) + b
}
