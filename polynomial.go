package easing

// Polynomial curves of degree 2 through 5. In variants start slowly,
// Out variants end slowly, InOut variants join both at d/2.

// LinearIn changes at a constant rate. LinearOut and LinearInOut are the same
// curve, kept so every family has all three directions.
func LinearIn(t, b, c, d float64) float64 {
	return c*t/d + b
}

// LinearOut is identical to LinearIn.
func LinearOut(t, b, c, d float64) float64 {
	return LinearIn(t, b, c, d)
}

// LinearInOut is identical to LinearIn.
func LinearInOut(t, b, c, d float64) float64 {
	return LinearIn(t, b, c, d)
}

// QuadIn eases in along t².
func QuadIn(t, b, c, d float64) float64 {
	x := t / d
	return c*x*x + b
}

// QuadOut eases out along 1-(1-t)².
func QuadOut(t, b, c, d float64) float64 {
	x := t / d
	return -c*x*(x-2) + b
}

// QuadInOut joins QuadIn and QuadOut at d/2.
func QuadInOut(t, b, c, d float64) float64 {
	x := t / (d / halfDivisor)
	if x < 1 {
		return c/halfDivisor*x*x + b
	}
	x--
	return -c/halfDivisor*(x*(x-2)-1) + b
}

// CubicIn eases in along t³.
func CubicIn(t, b, c, d float64) float64 {
	x := t / d
	return c*x*x*x + b
}

// CubicOut eases out along 1+(t-1)³.
func CubicOut(t, b, c, d float64) float64 {
	x := t/d - 1
	return c*(x*x*x+1) + b
}

// CubicInOut joins CubicIn and CubicOut at d/2.
func CubicInOut(t, b, c, d float64) float64 {
	x := t / (d / halfDivisor)
	if x < 1 {
		return c/halfDivisor*x*x*x + b
	}
	x -= 2
	return c/halfDivisor*(x*x*x+2) + b
}

// QuartIn eases in along t⁴.
func QuartIn(t, b, c, d float64) float64 {
	x := t / d
	return c*x*x*x*x + b
}

// QuartOut eases out along 1-(t-1)⁴.
func QuartOut(t, b, c, d float64) float64 {
	x := t/d - 1
	return -c*(x*x*x*x-1) + b
}

// QuartInOut joins QuartIn and QuartOut at d/2.
func QuartInOut(t, b, c, d float64) float64 {
	x := t / (d / halfDivisor)
	if x < 1 {
		return c/halfDivisor*x*x*x*x + b
	}
	x -= 2
	return -c/halfDivisor*(x*x*x*x-2) + b
}

// QuintIn eases in along t⁵.
func QuintIn(t, b, c, d float64) float64 {
	x := t / d
	return c*x*x*x*x*x + b
}

// QuintOut eases out along 1+(t-1)⁵.
func QuintOut(t, b, c, d float64) float64 {
	x := t/d - 1
	return c*(x*x*x*x*x+1) + b
}

// QuintInOut joins QuintIn and QuintOut at d/2.
func QuintInOut(t, b, c, d float64) float64 {
	x := t / (d / halfDivisor)
	if x < 1 {
		return c/halfDivisor*x*x*x*x*x + b
	}
	x -= 2
	return c/halfDivisor*(x*x*x*x*x+2) + b
}
