package easing

// Tween evaluates f in from/to form: the value moves from `from` to `to`
// over duration d.
func Tween(f Func, from, to, t, d float64) float64 {
	return f(t, from, to-from, d)
}

// Unit returns f in normalized form, mapping progress x in [0, 1] to
// eased progress (0 at x == 0, 1 at x == 1).
func Unit(f Func) func(x float64) float64 {
	return func(x float64) float64 {
		return f(x, 0, 1, 1)
	}
}

// Lerp linearly interpolates between from and to by progress x.
// Combined with Unit it applies an easing curve to any pair of values.
func Lerp(from, to, x float64) float64 {
	return from + (to-from)*x
}
