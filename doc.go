// Package easing provides Robert Penner's easing functions in pure Go.
//
// An easing function maps elapsed time to an interpolated value. Every
// function in this package has the same shape:
//
//	f(t, b, c, d float64) float64
//
// where t is the elapsed time, b the start value, c the total change
// (end - start) and d the duration. f(0, b, c, d) is b and f(d, b, c, d) is
// b+c. The functions are pure: no state, no allocation, safe to call from
// any number of goroutines.
//
// # Families
//
// Each family provides In, Out and InOut variants:
//
//   - Linear: constant rate.
//   - Quad, Cubic, Quart, Quint: polynomial curves of degree 2 to 5.
//   - Sine, Expo, Circ: sinusoidal, exponential and circular curves.
//   - Back: overshoots the start or end. [BackInWith] and friends take the
//     overshoot s (default [DefaultOvershoot], a 10% overshoot).
//   - Elastic: spring-like oscillation. [ElasticInWith] and friends take the
//     amplitude a and period p. An amplitude below |c| is raised to c.
//   - Bounce: bounces off the target.
//
// # Quick Start
//
// Move a value from 10 to 250 over two seconds:
//
//	x := easing.Tween(easing.CubicOut, 10, 250, elapsed.Seconds(), 2)
//
// Select a curve by name, for example from a configuration file:
//
//	curve, err := easing.ParseCurve("elastic-out")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	f := curve.Func(easing.WithPeriod(0.4))
//	y := f(t, 0, 1, 1)
//
// [Curve] implements encoding.TextMarshaler and encoding.TextUnmarshaler, so
// curves can be stored in JSON or YAML documents by name.
//
// # Lookup Tables
//
// [NewTable] samples a curve once over [0, 1]. [Table.At] then interpolates
// linearly between samples, and [Table.Scaled] maps the whole table onto a
// value range using SIMD scaling via github.com/tphakala/simd.
//
// # Numerics
//
// The Back and Elastic constants keep the single-precision literals of the
// published equations (1.70158, 1.525, 0.3) widened to float64, so results
// match other ports bit for bit where the platform math library allows.
//
// Inputs are not validated. d == 0 and out-of-range asin arguments produce
// NaN or Inf per IEEE-754 instead of errors.
//
// # Attribution
//
// The easing equations are by Robert Penner (http://robertpenner.com/easing/),
// released under the BSD license.
package easing
