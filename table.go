package easing

import (
	"fmt"
	"math"

	"github.com/tphakala/simd/f64"
	"gonum.org/v1/gonum/floats"
)

// Table is a normalized easing curve sampled on an even grid over [0, 1].
// A Table is immutable and safe for concurrent use.
type Table struct {
	values []float64
	last   float64 // len(values)-1 as float64
}

// NewTable samples f(x, 0, 1, 1) at size evenly spaced points, including
// both endpoints. size must be at least 2.
func NewTable(f Func, size int) (*Table, error) {
	if size < minTableSize {
		return nil, fmt.Errorf("%w: need at least %d samples, got %d", ErrInvalidTableSize, minTableSize, size)
	}

	grid := floats.Span(make([]float64, size), 0, 1)
	grid[size-1] = 1

	values := make([]float64, size)
	for i, x := range grid {
		values[i] = f(x, 0, 1, 1)
	}

	return &Table{
		values: values,
		last:   float64(size - 1),
	}, nil
}

// Len returns the number of samples.
func (t *Table) Len() int {
	return len(t.values)
}

// Values returns a copy of the samples.
func (t *Table) Values() []float64 {
	out := make([]float64, len(t.values))
	copy(out, t.values)
	return out
}

// At returns the curve at normalized time x using linear interpolation
// between neighboring samples. x is clamped to [0, 1]; NaN returns NaN.
func (t *Table) At(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return x
	case x <= 0:
		return t.values[0]
	case x >= 1:
		return t.values[len(t.values)-1]
	}

	pos := x * t.last
	i := int(pos)
	if i >= len(t.values)-1 {
		return t.values[len(t.values)-1]
	}
	frac := pos - float64(i)
	if frac == 0 {
		return t.values[i]
	}
	return t.values[i] + (t.values[i+1]-t.values[i])*frac
}

// AtCubic is like At but uses 4-point cubic Hermite interpolation, which
// follows curved sections more closely. Neighbors past either end repeat
// the endpoint sample.
func (t *Table) AtCubic(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return x
	case x <= 0:
		return t.values[0]
	case x >= 1:
		return t.values[len(t.values)-1]
	}

	pos := x * t.last
	i := int(pos)
	frac := pos - float64(i)

	y0 := t.sample(i - 1)
	y1 := t.sample(i)
	y2 := t.sample(i + 1)
	y3 := t.sample(i + 2)

	// Hermite basis with Catmull-Rom tangents
	coefA := -hermiteCoeff0_5*y0 + hermiteCoeff1_5*y1 - hermiteCoeff1_5*y2 + hermiteCoeff0_5*y3
	coefB := y0 - hermiteCoeff2_5*y1 + 2*y2 - hermiteCoeff0_5*y3
	coefC := -hermiteCoeff0_5*y0 + hermiteCoeff0_5*y2
	coefD := y1

	return ((coefA*frac+coefB)*frac+coefC)*frac + coefD
}

// sample returns the sample at i, clamping i to the table.
func (t *Table) sample(i int) float64 {
	return t.values[max(0, min(i, len(t.values)-1))]
}

// Ease evaluates the table as a Func. Unlike the closed-form curves the
// time is clamped to [0, d].
func (t *Table) Ease(elapsed, b, c, d float64) float64 {
	return c*t.At(elapsed/d) + b
}

// Scaled writes b + c*v for every sample v into dst and returns it.
// dst is reallocated if it is shorter than the table.
func (t *Table) Scaled(dst []float64, b, c float64) []float64 {
	if len(dst) < len(t.values) {
		dst = make([]float64, len(t.values))
	}
	dst = dst[:len(t.values)]
	f64.Scale(dst, t.values, c)
	floats.AddConst(b, dst)
	return dst
}

// Sample evaluates f at n evenly spaced times from 0 to d inclusive.
// n must be at least 2.
func Sample(f Func, b, c, d float64, n int) ([]float64, error) {
	if n < minTableSize {
		return nil, fmt.Errorf("%w: need at least %d samples, got %d", ErrInvalidTableSize, minTableSize, n)
	}

	times := floats.Span(make([]float64, n), 0, d)
	times[n-1] = d

	out := make([]float64, n)
	for i, t := range times {
		out[i] = f(t, b, c, d)
	}
	return out, nil
}

// Extent returns the smallest and largest value in values.
// An empty slice returns NaN for both.
func Extent(values []float64) (minVal, maxVal float64) {
	if len(values) == 0 {
		return math.NaN(), math.NaN()
	}
	return floats.Min(values), floats.Max(values)
}
