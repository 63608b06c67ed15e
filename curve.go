package easing

import (
	"errors"
	"fmt"
	"strings"
)

// Func is an easing function: it maps elapsed time t to a value that starts
// at b and reaches b+c when t equals the duration d.
type Func func(t, b, c, d float64) float64

// Common errors
var (
	// ErrUnknownCurve is returned when a curve name cannot be parsed.
	ErrUnknownCurve = errors.New("unknown easing curve")

	// ErrInvalidTableSize is returned when a lookup table or sample count is too small.
	ErrInvalidTableSize = errors.New("invalid table size")
)

// Family enumerates the easing curve families.
type Family int

const (
	// Linear changes at a constant rate.
	Linear Family = iota
	// Quad follows t².
	Quad
	// Cubic follows t³.
	Cubic
	// Quart follows t⁴.
	Quart
	// Quint follows t⁵.
	Quint
	// Sine follows a sine wave.
	Sine
	// Expo follows a power of two.
	Expo
	// Circ follows a quarter circle.
	Circ
	// Back overshoots the endpoints.
	Back
	// Elastic oscillates like a spring.
	Elastic
	// Bounce bounces off the target.
	Bounce

	familyCount
)

var familyNames = [familyCount]string{
	Linear:  "linear",
	Quad:    "quad",
	Cubic:   "cubic",
	Quart:   "quart",
	Quint:   "quint",
	Sine:    "sine",
	Expo:    "expo",
	Circ:    "circ",
	Back:    "back",
	Elastic: "elastic",
	Bounce:  "bounce",
}

// Alternative family names accepted by ParseCurve.
var familyAliases = map[string]Family{
	"none":        Linear,
	"quadratic":   Quad,
	"quartic":     Quart,
	"quintic":     Quint,
	"sinusoidal":  Sine,
	"exponential": Expo,
	"circular":    Circ,
}

// String returns the canonical family name.
func (f Family) String() string {
	if f < 0 || f >= familyCount {
		return fmt.Sprintf("Family(%d)", int(f))
	}
	return familyNames[f]
}

// Direction selects which end of the curve is eased.
type Direction int

const (
	// In eases the start.
	In Direction = iota
	// Out eases the end.
	Out
	// InOut eases both ends and joins them at the midpoint.
	InOut

	directionCount
)

var directionNames = [directionCount]string{
	In:    "in",
	Out:   "out",
	InOut: "in-out",
}

// String returns the canonical direction suffix.
func (d Direction) String() string {
	if d < 0 || d >= directionCount {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// Curve identifies one easing function by family and direction.
// The zero value is linear-in.
type Curve struct {
	Family    Family
	Direction Direction
}

// defaults holds the default form of every curve, indexed by family then direction.
var defaults = [familyCount][directionCount]Func{
	Linear:  {LinearIn, LinearOut, LinearInOut},
	Quad:    {QuadIn, QuadOut, QuadInOut},
	Cubic:   {CubicIn, CubicOut, CubicInOut},
	Quart:   {QuartIn, QuartOut, QuartInOut},
	Quint:   {QuintIn, QuintOut, QuintInOut},
	Sine:    {SineIn, SineOut, SineInOut},
	Expo:    {ExpoIn, ExpoOut, ExpoInOut},
	Circ:    {CircIn, CircOut, CircInOut},
	Back:    {BackIn, BackOut, BackInOut},
	Elastic: {ElasticIn, ElasticOut, ElasticInOut},
	Bounce:  {BounceIn, BounceOut, BounceInOut},
}

// Valid reports whether the curve names a known family and direction.
func (c Curve) Valid() bool {
	return c.Family >= 0 && c.Family < familyCount &&
		c.Direction >= 0 && c.Direction < directionCount
}

// String returns the canonical name, e.g. "back-in-out".
func (c Curve) String() string {
	return c.Family.String() + "-" + c.Direction.String()
}

// Ease evaluates the default form of the curve.
func (c Curve) Ease(t, b, change, d float64) float64 {
	return c.Func()(t, b, change, d)
}

// Func returns the easing function for the curve.
//
// Options only affect Back (WithOvershoot) and Elastic (WithAmplitude,
// WithPeriod); they are ignored for other families. Without options the
// default form is returned. Func panics if the curve is not Valid.
func (c Curve) Func(opts ...Option) Func {
	if !c.Valid() {
		panic(fmt.Sprintf("easing: invalid curve %v", c))
	}
	if len(opts) == 0 {
		return defaults[c.Family][c.Direction]
	}

	var sh shape
	for _, opt := range opts {
		opt(&sh)
	}

	switch c.Family {
	case Back:
		if sh.overshoot != nil {
			return backWith(c.Direction, *sh.overshoot)
		}
	case Elastic:
		if sh.amplitude != nil || sh.period != nil {
			return elasticWith(c.Direction, sh)
		}
	}
	return defaults[c.Family][c.Direction]
}

// MarshalText implements encoding.TextMarshaler.
func (c Curve) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownCurve, c)
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Curve) UnmarshalText(text []byte) error {
	parsed, err := ParseCurve(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseCurve parses a curve name such as "back-out", "Elastic_InOut" or
// "sine". Matching is case-insensitive and accepts '-', '_' or ' ' as
// separators. A bare family name selects InOut.
func ParseCurve(name string) (Curve, error) {
	norm := strings.ToLower(strings.TrimSpace(name))
	norm = strings.NewReplacer("_", "-", " ", "-").Replace(norm)

	familyPart, directionPart, _ := strings.Cut(norm, "-")
	family, ok := parseFamily(familyPart)
	if !ok {
		return Curve{}, fmt.Errorf("%w: %q", ErrUnknownCurve, name)
	}

	var direction Direction
	switch directionPart {
	case "in":
		direction = In
	case "out":
		direction = Out
	case "in-out", "inout", "":
		direction = InOut
	default:
		return Curve{}, fmt.Errorf("%w: %q has unknown direction %q", ErrUnknownCurve, name, directionPart)
	}

	return Curve{Family: family, Direction: direction}, nil
}

func parseFamily(name string) (Family, bool) {
	for f, n := range familyNames {
		if n == name {
			return Family(f), true
		}
	}
	f, ok := familyAliases[name]
	return f, ok
}

// Curves returns every curve, ordered by family then direction.
func Curves() []Curve {
	curves := make([]Curve, 0, int(familyCount)*int(directionCount))
	for f := range familyCount {
		for d := range directionCount {
			curves = append(curves, Curve{Family: f, Direction: d})
		}
	}
	return curves
}
