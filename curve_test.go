package easing

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseCurve tests name parsing, aliases and separators.
func TestParseCurve(t *testing.T) {
	tests := []struct {
		input    string
		expected Curve
	}{
		{"back-in", Curve{Back, In}},
		{"back-out", Curve{Back, Out}},
		{"back-in-out", Curve{Back, InOut}},
		{"Elastic_InOut", Curve{Elastic, InOut}},
		{"ELASTIC-IN", Curve{Elastic, In}},
		{"  bounce out  ", Curve{Bounce, Out}},
		{"sine", Curve{Sine, InOut}},
		{"none", Curve{Linear, InOut}},
		{"quadratic-in", Curve{Quad, In}},
		{"exponential-out", Curve{Expo, Out}},
		{"circular_in_out", Curve{Circ, InOut}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			curve, err := ParseCurve(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, curve)
		})
	}
}

// TestParseCurve_Errors tests that unknown names wrap ErrUnknownCurve.
func TestParseCurve_Errors(t *testing.T) {
	for _, input := range []string{"", "wobble", "wobble-in", "back-sideways", "back-in-out-in"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseCurve(input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUnknownCurve)
		})
	}
}

// TestCurves tests the curve enumeration.
func TestCurves(t *testing.T) {
	curves := Curves()
	assert.Len(t, curves, int(familyCount)*int(directionCount))
	assert.Equal(t, Curve{Linear, In}, curves[0])
	assert.Equal(t, Curve{Bounce, InOut}, curves[len(curves)-1])

	seen := make(map[string]bool)
	for _, c := range curves {
		assert.True(t, c.Valid())
		assert.False(t, seen[c.String()], "duplicate name %s", c)
		seen[c.String()] = true

		parsed, err := ParseCurve(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
	}
}

// TestCurve_String tests canonical names, including out-of-range values.
func TestCurve_String(t *testing.T) {
	assert.Equal(t, "back-in-out", Curve{Back, InOut}.String())
	assert.Equal(t, "linear-in", Curve{}.String())
	assert.Equal(t, "Family(42)", Family(42).String())
	assert.Equal(t, "Direction(-1)", Direction(-1).String())
	assert.False(t, Curve{Family: familyCount}.Valid())
}

// TestCurve_JSON tests that curves are stored by name.
func TestCurve_JSON(t *testing.T) {
	type keyframe struct {
		At        float64 `json:"at"`
		InEasing  Curve   `json:"inEasing"`
		OutEasing Curve   `json:"outEasing"`
	}

	in := keyframe{At: 1.5, InEasing: Curve{Elastic, Out}, OutEasing: Curve{Quad, In}}
	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"at":1.5,"inEasing":"elastic-out","outEasing":"quad-in"}`, string(data))

	var out keyframe
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)

	err = json.Unmarshal([]byte(`{"inEasing":"wobble"}`), &out)
	assert.ErrorIs(t, err, ErrUnknownCurve)
}

// TestCurve_MarshalInvalid tests that invalid curves cannot be marshaled.
func TestCurve_MarshalInvalid(t *testing.T) {
	_, err := Curve{Family: -1}.MarshalText()
	assert.ErrorIs(t, err, ErrUnknownCurve)
}

// TestCurve_FuncPanicsOnInvalid tests the invalid-curve panic.
func TestCurve_FuncPanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() {
		Curve{Family: familyCount}.Func()
	})
}

// TestCurve_FuncOptions tests that options select the extended forms.
func TestCurve_FuncOptions(t *testing.T) {
	t.Run("Back overshoot", func(t *testing.T) {
		f := Curve{Back, Out}.Func(WithOvershoot(0))
		for x := 0.0; x <= 1; x += 0.125 {
			assert.Equal(t, BackOutWith(x, 1, 2, 1, 0), f(x, 1, 2, 1))
		}
		assert.Equal(t, BackInWith(0.3, 0, 1, 1, 3), Curve{Back, In}.Func(WithOvershoot(3))(0.3, 0, 1, 1))
		assert.Equal(t, BackInOutWith(0.3, 0, 1, 1, 3), Curve{Back, InOut}.Func(WithOvershoot(3))(0.3, 0, 1, 1))
	})

	t.Run("Elastic amplitude and period", func(t *testing.T) {
		f := Curve{Elastic, Out}.Func(WithAmplitude(2), WithPeriod(0.4))
		for x := 0.0; x <= 1; x += 0.125 {
			assert.Equal(t, ElasticOutWith(x, 0, 1, 1, 2, 0.4), f(x, 0, 1, 1))
		}
		assert.Equal(t, ElasticInWith(0.6, 0, 1, 1, 2, 0.4),
			Curve{Elastic, In}.Func(WithAmplitude(2), WithPeriod(0.4))(0.6, 0, 1, 1))
	})

	t.Run("Elastic amplitude only uses default period", func(t *testing.T) {
		f := Curve{Elastic, InOut}.Func(WithAmplitude(2))
		assert.Equal(t, ElasticInOutWith(0.7, 0, 1, 3, 2, 3*ElasticInOutPeriodFactor), f(0.7, 0, 1, 3))
	})

	t.Run("Elastic period only matches default shape", func(t *testing.T) {
		f := Curve{Elastic, Out}.Func(WithPeriod(ElasticPeriodFactor))
		for x := 0.0; x <= 1; x += 0.125 {
			assert.Equal(t, ElasticOut(x, 0, 1, 1), f(x, 0, 1, 1))
		}
		assert.Equal(t, 2.0, f(0.5, 2, 0, 1), "zero change stays flat")
	})

	t.Run("Options ignored for other families", func(t *testing.T) {
		f := Curve{Quad, In}.Func(WithOvershoot(3), WithPeriod(1))
		assert.Equal(t, QuadIn(0.3, 0, 1, 1), f(0.3, 0, 1, 1))
	})

	t.Run("Unrelated options keep defaults", func(t *testing.T) {
		f := Curve{Back, Out}.Func(WithPeriod(1))
		assert.Equal(t, BackOut(0.3, 0, 1, 1), f(0.3, 0, 1, 1))
	})
}

// TestCurve_Ease tests the shorthand evaluator.
func TestCurve_Ease(t *testing.T) {
	assert.Equal(t, CubicOut(0.25, 1, 2, 1), Curve{Cubic, Out}.Ease(0.25, 1, 2, 1))
}
