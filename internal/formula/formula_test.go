package formula

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderGuardsBandDenominator(t *testing.T) {
	expr, err := Parse("({NIR} - {RED}) / ({NIR} + {RED})")
	require.NoError(t, err)

	bind := map[string]string{"NIR": "b_nir", "RED": "b_red"}
	assert.Equal(t, "(b_nir - b_red) / (b_nir + b_red + 1e-6)", Render(expr, bind, true))
	assert.Equal(t, "(b_nir - b_red) / (b_nir + b_red)", Render(expr, bind, false))
}

func TestRenderLeavesConstantDenominator(t *testing.T) {
	expr, err := Parse("({NIR} - {RED}) / 2")
	require.NoError(t, err)
	bind := map[string]string{"NIR": "b_nir", "RED": "b_red"}
	assert.Equal(t, "(b_nir - b_red) / 2", Render(expr, bind, true))
}

func TestRenderGuardsNestedDivisions(t *testing.T) {
	expr, err := Parse("(1 / {GREEN}) - (1 / {REDEDGE})")
	require.NoError(t, err)
	bind := map[string]string{"GREEN": "b3", "REDEDGE": "b5"}
	assert.Equal(t, "1 / (b3 + 1e-6) - 1 / (b5 + 1e-6)", Render(expr, bind, true))
}

func TestGuardedExpressionStaysFinite(t *testing.T) {
	// Zero-signal cells make the raw NDVI denominator zero.
	expr, err := Parse("(b_nir - b_red) / (b_nir + b_red + 1e-6)")
	require.NoError(t, err)

	v := Eval(expr, map[string]float64{"b_nir": 0, "b_red": 0})
	assert.False(t, math.IsNaN(v))
	assert.False(t, math.IsInf(v, 0))
	assert.Equal(t, 0.0, v)
}

func TestEvalOperators(t *testing.T) {
	cases := []struct {
		input string
		vals  map[string]float64
		want  float64
	}{
		{"1 + 2 * 3", nil, 7},
		{"(1 + 2) * 3", nil, 9},
		{"2 ^ 3", nil, 8},
		{"-2 ^ 2", nil, -4},
		{"10 / 4", nil, 2.5},
		{"sqrt(16)", nil, 4},
		{"abs(3 - 5)", nil, 2},
		{"exp(0)", nil, 1},
		{"log(1)", nil, 0},
		{"a ^ 2 / (b ^ 3)", map[string]float64{"a": 2, "b": 2}, 0.5},
		{"100 + 2.5 * x", map[string]float64{"x": 4}, 110},
	}
	for _, tc := range cases {
		expr, err := Parse(tc.input)
		require.NoError(t, err, tc.input)
		assert.InDelta(t, tc.want, Eval(expr, tc.vals), 1e-12, tc.input)
	}
}

func TestEvalUnknownVariableIsNaN(t *testing.T) {
	expr, err := Parse("a + 1")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(Eval(expr, nil)))
}

func TestVars(t *testing.T) {
	expr, err := Parse("2.5 * ({NIR} - {RED}) / ({NIR} + 6 * {RED} - 7.5 * {BLUE} + 1)")
	require.NoError(t, err)
	assert.Equal(t, []string{"BLUE", "NIR", "RED"}, Vars(expr))
}

func TestParseScientificNotation(t *testing.T) {
	expr, err := Parse("x + 1e-6")
	require.NoError(t, err)
	assert.InDelta(t, 1.000001, Eval(expr, map[string]float64{"x": 1}), 1e-12)
}

func TestParseErrors(t *testing.T) {
	for _, input := range []string{
		"",
		"(a + b",
		"a +",
		"{NIR",
		"sqrt",
		"a b",
		"1..2",
	} {
		_, err := Parse(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestRenderRoundTrips(t *testing.T) {
	// A rendered expression must parse again for the evaluation engine.
	expr, err := Parse("(2 * {NIR} + 1 - sqrt((2 * {NIR} + 1)^2 - 8 * ({NIR} - {RED}))) / 2")
	require.NoError(t, err)
	rendered := Render(expr, map[string]string{"NIR": "b8", "RED": "b4"}, true)

	again, err := Parse(rendered)
	require.NoError(t, err)
	vals := map[string]float64{"b8": 0.8, "b4": 0.2}
	assert.InDelta(t, Eval(expr, map[string]float64{"NIR": 0.8, "RED": 0.2}), Eval(again, vals), 1e-9)
}
