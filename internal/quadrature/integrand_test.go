package quadrature

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMask_ZeroesNonFinite(t *testing.T) {
	g := Func(func(x float64, _ ...float64) float64 {
		switch {
		case x < 0:
			return math.NaN()
		case x == 0:
			return math.Inf(1)
		case x == 1:
			return math.Inf(-1)
		default:
			return x
		}
	})
	m := Mask(g, nil)

	assert.Equal(t, 0.0, m(-0.5))
	assert.Equal(t, 0.0, m(0))
	assert.Equal(t, 0.0, m(1))
	assert.Equal(t, 0.25, m(0.25))
}

func TestMask_BindsParamsByValue(t *testing.T) {
	g := Func(func(x float64, p ...float64) float64 { return p[0]*x + p[1] })
	params := []float64{2, 1}
	m := Mask(g, params)

	params[0] = 100
	assert.Equal(t, 7.0, m(3))
}

func TestMask_EvaluatesOncePerSample(t *testing.T) {
	calls := 0
	g := Func(func(x float64, _ ...float64) float64 {
		calls++
		return 1 / x
	})
	m := Mask(g, nil)

	m(0)
	m(2)
	assert.Equal(t, 2, calls)
}

func TestFuncTangent_FiniteDifference(t *testing.T) {
	// f = p0·x + p1², ∂f/∂p = (x, 2·p1).
	f := Func(func(x float64, p ...float64) float64 { return p[0]*x + p[1]*p[1] })

	df := f.Tangent([]float64{1, 2})
	got := df.Eval(2, []float64{3, 0.5})

	assert.InDelta(t, 2*1+1*2, got, 1e-8)
}

func TestFuncTangent_ZeroDirection(t *testing.T) {
	f := Func(func(x float64, p ...float64) float64 { return p[0] * x })

	df := f.Tangent([]float64{0})
	assert.Equal(t, 0.0, df.Eval(5, []float64{3}))

	none := f.Tangent(nil)
	assert.Equal(t, 0.0, none.Eval(5, nil))
}

func TestFuncTangent_CopiesDirection(t *testing.T) {
	f := Func(func(x float64, p ...float64) float64 { return p[0] * x })
	dp := []float64{1}
	df := f.Tangent(dp)
	dp[0] = 10

	assert.InDelta(t, 4.0, df.Eval(4, []float64{2}), 1e-8)
}

func TestWithGradient_Tangent(t *testing.T) {
	f := WithGradient{
		F: func(x float64, p ...float64) float64 { return p[0]*x + p[1]*p[1] },
		Grad: func(x float64, p ...float64) []float64 {
			return []float64{x, 2 * p[1]}
		},
	}

	df := f.Tangent([]float64{1, 2})
	assert.Equal(t, 4.0, df.Eval(2, []float64{3, 0.5}))
	assert.Equal(t, 6.25, f.Eval(2, []float64{3, 0.5}))
}

func TestTangent_SecondOrder(t *testing.T) {
	// f = p²·x, ∂²f/∂p² = 2x.
	square := func(x float64, p ...float64) float64 { return p[0] * p[0] * x }

	fd := Func(square).Tangent([]float64{1}).Tangent([]float64{1})
	assert.InDelta(t, 2.0, fd.Eval(1, []float64{3}), 1e-4)

	analytic := WithGradient{
		F:    square,
		Grad: func(x float64, p ...float64) []float64 { return []float64{2 * p[0] * x} },
	}
	mixed := analytic.Tangent([]float64{1}).Tangent([]float64{1})
	assert.InDelta(t, 2.0, mixed.Eval(1, []float64{3}), 1e-8)
}

func TestFuncOf(t *testing.T) {
	f := Func(func(x float64, p ...float64) float64 { return x + p[0] })
	assert.Equal(t, 3.0, funcOf(f)(1, 2))

	w := WithGradient{F: f}
	assert.Equal(t, 3.0, funcOf(w)(1, 2))
}
