package quadrature

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Func is a scalar integrand evaluated at x with extra parameters.
type Func func(x float64, params ...float64) float64

// Integrand is a function that can be integrated and differentiated with
// respect to its parameters.
type Integrand interface {
	// Eval returns the integrand value at x.
	Eval(x float64, params []float64) float64

	// Tangent returns the integrand whose value at x is the directional
	// derivative of Eval(x, p) with respect to p along dparams, x held fixed.
	// The result is itself an Integrand, so tangents compose.
	Tangent(dparams []float64) Integrand
}

// Eval calls f.
func (f Func) Eval(x float64, params []float64) float64 {
	return f(x, params...)
}

// Tangent differentiates f along dparams with central finite differences.
func (f Func) Tangent(dparams []float64) Integrand {
	return finiteDiff(f, dparams)
}

// WithGradient pairs a function with its analytic parameter gradient.
// Grad must return a slice of len(params) holding ∂F/∂params[i].
type WithGradient struct {
	F    Func
	Grad func(x float64, params ...float64) []float64
}

// Eval calls F.
func (w WithGradient) Eval(x float64, params []float64) float64 {
	return w.F(x, params...)
}

// Tangent returns x -> Grad(x, p)·dparams. Higher-order tangents of the
// result fall back to finite differences.
// Evaluating the tangent panics if Grad returns a slice of the wrong length.
func (w WithGradient) Tangent(dparams []float64) Integrand {
	dp := append([]float64(nil), dparams...)
	return Func(func(x float64, params ...float64) float64 {
		return floats.Dot(w.Grad(x, params...), dp)
	})
}

// finiteDiffScale is the relative step for central differences, ε^(1/3).
var finiteDiffScale = math.Cbrt(epsilon)

// finiteDiff returns the central-difference directional derivative of f
// along dparams. The step is scaled to the magnitude of the parameters.
func finiteDiff(f Func, dparams []float64) Func {
	dp := append([]float64(nil), dparams...)
	norm := 0.0
	if len(dp) > 0 {
		norm = floats.Norm(dp, math.Inf(1))
	}
	return func(x float64, params ...float64) float64 {
		if norm == 0 {
			return 0
		}
		scale := 1.0
		if len(params) > 0 {
			scale = math.Max(1, floats.Norm(params, math.Inf(1)))
		}
		h := finiteDiffScale * scale / norm

		plus := make([]float64, len(params))
		minus := make([]float64, len(params))
		floats.AddScaledTo(plus, params, h, dp)
		floats.AddScaledTo(minus, params, -h, dp)
		return (f(x, plus...) - f(x, minus...)) / (2 * h)
	}
}

// Mask binds params to g and replaces every non-finite sample with zero.
// Coordinate maps expose removable singularities at sample points such as
// mapped endpoints; those nodes contribute nothing to the trapezoid sum.
func Mask(g Func, params []float64) func(x float64) float64 {
	p := append([]float64(nil), params...)
	return func(x float64) float64 {
		v := g(x, p...)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0
		}
		return v
	}
}

// funcOf adapts an Integrand to a Func.
func funcOf(f Integrand) Func {
	if fn, ok := f.(Func); ok {
		return fn
	}
	return func(x float64, params ...float64) float64 {
		return f.Eval(x, params)
	}
}
