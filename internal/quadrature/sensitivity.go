package quadrature

import (
	"fmt"
	"math"
)

// Tangents is a perturbation direction of the integration inputs.
type Tangents struct {
	A, B   float64   // Bound perturbations.
	Params []float64 // Parameter perturbation, len(params) or empty.
}

// JVPResult holds an integral and its directional derivative.
//
// The diagnostics of the derivative are those of the recursive integration
// of the parameter tangent; they have no analytic derivative of their own.
type JVPResult struct {
	Value       float64
	Info        Info
	Tangent     float64
	TangentInfo Info
}

// integrator is the signature shared by Romberg and RombergTanhSinh.
type integrator func(f Integrand, a, b float64, params []float64, cfg Config) (float64, Info, error)

// RombergJVP integrates f with Romberg and differentiates the result along t
// using Leibniz's rule:
//
//	d∫_a^b f(x;p)dx = f(b;p)·db − f(a;p)·da + ∫_a^b ∂f/∂p·dp dx
//
// The last integral is computed by calling Romberg again on f.Tangent(dp)
// with the same bounds and configuration.
func RombergJVP(f Integrand, a, b float64, params []float64, t Tangents, cfg Config) (JVPResult, error) {
	return jvp(Romberg, f, a, b, params, t, cfg)
}

// RombergTanhSinhJVP is RombergJVP for the tanh-sinh variant.
func RombergTanhSinhJVP(f Integrand, a, b float64, params []float64, t Tangents, cfg Config) (JVPResult, error) {
	return jvp(RombergTanhSinh, f, a, b, params, t, cfg)
}

func jvp(integrate integrator, f Integrand, a, b float64, params []float64, t Tangents, cfg Config) (JVPResult, error) {
	if err := validate(f, cfg); err != nil {
		return JVPResult{}, err
	}
	if err := validateGradient(f); err != nil {
		return JVPResult{}, err
	}
	dp := t.Params
	if len(dp) == 0 {
		dp = make([]float64, len(params))
	}
	if len(dp) != len(params) {
		return JVPResult{}, fmt.Errorf("got %d tangents for %d parameters: %w", len(dp), len(params), ErrParamArity)
	}
	if (math.IsInf(a, 0) && t.A != 0) || (math.IsInf(b, 0) && t.B != 0) {
		return JVPResult{}, ErrInfiniteBoundTangent
	}

	value, info, err := integrate(f, a, b, params, cfg)
	if err != nil {
		return JVPResult{}, err
	}
	inner, innerInfo, err := integrate(f.Tangent(dp), a, b, params, cfg)
	if err != nil {
		return JVPResult{}, fmt.Errorf("parameter tangent: %w", err)
	}

	tangent := inner
	if t.B != 0 {
		tangent += f.Eval(b, params) * t.B
	}
	if t.A != 0 {
		tangent -= f.Eval(a, params) * t.A
	}

	return JVPResult{
		Value:       value,
		Info:        info,
		Tangent:     tangent,
		TangentInfo: innerInfo,
	}, nil
}

// validateGradient rejects an analytic gradient that is missing.
func validateGradient(f Integrand) error {
	var grad func(float64, ...float64) []float64
	switch fn := f.(type) {
	case WithGradient:
		grad = fn.Grad
	case *WithGradient:
		grad = fn.Grad
	default:
		return nil
	}
	if grad == nil {
		return fmt.Errorf("WithGradient.Grad: %w", ErrNilIntegrand)
	}
	return nil
}
