// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package quadrature

import (
	"github.com/born-ml/romberg/internal/parallel"
	"github.com/born-ml/romberg/internal/quadrature"
)

// Func is a scalar integrand f(x, params...).
type Func = quadrature.Func

// Integrand is a function that can be integrated and differentiated with
// respect to its parameters.
type Integrand = quadrature.Integrand

// WithGradient pairs a function with its analytic parameter gradient.
type WithGradient = quadrature.WithGradient

// Config controls tolerances, the level budget and output detail.
type Config = quadrature.Config

// ParallelConfig controls concurrent evaluation of the samples of one level.
type ParallelConfig = parallel.Config

// Info describes how an integration terminated.
type Info = quadrature.Info

// Status is the termination bitmask.
type Status = quadrature.Status

// Status bits.
const (
	StatusToleranceNotMet = quadrature.StatusToleranceNotMet
	StatusRoundoff        = quadrature.StatusRoundoff
	StatusBadIntegrand    = quadrature.StatusBadIntegrand
	StatusNoConvergence   = quadrature.StatusNoConvergence
	StatusDivergent       = quadrature.StatusDivergent
)

// StatusMessages maps every 5-bit status to its diagnostic message.
var StatusMessages = quadrature.StatusMessages

// Tangents is a perturbation direction of the bounds and parameters.
type Tangents = quadrature.Tangents

// JVPResult holds an integral and its directional derivative.
type JVPResult = quadrature.JVPResult

// Interval is a normalized integration range.
type Interval = quadrature.Interval

// Validation errors.
var (
	ErrNilIntegrand         = quadrature.ErrNilIntegrand
	ErrNaNBound             = quadrature.ErrNaNBound
	ErrNegativeLevels       = quadrature.ErrNegativeLevels
	ErrLevelsTooLarge       = quadrature.ErrLevelsTooLarge
	ErrInvalidTolerance     = quadrature.ErrInvalidTolerance
	ErrParamArity           = quadrature.ErrParamArity
	ErrInfiniteBoundTangent = quadrature.ErrInfiniteBoundTangent
)

// DefaultConfig returns AbsTol = RelTol = 1.4e-8, MaxLevels = 20 and
// extrapolation enabled.
func DefaultConfig() Config {
	return quadrature.DefaultConfig()
}

// DefaultParallelConfig returns a parallel configuration sized to the CPU count.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// Romberg integrates f over (a, b). Either bound may be infinite.
//
// Example:
//
//	value, info, err := quadrature.Romberg(f, 0, 1, []float64{2}, quadrature.DefaultConfig())
func Romberg(f Integrand, a, b float64, params []float64, cfg Config) (float64, Info, error) {
	return quadrature.Romberg(f, a, b, params, cfg)
}

// RombergTanhSinh integrates f over (a, b) after the tanh-sinh change of
// variables. Extrapolation is always disabled.
func RombergTanhSinh(f Integrand, a, b float64, params []float64, cfg Config) (float64, Info, error) {
	return quadrature.RombergTanhSinh(f, a, b, params, cfg)
}

// RombergJVP integrates f and its directional derivative along t.
func RombergJVP(f Integrand, a, b float64, params []float64, t Tangents, cfg Config) (JVPResult, error) {
	return quadrature.RombergJVP(f, a, b, params, t, cfg)
}

// RombergTanhSinhJVP is RombergJVP for the tanh-sinh variant.
func RombergTanhSinhJVP(f Integrand, a, b float64, params []float64, t Tangents, cfg Config) (JVPResult, error) {
	return quadrature.RombergTanhSinhJVP(f, a, b, params, t, cfg)
}

// MapInterval maps f over (a, b) onto [-1, 1], Jacobian and bound order included.
func MapInterval(f Func, a, b float64) (Func, Interval, error) {
	return quadrature.MapInterval(f, a, b)
}

// TanhSinh composes g on (-1, 1) with x(t) = tanh(π/2·sinh t).
func TanhSinh(g Func) Func {
	return quadrature.TanhSinh(g)
}

// TMax returns t such that tanh(π/2·sinh t) = x.
func TMax(x float64) float64 {
	return quadrature.TMax(x)
}
