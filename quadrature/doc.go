// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package quadrature provides Romberg integration of scalar functions of one variable.
//
// # Overview
//
// The package integrates f(x; p) over finite, half-infinite or
// doubly-infinite intervals:
//   - Romberg: trapezoid rule on halved steps with Richardson extrapolation
//   - RombergTanhSinh: the same rule after a tanh-sinh change of variables,
//     for integrable endpoint singularities
//   - RombergJVP, RombergTanhSinhJVP: directional derivatives of the
//     integral with respect to the bounds and parameters (Leibniz's rule)
//
// # Basic Usage
//
//	import (
//	    "math"
//
//	    "github.com/born-ml/romberg/quadrature"
//	)
//
//	func main() {
//	    f := quadrature.Func(func(x float64, _ ...float64) float64 {
//	        return math.Exp(-x * x)
//	    })
//	    value, info, err := quadrature.Romberg(f, math.Inf(-1), math.Inf(1), nil, quadrature.DefaultConfig())
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    if !info.Status.OK() {
//	        log.Println(info.Status.Message())
//	    }
//	    fmt.Println(value) // √π
//	}
//
// # Termination
//
// Integration never fails on numerical grounds. Every call returns a best
// effort value plus Info: an error estimate, the number of integrand
// evaluations and a Status bitmask. Status zero is the only value that
// guarantees the requested tolerance was met. Samples that evaluate to NaN
// or ±Inf, typically at mapped endpoints, count as zero.
//
// # Sensitivities
//
// An Integrand knows how to differentiate itself with respect to its
// parameters. Func does so with central finite differences; WithGradient
// uses an analytic gradient. Tangents compose, so second derivatives are
// obtained by integrating f.Tangent(dp) with RombergJVP.
package quadrature
