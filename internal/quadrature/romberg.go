// Package quadrature implements Romberg integration of scalar functions.
//
// The engine works on the canonical interval [-1, 1]:
//   - Interval maps finite, half-infinite and doubly-infinite ranges onto it
//   - TanhSinh optionally moves quadrature mass away from the endpoints
//   - Mask binds parameters and zeroes non-finite samples
//   - extrapolate builds the trapezoid/Richardson table level by level
//
// RombergJVP and RombergTanhSinhJVP propagate directional derivatives with
// respect to the bounds and parameters using Leibniz's rule.
package quadrature

import (
	"fmt"
	"math"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/romberg/internal/parallel"
)

// maxLevelsLimit keeps 2^(n-1) representable as an int.
const maxLevelsLimit = 62

// Info describes how an integration terminated.
type Info struct {
	Err    float64    // Estimated absolute error, >= 0.
	NEval  int        // Integrand evaluations, always 2^Levels + 1.
	Levels int        // Completed step halvings.
	Status Status     // Zero when the tolerance was met.
	Table  *mat.Dense // Extrapolation table, only with Config.FullOutput.
}

// Romberg integrates f over (a, b) with the trapezoid rule on successively
// halved steps, accelerated by Richardson extrapolation when
// cfg.Extrapolate is set. Infinite bounds are allowed.
//
// Errors are returned only for invalid input, before f is evaluated. A
// result that misses the tolerance is reported through Info.Status.
func Romberg(f Integrand, a, b float64, params []float64, cfg Config) (float64, Info, error) {
	if err := validate(f, cfg); err != nil {
		return 0, Info{}, err
	}
	g, iv, err := MapInterval(funcOf(f), a, b)
	if err != nil {
		return 0, Info{}, err
	}

	log := cfg.logger().With(
		zap.String("method", "romberg"),
		zap.Stringer("interval", iv.Kind),
	)
	value, info := extrapolate(Mask(g, params), cfg, cfg.Extrapolate, log)
	return value, info, nil
}

// RombergTanhSinh integrates f over (a, b) after the tanh-sinh change of
// variables, which handles integrable endpoint singularities. The
// transformed integrand is truncated to (-TMax, TMax) and integrated without
// extrapolation; cfg.Extrapolate is ignored.
func RombergTanhSinh(f Integrand, a, b float64, params []float64, cfg Config) (float64, Info, error) {
	if err := validate(f, cfg); err != nil {
		return 0, Info{}, err
	}
	g, iv, err := MapInterval(funcOf(f), a, b)
	if err != nil {
		return 0, Info{}, err
	}

	tmax := tanhSinhBound()
	h, _, err := MapInterval(TanhSinh(g), -tmax, tmax)
	if err != nil {
		return 0, Info{}, fmt.Errorf("tanh-sinh bound: %w", err)
	}

	log := cfg.logger().With(
		zap.String("method", "romberg-tanh-sinh"),
		zap.Stringer("interval", iv.Kind),
		zap.Float64("tmax", tmax),
	)
	value, info := extrapolate(Mask(h, params), cfg, false, log)
	return value, info, nil
}

// validate checks arguments that must be rejected before any evaluation.
func validate(f Integrand, cfg Config) error {
	switch fn := f.(type) {
	case nil:
		return ErrNilIntegrand
	case Func:
		if fn == nil {
			return ErrNilIntegrand
		}
	case WithGradient:
		if fn.F == nil {
			return fmt.Errorf("WithGradient.F: %w", ErrNilIntegrand)
		}
	case *WithGradient:
		if fn == nil || fn.F == nil {
			return fmt.Errorf("WithGradient.F: %w", ErrNilIntegrand)
		}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.MaxLevels > maxLevelsLimit {
		return fmt.Errorf("max levels %d exceeds %d: %w", cfg.MaxLevels, maxLevelsLimit, ErrLevelsTooLarge)
	}
	return nil
}

// extrapolate runs the Romberg iteration for sample on [-1, 1].
//
// Row n of the table holds in column 0 the trapezoid estimate over 2^n
// panels and in columns 1..n its Richardson extrapolations. Each level
// reuses the previous trapezoid sum and evaluates only the 2^(n-1) new
// midpoints.
func extrapolate(sample func(float64) float64, cfg Config, extrap bool, log *zap.Logger) (float64, Info) {
	levels := cfg.MaxLevels
	table := mat.NewDense(levels+1, levels+1, nil)

	best := func(row int) float64 {
		if extrap {
			return table.At(row, row)
		}
		return table.At(row, 0)
	}

	// Two-point trapezoid rule; the canonical width 2 cancels the 1/2.
	table.Set(0, 0, sample(-1)+sample(1))
	neval := 2
	errEst := math.Inf(1)

	n := 1
	for ; n <= levels && !(errEst <= cfg.tolerance(best(n-1))); n++ {
		h := math.Ldexp(2, -n)
		count := 1 << (n - 1)

		sum := parallel.Sum(count, func(i int) float64 {
			return sample(-1 + h*float64(2*i+1))
		}, cfg.Parallel)
		table.Set(n, 0, 0.5*table.At(n-1, 0)+h*sum)
		neval += count

		if extrap {
			for m := 1; m <= n; m++ {
				prev := table.At(n, m-1)
				table.Set(n, m, prev+(prev-table.At(n-1, m-1))/(math.Pow(4, float64(m))-1))
			}
			errEst = math.Abs(table.At(n, n) - table.At(n, n-1))
		} else {
			errEst = math.Abs(table.At(n, 0) - table.At(n-1, 0))
		}

		log.Debug("romberg level",
			zap.Int("level", n),
			zap.Float64("estimate", best(n)),
			zap.Float64("error", errEst),
			zap.Int("evaluations", neval),
		)
	}

	last := n - 1
	value := best(last)

	var status Status
	if !(errEst <= cfg.tolerance(value)) {
		status |= StatusToleranceNotMet
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		status |= StatusBadIntegrand
	}

	info := Info{
		Err:    errEst,
		NEval:  neval,
		Levels: last,
		Status: status,
	}
	if cfg.FullOutput {
		info.Table = table
	}

	log.Debug("romberg done",
		zap.Float64("value", value),
		zap.Float64("error", errEst),
		zap.Int("levels", last),
		zap.Int("evaluations", neval),
		zap.Stringer("status", status),
	)
	return value, info
}
