package quadrature

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/born-ml/romberg/internal/parallel"
)

// Config controls a Romberg integration.
type Config struct {
	// AbsTol and RelTol stop refinement once two successive estimates
	// differ by at most max(AbsTol, RelTol·|estimate|).
	AbsTol float64
	RelTol float64

	// MaxLevels bounds the number of step halvings. The integrand is
	// evaluated at most 2^MaxLevels + 1 times.
	MaxLevels int

	// Extrapolate enables Richardson extrapolation. RombergTanhSinh ignores it.
	Extrapolate bool

	// FullOutput keeps the extrapolation table in Info.Table.
	FullOutput bool

	// Parallel evaluates the new samples of a level concurrently. The
	// integrand must then be safe for concurrent use.
	Parallel parallel.Config

	// Logger receives per-level debug records. Nil means no logging.
	Logger *zap.Logger
}

// DefaultConfig returns the standard tolerances and level budget.
func DefaultConfig() Config {
	return Config{
		AbsTol:      1.4e-8,
		RelTol:      1.4e-8,
		MaxLevels:   20,
		Extrapolate: true,
		FullOutput:  false,
		Parallel:    parallel.Sequential(),
		Logger:      zap.NewNop(),
	}
}

// Validate reports configuration errors.
func (c Config) Validate() error {
	if c.MaxLevels < 0 {
		return fmt.Errorf("max levels %d: %w", c.MaxLevels, ErrNegativeLevels)
	}
	if c.AbsTol < 0 || math.IsNaN(c.AbsTol) {
		return fmt.Errorf("absolute tolerance %v: %w", c.AbsTol, ErrInvalidTolerance)
	}
	if c.RelTol < 0 || math.IsNaN(c.RelTol) {
		return fmt.Errorf("relative tolerance %v: %w", c.RelTol, ErrInvalidTolerance)
	}
	return nil
}

// logger returns the configured logger or a no-op one.
func (c Config) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

// tolerance returns the stopping threshold for an estimate.
func (c Config) tolerance(estimate float64) float64 {
	return math.Max(c.AbsTol, c.RelTol*math.Abs(estimate))
}
