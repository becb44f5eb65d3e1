// Package catalog provides named integrands with known integrals.
//
// The entries drive the command line tool and double as regression cases
// for the quadrature engine.
package catalog

import (
	"fmt"
	"math"
	"sort"

	"github.com/born-ml/romberg/internal/quadrature"
)

// Entry is a named integrand with default bounds and parameters.
type Entry struct {
	Name        string
	Description string
	Integrand   quadrature.Integrand
	A, B        float64
	Params      []float64

	// Exact returns the closed-form integral, or nil if unknown.
	Exact func(a, b float64, params []float64) float64

	// Singular marks integrands with endpoint singularities that need
	// the tanh-sinh variant.
	Singular bool
}

// HasExact reports whether the entry knows its closed form.
func (e Entry) HasExact() bool {
	return e.Exact != nil
}

var entries = map[string]Entry{}

func register(e Entry) {
	if _, dup := entries[e.Name]; dup {
		panic(fmt.Sprintf("catalog: duplicate entry %q", e.Name))
	}
	entries[e.Name] = e
}

// Lookup returns the entry registered under name.
func Lookup(name string) (Entry, error) {
	e, ok := entries[name]
	if !ok {
		return Entry{}, fmt.Errorf("unknown integrand %q (see 'list')", name)
	}
	return e, nil
}

// Names returns the registered names in sorted order.
func Names() []string {
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns every entry sorted by name.
func All() []Entry {
	names := Names()
	out := make([]Entry, len(names))
	for i, name := range names {
		out[i] = entries[name]
	}
	return out
}

func init() {
	inf := math.Inf(1)

	register(Entry{
		Name:        "constant",
		Description: "c",
		Integrand:   quadrature.Func(func(_ float64, p ...float64) float64 { return p[0] }),
		A:           0,
		B:           1,
		Params:      []float64{1},
		Exact:       func(a, b float64, p []float64) float64 { return p[0] * (b - a) },
	})

	register(Entry{
		Name:        "linear",
		Description: "p·x",
		Integrand: quadrature.WithGradient{
			F:    func(x float64, p ...float64) float64 { return p[0] * x },
			Grad: func(x float64, _ ...float64) []float64 { return []float64{x} },
		},
		A:      0,
		B:      1,
		Params: []float64{1},
		Exact:  func(a, b float64, p []float64) float64 { return p[0] * (b*b - a*a) / 2 },
	})

	register(Entry{
		Name:        "power",
		Description: "x^p",
		Integrand: quadrature.WithGradient{
			F: func(x float64, p ...float64) float64 { return math.Pow(x, p[0]) },
			Grad: func(x float64, p ...float64) []float64 {
				if x <= 0 {
					return []float64{0}
				}
				return []float64{math.Pow(x, p[0]) * math.Log(x)}
			},
		},
		A:      0,
		B:      1,
		Params: []float64{2},
		Exact: func(a, b float64, p []float64) float64 {
			k := p[0] + 1
			return (math.Pow(b, k) - math.Pow(a, k)) / k
		},
	})

	register(Entry{
		Name:        "gaussian",
		Description: "exp(-p·x²)",
		Integrand: quadrature.WithGradient{
			F: func(x float64, p ...float64) float64 { return math.Exp(-p[0] * x * x) },
			Grad: func(x float64, p ...float64) []float64 {
				return []float64{-x * x * math.Exp(-p[0]*x*x)}
			},
		},
		A:      -inf,
		B:      inf,
		Params: []float64{1},
		Exact: func(a, b float64, p []float64) float64 {
			s := math.Sqrt(p[0])
			return math.Sqrt(math.Pi) / (2 * s) * (math.Erf(s*b) - math.Erf(s*a))
		},
	})

	register(Entry{
		Name:        "exp-decay",
		Description: "exp(-p·x)",
		Integrand:   quadrature.Func(func(x float64, p ...float64) float64 { return math.Exp(-p[0] * x) }),
		A:           0,
		B:           inf,
		Params:      []float64{1},
		Exact: func(a, b float64, p []float64) float64 {
			return (math.Exp(-p[0]*a) - math.Exp(-p[0]*b)) / p[0]
		},
	})

	register(Entry{
		Name:        "sine",
		Description: "sin(p·x)",
		Integrand:   quadrature.Func(func(x float64, p ...float64) float64 { return math.Sin(p[0] * x) }),
		A:           0,
		B:           math.Pi,
		Params:      []float64{1},
		Exact: func(a, b float64, p []float64) float64 {
			return (math.Cos(p[0]*a) - math.Cos(p[0]*b)) / p[0]
		},
	})

	register(Entry{
		Name:        "arcsine",
		Description: "1/√(1-x²)",
		Integrand:   quadrature.Func(func(x float64, _ ...float64) float64 { return 1 / math.Sqrt(1-x*x) }),
		A:           -1,
		B:           1,
		Exact:       func(a, b float64, _ []float64) float64 { return math.Asin(b) - math.Asin(a) },
		Singular:    true,
	})

	register(Entry{
		Name:        "log",
		Description: "ln(x)",
		Integrand:   quadrature.Func(func(x float64, _ ...float64) float64 { return math.Log(x) }),
		A:           0,
		B:           1,
		Exact: func(a, b float64, _ []float64) float64 {
			return xLogX(b) - xLogX(a)
		},
		Singular: true,
	})

	register(Entry{
		Name:        "lorentzian",
		Description: "1/(1+x²)",
		Integrand:   quadrature.Func(func(x float64, _ ...float64) float64 { return 1 / (1 + x*x) }),
		A:           -inf,
		B:           inf,
		Exact:       func(a, b float64, _ []float64) float64 { return math.Atan(b) - math.Atan(a) },
		// The algebraic map turns the x^-2 tail into an endpoint singularity.
		Singular: true,
	})
}

// xLogX is the antiderivative of ln(x), extended by continuity to 0.
func xLogX(x float64) float64 {
	if x == 0 {
		return 0
	}
	return x*math.Log(x) - x
}
