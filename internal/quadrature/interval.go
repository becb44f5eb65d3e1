package quadrature

import (
	"fmt"
	"math"
)

// IntervalKind selects the change of variables onto [-1, 1].
type IntervalKind int

// Interval kinds, by which endpoints are infinite.
const (
	Finite         IntervalKind = iota // a and b finite
	LowerInfinite                      // a = -Inf, b finite
	UpperInfinite                      // a finite, b = +Inf
	DoublyInfinite                     // a = -Inf, b = +Inf
	Empty                              // a == b, including equal infinities
)

// String returns the kind name.
func (k IntervalKind) String() string {
	switch k {
	case Finite:
		return "finite"
	case LowerInfinite:
		return "lower-infinite"
	case UpperInfinite:
		return "upper-infinite"
	case DoublyInfinite:
		return "doubly-infinite"
	case Empty:
		return "empty"
	default:
		return fmt.Sprintf("IntervalKind(%d)", int(k))
	}
}

// Interval is an integration range normalized so that A <= B.
// Sign is -1 when the caller passed the bounds in descending order.
type Interval struct {
	A, B float64
	Sign float64
	Kind IntervalKind
}

// NewInterval normalizes (a, b) and classifies it.
func NewInterval(a, b float64) (Interval, error) {
	if math.IsNaN(a) || math.IsNaN(b) {
		return Interval{}, fmt.Errorf("interval (%v, %v): %w", a, b, ErrNaNBound)
	}

	iv := Interval{A: a, B: b, Sign: 1}
	if a > b {
		iv.A, iv.B, iv.Sign = b, a, -1
	}

	switch {
	case iv.A == iv.B:
		iv.Kind = Empty
	case math.IsInf(iv.A, -1) && math.IsInf(iv.B, 1):
		iv.Kind = DoublyInfinite
	case math.IsInf(iv.A, -1):
		iv.Kind = LowerInfinite
	case math.IsInf(iv.B, 1):
		iv.Kind = UpperInfinite
	default:
		iv.Kind = Finite
	}
	return iv, nil
}

// Map returns the point in [A, B] corresponding to x in [-1, 1] and the
// Jacobian weight of the substitution. The weight is singular at x = ±1 for
// the infinite kinds; callers mask the resulting non-finite samples.
func (iv Interval) Map(x float64) (point, weight float64) {
	switch iv.Kind {
	case Finite:
		c := (iv.B - iv.A) / 2
		d := (iv.B + iv.A) / 2
		return d + c*x, c
	case UpperInfinite:
		u := 2 / (x + 1)
		return iv.A - 1 + u, 0.5 * u * u
	case LowerInfinite:
		u := 2 / (x + 1)
		return iv.B + 1 - u, 0.5 * u * u
	case DoublyInfinite:
		px := 1 - x*x
		s := 1 / math.Sqrt(px)
		return x * s, s / px
	default:
		return iv.A, 0
	}
}

// Canonical returns g on [-1, 1] with ∫_a^b f = ∫_{-1}^{1} g, the sign of
// the original bound order included.
func (iv Interval) Canonical(f Func) Func {
	if iv.Kind == Empty {
		return func(float64, ...float64) float64 { return 0 }
	}
	return func(x float64, params ...float64) float64 {
		point, weight := iv.Map(x)
		return iv.Sign * weight * f(point, params...)
	}
}

// MapInterval maps f over (a, b) onto the canonical interval [-1, 1].
func MapInterval(f Func, a, b float64) (Func, Interval, error) {
	if f == nil {
		return nil, Interval{}, ErrNilIntegrand
	}
	iv, err := NewInterval(a, b)
	if err != nil {
		return nil, Interval{}, err
	}
	return iv.Canonical(f), iv, nil
}
