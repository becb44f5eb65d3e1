package quadrature

import "math"

// tanhSinhEdge is the largest abscissa the tanh-sinh variant samples, kept
// away from 1 so the mapped endpoints are never evaluated exactly.
const tanhSinhEdge = 1 - 10*epsilon

// epsilon is the float64 machine epsilon.
const epsilon = 0x1p-52

// TanhSinh composes g, defined on (-1, 1), with x(t) = tanh(π/2·sinh t).
// The result h satisfies ∫_{-1}^{1} g = ∫_{-∞}^{∞} h.
func TanhSinh(g Func) Func {
	return func(t float64, params ...float64) float64 {
		s := math.Pi / 2 * math.Sinh(t)
		cs := math.Cosh(s)
		w := math.Pi / 2 * math.Cosh(t) / (cs * cs)
		return g(math.Tanh(s), params...) * w
	}
}

// TMax inverts the tanh-sinh abscissa: it returns t with x(t) = x.
// It is used with x just below 1 to pick a finite truncation bound.
func TMax(x float64) float64 {
	atanh := 0.5 * math.Log((1+x)/(1-x))
	y := 2 / math.Pi * atanh
	return math.Log(y + math.Sqrt(y*y+1))
}

// tanhSinhBound is the symmetric truncation bound used by RombergTanhSinh.
func tanhSinhBound() float64 {
	return TMax(tanhSinhEdge)
}
