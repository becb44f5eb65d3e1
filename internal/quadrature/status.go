package quadrature

import (
	"fmt"
	"strings"
)

// Status is a bitmask describing why an integration terminated.
// Zero is the only value guaranteeing the requested tolerance was met.
type Status uint8

// Status bits. The Romberg engine raises StatusToleranceNotMet, and
// StatusBadIntegrand when the estimate itself is not finite; the others are
// reserved for diagnostics shared with other integrators.
const (
	StatusToleranceNotMet Status = 1 << iota
	StatusRoundoff
	StatusBadIntegrand
	StatusNoConvergence
	StatusDivergent
)

// statusBits is the number of defined status bits.
const statusBits = 5

const normalMessage = "Algorithm terminated normally, desired tolerances assumed reached."

var bitMessages = [statusBits]string{
	"Maximum number of levels allowed has been reached without meeting the " +
		"requested tolerance. One can allow more levels by increasing max levels. " +
		"If this yields no improvement, analyze the integrand to locate the difficulty " +
		"(singularity, discontinuity) and split the interval there, or use the " +
		"tanh-sinh variant for endpoint singularities.",
	"The occurrence of roundoff error is detected, which prevents the requested " +
		"tolerance from being achieved. The error may be under-estimated.",
	"Extremely bad integrand behavior occurs at some points of the integration interval.",
	"The algorithm does not converge. Roundoff error is detected in the " +
		"extrapolation table. It is assumed that the requested tolerance cannot be " +
		"achieved, and that the returned result is the best which can be obtained.",
	"The integral is probably divergent, or slowly convergent.",
}

// StatusMessages holds the decoded message of every status value.
var StatusMessages = func() [1 << statusBits]string {
	var table [1 << statusBits]string
	for i := range table {
		table[i] = decodeStatus(Status(i))
	}
	return table
}()

// decodeStatus concatenates the message of every set bit.
func decodeStatus(s Status) string {
	if s == 0 {
		return normalMessage
	}
	msgs := make([]string, 0, statusBits)
	for bit := 0; bit < statusBits; bit++ {
		if s&(1<<bit) != 0 {
			msgs = append(msgs, bitMessages[bit])
		}
	}
	if rest := s >> statusBits; rest != 0 {
		msgs = append(msgs, fmt.Sprintf("Unknown status bits %#x.", uint8(rest)<<statusBits))
	}
	return strings.Join(msgs, "\n\n")
}

// Message returns the human-readable diagnostic for s.
func (s Status) Message() string {
	if int(s) < len(StatusMessages) {
		return StatusMessages[s]
	}
	return decodeStatus(s)
}

// OK reports whether the requested tolerance was met.
func (s Status) OK() bool {
	return s == 0
}

// String returns the set flag names, or "ok".
func (s Status) String() string {
	if s == 0 {
		return "ok"
	}
	names := [statusBits]string{"tolerance-not-met", "roundoff", "bad-integrand", "no-convergence", "divergent"}
	var parts []string
	for bit := 0; bit < statusBits; bit++ {
		if s&(1<<bit) != 0 {
			parts = append(parts, names[bit])
		}
	}
	if s>>statusBits != 0 {
		parts = append(parts, fmt.Sprintf("unknown(%#x)", uint8(s>>statusBits)<<statusBits))
	}
	return strings.Join(parts, "|")
}
