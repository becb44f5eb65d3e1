package quadrature

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusMessages_Exhaustive(t *testing.T) {
	assert.Len(t, StatusMessages, 32)

	for i := range StatusMessages {
		s := Status(i)
		msg := s.Message()

		assert.NotEmpty(t, msg, "status %d", i)
		assert.Equal(t, StatusMessages[i], msg)
		assert.Equal(t, msg, decodeStatus(s), "decoding must be idempotent")
	}
}

func TestStatusMessages_Normal(t *testing.T) {
	assert.Equal(t, normalMessage, Status(0).Message())
	assert.NotContains(t, Status(0).Message(), "\n")
	assert.True(t, Status(0).OK())
}

func TestStatusMessages_SingleBits(t *testing.T) {
	bits := []Status{
		StatusToleranceNotMet,
		StatusRoundoff,
		StatusBadIntegrand,
		StatusNoConvergence,
		StatusDivergent,
	}
	for i, s := range bits {
		assert.Equal(t, bitMessages[i], s.Message())
		assert.False(t, s.OK())
	}
}

func TestStatusMessages_Concatenates(t *testing.T) {
	s := StatusToleranceNotMet | StatusDivergent
	msg := s.Message()

	assert.Equal(t, bitMessages[0]+"\n\n"+bitMessages[4], msg)
	assert.NotContains(t, msg, normalMessage)

	all := Status(31).Message()
	assert.Equal(t, 4, strings.Count(all, "\n\n"))
	for _, m := range bitMessages {
		assert.Contains(t, all, m)
	}
}

func TestStatus_UnknownBits(t *testing.T) {
	msg := Status(0x21).Message()
	assert.Contains(t, msg, bitMessages[0])
	assert.Contains(t, msg, "Unknown status bits 0x20")
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "ok", Status(0).String())
	assert.Equal(t, "tolerance-not-met", StatusToleranceNotMet.String())
	assert.Equal(t, "roundoff|divergent", (StatusRoundoff | StatusDivergent).String())
	assert.Equal(t, "bad-integrand|unknown(0x40)", (StatusBadIntegrand | 0x40).String())
}
