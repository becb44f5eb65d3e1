package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	app := newApp()
	var out bytes.Buffer
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(append([]string{"romberg"}, args...))
	return out.String(), err
}

func TestIntegrateCommand(t *testing.T) {
	out, err := run(t, "integrate", "--integrand", "linear", "--param", "3")
	require.NoError(t, err)

	assert.Contains(t, out, "1.5")
	assert.Contains(t, out, "romberg")
	assert.Contains(t, out, "0 (ok)")
}

func TestIntegrateCommand_AutoMethod(t *testing.T) {
	out, err := run(t, "integrate", "-f", "arcsine")
	require.NoError(t, err)

	assert.Contains(t, out, methodTanhSinh)
	assert.Contains(t, out, "3.14159")
}

func TestIntegrateCommand_Table(t *testing.T) {
	out, err := run(t, "integrate", "-f", "power", "--b", "2", "--table")
	require.NoError(t, err)

	assert.Contains(t, out, "R(N,0)")
	assert.Contains(t, out, "2.6666666666")
}

func TestIntegrateCommand_BudgetExhausted(t *testing.T) {
	out, err := run(t, "integrate", "-f", "arcsine", "--method", "romberg", "--max-levels", "4", "--extrapolate=false")
	require.NoError(t, err)

	assert.Contains(t, out, "tolerance-not-met")
	assert.Contains(t, out, "Maximum number of levels")
}

func TestIntegrateCommand_ConfigFile(t *testing.T) {
	path := writeConfig(t, "max_levels: 0\n")

	out, err := run(t, "integrate", "-f", "constant", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "evaluations")
	assert.Contains(t, out, "1 (tolerance-not-met)")
}

func TestIntegrateCommand_Errors(t *testing.T) {
	_, err := run(t, "integrate", "-f", "missing")
	assert.Error(t, err)

	_, err = run(t, "integrate", "-f", "linear", "--param", "1", "--param", "2")
	assert.Error(t, err)

	_, err = run(t, "integrate", "-f", "linear", "--max-levels", "-1")
	assert.Error(t, err)
}

func TestSensitivityCommand(t *testing.T) {
	out, err := run(t, "sensitivity", "-f", "linear", "--param", "3", "--dparam", "1", "--db", "1")
	require.NoError(t, err)

	// d/dp = 1/2, d/db = p·b = 3.
	assert.Contains(t, out, "tangent")
	assert.Contains(t, out, "3.5")
}

func TestSensitivityCommand_InfiniteBound(t *testing.T) {
	_, err := run(t, "sensitivity", "-f", "gaussian", "--db", "1")
	assert.Error(t, err)
}

func TestStatusCommand(t *testing.T) {
	out, err := run(t, "status", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "terminated normally")

	out, err = run(t, "status", "0x11")
	require.NoError(t, err)
	assert.Contains(t, out, "Maximum number of levels")
	assert.Contains(t, out, "divergent")

	out, err = run(t, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "31")

	_, err = run(t, "status", "abc")
	assert.Error(t, err)
}

func TestListCommand(t *testing.T) {
	out, err := run(t, "list")
	require.NoError(t, err)

	for _, name := range []string{"gaussian", "arcsine", "linear"} {
		assert.Contains(t, out, name)
	}
}
