package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "romberg.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, `
abs_tol: 1e-10
rel_tol: 0
max_levels: 12
extrapolate: false
parallel: true
workers: 3
method: tanh-sinh
`)

	fc, err := loadConfigFile(path)
	require.NoError(t, err)

	cfg, method, err := resolveConfig(fc, flagOverrides{})
	require.NoError(t, err)

	assert.Equal(t, 1e-10, cfg.AbsTol)
	assert.Equal(t, 0.0, cfg.RelTol)
	assert.Equal(t, 12, cfg.MaxLevels)
	assert.False(t, cfg.Extrapolate)
	assert.Equal(t, 3, cfg.Parallel.NumWorkers)
	assert.Equal(t, methodTanhSinh, method)
}

func TestLoadConfigFile_Empty(t *testing.T) {
	fc, err := loadConfigFile(writeConfig(t, ""))
	require.NoError(t, err)

	cfg, method, err := resolveConfig(fc, flagOverrides{})
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.MaxLevels)
	assert.True(t, cfg.Extrapolate)
	assert.False(t, cfg.Parallel.Enabled)
	assert.Equal(t, methodAuto, method)
}

func TestLoadConfigFile_UnknownField(t *testing.T) {
	_, err := loadConfigFile(writeConfig(t, "max_level: 3\n"))
	assert.Error(t, err)
}

func TestLoadConfigFile_Missing(t *testing.T) {
	_, err := loadConfigFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestResolveConfig_FlagsOverrideFile(t *testing.T) {
	fileLevels, flagLevels := 8, 4
	fileTol, flagTol := 1e-6, 1e-12
	off := false

	fc := fileConfig{MaxLevels: &fileLevels, AbsTol: &fileTol, Method: methodTanhSinh}
	fl := flagOverrides{MaxLevels: &flagLevels, AbsTol: &flagTol, Parallel: &off, FullOutput: true, Method: methodRomberg}

	cfg, method, err := resolveConfig(fc, fl)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.MaxLevels)
	assert.Equal(t, 1e-12, cfg.AbsTol)
	assert.False(t, cfg.Parallel.Enabled)
	assert.True(t, cfg.FullOutput)
	assert.Equal(t, methodRomberg, method)
}

func TestResolveConfig_Invalid(t *testing.T) {
	negative := -2
	_, _, err := resolveConfig(fileConfig{MaxLevels: &negative}, flagOverrides{})
	assert.Error(t, err)

	_, _, err = resolveConfig(fileConfig{}, flagOverrides{Method: "simpson"})
	assert.Error(t, err)
}
