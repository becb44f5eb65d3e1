package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/born-ml/romberg/internal/parallel"
	"github.com/born-ml/romberg/internal/quadrature"
)

// fileConfig is the YAML configuration file. Unset fields keep their defaults.
type fileConfig struct {
	AbsTol      *float64 `yaml:"abs_tol"`
	RelTol      *float64 `yaml:"rel_tol"`
	MaxLevels   *int     `yaml:"max_levels"`
	Extrapolate *bool    `yaml:"extrapolate"`
	Parallel    *bool    `yaml:"parallel"`
	Workers     int      `yaml:"workers"`
	Method      string   `yaml:"method"`
}

// loadConfigFile reads a YAML configuration file.
func loadConfigFile(path string) (fileConfig, error) {
	var fc fileConfig
	data, err := os.ReadFile(path) //nolint:gosec // Path comes from the user's own flag.
	if err != nil {
		return fc, fmt.Errorf("read config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return fc, fmt.Errorf("parse config %s: %w", path, err)
	}
	return fc, nil
}

// flagOverrides holds the command line values that were explicitly set.
type flagOverrides struct {
	AbsTol      *float64
	RelTol      *float64
	MaxLevels   *int
	Extrapolate *bool
	Parallel    *bool
	FullOutput  bool
	Method      string
}

// resolveConfig layers defaults, the config file and flags, in that order.
func resolveConfig(fc fileConfig, fl flagOverrides) (quadrature.Config, string, error) {
	cfg := quadrature.DefaultConfig()
	method := methodAuto

	if fc.AbsTol != nil {
		cfg.AbsTol = *fc.AbsTol
	}
	if fc.RelTol != nil {
		cfg.RelTol = *fc.RelTol
	}
	if fc.MaxLevels != nil {
		cfg.MaxLevels = *fc.MaxLevels
	}
	if fc.Extrapolate != nil {
		cfg.Extrapolate = *fc.Extrapolate
	}
	if fc.Parallel != nil && *fc.Parallel {
		cfg.Parallel = parallel.DefaultConfig()
	}
	if fc.Workers > 0 {
		cfg.Parallel.NumWorkers = fc.Workers
	}
	if fc.Method != "" {
		method = fc.Method
	}

	if fl.AbsTol != nil {
		cfg.AbsTol = *fl.AbsTol
	}
	if fl.RelTol != nil {
		cfg.RelTol = *fl.RelTol
	}
	if fl.MaxLevels != nil {
		cfg.MaxLevels = *fl.MaxLevels
	}
	if fl.Extrapolate != nil {
		cfg.Extrapolate = *fl.Extrapolate
	}
	if fl.Parallel != nil {
		if *fl.Parallel {
			workers := cfg.Parallel.NumWorkers
			cfg.Parallel = parallel.DefaultConfig()
			if workers > 0 {
				cfg.Parallel.NumWorkers = workers
			}
		} else {
			cfg.Parallel = parallel.Sequential()
		}
	}
	if fl.Method != "" {
		method = fl.Method
	}
	cfg.FullOutput = fl.FullOutput

	switch method {
	case methodAuto, methodRomberg, methodTanhSinh:
	default:
		return cfg, "", fmt.Errorf("unknown method %q (want %s, %s or %s)", method, methodAuto, methodRomberg, methodTanhSinh)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, "", err
	}
	return cfg, method, nil
}
