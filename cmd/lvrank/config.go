// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/lvrank/pagerank"
)

// Input formats accepted in LVRANK_FORMAT.
const (
	formatMatrix = "matrix"
	formatEdges  = "edges"
)

// Config is the driver configuration read from the environment.
type Config struct {
	Input     string // file path; empty selects the built-in example
	Format    string // formatMatrix or formatEdges
	Damping   float64
	Tolerance float64
	MaxIter   int
	Dangling  pagerank.DanglingPolicy
	Strict    bool
}

// ReadConfig loads an optional .env file and reads the LVRANK_* variables.
// Variables already present in the environment win over .env entries.
// Unset variables take the pagerank defaults; malformed ones are errors.
func ReadConfig() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Input:  readStringEnvVarOr("LVRANK_INPUT", ""),
		Format: strings.ToLower(readStringEnvVarOr("LVRANK_FORMAT", formatMatrix)),
	}
	if cfg.Format != formatMatrix && cfg.Format != formatEdges {
		return cfg, fmt.Errorf("LVRANK_FORMAT: %q is not %q or %q", cfg.Format, formatMatrix, formatEdges)
	}

	var err error
	if cfg.Damping, err = readFloatEnvVarOr("LVRANK_DAMPING", pagerank.DefaultDamping); err != nil {
		return cfg, err
	}
	if math.IsNaN(cfg.Damping) || cfg.Damping <= 0 || cfg.Damping >= 1 {
		return cfg, fmt.Errorf("LVRANK_DAMPING: %g is outside (0,1)", cfg.Damping)
	}
	if cfg.Tolerance, err = readFloatEnvVarOr("LVRANK_TOLERANCE", pagerank.DefaultTolerance); err != nil {
		return cfg, err
	}
	if math.IsNaN(cfg.Tolerance) || math.IsInf(cfg.Tolerance, 0) || cfg.Tolerance < 0 {
		return cfg, fmt.Errorf("LVRANK_TOLERANCE: %g must be finite and non-negative", cfg.Tolerance)
	}
	if cfg.MaxIter, err = readIntEnvVarOr("LVRANK_MAX_ITER", pagerank.DefaultMaxIterations); err != nil {
		return cfg, err
	}
	if cfg.MaxIter <= 0 {
		return cfg, fmt.Errorf("LVRANK_MAX_ITER: %d must be positive", cfg.MaxIter)
	}

	switch d := strings.ToLower(readStringEnvVarOr("LVRANK_DANGLING", pagerank.DefaultDangling.String())); d {
	case pagerank.DanglingUniform.String():
		cfg.Dangling = pagerank.DanglingUniform
	case pagerank.DanglingKeep.String():
		cfg.Dangling = pagerank.DanglingKeep
	default:
		return cfg, fmt.Errorf("LVRANK_DANGLING: %q is not %q or %q", d,
			pagerank.DanglingUniform, pagerank.DanglingKeep)
	}

	if cfg.Strict, err = readBoolEnvVarOr("LVRANK_STRICT", pagerank.DefaultStrictStochastic); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Options converts the configuration into pagerank options.
// The values were validated by ReadConfig, so the constructors cannot panic.
func (c Config) Options() []pagerank.Option {
	opts := []pagerank.Option{
		pagerank.WithDamping(c.Damping),
		pagerank.WithTolerance(c.Tolerance),
		pagerank.WithMaxIterations(c.MaxIter),
		pagerank.WithDanglingPolicy(c.Dangling),
	}
	if c.Strict {
		opts = append(opts, pagerank.WithStrictStochastic())
	}

	return opts
}

func readStringEnvVarOr(name, or string) string {
	value := strings.TrimSpace(os.Getenv(name))
	if value == "" {
		return or
	}

	return value
}

func readFloatEnvVarOr(name string, or float64) (float64, error) {
	s := readStringEnvVarOr(name, "")
	if s == "" {
		return or, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("could not convert %s to a number: %w", name, err)
	}

	return v, nil
}

func readIntEnvVarOr(name string, or int) (int, error) {
	s := readStringEnvVarOr(name, "")
	if s == "" {
		return or, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("could not convert %s to an integer: %w", name, err)
	}

	return v, nil
}

func readBoolEnvVarOr(name string, or bool) (bool, error) {
	s := readStringEnvVarOr(name, "")
	if s == "" {
		return or, nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("could not convert %s to a boolean: %w", name, err)
	}

	return v, nil
}
