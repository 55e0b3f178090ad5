// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvrank/pagerank"
)

// clearEnv blanks every LVRANK_* variable for the duration of the test.
func clearEnv(t *testing.T) {
	for _, name := range []string{
		"LVRANK_INPUT", "LVRANK_FORMAT", "LVRANK_DAMPING", "LVRANK_TOLERANCE",
		"LVRANK_MAX_ITER", "LVRANK_DANGLING", "LVRANK_STRICT",
	} {
		t.Setenv(name, "")
	}
}

func TestReadConfig_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := ReadConfig()
	require.NoError(t, err)
	require.Equal(t, Config{
		Format:    formatMatrix,
		Damping:   pagerank.DefaultDamping,
		Tolerance: pagerank.DefaultTolerance,
		MaxIter:   pagerank.DefaultMaxIterations,
		Dangling:  pagerank.DefaultDangling,
	}, cfg)
	require.Len(t, cfg.Options(), 4)
}

func TestReadConfig_Values(t *testing.T) {
	clearEnv(t)
	t.Setenv("LVRANK_INPUT", "graph.txt")
	t.Setenv("LVRANK_FORMAT", "EDGES")
	t.Setenv("LVRANK_DAMPING", "0.85")
	t.Setenv("LVRANK_TOLERANCE", "1e-6")
	t.Setenv("LVRANK_MAX_ITER", "42")
	t.Setenv("LVRANK_DANGLING", "keep")
	t.Setenv("LVRANK_STRICT", "true")

	cfg, err := ReadConfig()
	require.NoError(t, err)
	require.Equal(t, "graph.txt", cfg.Input)
	require.Equal(t, formatEdges, cfg.Format)
	require.Equal(t, 0.85, cfg.Damping)
	require.Equal(t, 1e-6, cfg.Tolerance)
	require.Equal(t, 42, cfg.MaxIter)
	require.Equal(t, pagerank.DanglingKeep, cfg.Dangling)
	require.True(t, cfg.Strict)

	o := pagerank.NewOptions(cfg.Options()...)
	require.Equal(t, 0.85, o.Damping())
	require.Equal(t, 42, o.MaxIterations())
	require.True(t, o.Strict())
}

func TestReadConfig_Invalid(t *testing.T) {
	cases := map[string][2]string{
		"format":         {"LVRANK_FORMAT", "xml"},
		"damping range":  {"LVRANK_DAMPING", "1"},
		"damping number": {"LVRANK_DAMPING", "high"},
		"tolerance":      {"LVRANK_TOLERANCE", "-1"},
		"max iter":       {"LVRANK_MAX_ITER", "0"},
		"max iter int":   {"LVRANK_MAX_ITER", "1.5"},
		"dangling":       {"LVRANK_DANGLING", "drop"},
		"strict":         {"LVRANK_STRICT", "maybe"},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(kv[0], kv[1])
			_, err := ReadConfig()
			require.Error(t, err)
			require.Contains(t, err.Error(), kv[0])
		})
	}
}

func TestRun_BuiltinExample(t *testing.T) {
	clearEnv(t)
	cfg, err := ReadConfig()
	require.NoError(t, err)

	var out bytes.Buffer
	require.Equal(t, exitOK, run(cfg, &out))
	require.Equal(t, "0\t0.3317535545\n1\t0.3507109005\n2\t0.3175355450\nsum\t1.0000000000\n", out.String())
}

func TestRun_EdgeFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "edges.txt")
	require.NoError(t, os.WriteFile(path, []byte("a b\nb a\n"), 0o600))
	t.Setenv("LVRANK_INPUT", path)
	t.Setenv("LVRANK_FORMAT", "edges")
	cfg, err := ReadConfig()
	require.NoError(t, err)

	var out bytes.Buffer
	require.Equal(t, exitOK, run(cfg, &out))
	require.True(t, strings.HasPrefix(out.String(), "a\t0.5000000000\nb\t0.5000000000\n"), out.String())
}

func TestRun_NonConvergence(t *testing.T) {
	clearEnv(t)
	t.Setenv("LVRANK_MAX_ITER", "1")
	cfg, err := ReadConfig()
	require.NoError(t, err)

	var out bytes.Buffer
	require.Equal(t, exitNonConvergence, run(cfg, &out))
	require.Contains(t, out.String(), "sum\t")
}

func TestRun_Errors(t *testing.T) {
	clearEnv(t)
	cfg, err := ReadConfig()
	require.NoError(t, err)

	cfg.Input = filepath.Join(t.TempDir(), "missing.txt")
	require.Equal(t, exitError, run(cfg, &bytes.Buffer{}))

	path := filepath.Join(t.TempDir(), "rect.txt")
	require.NoError(t, os.WriteFile(path, []byte("1 0\n"), 0o600))
	cfg.Input = path
	require.Equal(t, exitError, run(cfg, &bytes.Buffer{}))
}
