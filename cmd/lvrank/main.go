// SPDX-License-Identifier: MIT

// Command lvrank prints the PageRank vector of a link matrix or edge list.
//
// Configuration comes from LVRANK_* environment variables, optionally loaded
// from a .env file in the working directory:
//
//	LVRANK_INPUT      path of the input file (empty: built-in 3-node example)
//	LVRANK_FORMAT     "matrix" (dense rows) or "edges" (from/to pairs)
//	LVRANK_DAMPING    link weight α in (0,1), default 0.1
//	LVRANK_TOLERANCE  convergence threshold, default 1e-10
//	LVRANK_MAX_ITER   iteration cap, default 1000
//	LVRANK_DANGLING   "uniform" or "keep"
//	LVRANK_STRICT     reject non-stochastic columns (bool)
//
// Exit status is 0 on success, 2 when the iteration cap was reached (the
// best-effort vector is still printed) and 1 on any other error.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvrank/linkgraph"
	"github.com/katalvlaran/lvrank/matrix"
	"github.com/katalvlaran/lvrank/pagerank"
)

const (
	exitOK             = 0
	exitError          = 1
	exitNonConvergence = 2
)

// builtinExample is the reference 3-node graph: 0→1, 1→{1,2}, 2→0.
const builtinExample = `0 0   1
1 0.5 0
0 0.5 0
`

func main() {
	cfg, err := ReadConfig()
	if err != nil {
		log.Printf("ERROR config: %v", err)
		os.Exit(exitError)
	}
	os.Exit(run(cfg, os.Stdout))
}

// run loads the input described by cfg, ranks it and writes the result to w.
// It returns the process exit status.
func run(cfg Config, w io.Writer) int {
	m, labels, err := load(cfg)
	if err != nil {
		log.Printf("ERROR input: %v", err)
		return exitError
	}
	log.Printf("INFO ranking %d nodes (alpha=%g, tolerance=%g, dangling=%s)",
		m.Rows(), cfg.Damping, cfg.Tolerance, cfg.Dangling)

	res, err := pagerank.Compute(m, cfg.Options()...)
	status := exitOK
	switch {
	case errors.Is(err, pagerank.ErrNonConvergence) && res != nil:
		log.Printf("WARN %v; printing best-effort vector", err)
		status = exitNonConvergence
	case err != nil:
		log.Printf("ERROR pagerank: %v", err)
		return exitError
	default:
		log.Printf("INFO converged after %d iterations (delta=%g)", res.Iterations, res.Delta)
	}

	if err = write(w, res, labels); err != nil {
		log.Printf("ERROR output: %v", err)
		return exitError
	}

	return status
}

// load returns the transition matrix and one label per node.
func load(cfg Config) (*matrix.Dense, []string, error) {
	var r io.Reader = strings.NewReader(builtinExample)
	format := cfg.Format
	if cfg.Input == "" {
		format = formatMatrix
	} else {
		f, err := os.Open(cfg.Input)
		if err != nil {
			return nil, nil, err
		}
		defer f.Close()
		r = f
	}

	if format == formatEdges {
		g, err := linkgraph.ParseEdgeList(r)
		if err != nil {
			return nil, nil, err
		}
		m, err := g.TransitionMatrix()
		if err != nil {
			return nil, nil, err
		}

		return m, g.Nodes(), nil
	}

	m, err := linkgraph.ParseMatrix(r)
	if err != nil {
		return nil, nil, err
	}
	labels := make([]string, m.Rows())
	for i := range labels {
		labels[i] = strconv.Itoa(i)
	}

	return m, labels, nil
}

// write prints one "label score" line per node in input order, then Σv.
func write(w io.Writer, res *pagerank.Result, labels []string) error {
	for i, r := range res.Ranks {
		if _, err := fmt.Fprintf(w, "%s\t%.10f\n", labels[i], r); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "sum\t%.10f\n", res.Sum())

	return err
}
