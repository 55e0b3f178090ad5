// SPDX-License-Identifier: MIT

package linkgraph

import (
	"fmt"

	"github.com/katalvlaran/lvrank/matrix"
)

// edge is a directed link between two node indices.
type edge struct{ from, to int }

// Graph is a directed multigraph with string node IDs.
// Node indices are assigned in order of first appearance and never change,
// so index i of every derived matrix or rank vector is Nodes()[i].
//
// A Graph is not safe for concurrent mutation.
type Graph struct {
	ids   []string
	index map[string]int
	edges []edge
}

// New returns an empty Graph.
func New() *Graph {
	return &Graph{index: make(map[string]int)}
}

// AddNode registers id (if new) and returns its index.
// Errors: ErrEmptyID.
func (g *Graph) AddNode(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyID
	}
	if i, ok := g.index[id]; ok {
		return i, nil
	}
	i := len(g.ids)
	g.ids = append(g.ids, id)
	g.index[id] = i

	return i, nil
}

// AddEdge records one link from → to, registering unknown endpoints.
// Parallel edges and self-loops are kept; each one counts as a separate link.
// Errors: ErrEmptyID.
func (g *Graph) AddEdge(from, to string) error {
	f, err := g.AddNode(from)
	if err != nil {
		return fmt.Errorf("AddEdge(%q,%q): %w", from, to, err)
	}
	t, err := g.AddNode(to)
	if err != nil {
		return fmt.Errorf("AddEdge(%q,%q): %w", from, to, err)
	}
	g.edges = append(g.edges, edge{from: f, to: t})

	return nil
}

// Nodes returns a copy of the node IDs in index order.
func (g *Graph) Nodes() []string {
	out := make([]string, len(g.ids))
	copy(out, g.ids)

	return out
}

// Index returns the index of id and whether it is known.
func (g *Graph) Index(id string) (int, bool) {
	i, ok := g.index[id]

	return i, ok
}

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.ids) }

// EdgeCount returns the number of recorded links, parallel edges included.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// OutDegree returns the number of links leaving id (0 for unknown IDs).
func (g *Graph) OutDegree(id string) int {
	i, ok := g.index[id]
	if !ok {
		return 0
	}
	d := 0
	for _, e := range g.edges {
		if e.from == i {
			d++
		}
	}

	return d
}

// LinkCounts returns the n×n raw link-count matrix C with C[i,j] equal to the
// number of links j → i (column j holds node j's outgoing links).
//
// Errors: ErrEmptyGraph.
// Complexity: Time O(n² + E), Space O(n²).
func (g *Graph) LinkCounts() (*matrix.Dense, error) {
	n := len(g.ids)
	if n == 0 {
		return nil, fmt.Errorf("LinkCounts: %w", ErrEmptyGraph)
	}
	c, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("LinkCounts: %w", err)
	}

	var v float64
	for _, e := range g.edges {
		if v, err = c.At(e.to, e.from); err != nil {
			return nil, fmt.Errorf("LinkCounts: %w", err)
		}
		if err = c.Set(e.to, e.from, v+1); err != nil {
			return nil, fmt.Errorf("LinkCounts: %w", err)
		}
	}

	return c, nil
}

// TransitionMatrix returns the column-stochastic transition matrix of g:
// TransitionMatrix(g.LinkCounts()).
func (g *Graph) TransitionMatrix() (*matrix.Dense, error) {
	c, err := g.LinkCounts()
	if err != nil {
		return nil, err
	}

	return TransitionMatrix(c)
}
