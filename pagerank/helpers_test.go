// SPDX-License-Identifier: MIT
// Package pagerank_test contains shared fixtures for the builder and iterator tests.

package pagerank_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvrank/matrix"
)

// Reference 3×3 transition matrix: 0→1, 1→{1,2}, 2→0. Every column sums to 1.
var refRows = [][]float64{
	{0, 0, 1},
	{1, 0.5, 0},
	{0, 0.5, 0},
}

// refRanks is the closed-form stationary vector of refRows at α = 0.1:
// v = 0.3·1 + 0.1·M·v.
var refRanks = []float64{0.33175355450236967, 0.35071090047393366, 0.31753554502369670}

// hide wraps any Matrix to hide its concrete type from type assertions.
// Use hide{X} to force the At/Set fallback path in the matrix kernels.
type hide struct{ matrix.Matrix }

// MustFrom builds a *Dense from a row literal or fails the test.
func MustFrom(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	if err != nil {
		t.Fatalf("NewDenseFrom: %v", err)
	}

	return m
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// MustColSums returns the column sums of m or fails the test.
func MustColSums(t testing.TB, m matrix.Matrix) []float64 {
	t.Helper()
	sums, err := matrix.ColSums(m)
	if err != nil {
		t.Fatalf("ColSums: %v", err)
	}

	return sums
}

// ringMatrix returns the n×n cycle 0→1→…→n−1→0 as a transition matrix.
func ringMatrix(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(n, n)
	if err != nil {
		t.Fatalf("NewDense: %v", err)
	}
	for j := 0; j < n; j++ {
		if err = m.Set((j+1)%n, j, 1); err != nil {
			t.Fatalf("Set: %v", err)
		}
	}

	return m
}

// rawMatrix is a Matrix without any numeric policy; it can hold NaN or Inf.
type rawMatrix [][]float64

func (r rawMatrix) Rows() int { return len(r) }
func (r rawMatrix) Cols() int {
	if len(r) == 0 {
		return 0
	}

	return len(r[0])
}
func (r rawMatrix) At(i, j int) (float64, error) {
	if i < 0 || i >= r.Rows() || j < 0 || j >= r.Cols() {
		return 0, matrix.ErrOutOfRange
	}

	return r[i][j], nil
}
func (r rawMatrix) Set(i, j int, v float64) error {
	if i < 0 || i >= r.Rows() || j < 0 || j >= r.Cols() {
		return matrix.ErrOutOfRange
	}
	r[i][j] = v

	return nil
}
func (r rawMatrix) Clone() matrix.Matrix {
	out := make(rawMatrix, len(r))
	for i := range r {
		out[i] = append([]float64(nil), r[i]...)
	}

	return out
}

// inf is a shorthand for +Inf in table literals.
var inf = math.Inf(1)
