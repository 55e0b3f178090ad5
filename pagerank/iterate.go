// SPDX-License-Identifier: MIT

package pagerank

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvrank/matrix"
)

// State is the power iterator's lifecycle stage.
//
//	Initializing → Iterating → Converged
//	                         ↘ Exhausted
//
// Converged and Exhausted are terminal. There is no external cancellation.
type State int

const (
	// StateInitializing: A and v₀ are being prepared.
	StateInitializing State = iota
	// StateIterating: at least one product has been applied, residual above tolerance.
	StateIterating
	// StateConverged: residual fell below tolerance, or v did not change at all.
	StateConverged
	// StateExhausted: the iteration cap was hit (or mass vanished) before convergence.
	StateExhausted
)

// String returns the lower-case state name.
func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateIterating:
		return "iterating"
	case StateConverged:
		return "converged"
	case StateExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Result is the outcome of a power iteration.
// Ranks[i] is the PageRank score of node i; the entries sum to 1 up to rounding.
type Result struct {
	Ranks      []float64 // stationary distribution (best effort when not converged)
	Iterations int       // number of matrix-vector products applied
	Delta      float64   // residual ‖v_k − v_{k−1}‖ of the last step
	Eigenvalue float64   // Σ(A·v) before renormalization; 1 for column-stochastic A
	State      State     // StateConverged or StateExhausted
}

// Converged reports whether the iteration met its convergence test.
func (r *Result) Converged() bool { return r.State == StateConverged }

// Sum returns Σ Ranks, the auxiliary diagnostic (≈ 1).
func (r *Result) Sum() float64 { return matrix.VecSum(r.Ranks) }

// Vector returns Ranks as an n×1 column matrix.
func (r *Result) Vector() (*matrix.Dense, error) { return matrix.NewColumn(r.Ranks) }

// Ranking returns node indices ordered by descending score; ties keep index order.
func (r *Result) Ranking() []int {
	idx := make([]int, len(r.Ranks))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return r.Ranks[idx[a]] > r.Ranks[idx[b]] })

	return idx
}

// Compute returns the PageRank vector of the transition matrix m.
//
// Implementation:
//   - Stage 1: A = BuildDampedMatrix(m, opts...).
//   - Stage 2: power iteration on A from v₀ = e₁ (see Iterate).
//
// Errors:
//   - Every BuildDampedMatrix error (no Result).
//   - ErrNonConvergence together with a non-nil best-effort *Result.
//
// Complexity:
//   - Time O(n² · iterations), Space O(n²).
//
// AI-Hints:
//   - Check errors.Is(err, ErrNonConvergence) before discarding the Result.
func Compute(m matrix.Matrix, opts ...Option) (*Result, error) {
	a, err := BuildDampedMatrix(m, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCompute, err)
	}
	res, err := Iterate(a, opts...)
	if err != nil {
		return res, fmt.Errorf("%s: %w", opCompute, err)
	}

	return res, nil
}

// Iterate runs power iteration on an already-damped matrix a.
//
// Implementation:
//   - Stage 1: validate a; detect whether every column sums to 1 within eps.
//   - Stage 2: v₀ = e₁; repeat v_{k+1} = a·v_k. If a is not column-stochastic,
//     rescale v_{k+1} to unit L1 mass (the removed factor is the eigenvalue estimate).
//   - Stage 3: stop when v_{k+1} == v_k exactly or ‖v_{k+1} − v_k‖ < tolerance;
//     otherwise give up after MaxIterations products.
//
// Behavior highlights:
//   - Only the local vector is rebound per step; a and the caller's data are not touched.
//   - Deterministic: identical inputs yield bit-identical Results.
//   - NaN residuals never count as converged.
//
// Errors:
//   - ErrInvalidShape, ErrNegativeEntry (validation; no Result).
//   - ErrNonConvergence (cap reached or mass vanished; Result is returned).
func Iterate(a matrix.Matrix, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)

	n, err := validateTransition(opIterate, a)
	if err != nil {
		return nil, err
	}
	sums, err := matrix.ColSums(a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opIterate, err)
	}
	renormalize := checkStochastic(sums, o.eps) != nil || hasZero(sums)

	res := &Result{State: StateInitializing}
	v := make([]float64, n)
	v[0] = 1 // e₁: arbitrary but deterministic start

	var next []float64
	var mass, delta float64
	var same bool
	res.State = StateIterating
	for k := 1; k <= o.maxIter; k++ {
		if next, err = matrix.MatVec(a, v); err != nil {
			return nil, fmt.Errorf("%s: %w", opIterate, err)
		}
		mass = matrix.VecSum(next)
		if renormalize {
			if !(mass > 0) {
				res.Ranks, res.Iterations, res.Eigenvalue = v, k, mass
				res.State = StateExhausted
				return res, fmt.Errorf("%s: step %d: probability mass vanished: %w", opIterate, k, ErrNonConvergence)
			}
			for i := range next {
				next[i] /= mass
			}
		}

		if same, err = matrix.VecEqual(next, v); err != nil {
			return nil, fmt.Errorf("%s: %w", opIterate, err)
		}
		if delta, err = residual(next, v, o.norm); err != nil {
			return nil, fmt.Errorf("%s: %w", opIterate, err)
		}

		v = next
		res.Ranks, res.Iterations, res.Delta, res.Eigenvalue = v, k, delta, mass
		if same || delta < o.tolerance {
			res.State = StateConverged
			return res, nil
		}
	}

	res.State = StateExhausted
	return res, fmt.Errorf("%s: %d iterations, residual %g (tolerance %g): %w",
		opIterate, res.Iterations, res.Delta, o.tolerance, ErrNonConvergence)
}

// residual measures ‖x − y‖ in the configured norm.
func residual(x, y []float64, norm Norm) (float64, error) {
	if norm == NormLInf {
		return matrix.DistLInf(x, y)
	}

	return matrix.DistL1(x, y)
}

// hasZero reports whether any column sum is exactly zero (an all-zero column).
func hasZero(sums []float64) bool {
	for _, s := range sums {
		if s == 0 {
			return true
		}
	}

	return false
}
