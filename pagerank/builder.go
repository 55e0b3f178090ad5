// SPDX-License-Identifier: MIT

package pagerank

import (
	"fmt"

	"github.com/katalvlaran/lvrank/matrix"
)

// BuildDampedMatrix returns A = α·M + (1−α)·U, where U is the n×n matrix with
// every entry 1/n and n = m.Rows().
//
// Implementation:
//   - Stage 1: validate m (non-nil, square, finite, non-negative).
//   - Stage 2: column sums of M; strict mode rejects non-stochastic columns.
//   - Stage 3: apply the dangling policy to zero columns (on a copy).
//   - Stage 4: Scale(M, α) + Scale(U, 1−α) through the matrix kernels.
//
// Behavior highlights:
//   - m is never mutated; the result is a fresh *matrix.Dense.
//   - Every entry of A is ≥ (1−α)/n, so A is strictly positive.
//   - If every nonzero column of M sums to 1, every column of A sums to 1 under
//     DanglingUniform; under DanglingKeep a dangling column of A sums to 1−α.
//
// Errors:
//   - ErrInvalidShape (with matrix.ErrNilMatrix / matrix.ErrDimensionMismatch).
//   - ErrNegativeEntry (with matrix.ErrNegative / matrix.ErrNaNInf).
//   - ErrNonStochasticColumn (strict mode; message names the column).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func BuildDampedMatrix(m matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	o := gatherOptions(opts...)

	n, err := validateTransition(opBuild, m)
	if err != nil {
		return nil, err
	}

	sums, err := matrix.ColSums(m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opBuild, err)
	}

	if o.strict {
		if err = checkStochastic(sums, o.eps); err != nil {
			return nil, fmt.Errorf("%s: %w", opBuild, err)
		}
	}

	links, err := applyDangling(m, sums, o.dangling)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opBuild, err)
	}

	p := 1.0 / float64(n) // uniform teleport probability
	uniform, err := matrix.NewFilled(n, n, p)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opBuild, err)
	}

	follow, err := matrix.Scale(links, o.damping)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opBuild, err)
	}
	teleport, err := matrix.Scale(uniform, 1-o.damping)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opBuild, err)
	}
	a, err := matrix.Add(follow, teleport)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opBuild, err)
	}

	// Kernels always allocate *Dense results.
	return a.(*matrix.Dense), nil
}

// validateTransition checks shape and sign of an input matrix and returns n.
func validateTransition(tag string, m matrix.Matrix) (int, error) {
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return 0, pagerankErrorf(tag, ErrInvalidShape, err)
	}
	// A foreign Matrix implementation may report an empty shape.
	n := m.Rows()
	if n < 1 {
		return 0, pagerankErrorf(tag, ErrInvalidShape, matrix.ErrInvalidDimensions)
	}
	if err := matrix.ValidateNonNegative(m); err != nil {
		return 0, pagerankErrorf(tag, ErrNegativeEntry, err)
	}

	return n, nil
}

// checkStochastic rejects the first column whose sum is nonzero and differs
// from 1 by more than eps. Zero columns (dangling nodes) pass.
func checkStochastic(sums []float64, eps float64) error {
	for j, s := range sums {
		if s == 0 {
			continue
		}
		if s < 1-eps || s > 1+eps {
			return fmt.Errorf("column %d sums to %g: %w", j, s, ErrNonStochasticColumn)
		}
	}

	return nil
}

// applyDangling returns m itself under DanglingKeep or when no column is empty;
// otherwise a copy whose zero columns hold 1/n in every row.
func applyDangling(m matrix.Matrix, sums []float64, policy DanglingPolicy) (matrix.Matrix, error) {
	if policy == DanglingKeep {
		return m, nil
	}

	var out matrix.Matrix
	n := len(sums)
	p := 1.0 / float64(n)
	for j, s := range sums {
		if s != 0 {
			continue
		}
		if out == nil {
			out = m.Clone() // copy on first dangling column only
		}
		for i := 0; i < n; i++ {
			if err := out.Set(i, j, p); err != nil {
				return nil, err
			}
		}
	}
	if out == nil {
		return m, nil
	}

	return out, nil
}
