// SPDX-License-Identifier: MIT

package linkgraph

import (
	"fmt"

	"github.com/katalvlaran/lvrank/matrix"
)

const opTransition = "TransitionMatrix"

// TransitionMatrix column-normalizes a raw link-count matrix: every column j
// with a positive sum s_j is divided by s_j, so it becomes node j's outgoing
// link distribution. All-zero columns (dangling nodes) stay zero.
//
// Implementation:
//   - Stage 1: validate counts (non-nil, finite, non-negative).
//   - Stage 2: column sums via matrix.ColSums.
//   - Stage 3: fresh Dense with out[i,j] = counts[i,j] / s_j.
//
// counts is not modified. Any shape is accepted; pagerank needs a square one.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNegative, matrix.ErrNaNInf.
// Complexity: Time O(r*c), Space O(r*c).
func TransitionMatrix(counts matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateNonNegative(counts); err != nil {
		return nil, fmt.Errorf("%s: %w", opTransition, err)
	}
	sums, err := matrix.ColSums(counts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opTransition, err)
	}

	rows, cols := counts.Rows(), counts.Cols()
	out, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opTransition, err)
	}

	var i, j int
	var v float64
	for j = 0; j < cols; j++ {
		if sums[j] == 0 {
			continue // dangling
		}
		for i = 0; i < rows; i++ {
			if v, err = counts.At(i, j); err != nil {
				return nil, fmt.Errorf("%s: %w", opTransition, err)
			}
			if err = out.Set(i, j, v/sums[j]); err != nil {
				return nil, fmt.Errorf("%s: %w", opTransition, err)
			}
		}
	}

	return out, nil
}
