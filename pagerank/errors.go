// SPDX-License-Identifier: MIT
// Package pagerank: sentinel error set.
// All entry points return these sentinels (wrapped with an operation tag and,
// where useful, the underlying matrix sentinel). Match with errors.Is.

package pagerank

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidShape is returned when the input matrix is nil, not square or empty.
	// The underlying matrix sentinel (ErrNilMatrix, ErrDimensionMismatch) is also wrapped.
	ErrInvalidShape = errors.New("pagerank: transition matrix must be square and non-empty")

	// ErrNegativeEntry is returned when the input has a negative or non-finite entry.
	ErrNegativeEntry = errors.New("pagerank: transition matrix has a negative or non-finite entry")

	// ErrNonStochasticColumn is returned in strict mode when a column with nonzero
	// entries does not sum to 1 within the configured epsilon.
	ErrNonStochasticColumn = errors.New("pagerank: column is not stochastic")

	// ErrNonConvergence is returned when the iteration cap is reached before the
	// residual falls below the tolerance, or when the probability mass vanishes.
	// The accompanying *Result still carries the best-effort vector.
	ErrNonConvergence = errors.New("pagerank: power iteration did not converge")
)

// Operation tags used in error wrapping.
const (
	opBuild   = "BuildDampedMatrix"
	opIterate = "Iterate"
	opCompute = "Compute"
)

// pagerankErrorf wraps a pagerank sentinel together with its underlying cause:
// "<tag>: <sentinel>: <cause>". Both remain visible to errors.Is.
func pagerankErrorf(tag string, sentinel, cause error) error {
	if cause == nil {
		return fmt.Errorf("%s: %w", tag, sentinel)
	}

	return fmt.Errorf("%s: %w: %w", tag, sentinel, cause)
}
