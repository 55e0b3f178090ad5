// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every kernel and validator in this package returns one of these sentinels,
// optionally wrapped with an operation tag. Tests and callers match them via
// errors.Is. Public entry points never panic on user-triggered conditions.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." so log lines stay greppable.
// Wrapping happens at the detection site (fmt.Errorf("%s: %w", tag, ErrX));
// the sentinel itself is never re-declared.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape/dimension -> index -> numeric policy (NaN/Inf, negative).

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// At/Set MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operands: Add on different shapes,
	// MatVec with len(x) != Cols, a ragged row literal, or a non-square input where
	// a square one is required.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNegative signals a negative entry where a non-negative matrix is required
	// (transition and link-count matrices).
	ErrNegative = errors.New("matrix: negative entry")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
