// SPDX-License-Identifier: MIT
// Package matrix: numeric comparison and vector distances.
//
// Purpose:
//   - AllClose for matrices; VecEqual / VecAllClose for plain vectors.
//   - DistL1 / DistLInf: residual norms used by iterative solvers to decide convergence.
//
// Policy:
//   - Tolerances must be finite; negative values are normalized to |tol|.
//   - NaN is never close to anything; equal infinities are always close.

package matrix

import "math"

const (
	opAllClose    = "AllClose"
	opVecAllClose = "VecAllClose"
	opVecEqual    = "VecEqual"
	opDistL1      = "DistL1"
	opDistLInf    = "DistLInf"
)

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if every element satisfies the relation; (false,nil) otherwise.
//
// Errors:
//   - ErrNaNInf (non-finite tolerance), ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity: Time O(r*c), Space O(1).
//
// AI-Hints:
//   - AllClose with small atol/rtol is the invariance check of choice in tests.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	rtol, atol, err := normalizeTolerances(rtol, atol)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err = ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	// Dense fast-path: both operands expose flat slices.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			return slicesClose(da.data, db.data, rtol, atol), nil
		}
	}

	r, c := a.Rows(), a.Cols()
	var av, bv float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if !close1(av, bv, rtol, atol) {
				return false, nil // early-exit on first violation
			}
		}
	}

	return true, nil
}

// VecAllClose is the vector counterpart of AllClose.
// Errors: ErrNaNInf (tolerance), ErrNilMatrix (nil slice), ErrDimensionMismatch.
func VecAllClose(a, b []float64, rtol, atol float64) (bool, error) {
	rtol, atol, err := normalizeTolerances(rtol, atol)
	if err != nil {
		return false, matrixErrorf(opVecAllClose, err)
	}
	if err = validatePair(a, b); err != nil {
		return false, matrixErrorf(opVecAllClose, err)
	}

	return slicesClose(a, b, rtol, atol), nil
}

// VecEqual reports exact element-wise equality (a[i] == b[i] for all i).
// This is the strict fixed-point test: NaN never equals itself.
func VecEqual(a, b []float64) (bool, error) {
	if err := validatePair(a, b); err != nil {
		return false, matrixErrorf(opVecEqual, err)
	}
	for i := range a {
		if a[i] != b[i] {
			return false, nil
		}
	}

	return true, nil
}

// DistL1 returns Σ|a[i] − b[i]|.
// For probability vectors this is twice the total-variation distance.
// Complexity: O(n).
func DistL1(a, b []float64) (float64, error) {
	if err := validatePair(a, b); err != nil {
		return 0, matrixErrorf(opDistL1, err)
	}
	sum := ZeroSum
	for i := range a {
		sum += math.Abs(a[i] - b[i])
	}

	return sum, nil
}

// DistLInf returns max|a[i] − b[i]|.
// Complexity: O(n).
func DistLInf(a, b []float64) (float64, error) {
	if err := validatePair(a, b); err != nil {
		return 0, matrixErrorf(opDistLInf, err)
	}
	maxDiff := ZeroSum
	var d float64
	for i := range a {
		d = math.Abs(a[i] - b[i])
		if d > maxDiff || math.IsNaN(d) {
			maxDiff = d
		}
	}

	return maxDiff, nil
}

// VecSum returns Σ x[i] accumulated left to right (deterministic rounding).
func VecSum(x []float64) float64 {
	sum := ZeroSum
	for _, v := range x {
		sum += v
	}

	return sum
}

// validatePair: both slices non-nil, equal length.
func validatePair(a, b []float64) error {
	if a == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}

	return ValidateVecLen(b, len(a))
}

// normalizeTolerances rejects non-finite tolerances and returns their absolute values.
func normalizeTolerances(rtol, atol float64) (float64, float64, error) {
	if !isFinite(rtol) || !isFinite(atol) {
		return 0, 0, ErrNaNInf
	}

	return math.Abs(rtol), math.Abs(atol), nil
}

// slicesClose applies close1 pairwise; lengths are already validated.
func slicesClose(a, b []float64, rtol, atol float64) bool {
	for idx := range a {
		if !close1(a[idx], b[idx], rtol, atol) {
			return false
		}
	}

	return true
}

// close1 reports |a-b| ≤ atol + rtol*|b|; NaN on either side is never close.
func close1(a, b, rtol, atol float64) bool {
	if a == b { // covers equal infinities
		return true
	}

	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}
