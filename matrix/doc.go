// Package matrix is the dense linear-algebra layer under lvrank.
//
// It provides exactly the capabilities the PageRank engine consumes:
//
//   - Dense, a row-major float64 matrix with bounds-safe At/Set, Clone and Fill.
//   - Kernels: Add, Scale, Transpose, MatVec, ColSums.
//   - Comparisons: AllClose for matrices; VecEqual, VecAllClose, DistL1 and
//     DistLInf for vectors.
//   - Central validators (ValidateNotNil, ValidateSquare, ValidateNonNegative, ...)
//     that return plain sentinels from errors.go.
//
// Every kernel validates its operands, never mutates them, and allocates a fresh
// result. When all operands are *Dense a single flat loop is used; any other
// Matrix implementation goes through At/Set in fixed i→j order, so both paths
// produce bitwise-identical results.
//
// Dense storage is O(n²); lvrank targets graphs small enough for that to be fine.
package matrix
