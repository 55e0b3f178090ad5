// Package lvrank is a small, dense PageRank engine: link data in, a
// probability vector of node importance out.
//
// 🚀 What is inside?
//
//	matrix/     row-major Dense matrix, kernels (Add, Scale, MatVec, ColSums),
//	            vector distances and central validators
//	pagerank/   the engine: damped-matrix builder + power iterator, options,
//	            sentinel errors
//	linkgraph/  edge-list and dense-matrix parsers, link counts → transition matrix
//	cmd/lvrank/ command-line driver configured through LVRANK_* / .env
//
// ✨ Guarantees
//
//   - Deterministic: no randomness, no goroutines, fixed loop order.
//   - Inputs are never mutated; every result is a fresh allocation.
//   - Bounded: the iteration cap always terminates; hitting it is reported as
//     pagerank.ErrNonConvergence together with the best-effort vector.
//
// Pipeline:
//
//	edges ──ParseEdgeList──▶ Graph ──TransitionMatrix──▶ M
//	M ──BuildDampedMatrix──▶ A = α·M + (1−α)·U ──Iterate──▶ v
//
// Dense storage is O(n²); the engine targets graphs with up to a few thousand
// nodes.
//
//	go get github.com/katalvlaran/lvrank
package lvrank
