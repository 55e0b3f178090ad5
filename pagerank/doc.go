// Package pagerank computes PageRank scores of a directed graph from its
// column-stochastic transition matrix.
//
// Two stages make up the engine:
//
//   - Matrix Builder (BuildDampedMatrix): A = α·M + (1−α)·U, where M is the
//     transition matrix (column j = outgoing-link distribution of node j),
//     U is the uniform teleport matrix with every entry 1/n and α is the
//     damping weight (default 0.1, see WithDamping).
//   - Power Iterator (Iterate, Compute): v₀ = e₁, v_{k+1} = A·v_k until the
//     residual drops below the tolerance, the vector stops changing, or the
//     iteration cap is reached.
//
// Because every entry of A is at least (1−α)/n the chain is irreducible and
// aperiodic, so the dominant eigenvector is unique and the iteration converges
// from any probability vector.
//
// Dangling nodes (all-zero columns of M) are handled by DanglingPolicy. The
// default DanglingUniform makes A column-stochastic; DanglingKeep keeps the
// raw columns and lets the iterator renormalize each step.
//
// Quick start:
//
//	m, _ := matrix.NewDenseFrom([][]float64{
//		{0, 0.5, 0},
//		{0.5, 0, 1},
//		{0.5, 0.5, 0},
//	})
//	res, err := pagerank.Compute(m, pagerank.WithDamping(0.85))
//	if errors.Is(err, pagerank.ErrNonConvergence) {
//		// res still holds the best-effort vector
//	}
//	fmt.Println(res.Ranks, res.Sum())
//
// Everything is synchronous and single-threaded; nothing outlives a call.
package pagerank
