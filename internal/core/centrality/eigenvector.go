package centrality

import (
	"math"

	"github.com/agenthands/skillgraph/internal/core/model"
)

// eigenvector runs power iteration on A+I, whose dominant eigenvector equals
// the (weighted) adjacency matrix's. The identity shift keeps the iteration
// from oscillating on bipartite substructures, where A's extreme eigenvalues
// have equal magnitude. Fails with *model.ConvergenceError when the iteration
// cap is hit first.
func eigenvector(adj [][]edge, n, maxIter int) ([]float64, error) {
	x := make([]float64, n)
	next := make([]float64, n)
	for i := range x {
		x[i] = 1.0 / float64(n)
	}

	for iter := 0; iter < maxIter; iter++ {
		copy(next, x)
		for u := range adj {
			for _, e := range adj[u] {
				next[e.to] += x[u] * e.weight
			}
		}

		// next >= x componentwise and x starts positive, so norm > 0.
		norm := 0.0
		for _, v := range next {
			norm += v * v
		}
		norm = math.Sqrt(norm)

		diff := 0.0
		for i := range next {
			next[i] /= norm
			diff += math.Abs(next[i] - x[i])
		}
		x, next = next, x

		if diff < float64(n)*eigenTolerance {
			return x, nil
		}
	}

	return nil, &model.ConvergenceError{Computation: "eigenvector centrality", Iterations: maxIter}
}
