// Package centrality computes degree, betweenness, closeness and eigenvector
// centrality over the skill co-occurrence graph.
//
// Conventions (fixed for the whole package):
//   - Degree is normalized by the maximum possible degree, |nodes|-1.
//   - When Config.Weighted is set, shortest-path distances use the inverse
//     co-occurrence weight 1/w, so strongly co-occurring skills are "closer".
//     Otherwise every edge costs one hop.
//   - Betweenness splits ties proportionally among all shortest paths
//     (Brandes accumulation) and is normalized by (n-1)(n-2)/2 pair counts.
//   - Closeness on disconnected graphs scales by the reachable fraction:
//     C(u) = ((r-1)/(n-1)) * ((r-1)/Σd), r = number of nodes reachable from u.
//   - Eigenvector centrality is the L2-normalized dominant eigenvector of the
//     (weighted) adjacency matrix via power iteration.
package centrality

import (
	"errors"

	"github.com/agenthands/skillgraph/internal/core/graph"
	"github.com/agenthands/skillgraph/internal/core/model"
)

const (
	// DefaultMaxIterations caps eigenvector power iteration.
	DefaultMaxIterations = 1000

	eigenTolerance = 1e-6
)

// Config controls the centrality computation.
type Config struct {
	// Weighted switches betweenness/closeness distances from hop counts to
	// inverse co-occurrence weights, and weights the eigenvector adjacency.
	Weighted bool
	// MaxIterations caps eigenvector power iteration. Zero means
	// DefaultMaxIterations.
	MaxIterations int
}

// Compute returns centrality scores for every node of g.
//
// An empty graph fails with *model.EmptyGraphError. If eigenvector centrality
// does not converge within the iteration cap, Compute returns the scores with
// Eigenvector left at zero together with a *model.ConvergenceError; all other
// measures in the returned map remain valid.
func Compute(g *graph.Cooccurrence, cfg Config) (model.CentralityScores, error) {
	nodes := g.Nodes()
	if len(nodes) == 0 {
		return nil, &model.EmptyGraphError{Computation: "centrality"}
	}
	if cfg.MaxIterations <= 0 {
		cfg.MaxIterations = DefaultMaxIterations
	}

	adj := buildAdjacency(g, nodes, cfg.Weighted)
	n := len(nodes)

	scores := make(model.CentralityScores, n)
	betweenness, closeness := shortestPathCentralities(adj, n)

	eigen, eigenErr := eigenvector(adj, n, cfg.MaxIterations)

	for i, name := range nodes {
		c := model.Centrality{
			Betweenness:    betweenness[i],
			Closeness:      closeness[i],
			WeightedDegree: float64(g.WeightedDegree(name)),
		}
		if n > 1 {
			c.Degree = float64(g.Degree(name)) / float64(n-1)
		}
		if eigenErr == nil {
			c.Eigenvector = eigen[i]
		}
		scores[name] = c
	}

	if eigenErr != nil {
		var conv *model.ConvergenceError
		if errors.As(eigenErr, &conv) {
			return scores, conv
		}
		return scores, eigenErr
	}
	return scores, nil
}

// edge is one adjacency entry with the precomputed traversal distance.
type edge struct {
	to     int
	weight float64 // co-occurrence weight, or 1 when unweighted
	dist   float64 // 1/weight when Config.Weighted, else 1
}

func buildAdjacency(g *graph.Cooccurrence, nodes []string, weighted bool) [][]edge {
	idx := make(map[string]int, len(nodes))
	for i, name := range nodes {
		idx[name] = i
	}

	adj := make([][]edge, len(nodes))
	for i, name := range nodes {
		for _, nbr := range g.Neighbors(name) {
			e := edge{to: idx[nbr], weight: 1, dist: 1}
			if weighted {
				w := float64(g.Weight(name, nbr))
				e.weight = w
				e.dist = 1.0 / w
			}
			adj[i] = append(adj[i], e)
		}
	}
	return adj
}
