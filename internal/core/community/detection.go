// Package community partitions the skill co-occurrence graph into communities
// by greedy modularity maximization (Louvain).
package community

import (
	"sort"

	"github.com/agenthands/skillgraph/internal/core/graph"
	"github.com/agenthands/skillgraph/internal/core/model"
)

// Detect partitions g and returns the assignment together with the achieved
// modularity. The seed pins the node processing order, so a fixed seed on a
// fixed graph reproduces the assignment bit-for-bit; tie-breaking between
// equally good moves is otherwise arbitrary.
//
// A graph with no edges (or a single node) yields one community per node and
// modularity 0. An empty graph fails with *model.EmptyGraphError.
func Detect(g *graph.Cooccurrence, seed int64) (model.CommunityAssignment, float64, error) {
	nodes := g.Nodes()
	if len(nodes) == 0 {
		return nil, 0, &model.EmptyGraphError{Computation: "community detection"}
	}

	if g.EdgeCount() == 0 {
		assignment := make(model.CommunityAssignment, len(nodes))
		for i, name := range nodes {
			assignment[name] = i
		}
		return assignment, 0, nil
	}

	membership := louvain(g, nodes, seed)

	// Relabel communities 0..C-1 by first appearance over the sorted node
	// list, so labels do not depend on internal merge order.
	relabel := make(map[int]int)
	assignment := make(model.CommunityAssignment, len(nodes))
	for i, name := range nodes {
		c := membership[i]
		label, ok := relabel[c]
		if !ok {
			label = len(relabel)
			relabel[c] = label
		}
		assignment[name] = label
	}

	return assignment, Modularity(g, assignment), nil
}

// Communities groups the assignment into sorted member lists, ordered by label.
func Communities(assignment model.CommunityAssignment) [][]string {
	byLabel := make(map[int][]string)
	maxLabel := -1
	for name, c := range assignment {
		byLabel[c] = append(byLabel[c], name)
		if c > maxLabel {
			maxLabel = c
		}
	}
	out := make([][]string, 0, len(byLabel))
	for c := 0; c <= maxLabel; c++ {
		members := byLabel[c]
		if members == nil {
			continue
		}
		sort.Strings(members)
		out = append(out, members)
	}
	return out
}

// Modularity computes Q for a partition of g, using co-occurrence weights:
// Q = Σ_c [Σ_in/(2m) − (Σ_tot/(2m))²]. Range (-0.5, 1]; higher means denser
// communities relative to the configuration null model. Zero for graphs
// without edges.
func Modularity(g *graph.Cooccurrence, assignment model.CommunityAssignment) float64 {
	m2 := 2 * g.TotalWeight() // Σ_i k_i
	if m2 == 0 {
		return 0
	}

	internal := make(map[int]float64) // 2·(weight inside community)
	degree := make(map[int]float64)

	for _, u := range g.Nodes() {
		cu := assignment[u]
		degree[cu] += float64(g.WeightedDegree(u))
		for _, v := range g.Neighbors(u) {
			if assignment[v] == cu {
				internal[cu] += float64(g.Weight(u, v))
			}
		}
	}

	q := 0.0
	for c, deg := range degree {
		q += internal[c]/m2 - (deg/m2)*(deg/m2)
	}
	return q
}
