package community

import (
	"math/rand"

	"github.com/agenthands/skillgraph/internal/core/graph"
)

// levelGraph is the coarsened working graph of one Louvain level.
type levelGraph struct {
	adj      []map[int]float64 // node -> neighbor -> weight (no self entries)
	selfLoop []float64         // intra-node weight accumulated by coarsening
	total    float64           // m: sum of undirected edge weights incl self loops
}

// louvain returns a community index per node of the original graph.
// Each level greedily moves nodes between communities while modularity
// improves, then coarsens communities into single nodes and repeats.
func louvain(g *graph.Cooccurrence, nodes []string, seed int64) []int {
	rng := rand.New(rand.NewSource(seed))

	idx := make(map[string]int, len(nodes))
	for i, name := range nodes {
		idx[name] = i
	}

	lg := &levelGraph{
		adj:      make([]map[int]float64, len(nodes)),
		selfLoop: make([]float64, len(nodes)),
	}
	for i, name := range nodes {
		lg.adj[i] = make(map[int]float64)
		for _, nbr := range g.Neighbors(name) {
			w := float64(g.Weight(name, nbr))
			lg.adj[i][idx[nbr]] = w
			lg.total += w
		}
	}
	lg.total /= 2

	// membership[i] tracks the current level's community of original node i
	// through successive coarsenings.
	membership := make([]int, len(nodes))
	for i := range membership {
		membership[i] = i
	}

	for {
		community, moved := localMoves(lg, rng)
		if !moved {
			return membership
		}

		compact := compactLabels(community)
		for i := range membership {
			membership[i] = compact[community[membership[i]]]
		}
		lg = coarsen(lg, community, compact)
	}
}

// localMoves runs move passes until none improves modularity. Returns the
// community of each level node and whether any move happened at all.
func localMoves(lg *levelGraph, rng *rand.Rand) (community []int, moved bool) {
	n := len(lg.adj)
	community = make([]int, n)
	degree := make([]float64, n)   // k_i
	commTotal := make([]float64, n) // Σ_tot per community
	for i := 0; i < n; i++ {
		community[i] = i
		degree[i] = 2 * lg.selfLoop[i]
		for _, w := range lg.adj[i] {
			degree[i] += w
		}
		commTotal[i] = degree[i]
	}

	m2 := 2 * lg.total
	if m2 == 0 {
		return community, false
	}

	order := rng.Perm(n)
	for improved := true; improved; {
		improved = false
		for _, u := range order {
			cu := community[u]

			// Weight from u to each adjacent community.
			links := make(map[int]float64)
			for v, w := range lg.adj[u] {
				links[community[v]] += w
			}

			commTotal[cu] -= degree[u]

			best := cu
			bestGain := links[cu] - commTotal[cu]*degree[u]/m2
			for c, w := range links {
				if c == cu {
					continue
				}
				gain := w - commTotal[c]*degree[u]/m2
				if gain > bestGain || (gain == bestGain && c < best) {
					best = c
					bestGain = gain
				}
			}

			commTotal[best] += degree[u]
			if best != cu {
				community[u] = best
				improved = true
				moved = true
			}
		}
	}

	return community, moved
}

// compactLabels maps the surviving community ids to 0..C-1 in ascending order.
func compactLabels(community []int) map[int]int {
	seen := make(map[int]bool)
	var labels []int
	for _, c := range community {
		if !seen[c] {
			seen[c] = true
			labels = append(labels, c)
		}
	}
	// Ascending ids keep the mapping independent of node visit order.
	for i := 1; i < len(labels); i++ {
		for j := i; j > 0 && labels[j] < labels[j-1]; j-- {
			labels[j], labels[j-1] = labels[j-1], labels[j]
		}
	}
	compact := make(map[int]int, len(labels))
	for i, c := range labels {
		compact[c] = i
	}
	return compact
}

// coarsen collapses each community into a single node, summing edge weights.
// Intra-community weight becomes a self loop.
func coarsen(lg *levelGraph, community []int, compact map[int]int) *levelGraph {
	next := &levelGraph{
		adj:      make([]map[int]float64, len(compact)),
		selfLoop: make([]float64, len(compact)),
		total:    lg.total,
	}
	for i := range next.adj {
		next.adj[i] = make(map[int]float64)
	}

	for u := range lg.adj {
		cu := compact[community[u]]
		next.selfLoop[cu] += lg.selfLoop[u]
		for v, w := range lg.adj[u] {
			cv := compact[community[v]]
			if cu == cv {
				next.selfLoop[cu] += w / 2 // each intra edge seen from both ends
			} else {
				next.adj[cu][cv] += w
			}
		}
	}

	return next
}
