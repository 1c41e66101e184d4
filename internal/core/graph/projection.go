package graph

import (
	"sort"
)

// Cooccurrence is the weighted skill–skill projection of the bipartite graph.
// Edge weight = number of distinct jobs mentioning both skills. Undirected,
// no self loops. Skills appearing in no job are not present.
type Cooccurrence struct {
	adj map[string]map[string]int // skill -> neighbor -> shared job count
}

// Project derives the co-occurrence graph from the bipartite graph. For every
// pair of skills sharing at least one job the edge weight counts the shared
// jobs. Weights are exact integers; the projection is deterministic for a
// given bipartite graph regardless of iteration order.
func Project(b *Bipartite) *Cooccurrence {
	g := &Cooccurrence{adj: make(map[string]map[string]int)}

	for _, jobID := range b.Jobs() {
		skills := b.JobSkills(jobID)
		for i := range skills {
			g.ensure(skills[i])
			for j := i + 1; j < len(skills); j++ {
				g.ensure(skills[j])
				g.adj[skills[i]][skills[j]]++
				g.adj[skills[j]][skills[i]]++
			}
		}
	}

	return g
}

func (g *Cooccurrence) ensure(skill string) {
	if g.adj[skill] == nil {
		g.adj[skill] = make(map[string]int)
	}
}

// Nodes returns all skill nodes, sorted.
func (g *Cooccurrence) Nodes() []string {
	out := make([]string, 0, len(g.adj))
	for s := range g.adj {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// Neighbors returns the sorted neighbors of a skill.
func (g *Cooccurrence) Neighbors(skill string) []string {
	out := make([]string, 0, len(g.adj[skill]))
	for n := range g.adj[skill] {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Weight returns the co-occurrence count of two skills, 0 when no edge exists.
func (g *Cooccurrence) Weight(a, b string) int {
	return g.adj[a][b]
}

// Degree returns the number of neighbors of a skill.
func (g *Cooccurrence) Degree(skill string) int {
	return len(g.adj[skill])
}

// WeightedDegree returns the sum of incident edge weights.
func (g *Cooccurrence) WeightedDegree(skill string) int {
	sum := 0
	for _, w := range g.adj[skill] {
		sum += w
	}
	return sum
}

// NodeCount returns the number of skill nodes.
func (g *Cooccurrence) NodeCount() int { return len(g.adj) }

// EdgeCount returns the number of undirected edges.
func (g *Cooccurrence) EdgeCount() int {
	total := 0
	for _, nbrs := range g.adj {
		total += len(nbrs)
	}
	return total / 2
}

// TotalWeight returns the sum of all undirected edge weights.
func (g *Cooccurrence) TotalWeight() float64 {
	total := 0
	for _, nbrs := range g.adj {
		for _, w := range nbrs {
			total += w
		}
	}
	return float64(total) / 2
}
