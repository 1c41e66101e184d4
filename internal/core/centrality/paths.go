package centrality

import (
	"container/heap"
	"math"
)

// distTolerance absorbs float drift when comparing inverse-weight path sums,
// so equally long paths are counted as ties.
const distTolerance = 1e-9

// shortestPathCentralities runs one single-source shortest-path sweep per node
// (Brandes' algorithm) and accumulates betweenness and closeness in the same
// pass. Betweenness credit for a pair is split proportionally across all
// shortest paths between it.
func shortestPathCentralities(adj [][]edge, n int) (betweenness, closeness []float64) {
	betweenness = make([]float64, n)
	closeness = make([]float64, n)

	sigma := make([]float64, n)
	dist := make([]float64, n)
	delta := make([]float64, n)
	preds := make([][]int, n)

	for s := 0; s < n; s++ {
		order := sssp(adj, s, sigma, dist, preds)

		// Dependency accumulation, farthest-first.
		for i := range delta {
			delta[i] = 0
		}
		for i := len(order) - 1; i >= 0; i-- {
			w := order[i]
			for _, v := range preds[w] {
				delta[v] += sigma[v] / sigma[w] * (1 + delta[w])
			}
			if w != s {
				betweenness[w] += delta[w]
			}
		}

		// Closeness from the same distance array.
		reachable := 0
		sum := 0.0
		for v := 0; v < n; v++ {
			if v != s && !math.IsInf(dist[v], 1) {
				reachable++
				sum += dist[v]
			}
		}
		if reachable > 0 && sum > 0 && n > 1 {
			r := float64(reachable)
			closeness[s] = (r / sum) * (r / float64(n-1))
		}
	}

	// Each unordered pair was counted from both endpoints; fold that into the
	// pair-count normalization 2/((n-1)(n-2)).
	if n > 2 {
		scale := 1.0 / (float64(n-1) * float64(n-2))
		for i := range betweenness {
			betweenness[i] *= scale
		}
	} else {
		for i := range betweenness {
			betweenness[i] = 0
		}
	}

	return betweenness, closeness
}

// sssp computes single-source shortest paths from s, filling sigma (path
// counts), dist and preds, and returns nodes in non-decreasing distance order.
// Uniform edge distances degrade to BFS cost; a Dijkstra heap handles both.
func sssp(adj [][]edge, s int, sigma, dist []float64, preds [][]int) []int {
	n := len(adj)
	for i := 0; i < n; i++ {
		sigma[i] = 0
		dist[i] = math.Inf(1)
		preds[i] = preds[i][:0]
	}
	sigma[s] = 1
	dist[s] = 0

	order := make([]int, 0, n)
	settled := make([]bool, n)

	pq := &distHeap{{node: s, dist: 0}}
	for pq.Len() > 0 {
		item := heap.Pop(pq).(distItem)
		u := item.node
		if settled[u] {
			continue
		}
		settled[u] = true
		order = append(order, u)

		for _, e := range adj[u] {
			v := e.to
			alt := dist[u] + e.dist
			switch {
			case alt < dist[v]-distTolerance:
				dist[v] = alt
				sigma[v] = sigma[u]
				preds[v] = append(preds[v][:0], u)
				heap.Push(pq, distItem{node: v, dist: alt})
			case math.Abs(alt-dist[v]) <= distTolerance && !settled[v]:
				sigma[v] += sigma[u]
				preds[v] = append(preds[v], u)
			}
		}
	}

	return order
}

type distItem struct {
	node int
	dist float64
}

type distHeap []distItem

func (h distHeap) Len() int      { return len(h) }
func (h distHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h distHeap) Less(i, j int) bool {
	if h[i].dist != h[j].dist {
		return h[i].dist < h[j].dist
	}
	return h[i].node < h[j].node // deterministic tie order
}

func (h *distHeap) Push(x any) { *h = append(*h, x.(distItem)) }
func (h *distHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
