package cluster

import (
	"math"
	"math/rand"

	"github.com/agenthands/skillgraph/internal/core/model"
)

const (
	// DefaultK is the number of job typologies when none is configured.
	DefaultK = 4
	// DefaultRestarts bounds sensitivity to local optima.
	DefaultRestarts = 10
	// DefaultMaxIterations caps Lloyd iterations per restart.
	DefaultMaxIterations = 300

	shiftTolerance = 1e-4 // squared centroid movement below which we stop
)

// Options configure KMeans. Zero values fall back to the package defaults.
type Options struct {
	K             int
	Restarts      int
	MaxIterations int
	Seed          int64
}

// KMeans clusters the rows of vectors into k groups. Initialization is
// k-means++ driven by the seed, so identical inputs and seed produce identical
// assignments. The best of Restarts runs (lowest inertia) wins. Fails with
// *model.InsufficientDataError when there are fewer rows than clusters.
func KMeans(vectors [][]float64, jobIDs []string, opts Options) (*model.ClusterResult, error) {
	if opts.K <= 0 {
		opts.K = DefaultK
	}
	if opts.Restarts <= 0 {
		opts.Restarts = DefaultRestarts
	}
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = DefaultMaxIterations
	}

	if len(vectors) < opts.K {
		return nil, &model.InsufficientDataError{
			Computation: "k-means clustering",
			Need:        opts.K,
			Have:        len(vectors),
		}
	}

	rng := rand.New(rand.NewSource(opts.Seed))

	var best *model.ClusterResult
	for r := 0; r < opts.Restarts; r++ {
		labels, centroids, inertia := lloyd(vectors, opts.K, opts.MaxIterations, rng)
		if best == nil || inertia < best.Inertia {
			assignment := make(model.ClusterAssignment, len(jobIDs))
			for i, id := range jobIDs {
				assignment[id] = labels[i]
			}
			best = &model.ClusterResult{Assignment: assignment, Centroids: centroids, Inertia: inertia}
		}
	}

	return best, nil
}

// lloyd runs one seeded k-means pass: k-means++ init, then assign/update
// until centroids settle or the iteration cap is hit.
func lloyd(vectors [][]float64, k, maxIter int, rng *rand.Rand) (labels []int, centroids [][]float64, inertia float64) {
	dim := len(vectors[0])
	centroids = seedCentroids(vectors, k, rng)
	labels = make([]int, len(vectors))

	for iter := 0; iter < maxIter; iter++ {
		for i, row := range vectors {
			labels[i] = nearest(row, centroids)
		}

		next := make([][]float64, k)
		counts := make([]int, k)
		for c := range next {
			next[c] = make([]float64, dim)
		}
		for i, row := range vectors {
			c := labels[i]
			counts[c]++
			for d, v := range row {
				next[c][d] += v
			}
		}

		for c := range next {
			if counts[c] == 0 {
				// Re-seed an empty cluster at the point farthest from its
				// centroid, the usual Lloyd repair.
				copy(next[c], vectors[farthest(vectors, labels, centroids)])
				counts[c] = 1
				continue
			}
			for d := range next[c] {
				next[c][d] /= float64(counts[c])
			}
		}

		shift := 0.0
		for c := range centroids {
			shift += sqDist(centroids[c], next[c])
		}
		centroids = next
		if shift < shiftTolerance {
			break
		}
	}

	for i, row := range vectors {
		labels[i] = nearest(row, centroids)
		inertia += sqDist(row, centroids[labels[i]])
	}
	return labels, centroids, inertia
}

// seedCentroids picks k starting centroids with k-means++: the first uniformly,
// each next proportional to squared distance from the nearest chosen one.
func seedCentroids(vectors [][]float64, k int, rng *rand.Rand) [][]float64 {
	centroids := make([][]float64, 0, k)
	first := rng.Intn(len(vectors))
	centroids = append(centroids, append([]float64(nil), vectors[first]...))

	dists := make([]float64, len(vectors))
	for len(centroids) < k {
		total := 0.0
		for i, row := range vectors {
			d := sqDist(row, centroids[len(centroids)-1])
			if len(centroids) == 1 || d < dists[i] {
				dists[i] = d
			}
			total += dists[i]
		}

		var pick int
		if total == 0 {
			pick = rng.Intn(len(vectors)) // all points coincide with a centroid
		} else {
			target := rng.Float64() * total
			acc := 0.0
			for i, d := range dists {
				acc += d
				if acc >= target {
					pick = i
					break
				}
			}
		}
		centroids = append(centroids, append([]float64(nil), vectors[pick]...))
	}
	return centroids
}

func nearest(row []float64, centroids [][]float64) int {
	best := 0
	bestDist := math.Inf(1)
	for c, centroid := range centroids {
		if d := sqDist(row, centroid); d < bestDist {
			best = c
			bestDist = d
		}
	}
	return best
}

func farthest(vectors [][]float64, labels []int, centroids [][]float64) int {
	worst := 0
	worstDist := -1.0
	for i, row := range vectors {
		if d := sqDist(row, centroids[labels[i]]); d > worstDist {
			worst = i
			worstDist = d
		}
	}
	return worst
}

func sqDist(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}
