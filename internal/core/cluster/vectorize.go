// Package cluster groups job postings into typologies by k-means over
// standardized binary skill-presence vectors.
package cluster

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/agenthands/skillgraph/internal/core/graph"
)

// Vectorize builds one binary vector per job over the fixed vocabulary:
// row[j][v] = 1 iff the (job, skill) edge exists. Rows follow the bipartite
// graph's job order, columns the vocabulary order. Rows are independent, so
// they are filled in parallel.
func Vectorize(ctx context.Context, b *graph.Bipartite, vocabulary []string) ([][]float64, error) {
	jobs := b.Jobs()
	vectors := make([][]float64, len(jobs))

	eg, _ := errgroup.WithContext(ctx)
	for i, jobID := range jobs {
		eg.Go(func() error {
			row := make([]float64, len(vocabulary))
			for v, skill := range vocabulary {
				if b.HasEdge(jobID, skill) {
					row[v] = 1
				}
			}
			vectors[i] = row
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return vectors, nil
}

// Standardize scales each feature column to zero mean and unit variance, in
// place. Zero-variance columns are centered only, not divided — every entry
// becomes exactly zero instead of NaN.
func Standardize(vectors [][]float64) {
	if len(vectors) == 0 {
		return
	}
	n := float64(len(vectors))
	cols := len(vectors[0])

	for c := 0; c < cols; c++ {
		mean := 0.0
		for _, row := range vectors {
			mean += row[c]
		}
		mean /= n

		variance := 0.0
		for _, row := range vectors {
			d := row[c] - mean
			variance += d * d
		}
		variance /= n

		std := math.Sqrt(variance)
		for _, row := range vectors {
			row[c] -= mean
			if std > 0 {
				row[c] /= std
			}
		}
	}
}
