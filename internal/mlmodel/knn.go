package mlmodel

import (
	"fmt"
	"math"
	"sort"
)

// KNN is a k-nearest-neighbors classifier over the normalized training set
// retained in the artifact. Distances are Euclidean; the predicted label is
// the majority among the k nearest points, ties broken toward the label with
// the smaller summed distance.
type KNN struct {
	NumFeatures int         `json:"features"`
	K           int         `json:"k"`
	Points      [][]float64 `json:"points"`
	Labels      []int       `json:"labels"`
}

// Predict returns the majority label among the k nearest training points.
func (m *KNN) Predict(x FeatureVector) (int, error) {
	if len(x) != m.NumFeatures {
		return 0, fmt.Errorf("%w: got %d features, knn trained on %d",
			ErrDimensionMismatch, len(x), m.NumFeatures)
	}

	type neighbor struct {
		dist  float64
		label int
	}
	neighbors := make([]neighbor, len(m.Points))
	for i, p := range m.Points {
		sum := 0.0
		for j, v := range p {
			d := x[j] - v
			sum += d * d
		}
		neighbors[i] = neighbor{dist: math.Sqrt(sum), label: m.Labels[i]}
	}
	sort.Slice(neighbors, func(a, b int) bool {
		return neighbors[a].dist < neighbors[b].dist
	})

	votes := map[int]int{}
	distSum := map[int]float64{}
	for _, n := range neighbors[:m.K] {
		votes[n.label]++
		distSum[n.label] += n.dist
	}

	best, bestVotes := -1, -1
	for label, count := range votes {
		switch {
		case count > bestVotes:
			best, bestVotes = label, count
		case count == bestVotes && distSum[label] < distSum[best]:
			best = label
		}
	}
	return best, nil
}

func (m *KNN) validate() error {
	if m.NumFeatures <= 0 {
		return fmt.Errorf("knn has no features")
	}
	if len(m.Points) == 0 {
		return fmt.Errorf("knn has no training points")
	}
	if m.K <= 0 || m.K > len(m.Points) {
		return fmt.Errorf("knn k=%d out of range for %d points", m.K, len(m.Points))
	}
	if len(m.Labels) != len(m.Points) {
		return fmt.Errorf("knn has %d labels for %d points", len(m.Labels), len(m.Points))
	}
	for i, p := range m.Points {
		if len(p) != m.NumFeatures {
			return fmt.Errorf("knn point %d has %d features, model has %d", i, len(p), m.NumFeatures)
		}
	}
	return nil
}
