package mlmodel

import (
	"fmt"
	"math"
)

// RegressionTree is a single booster stage. Same node-array layout as Tree,
// but leaves carry a scalar margin contribution instead of a distribution.
type RegressionTree struct {
	Feature   []int     `json:"feature"`
	Threshold []float64 `json:"threshold"`
	Left      []int     `json:"left"`
	Right     []int     `json:"right"`
	Value     []float64 `json:"value"`
}

func (t *RegressionTree) leaf(x FeatureVector) float64 {
	i := 0
	for t.Feature[i] >= 0 {
		if x[t.Feature[i]] <= t.Threshold[i] {
			i = t.Left[i]
		} else {
			i = t.Right[i]
		}
	}
	return t.Value[i]
}

func (t *RegressionTree) validate(features int) error {
	n := len(t.Feature)
	if n == 0 {
		return fmt.Errorf("booster tree has no nodes")
	}
	if len(t.Threshold) != n || len(t.Left) != n || len(t.Right) != n || len(t.Value) != n {
		return fmt.Errorf("booster tree node arrays have inconsistent lengths")
	}
	for i := 0; i < n; i++ {
		if t.Feature[i] >= features {
			return fmt.Errorf("booster node %d splits on feature %d, model has %d", i, t.Feature[i], features)
		}
		if t.Feature[i] >= 0 {
			if t.Left[i] <= i || t.Left[i] >= n || t.Right[i] <= i || t.Right[i] >= n {
				return fmt.Errorf("booster node %d has out-of-range children", i)
			}
		}
	}
	return nil
}

// BoostedTrees is a gradient-boosted binary classifier. Stage outputs are
// summed with the base margin and squashed through the logistic function;
// the positive class is predicted at probability >= 0.5.
type BoostedTrees struct {
	NumFeatures int              `json:"features"`
	BaseScore   float64          `json:"base_score"`
	Trees       []RegressionTree `json:"trees"`
}

// Score returns the positive-class probability for a normalized vector.
func (b *BoostedTrees) Score(x FeatureVector) (float64, error) {
	if len(x) != b.NumFeatures {
		return 0, fmt.Errorf("%w: got %d features, booster trained on %d",
			ErrDimensionMismatch, len(x), b.NumFeatures)
	}

	margin := b.BaseScore
	for ti := range b.Trees {
		margin += b.Trees[ti].leaf(x)
	}
	return 1 / (1 + math.Exp(-margin)), nil
}

// Predict returns 1 when the positive-class probability is at least 0.5.
func (b *BoostedTrees) Predict(x FeatureVector) (int, error) {
	p, err := b.Score(x)
	if err != nil {
		return 0, err
	}
	if p >= 0.5 {
		return 1, nil
	}
	return 0, nil
}

func (b *BoostedTrees) validate() error {
	if b.NumFeatures <= 0 {
		return fmt.Errorf("booster has no features")
	}
	if len(b.Trees) == 0 {
		return fmt.Errorf("booster has no trees")
	}
	for i := range b.Trees {
		if err := b.Trees[i].validate(b.NumFeatures); err != nil {
			return fmt.Errorf("stage %d: %w", i, err)
		}
	}
	return nil
}
