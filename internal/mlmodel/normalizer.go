package mlmodel

import "fmt"

// Normalizer applies the affine standardization fit at training time,
// (x - mean) / scale per feature. All classifiers trained against a given
// normalizer must consume vectors transformed by that same normalizer.
type Normalizer struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

// Features returns the trained feature count.
func (n *Normalizer) Features() int {
	return len(n.Mean)
}

// Transform returns a new standardized vector. The input is not modified.
func (n *Normalizer) Transform(raw FeatureVector) (FeatureVector, error) {
	if len(raw) != len(n.Mean) {
		return nil, fmt.Errorf("%w: got %d features, normalizer trained on %d",
			ErrDimensionMismatch, len(raw), len(n.Mean))
	}

	out := make(FeatureVector, len(raw))
	for i, v := range raw {
		out[i] = (v - n.Mean[i]) / n.Scale[i]
	}
	return out, nil
}

func (n *Normalizer) validate() error {
	if len(n.Mean) == 0 {
		return fmt.Errorf("normalizer has no features")
	}
	if len(n.Scale) != len(n.Mean) {
		return fmt.Errorf("normalizer mean/scale length mismatch: %d vs %d",
			len(n.Mean), len(n.Scale))
	}
	for i, s := range n.Scale {
		if s == 0 {
			return fmt.Errorf("normalizer scale[%d] is zero", i)
		}
	}
	return nil
}
