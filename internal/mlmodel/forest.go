package mlmodel

import "fmt"

// Tree is a single decision tree stored as parallel node arrays. Node 0 is
// the root. Feature[i] < 0 marks a leaf; Value[i] holds the class
// distribution observed at that node during training.
type Tree struct {
	Feature   []int       `json:"feature"`
	Threshold []float64   `json:"threshold"`
	Left      []int       `json:"left"`
	Right     []int       `json:"right"`
	Value     [][]float64 `json:"value"`
}

func (t *Tree) leaf(x FeatureVector) []float64 {
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

func (t *Tree) validate(features, classes int) error {
	n := len(t.Feature)
	if n == 0 {
		return fmt.Errorf("tree has no nodes")
	}
	if len(t.Threshold) != n || len(t.Left) != n || len(t.Right) != n || len(t.Value) != n {
		return fmt.Errorf("tree node arrays have inconsistent lengths")
	}
	for i := 0; i < n; i++ {
		if t.Feature[i] >= features {
			return fmt.Errorf("tree node %d splits on feature %d, model has %d", i, t.Feature[i], features)
		}
		if t.Feature[i] >= 0 {
			if t.Left[i] <= i || t.Left[i] >= n || t.Right[i] <= i || t.Right[i] >= n {
				return fmt.Errorf("tree node %d has out-of-range children", i)
			}
		}
		if len(t.Value[i]) != classes {
			return fmt.Errorf("tree node %d has %d class values, model has %d classes", i, len(t.Value[i]), classes)
		}
	}
	return nil
}

// Forest is an ensemble of decision trees voting by averaged leaf
// distributions. It serves both as a binary classifier (argmax over two
// classes) and as a multi-class probability model.
type Forest struct {
	NumFeatures int    `json:"features"`
	NumClasses  int    `json:"classes"`
	Trees       []Tree `json:"trees"`
}

// Proba returns the class probability distribution for a normalized vector,
// averaged over all trees. The result always sums to 1.
func (f *Forest) Proba(x FeatureVector) ([]float64, error) {
	if len(x) != f.NumFeatures {
		return nil, fmt.Errorf("%w: got %d features, forest trained on %d",
			ErrDimensionMismatch, len(x), f.NumFeatures)
	}

	probs := make([]float64, f.NumClasses)
	for ti := range f.Trees {
		dist := f.Trees[ti].leaf(x)
		total := 0.0
		for _, v := range dist {
			total += v
		}
		for c, v := range dist {
			probs[c] += v / total
		}
	}
	for c := range probs {
		probs[c] /= float64(len(f.Trees))
	}
	return probs, nil
}

// Predict returns the argmax class label.
func (f *Forest) Predict(x FeatureVector) (int, error) {
	probs, err := f.Proba(x)
	if err != nil {
		return 0, err
	}
	return argmax(probs), nil
}

func (f *Forest) validate() error {
	if f.NumFeatures <= 0 {
		return fmt.Errorf("forest has no features")
	}
	if f.NumClasses < 2 {
		return fmt.Errorf("forest needs at least 2 classes, has %d", f.NumClasses)
	}
	if len(f.Trees) == 0 {
		return fmt.Errorf("forest has no trees")
	}
	for i := range f.Trees {
		if err := f.Trees[i].validate(f.NumFeatures, f.NumClasses); err != nil {
			return fmt.Errorf("tree %d: %w", i, err)
		}
	}
	for i := range f.Trees {
		for ni, dist := range f.Trees[i].Value {
			if f.Trees[i].Feature[ni] >= 0 {
				continue
			}
			total := 0.0
			for _, v := range dist {
				total += v
			}
			if total <= 0 {
				return fmt.Errorf("tree %d leaf %d has empty class distribution", i, ni)
			}
		}
	}
	return nil
}

func argmax(vals []float64) int {
	best := 0
	for i, v := range vals {
		if v > vals[best] {
			best = i
		}
	}
	return best
}
