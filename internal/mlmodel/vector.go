// Package mlmodel provides inference over model artifacts exported by the
// offline training pipeline. Artifacts are plain JSON files loaded once at
// startup; every type here is immutable after load and safe for concurrent
// readers.
package mlmodel

import "errors"

// FeatureVector is an ordered sequence of feature values. The order is fixed
// at training time; callers must assemble vectors in exactly that order.
type FeatureVector []float64

// ErrDimensionMismatch is returned when a vector's length does not match the
// feature count an artifact was trained with.
var ErrDimensionMismatch = errors.New("mlmodel: feature dimension mismatch")

// BinaryClassifier produces a {0,1} label for a normalized feature vector.
type BinaryClassifier interface {
	Predict(x FeatureVector) (int, error)
}
