package mlmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stump splits feature 0 at 0: negative side votes class 0, positive side
// votes class 1.
func stump() Tree {
	return Tree{
		Feature:   []int{0, -1, -1},
		Threshold: []float64{0, 0, 0},
		Left:      []int{1, 0, 0},
		Right:     []int{2, 0, 0},
		Value:     [][]float64{{0, 0}, {8, 2}, {1, 9}},
	}
}

func leafOnly(dist []float64) Tree {
	return Tree{
		Feature:   []int{-1},
		Threshold: []float64{0},
		Left:      []int{0},
		Right:     []int{0},
		Value:     [][]float64{dist},
	}
}

func TestForestProbaSumsToOne(t *testing.T) {
	f := &Forest{
		NumFeatures: 2,
		NumClasses:  2,
		Trees:       []Tree{stump(), leafOnly([]float64{3, 1})},
	}

	probs, err := f.Proba(FeatureVector{-1, 0})
	require.NoError(t, err)
	require.Len(t, probs, 2)
	assert.InDelta(t, 1.0, probs[0]+probs[1], 1e-9)
	// tree 1 votes 0.8/0.2, tree 2 votes 0.75/0.25
	assert.InDelta(t, 0.775, probs[0], 1e-9)
}

func TestForestPredictFollowsSplit(t *testing.T) {
	f := &Forest{NumFeatures: 2, NumClasses: 2, Trees: []Tree{stump()}}

	neg, err := f.Predict(FeatureVector{-0.5, 0})
	require.NoError(t, err)
	assert.Equal(t, 0, neg)

	pos, err := f.Predict(FeatureVector{0.5, 0})
	require.NoError(t, err)
	assert.Equal(t, 1, pos)
}

func TestForestDimensionMismatch(t *testing.T) {
	f := &Forest{NumFeatures: 2, NumClasses: 2, Trees: []Tree{stump()}}

	_, err := f.Proba(FeatureVector{1})
	require.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestForestMultiClassProba(t *testing.T) {
	f := &Forest{
		NumFeatures: 1,
		NumClasses:  3,
		Trees:       []Tree{leafOnly([]float64{1, 2, 7})},
	}

	probs, err := f.Proba(FeatureVector{0})
	require.NoError(t, err)
	assert.InDelta(t, 0.1, probs[0], 1e-9)
	assert.InDelta(t, 0.2, probs[1], 1e-9)
	assert.InDelta(t, 0.7, probs[2], 1e-9)
}
