package mlmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func regLeaf(v float64) RegressionTree {
	return RegressionTree{
		Feature:   []int{-1},
		Threshold: []float64{0},
		Left:      []int{0},
		Right:     []int{0},
		Value:     []float64{v},
	}
}

func TestBoostedScoreIsLogistic(t *testing.T) {
	b := &BoostedTrees{NumFeatures: 1, BaseScore: 0, Trees: []RegressionTree{regLeaf(0)}}

	p, err := b.Score(FeatureVector{0})
	require.NoError(t, err)
	assert.InDelta(t, 0.5, p, 1e-9)
}

func TestBoostedPredictThreshold(t *testing.T) {
	pos := &BoostedTrees{NumFeatures: 1, BaseScore: 2, Trees: []RegressionTree{regLeaf(1)}}
	label, err := pos.Predict(FeatureVector{0})
	require.NoError(t, err)
	assert.Equal(t, 1, label)

	neg := &BoostedTrees{NumFeatures: 1, BaseScore: -2, Trees: []RegressionTree{regLeaf(-1)}}
	label, err = neg.Predict(FeatureVector{0})
	require.NoError(t, err)
	assert.Equal(t, 0, label)
}

func TestBoostedStagesAccumulate(t *testing.T) {
	b := &BoostedTrees{
		NumFeatures: 1,
		BaseScore:   -1,
		Trees:       []RegressionTree{regLeaf(0.5), regLeaf(0.5), regLeaf(0.5)},
	}

	// margin = -1 + 1.5 = 0.5 > 0 so probability above half
	label, err := b.Predict(FeatureVector{0})
	require.NoError(t, err)
	assert.Equal(t, 1, label)
}

func TestBoostedDimensionMismatch(t *testing.T) {
	b := &BoostedTrees{NumFeatures: 3, Trees: []RegressionTree{regLeaf(0)}}

	_, err := b.Score(FeatureVector{1, 2})
	require.ErrorIs(t, err, ErrDimensionMismatch)
}
