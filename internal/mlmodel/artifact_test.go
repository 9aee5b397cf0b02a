package mlmodel

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeArtifact(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadNormalizer(t *testing.T) {
	path := writeArtifact(t, "normalizer.json", `{"mean":[1,2],"scale":[0.5,2]}`)

	n, err := LoadNormalizer(path)
	require.NoError(t, err)
	assert.Equal(t, 2, n.Features())
}

func TestLoadNormalizerRejectsZeroScale(t *testing.T) {
	path := writeArtifact(t, "normalizer.json", `{"mean":[1,2],"scale":[0.5,0]}`)

	_, err := LoadNormalizer(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scale[1]")
}

func TestLoadNormalizerRejectsLengthMismatch(t *testing.T) {
	path := writeArtifact(t, "normalizer.json", `{"mean":[1,2,3],"scale":[1]}`)

	_, err := LoadNormalizer(path)
	require.Error(t, err)
}

func TestLoadForest(t *testing.T) {
	path := writeArtifact(t, "forest.json", `{
		"features": 2, "classes": 2,
		"trees": [{
			"feature": [0, -1, -1],
			"threshold": [0.5, 0, 0],
			"left": [1, 0, 0],
			"right": [2, 0, 0],
			"value": [[0,0],[4,1],[1,4]]
		}]
	}`)

	f, err := LoadForest(path)
	require.NoError(t, err)

	label, err := f.Predict(FeatureVector{0, 0})
	require.NoError(t, err)
	assert.Equal(t, 0, label)
}

func TestLoadForestRejectsBadChildren(t *testing.T) {
	path := writeArtifact(t, "forest.json", `{
		"features": 1, "classes": 2,
		"trees": [{
			"feature": [0],
			"threshold": [0.5],
			"left": [0],
			"right": [0],
			"value": [[1,1]]
		}]
	}`)

	_, err := LoadForest(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "children")
}

func TestLoadBoostedTrees(t *testing.T) {
	path := writeArtifact(t, "boosted.json", `{
		"features": 1, "base_score": 0.1,
		"trees": [{
			"feature": [-1], "threshold": [0], "left": [0], "right": [0], "value": [0.2]
		}]
	}`)

	b, err := LoadBoostedTrees(path)
	require.NoError(t, err)

	label, err := b.Predict(FeatureVector{0})
	require.NoError(t, err)
	assert.Equal(t, 1, label)
}

func TestLoadKNNRejectsBadK(t *testing.T) {
	path := writeArtifact(t, "knn.json", `{
		"features": 1, "k": 5,
		"points": [[0],[1]],
		"labels": [0,1]
	}`)

	_, err := LoadKNN(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "k=5")
}

func TestLoadLabelEncoderRejectsDuplicates(t *testing.T) {
	path := writeArtifact(t, "labels.json", `{"classes":["A","B","A"]}`)

	_, err := LoadLabelEncoder(path)
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := LoadNormalizer(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}

func TestLoadMalformedJSON(t *testing.T) {
	path := writeArtifact(t, "normalizer.json", `{"mean": [`)

	_, err := LoadNormalizer(path)
	require.Error(t, err)
}
