package mlmodel

import (
	"encoding/json"
	"fmt"
	"os"
)

// Artifact loading. Each loader reads a JSON file, unmarshals it, and runs
// the type's internal consistency checks. A load failure is always fatal to
// the caller: the service must not serve traffic with a partial bundle.

func LoadNormalizer(path string) (*Normalizer, error) {
	var n Normalizer
	if err := readArtifact(path, &n); err != nil {
		return nil, err
	}
	if err := n.validate(); err != nil {
		return nil, fmt.Errorf("artifact %s: %w", path, err)
	}
	return &n, nil
}

func LoadForest(path string) (*Forest, error) {
	var f Forest
	if err := readArtifact(path, &f); err != nil {
		return nil, err
	}
	if err := f.validate(); err != nil {
		return nil, fmt.Errorf("artifact %s: %w", path, err)
	}
	return &f, nil
}

func LoadBoostedTrees(path string) (*BoostedTrees, error) {
	var b BoostedTrees
	if err := readArtifact(path, &b); err != nil {
		return nil, err
	}
	if err := b.validate(); err != nil {
		return nil, fmt.Errorf("artifact %s: %w", path, err)
	}
	return &b, nil
}

func LoadKNN(path string) (*KNN, error) {
	var m KNN
	if err := readArtifact(path, &m); err != nil {
		return nil, err
	}
	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("artifact %s: %w", path, err)
	}
	return &m, nil
}

func LoadLabelEncoder(path string) (*LabelEncoder, error) {
	var e LabelEncoder
	if err := readArtifact(path, &e); err != nil {
		return nil, err
	}
	if err := e.validate(); err != nil {
		return nil, fmt.Errorf("artifact %s: %w", path, err)
	}
	return &e, nil
}

func readArtifact(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read artifact: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse artifact %s: %w", path, err)
	}
	return nil
}
