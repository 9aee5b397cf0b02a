// Package pcos implements the PCOS risk engine: a majority vote over three
// trained classifiers fused with a deterministic rule score that can promote
// a negative verdict to positive.
package pcos

import (
	"fmt"
	"math"
	"path/filepath"

	"github.com/naaricare/riskapi/internal/mlmodel"
	"github.com/naaricare/riskapi/internal/recommend"
)

// FeatureCount is the trained input dimension. The vector order in
// featureVector is fixed by the training pipeline and must not change.
const FeatureCount = 15

// Severity tiers derived from the risk percentage.
const (
	SeverityNone   = "None"
	SeverityLow    = "Low"
	SeverityMedium = "Medium"
	SeverityHigh   = "High"
)

// Input is one assessment request. Raw clinical values; booleans are mapped
// to {0,1} during vector assembly.
type Input struct {
	Age             float64
	Weight          float64
	BMI             float64
	CycleRegular    bool
	CycleLength     float64
	WeightGain      bool
	HairGrowth      bool
	SkinDarkening   bool
	HairLoss        bool
	Pimples         bool
	FastFood        bool
	RegularExercise bool
	FollicleLeft    float64
	FollicleRight   float64
	Endometrium     float64
}

// Breakdown reports the rule-score components. CycleScore and
// UltrasoundScore carry their weight already applied (0 or 2).
type Breakdown struct {
	CycleScore      int `json:"cycleScore"`
	HormonalScore   int `json:"hormonalScore"`
	UltrasoundScore int `json:"ultrasoundScore"`
	MetabolicScore  int `json:"metabolicScore"`
}

func (b Breakdown) total() int {
	return b.CycleScore + b.HormonalScore + b.UltrasoundScore + b.MetabolicScore
}

// Result is the complete assessment returned to the caller.
type Result struct {
	HasPCOS         bool             `json:"hasPCOS"`
	RiskPercentage  int              `json:"riskPercentage"`
	Severity        string           `json:"severity"`
	Breakdown       Breakdown        `json:"breakdown"`
	Recommendations recommend.Bundle `json:"recommendations"`
}

// Engine holds the immutable artifact bundle for PCOS assessment. Construct
// once at startup; safe for concurrent use.
type Engine struct {
	normalizer  *mlmodel.Normalizer
	classifiers []mlmodel.BinaryClassifier
	table       *recommend.Table
}

// NewEngine wires a trained artifact bundle into an engine. All artifacts
// must share the normalizer's feature count; the classifiers are assumed to
// have been trained on vectors produced by this exact normalizer.
func NewEngine(norm *mlmodel.Normalizer, forest *mlmodel.Forest, boosted *mlmodel.BoostedTrees, knn *mlmodel.KNN, table *recommend.Table) (*Engine, error) {
	if norm.Features() != FeatureCount {
		return nil, fmt.Errorf("pcos normalizer has %d features, want %d", norm.Features(), FeatureCount)
	}
	for name, got := range map[string]int{
		"forest":  forest.NumFeatures,
		"boosted": boosted.NumFeatures,
		"knn":     knn.NumFeatures,
	} {
		if got != FeatureCount {
			return nil, fmt.Errorf("pcos %s classifier has %d features, want %d", name, got, FeatureCount)
		}
	}
	if forest.NumClasses != 2 {
		return nil, fmt.Errorf("pcos forest has %d classes, want 2", forest.NumClasses)
	}

	return &Engine{
		normalizer:  norm,
		classifiers: []mlmodel.BinaryClassifier{forest, boosted, knn},
		table:       table,
	}, nil
}

// LoadEngine reads the four PCOS artifacts from dir and wires an engine.
func LoadEngine(dir string, table *recommend.Table) (*Engine, error) {
	norm, err := mlmodel.LoadNormalizer(filepath.Join(dir, "normalizer.json"))
	if err != nil {
		return nil, fmt.Errorf("load pcos normalizer: %w", err)
	}
	forest, err := mlmodel.LoadForest(filepath.Join(dir, "forest.json"))
	if err != nil {
		return nil, fmt.Errorf("load pcos forest: %w", err)
	}
	boosted, err := mlmodel.LoadBoostedTrees(filepath.Join(dir, "boosted.json"))
	if err != nil {
		return nil, fmt.Errorf("load pcos boosted trees: %w", err)
	}
	knn, err := mlmodel.LoadKNN(filepath.Join(dir, "knn.json"))
	if err != nil {
		return nil, fmt.Errorf("load pcos knn: %w", err)
	}
	return NewEngine(norm, forest, boosted, knn, table)
}

// Assess runs the hybrid decision pipeline for one request.
func (e *Engine) Assess(in Input) (Result, error) {
	// Raw values go through unclamped: the trainer clips outliers before
	// fitting, serving does not replicate that clipping.
	normalized, err := e.normalizer.Transform(in.featureVector())
	if err != nil {
		return Result{}, err
	}

	votes := 0
	for _, c := range e.classifiers {
		label, err := c.Predict(normalized)
		if err != nil {
			return Result{}, err
		}
		votes += label
	}
	positive := votes >= 2

	breakdown := ruleScore(in)
	total := breakdown.total()

	// The rule score can only promote a negative verdict to positive,
	// never demote a positive one.
	if total >= overrideThreshold {
		positive = true
	}

	risk := 0
	severity := SeverityNone
	if positive {
		risk = int(math.Round(float64(total) / maxRuleScore * 100))
		if risk < minPositiveRisk {
			risk = minPositiveRisk
		}
		severity = severityForRisk(risk)
	}

	bundle, err := e.table.ForSeverity(severity)
	if err != nil {
		return Result{}, err
	}

	return Result{
		HasPCOS:         positive,
		RiskPercentage:  risk,
		Severity:        severity,
		Breakdown:       breakdown,
		Recommendations: bundle,
	}, nil
}

// featureVector assembles the 15 features in training order.
func (in Input) featureVector() mlmodel.FeatureVector {
	return mlmodel.FeatureVector{
		in.Age,
		in.Weight,
		in.BMI,
		boolFeature(in.CycleRegular),
		in.CycleLength,
		boolFeature(in.WeightGain),
		boolFeature(in.HairGrowth),
		boolFeature(in.SkinDarkening),
		boolFeature(in.HairLoss),
		boolFeature(in.Pimples),
		boolFeature(in.FastFood),
		boolFeature(in.RegularExercise),
		in.FollicleLeft,
		in.FollicleRight,
		in.Endometrium,
	}
}

func boolFeature(v bool) float64 {
	if v {
		return 1
	}
	return 0
}
