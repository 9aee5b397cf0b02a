// Package menopause implements the menopause stage engine: a multi-class
// classifier picks the stage, and four deterministic sub-scores explain the
// inputs without influencing the decision.
package menopause

import (
	"fmt"
	"path/filepath"

	"github.com/naaricare/riskapi/internal/mlmodel"
	"github.com/naaricare/riskapi/internal/recommend"
)

// FeatureCount is the trained input dimension. Vector order in featureVector
// is fixed by the training pipeline.
const FeatureCount = 11

// Stage labels, matching the training-time label encoder.
const (
	StagePre  = "Pre-Menopause"
	StagePeri = "Peri-Menopause"
	StagePost = "Post-Menopause"
)

// Input is one staging request. Symptom fields arrive integer-coded (0/1)
// from the caller.
type Input struct {
	Age              int
	EstrogenLevel    float64
	FSHLevel         float64
	YearsSincePeriod float64
	IrregularPeriods int
	MissedPeriods    int
	HotFlashes       int
	NightSweats      int
	SleepProblems    int
	VaginalDryness   int
	JointPain        int
}

// Breakdown reports the explanatory sub-scores. They are display-only and
// never feed back into the stage decision.
type Breakdown struct {
	AgeScore     int `json:"ageScore"`
	HormoneScore int `json:"hormoneScore"`
	SymptomScore int `json:"symptomScore"`
	PeriodScore  int `json:"periodScore"`
}

// Result is the complete staging response.
type Result struct {
	Stage                string           `json:"stage"`
	RiskPercentage       int              `json:"riskPercentage"`
	HasMenopauseSymptoms bool             `json:"hasMenopauseSymptoms"`
	Breakdown            Breakdown        `json:"breakdown"`
	Recommendations      recommend.Bundle `json:"recommendations"`
}

// Engine holds the immutable artifact bundle for stage classification.
// Construct once at startup; safe for concurrent use.
type Engine struct {
	normalizer *mlmodel.Normalizer
	forest     *mlmodel.Forest
	labels     *mlmodel.LabelEncoder
	table      *recommend.Table
}

// NewEngine wires a trained artifact bundle into an engine.
func NewEngine(norm *mlmodel.Normalizer, forest *mlmodel.Forest, labels *mlmodel.LabelEncoder, table *recommend.Table) (*Engine, error) {
	if norm.Features() != FeatureCount {
		return nil, fmt.Errorf("menopause normalizer has %d features, want %d", norm.Features(), FeatureCount)
	}
	if forest.NumFeatures != FeatureCount {
		return nil, fmt.Errorf("menopause forest has %d features, want %d", forest.NumFeatures, FeatureCount)
	}
	if forest.NumClasses != labels.Len() {
		return nil, fmt.Errorf("menopause forest has %d classes, label encoder has %d", forest.NumClasses, labels.Len())
	}
	known := map[string]bool{StagePre: true, StagePeri: true, StagePost: true}
	if labels.Len() != len(known) {
		return nil, fmt.Errorf("menopause label encoder has %d classes, want %d", labels.Len(), len(known))
	}
	for i := 0; i < labels.Len(); i++ {
		label, _ := labels.Label(i)
		if !known[label] {
			return nil, fmt.Errorf("menopause label encoder has unknown stage %q", label)
		}
	}

	return &Engine{normalizer: norm, forest: forest, labels: labels, table: table}, nil
}

// LoadEngine reads the three menopause artifacts from dir and wires an engine.
func LoadEngine(dir string, table *recommend.Table) (*Engine, error) {
	norm, err := mlmodel.LoadNormalizer(filepath.Join(dir, "normalizer.json"))
	if err != nil {
		return nil, fmt.Errorf("load menopause normalizer: %w", err)
	}
	forest, err := mlmodel.LoadForest(filepath.Join(dir, "forest.json"))
	if err != nil {
		return nil, fmt.Errorf("load menopause forest: %w", err)
	}
	labels, err := mlmodel.LoadLabelEncoder(filepath.Join(dir, "labels.json"))
	if err != nil {
		return nil, fmt.Errorf("load menopause labels: %w", err)
	}
	return NewEngine(norm, forest, labels, table)
}

// Assess classifies the stage and computes the explanatory breakdown.
func (e *Engine) Assess(in Input) (Result, error) {
	normalized, err := e.normalizer.Transform(in.featureVector())
	if err != nil {
		return Result{}, err
	}

	probs, err := e.forest.Proba(normalized)
	if err != nil {
		return Result{}, err
	}
	best := 0
	for i, p := range probs {
		if p > probs[best] {
			best = i
		}
	}
	stage, err := e.labels.Label(best)
	if err != nil {
		return Result{}, err
	}

	bundle, err := e.table.ForStage(stage)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Stage: stage,
		// Confidence of the winning class, truncated to a whole percent.
		RiskPercentage:       int(probs[best] * 100),
		HasMenopauseSymptoms: stage != StagePre,
		Breakdown:            breakdownScores(in),
		Recommendations:      bundle,
	}, nil
}

// featureVector assembles the 11 features in training order.
func (in Input) featureVector() mlmodel.FeatureVector {
	return mlmodel.FeatureVector{
		float64(in.Age),
		in.EstrogenLevel,
		in.FSHLevel,
		in.YearsSincePeriod,
		float64(in.IrregularPeriods),
		float64(in.MissedPeriods),
		float64(in.HotFlashes),
		float64(in.NightSweats),
		float64(in.SleepProblems),
		float64(in.VaginalDryness),
		float64(in.JointPain),
	}
}
