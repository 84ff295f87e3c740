package model

import (
	"fmt"
	"math"

	domainModel "github.com/avdeyev/churnscope/internal/domain/model"
)

// Engine scores feature vectors against a loaded artifact. The artifact is
// immutable after load, so an Engine is safe for concurrent use.
type Engine struct {
	artifact *Artifact
}

// NewEngine wraps a loaded artifact.
func NewEngine(artifact *Artifact) *Engine {
	return &Engine{artifact: artifact}
}

// Version reports the artifact version being served.
func (e *Engine) Version() string {
	return e.artifact.Version
}

// PredictOne scores a single feature vector. The probability is the churn
// class probability; the label applies the artifact's own decision threshold.
func (e *Engine) PredictOne(vector domainModel.FeatureVector) (domainModel.PredictionResult, error) {
	if len(vector) != len(e.artifact.weights) {
		return domainModel.PredictionResult{}, fmt.Errorf("feature vector length %d, model expects %d", len(vector), len(e.artifact.weights))
	}

	score := e.artifact.Intercept
	for i, w := range e.artifact.weights {
		score += w * vector[i]
	}

	probability := sigmoid(score)
	label := domainModel.LabelWillStay
	if probability >= e.artifact.DecisionThreshold {
		label = domainModel.LabelWillChurn
	}
	return domainModel.PredictionResult{Label: label, Probability: probability}, nil
}

// PredictMany scores vectors independently, preserving input order.
func (e *Engine) PredictMany(vectors []domainModel.FeatureVector) ([]domainModel.PredictionResult, error) {
	results := make([]domainModel.PredictionResult, len(vectors))
	for i, vector := range vectors {
		result, err := e.PredictOne(vector)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		results[i] = result
	}
	return results, nil
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}
