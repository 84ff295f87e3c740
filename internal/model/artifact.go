package model

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/avdeyev/churnscope/internal/preprocess"
)

// Artifact is the trained churn classifier: a logistic regression over the
// encoded feature vector. It is loaded once at process start and treated as
// read-only for the process lifetime.
type Artifact struct {
	Version           string             `yaml:"version"`
	FeatureOrder      []string           `yaml:"feature_order"`
	Coefficients      map[string]float64 `yaml:"coefficients"`
	Intercept         float64            `yaml:"intercept"`
	DecisionThreshold float64            `yaml:"decision_threshold"`

	// weights holds coefficients rearranged into feature order.
	weights []float64
}

// Load reads and validates a serialized artifact. The artifact's feature
// order must match the encoder's exactly; a mismatch means the artifact was
// trained against a different encoding and cannot be served.
func Load(path string) (*Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact: %w", err)
	}

	var a Artifact
	if err := yaml.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("decode model artifact: %w", err)
	}

	if err := a.validate(); err != nil {
		return nil, fmt.Errorf("validate model artifact: %w", err)
	}

	a.weights = make([]float64, len(a.FeatureOrder))
	for i, feature := range a.FeatureOrder {
		a.weights[i] = a.Coefficients[feature]
	}
	return &a, nil
}

func (a *Artifact) validate() error {
	if a.Version == "" {
		return fmt.Errorf("missing version")
	}
	if a.DecisionThreshold <= 0 || a.DecisionThreshold >= 1 {
		return fmt.Errorf("decision threshold %v outside (0,1)", a.DecisionThreshold)
	}

	expected := preprocess.FeatureOrder()
	if len(a.FeatureOrder) != len(expected) {
		return fmt.Errorf("feature count %d, encoder expects %d", len(a.FeatureOrder), len(expected))
	}
	for i, feature := range expected {
		if a.FeatureOrder[i] != feature {
			return fmt.Errorf("feature %d is %q, encoder expects %q", i, a.FeatureOrder[i], feature)
		}
		if _, ok := a.Coefficients[feature]; !ok {
			return fmt.Errorf("missing coefficient for %q", feature)
		}
	}
	return nil
}
