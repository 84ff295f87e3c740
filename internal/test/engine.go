package test

import "github.com/avdeyev/churnscope/internal/domain/model"

// EngineStub scores vectors with a fixed or computed result.
type EngineStub struct {
	PredictOneFn func(model.FeatureVector) (model.PredictionResult, error)
	VersionVal   string
}

// PredictOne returns a will-stay verdict unless overridden.
func (e EngineStub) PredictOne(vector model.FeatureVector) (model.PredictionResult, error) {
	if e.PredictOneFn != nil {
		return e.PredictOneFn(vector)
	}
	return model.PredictionResult{Label: model.LabelWillStay, Probability: 0.25}, nil
}

// PredictMany applies PredictOne to every vector in order.
func (e EngineStub) PredictMany(vectors []model.FeatureVector) ([]model.PredictionResult, error) {
	results := make([]model.PredictionResult, len(vectors))
	for i, v := range vectors {
		r, err := e.PredictOne(v)
		if err != nil {
			return nil, err
		}
		results[i] = r
	}
	return results, nil
}

// Version reports the stubbed artifact version.
func (e EngineStub) Version() string {
	if e.VersionVal != "" {
		return e.VersionVal
	}
	return "stub-model"
}
