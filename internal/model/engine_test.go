package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainModel "github.com/avdeyev/churnscope/internal/domain/model"
	"github.com/avdeyev/churnscope/internal/preprocess"
)

func loadedEngine(t *testing.T, a *Artifact) *Engine {
	t.Helper()
	artifact, err := Load(writeArtifact(t, a))
	require.NoError(t, err)
	return NewEngine(artifact)
}

func zeroVector() domainModel.FeatureVector {
	return make(domainModel.FeatureVector, preprocess.FeatureCount())
}

func TestEngineVersion(t *testing.T) {
	engine := loadedEngine(t, testArtifact())
	assert.Equal(t, "telco-churn-test", engine.Version())
}

func TestPredictOneProbabilityAndLabel(t *testing.T) {
	a := testArtifact()
	a.Intercept = -1
	for feature := range a.Coefficients {
		a.Coefficients[feature] = 0
	}
	engine := loadedEngine(t, a)

	result, err := engine.PredictOne(zeroVector())
	require.NoError(t, err)

	assert.InDelta(t, 1/(1+math.Exp(1)), result.Probability, 1e-12)
	assert.Equal(t, domainModel.LabelWillStay, result.Label)
}

func TestPredictOneUsesArtifactThreshold(t *testing.T) {
	a := testArtifact()
	a.Intercept = 0
	for feature := range a.Coefficients {
		a.Coefficients[feature] = 0
	}
	a.DecisionThreshold = 0.4
	engine := loadedEngine(t, a)

	result, err := engine.PredictOne(zeroVector())
	require.NoError(t, err)

	// Probability 0.5 with a 0.4 threshold is the model's own churn decision.
	assert.InDelta(t, 0.5, result.Probability, 1e-12)
	assert.Equal(t, domainModel.LabelWillChurn, result.Label)
}

func TestPredictOneDeterministic(t *testing.T) {
	engine := loadedEngine(t, testArtifact())
	vector, err := preprocess.EncodeRecord(onlineScenarioRecord(), preprocess.ModeOnline)
	require.NoError(t, err)

	first, err := engine.PredictOne(vector)
	require.NoError(t, err)
	second, err := engine.PredictOne(vector)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestPredictOneProbabilityBounds(t *testing.T) {
	a := testArtifact()
	a.Coefficients[preprocess.FieldTotalCharges] = 50
	engine := loadedEngine(t, a)

	extreme := zeroVector()
	extreme[preprocess.FeatureCount()-1] = 10000

	result, err := engine.PredictOne(extreme)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, result.Probability, 0.0)
	assert.LessOrEqual(t, result.Probability, 1.0)

	extreme[preprocess.FeatureCount()-1] = -10000
	result, err = engine.PredictOne(extreme)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, result.Probability, 0.0)
	assert.LessOrEqual(t, result.Probability, 1.0)
}

func TestPredictOneVectorLengthMismatch(t *testing.T) {
	engine := loadedEngine(t, testArtifact())
	_, err := engine.PredictOne(domainModel.FeatureVector{1, 2, 3})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model expects")
}

func TestPredictManyPreservesOrder(t *testing.T) {
	engine := loadedEngine(t, testArtifact())

	vectors := make([]domainModel.FeatureVector, 5)
	for i := range vectors {
		v := zeroVector()
		v[2] = float64(i * 10) // tenure drives the score down
		vectors[i] = v
	}

	results, err := engine.PredictMany(vectors)
	require.NoError(t, err)
	require.Len(t, results, len(vectors))

	for i := 1; i < len(results); i++ {
		assert.Less(t, results[i].Probability, results[i-1].Probability,
			"longer tenure must lower churn probability under the test weights")
	}
}

func TestPredictManyRowError(t *testing.T) {
	engine := loadedEngine(t, testArtifact())
	vectors := []domainModel.FeatureVector{zeroVector(), {1, 2}}

	_, err := engine.PredictMany(vectors)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 1")
}

// onlineScenarioRecord mirrors the canonical single-customer input used
// throughout the handler and usecase tests.
func onlineScenarioRecord() domainModel.CustomerRecord {
	return domainModel.CustomerRecord{
		SeniorCitizen:    "No",
		Dependents:       "No",
		Tenure:           1,
		PhoneService:     "Yes",
		MultipleLines:    "No",
		InternetService:  "Fiber optic",
		OnlineSecurity:   "No",
		OnlineBackup:     "No",
		TechSupport:      "No",
		StreamingTV:      "No",
		StreamingMovies:  "No",
		Contract:         "Month-to-month",
		PaperlessBilling: "Yes",
		PaymentMethod:    "Electronic check",
		MonthlyCharges:   70,
		TotalCharges:     70,
	}
}
