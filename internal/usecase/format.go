package usecase

import (
	"fmt"

	"github.com/avdeyev/churnscope/internal/domain/model"
)

const (
	verdictChurn = "Yes, the customer will terminate the service."
	verdictStay  = "No, the customer is happy with Telco Services."
)

// VerdictPhrase maps a label to its user-facing wording.
func VerdictPhrase(label model.Label) string {
	if label == model.LabelWillChurn {
		return verdictChurn
	}
	return verdictStay
}

// DisplayProbability is the confidence shown to the user: the churn
// probability when the verdict is churn, the stay probability otherwise.
func DisplayProbability(result model.PredictionResult) float64 {
	if result.Label == model.LabelWillChurn {
		return result.Probability
	}
	return 1 - result.Probability
}

// FormatOnline renders a single prediction as a verdict message.
func FormatOnline(result model.PredictionResult) string {
	return fmt.Sprintf("%s Probability: %.2f", VerdictPhrase(result.Label), DisplayProbability(result))
}

// BatchVerdict is one row of a batch prediction table.
type BatchVerdict struct {
	Phrase      string
	Probability float64
}

// FormatBatch renders predictions as an ordered verdict table. The
// probability column is always the churn probability.
func FormatBatch(results []model.PredictionResult) []BatchVerdict {
	verdicts := make([]BatchVerdict, len(results))
	for i, r := range results {
		verdicts[i] = BatchVerdict{Phrase: VerdictPhrase(r.Label), Probability: r.Probability}
	}
	return verdicts
}
