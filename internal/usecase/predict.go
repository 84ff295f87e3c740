package usecase

import (
	"github.com/avdeyev/churnscope/internal/domain/model"
	"github.com/avdeyev/churnscope/internal/preprocess"
)

// Engine is the inference capability the use case depends on.
type Engine interface {
	PredictOne(vector model.FeatureVector) (model.PredictionResult, error)
	PredictMany(vectors []model.FeatureVector) ([]model.PredictionResult, error)
	Version() string
}

// PredictUseCase runs the encode -> infer -> format pipeline.
type PredictUseCase struct {
	engine Engine
}

// NewPredictUseCase constructs PredictUseCase.
func NewPredictUseCase(engine Engine) *PredictUseCase {
	return &PredictUseCase{engine: engine}
}

// OnlineVerdict is the outcome of a single-record prediction.
type OnlineVerdict struct {
	Result  model.PredictionResult
	Message string
}

// Online encodes one customer record and scores it. Encoding failures are
// returned as *preprocess.EncodingError and never reach the engine.
func (u *PredictUseCase) Online(record model.CustomerRecord) (*OnlineVerdict, error) {
	vector, err := preprocess.EncodeRecord(record, preprocess.ModeOnline)
	if err != nil {
		return nil, err
	}

	result, err := u.engine.PredictOne(vector)
	if err != nil {
		return nil, err
	}

	return &OnlineVerdict{Result: result, Message: FormatOnline(result)}, nil
}

// BatchRow is the outcome for one uploaded row: either a verdict or the
// reason the row could not be encoded.
type BatchRow struct {
	Index       int
	Verdict     string
	Probability float64
	Err         *preprocess.EncodingError
}

// BatchOutcome aggregates per-row results of a batch prediction, in upload
// order.
type BatchOutcome struct {
	Rows      []BatchRow
	Processed int
	Failed    int
}

// Batch encodes every uploaded row independently and scores the rows that
// encoded cleanly. Row order is preserved one-to-one with the upload; a bad
// row is reported in place, not dropped, and never aborts the batch.
func (u *PredictUseCase) Batch(rows []map[string]string) (*BatchOutcome, error) {
	encoded := preprocess.EncodeRows(rows)

	vectors := make([]model.FeatureVector, 0, len(encoded))
	positions := make([]int, 0, len(encoded))
	for i, row := range encoded {
		if row.Err == nil {
			vectors = append(vectors, row.Vector)
			positions = append(positions, i)
		}
	}

	results, err := u.engine.PredictMany(vectors)
	if err != nil {
		return nil, err
	}

	outcome := &BatchOutcome{Rows: make([]BatchRow, len(encoded))}
	for i, row := range encoded {
		outcome.Rows[i] = BatchRow{Index: i, Err: row.Err}
		if row.Err != nil {
			outcome.Failed++
		}
	}
	for j, verdict := range FormatBatch(results) {
		i := positions[j]
		outcome.Rows[i].Verdict = verdict.Phrase
		outcome.Rows[i].Probability = verdict.Probability
		outcome.Processed++
	}

	return outcome, nil
}

// ModelVersion reports the served artifact version.
func (u *PredictUseCase) ModelVersion() string {
	return u.engine.Version()
}
