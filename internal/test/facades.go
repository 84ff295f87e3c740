package test

import (
	"context"

	"github.com/avdeyev/churnscope/internal/domain/model"
	"github.com/avdeyev/churnscope/internal/usecase"
)

// PredictFacadeStub simulates scoring facade interactions.
type PredictFacadeStub struct {
	OnlineFn       func(context.Context, model.CustomerRecord) (*usecase.OnlineVerdict, error)
	BatchFn        func(context.Context, []map[string]string) (*usecase.BatchOutcome, error)
	VersionVal     string
	StoreHealthErr error
}

// PredictOnline returns a will-stay verdict unless overridden.
func (s PredictFacadeStub) PredictOnline(ctx context.Context, record model.CustomerRecord) (*usecase.OnlineVerdict, error) {
	if s.OnlineFn != nil {
		return s.OnlineFn(ctx, record)
	}
	result := model.PredictionResult{Label: model.LabelWillStay, Probability: 0.25}
	return &usecase.OnlineVerdict{Result: result, Message: usecase.FormatOnline(result)}, nil
}

// PredictBatch scores every row as will-churn unless overridden.
func (s PredictFacadeStub) PredictBatch(ctx context.Context, rows []map[string]string) (*usecase.BatchOutcome, error) {
	if s.BatchFn != nil {
		return s.BatchFn(ctx, rows)
	}
	outcome := &usecase.BatchOutcome{Rows: make([]usecase.BatchRow, len(rows)), Processed: len(rows)}
	for i := range rows {
		outcome.Rows[i] = usecase.BatchRow{
			Index:       i,
			Verdict:     usecase.VerdictPhrase(model.LabelWillChurn),
			Probability: 0.9,
		}
	}
	return outcome, nil
}

// ModelVersion reports the stubbed artifact version.
func (s PredictFacadeStub) ModelVersion() string {
	if s.VersionVal != "" {
		return s.VersionVal
	}
	return "stub-model"
}

// StoreHealth reports configured store availability.
func (s PredictFacadeStub) StoreHealth(ctx context.Context) error {
	return s.StoreHealthErr
}

// ChurnFacadeStub aggregates auth and predict stubs for handler tests.
type ChurnFacadeStub struct {
	AuthFacadeStub
	PredictFacadeStub
}
