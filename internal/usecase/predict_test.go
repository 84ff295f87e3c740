package usecase_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/avdeyev/churnscope/internal/domain/model"
	"github.com/avdeyev/churnscope/internal/preprocess"
	testhelpers "github.com/avdeyev/churnscope/internal/test"
	"github.com/avdeyev/churnscope/internal/usecase"
)

func validRecord() model.CustomerRecord {
	return model.CustomerRecord{
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

func validRow() map[string]string {
	return map[string]string{
		preprocess.FieldSeniorCitizen:    "No",
		preprocess.FieldDependents:       "No",
		preprocess.FieldTenure:           "1",
		preprocess.FieldPhoneService:     "Yes",
		preprocess.FieldMultipleLines:    "No",
		preprocess.FieldInternetService:  "Fiber optic",
		preprocess.FieldOnlineSecurity:   "No",
		preprocess.FieldOnlineBackup:     "No",
		preprocess.FieldTechSupport:      "No",
		preprocess.FieldStreamingTV:      "No",
		preprocess.FieldStreamingMovies:  "No",
		preprocess.FieldContract:         "Month-to-month",
		preprocess.FieldPaperlessBilling: "Yes",
		preprocess.FieldPaymentMethod:    "Electronic check",
		preprocess.FieldMonthlyCharges:   "70",
		preprocess.FieldTotalCharges:     "70",
	}
}

func TestPredictOnlineChurnVerdict(t *testing.T) {
	engine := testhelpers.EngineStub{PredictOneFn: func(model.FeatureVector) (model.PredictionResult, error) {
		return model.PredictionResult{Label: model.LabelWillChurn, Probability: 0.83}, nil
	}}
	uc := usecase.NewPredictUseCase(engine)

	verdict, err := uc.Online(validRecord())
	if err != nil {
		t.Fatalf("online returned error: %v", err)
	}
	if verdict.Result.Label != model.LabelWillChurn {
		t.Fatalf("unexpected label: %v", verdict.Result.Label)
	}
	want := "Yes, the customer will terminate the service. Probability: 0.83"
	if verdict.Message != want {
		t.Fatalf("unexpected message:\ngot:  %q\nwant: %q", verdict.Message, want)
	}
}

func TestPredictOnlineStayVerdictShowsStayProbability(t *testing.T) {
	engine := testhelpers.EngineStub{PredictOneFn: func(model.FeatureVector) (model.PredictionResult, error) {
		return model.PredictionResult{Label: model.LabelWillStay, Probability: 0.25}, nil
	}}
	uc := usecase.NewPredictUseCase(engine)

	verdict, err := uc.Online(validRecord())
	if err != nil {
		t.Fatalf("online returned error: %v", err)
	}
	want := "No, the customer is happy with Telco Services. Probability: 0.75"
	if verdict.Message != want {
		t.Fatalf("unexpected message:\ngot:  %q\nwant: %q", verdict.Message, want)
	}
}

func TestPredictOnlineEncodingFailureSkipsEngine(t *testing.T) {
	engineCalled := false
	engine := testhelpers.EngineStub{PredictOneFn: func(model.FeatureVector) (model.PredictionResult, error) {
		engineCalled = true
		return model.PredictionResult{}, nil
	}}
	uc := usecase.NewPredictUseCase(engine)

	rec := validRecord()
	rec.InternetService = "Cable"

	_, err := uc.Online(rec)
	var encErr *preprocess.EncodingError
	if !errors.As(err, &encErr) {
		t.Fatalf("expected EncodingError, got %v", err)
	}
	if encErr.Reason != preprocess.ReasonUnknownCategory {
		t.Fatalf("expected unknown category, got %s", encErr.Reason)
	}
	if engineCalled {
		t.Fatal("engine must not be invoked for invalid input")
	}
}

func TestPredictOnlineEngineError(t *testing.T) {
	engine := testhelpers.EngineStub{PredictOneFn: func(model.FeatureVector) (model.PredictionResult, error) {
		return model.PredictionResult{}, fmt.Errorf("engine boom")
	}}
	uc := usecase.NewPredictUseCase(engine)

	if _, err := uc.Online(validRecord()); err == nil {
		t.Fatal("expected engine error")
	}
}

func TestPredictBatchRoundTrip(t *testing.T) {
	uc := usecase.NewPredictUseCase(testhelpers.EngineStub{})

	rows := []map[string]string{validRow(), validRow(), validRow()}
	outcome, err := uc.Batch(rows)
	if err != nil {
		t.Fatalf("batch returned error: %v", err)
	}
	if len(outcome.Rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(outcome.Rows))
	}
	if outcome.Processed != 3 || outcome.Failed != 0 {
		t.Fatalf("unexpected counters: processed=%d failed=%d", outcome.Processed, outcome.Failed)
	}
	for i, row := range outcome.Rows {
		if row.Index != i {
			t.Fatalf("row %d has index %d", i, row.Index)
		}
		if row.Err != nil {
			t.Fatalf("row %d unexpectedly failed: %v", i, row.Err)
		}
		if row.Verdict == "" {
			t.Fatalf("row %d missing verdict", i)
		}
	}
}

func TestPredictBatchPartialFailure(t *testing.T) {
	uc := usecase.NewPredictUseCase(testhelpers.EngineStub{PredictOneFn: func(model.FeatureVector) (model.PredictionResult, error) {
		return model.PredictionResult{Label: model.LabelWillChurn, Probability: 0.9}, nil
	}})

	bad := validRow()
	delete(bad, preprocess.FieldContract)

	outcome, err := uc.Batch([]map[string]string{validRow(), bad, validRow()})
	if err != nil {
		t.Fatalf("batch returned error: %v", err)
	}
	if outcome.Processed != 2 || outcome.Failed != 1 {
		t.Fatalf("unexpected counters: processed=%d failed=%d", outcome.Processed, outcome.Failed)
	}

	if outcome.Rows[0].Err != nil || outcome.Rows[0].Probability != 0.9 {
		t.Fatalf("row 0 must succeed: %+v", outcome.Rows[0])
	}
	if outcome.Rows[1].Err == nil || outcome.Rows[1].Err.Field != preprocess.FieldContract {
		t.Fatalf("row 1 must report missing contract column: %+v", outcome.Rows[1])
	}
	if outcome.Rows[2].Err != nil || outcome.Rows[2].Verdict == "" {
		t.Fatalf("row 2 must succeed: %+v", outcome.Rows[2])
	}
}

func TestPredictBatchEngineError(t *testing.T) {
	uc := usecase.NewPredictUseCase(testhelpers.EngineStub{PredictOneFn: func(model.FeatureVector) (model.PredictionResult, error) {
		return model.PredictionResult{}, fmt.Errorf("engine boom")
	}})

	if _, err := uc.Batch([]map[string]string{validRow()}); err == nil {
		t.Fatal("expected engine error")
	}
}

func TestPredictBatchEmptyUpload(t *testing.T) {
	uc := usecase.NewPredictUseCase(testhelpers.EngineStub{})

	outcome, err := uc.Batch(nil)
	if err != nil {
		t.Fatalf("batch returned error: %v", err)
	}
	if len(outcome.Rows) != 0 || outcome.Processed != 0 || outcome.Failed != 0 {
		t.Fatalf("expected empty outcome, got %+v", outcome)
	}
}

func TestModelVersion(t *testing.T) {
	uc := usecase.NewPredictUseCase(testhelpers.EngineStub{VersionVal: "v42"})
	if uc.ModelVersion() != "v42" {
		t.Fatalf("unexpected version: %q", uc.ModelVersion())
	}
}
