package dto

import (
	"github.com/avdeyev/churnscope/internal/domain/model"
	"github.com/avdeyev/churnscope/internal/preprocess"
	"github.com/avdeyev/churnscope/internal/usecase"
)

// OnlineRequest carries a single customer profile. Field names follow the
// source dataset column headers.
type OnlineRequest struct {
	SeniorCitizen    string  `json:"SeniorCitizen"`
	Dependents       string  `json:"Dependents"`
	Tenure           float64 `json:"tenure"`
	PhoneService     string  `json:"PhoneService"`
	MultipleLines    string  `json:"MultipleLines"`
	InternetService  string  `json:"InternetService"`
	OnlineSecurity   string  `json:"OnlineSecurity"`
	OnlineBackup     string  `json:"OnlineBackup"`
	TechSupport      string  `json:"TechSupport"`
	StreamingTV      string  `json:"StreamingTV"`
	StreamingMovies  string  `json:"StreamingMovies"`
	Contract         string  `json:"Contract"`
	PaperlessBilling string  `json:"PaperlessBilling"`
	PaymentMethod    string  `json:"PaymentMethod"`
	MonthlyCharges   float64 `json:"MonthlyCharges"`
	TotalCharges     float64 `json:"TotalCharges"`
}

// Record converts the request into a domain customer record.
func (r OnlineRequest) Record() model.CustomerRecord {
	return model.CustomerRecord{
		SeniorCitizen:    r.SeniorCitizen,
		Dependents:       r.Dependents,
		Tenure:           r.Tenure,
		PhoneService:     r.PhoneService,
		MultipleLines:    r.MultipleLines,
		InternetService:  r.InternetService,
		OnlineSecurity:   r.OnlineSecurity,
		OnlineBackup:     r.OnlineBackup,
		TechSupport:      r.TechSupport,
		StreamingTV:      r.StreamingTV,
		StreamingMovies:  r.StreamingMovies,
		Contract:         r.Contract,
		PaperlessBilling: r.PaperlessBilling,
		PaymentMethod:    r.PaymentMethod,
		MonthlyCharges:   r.MonthlyCharges,
		TotalCharges:     r.TotalCharges,
	}
}

// OnlineResponse reports a single scoring verdict.
type OnlineResponse struct {
	Message     string  `json:"message"`
	WillChurn   bool    `json:"will_churn"`
	Probability float64 `json:"probability"`
}

// NewOnlineResponse builds the response from a scoring verdict.
func NewOnlineResponse(verdict *usecase.OnlineVerdict) OnlineResponse {
	return OnlineResponse{
		Message:     verdict.Message,
		WillChurn:   verdict.Result.Label == model.LabelWillChurn,
		Probability: usecase.DisplayProbability(verdict.Result),
	}
}

// EncodingErrorResponse describes why a profile could not be encoded.
type EncodingErrorResponse struct {
	Field  string `json:"field"`
	Value  string `json:"value"`
	Reason string `json:"reason"`
}

// NewEncodingErrorResponse converts an encoding failure for transport.
func NewEncodingErrorResponse(err *preprocess.EncodingError) *EncodingErrorResponse {
	return &EncodingErrorResponse{
		Field:  err.Field,
		Value:  err.Value,
		Reason: string(err.Reason),
	}
}

// BatchRowResponse reports the verdict or failure of one uploaded row.
type BatchRowResponse struct {
	Index       int                    `json:"index"`
	Verdict     string                 `json:"verdict,omitempty"`
	Probability float64                `json:"probability,omitempty"`
	Error       *EncodingErrorResponse `json:"error,omitempty"`
}

// BatchResponse reports the outcome of a batch upload.
type BatchResponse struct {
	ModelVersion string             `json:"model_version"`
	Processed    int                `json:"processed"`
	Failed       int                `json:"failed"`
	Rows         []BatchRowResponse `json:"rows"`
}

// NewBatchResponse builds the response from a batch outcome.
func NewBatchResponse(outcome *usecase.BatchOutcome, modelVersion string) BatchResponse {
	resp := BatchResponse{
		ModelVersion: modelVersion,
		Processed:    outcome.Processed,
		Failed:       outcome.Failed,
		Rows:         make([]BatchRowResponse, len(outcome.Rows)),
	}
	for i, row := range outcome.Rows {
		r := BatchRowResponse{Index: row.Index}
		if row.Err != nil {
			r.Error = NewEncodingErrorResponse(row.Err)
		} else {
			r.Verdict = row.Verdict
			r.Probability = row.Probability
		}
		resp.Rows[i] = r
	}
	return resp
}

// HealthResponse reports service readiness.
type HealthResponse struct {
	Status       string `json:"status"`
	ModelVersion string `json:"model_version"`
	Store        string `json:"store"`
}
