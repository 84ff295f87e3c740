// Package preprocess maps raw customer records to the fixed-order numeric
// feature vectors the classifier was trained on. Category codes follow the
// lexicographic order of the category strings; changing a table or the
// feature order breaks compatibility with the trained artifact and requires
// a new TableVersion.
package preprocess

import (
	"fmt"
	"strconv"

	"github.com/avdeyev/churnscope/internal/domain/model"
)

// TableVersion identifies the lookup table revision the encoder carries.
const TableVersion = "telco-encoder-v1"

// Mode distinguishes single-record and uploaded-table encoding.
type Mode string

const (
	ModeOnline Mode = "online"
	ModeBatch  Mode = "batch"
)

// Reason classifies encoding failures.
type Reason string

const (
	ReasonUnknownCategory Reason = "unknown_category"
	ReasonOutOfRange      Reason = "out_of_range"
	ReasonMissingField    Reason = "missing_field"
)

// EncodingError describes why a field could not be encoded.
type EncodingError struct {
	Field  string
	Value  string
	Reason Reason
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("encode %s=%q: %s", e.Field, e.Value, e.Reason)
}

// Field names as they appear in online forms and batch upload columns.
const (
	FieldSeniorCitizen    = "SeniorCitizen"
	FieldDependents       = "Dependents"
	FieldTenure           = "tenure"
	FieldPhoneService     = "PhoneService"
	FieldMultipleLines    = "MultipleLines"
	FieldInternetService  = "InternetService"
	FieldOnlineSecurity   = "OnlineSecurity"
	FieldOnlineBackup     = "OnlineBackup"
	FieldTechSupport      = "TechSupport"
	FieldStreamingTV      = "StreamingTV"
	FieldStreamingMovies  = "StreamingMovies"
	FieldContract         = "Contract"
	FieldPaperlessBilling = "PaperlessBilling"
	FieldPaymentMethod    = "PaymentMethod"
	FieldMonthlyCharges   = "MonthlyCharges"
	FieldTotalCharges     = "TotalCharges"
)

var featureOrder = []string{
	FieldSeniorCitizen,
	FieldDependents,
	FieldTenure,
	FieldPhoneService,
	FieldMultipleLines,
	FieldInternetService,
	FieldOnlineSecurity,
	FieldOnlineBackup,
	FieldTechSupport,
	FieldStreamingTV,
	FieldStreamingMovies,
	FieldContract,
	FieldPaperlessBilling,
	FieldPaymentMethod,
	FieldMonthlyCharges,
	FieldTotalCharges,
}

var (
	yesNo = map[string]float64{
		"No":  0,
		"Yes": 1,
	}
	multipleLines = map[string]float64{
		"No":               0,
		"No phone service": 1,
		"Yes":              2,
	}
	internetService = map[string]float64{
		"DSL":         0,
		"Fiber optic": 1,
		"No":          2,
	}
	internetAddon = map[string]float64{
		"No":                  0,
		"No internet service": 1,
		"Yes":                 2,
	}
	contract = map[string]float64{
		"Month-to-month": 0,
		"One year":       1,
		"Two year":       2,
	}
	paymentMethod = map[string]float64{
		"Bank transfer (automatic)": 0,
		"Credit card (automatic)":   1,
		"Electronic check":          2,
		"Mailed check":              3,
	}
)

type numericRange struct {
	min, max float64
}

var numericRanges = map[string]numericRange{
	FieldTenure:         {0, 72},
	FieldMonthlyCharges: {0, 150},
	FieldTotalCharges:   {0, 10000},
}

// FeatureOrder returns a copy of the fixed feature layout.
func FeatureOrder() []string {
	order := make([]string, len(featureOrder))
	copy(order, featureOrder)
	return order
}

// FeatureCount is the length of every encoded vector.
func FeatureCount() int {
	return len(featureOrder)
}

// EncodeRecord turns a raw customer record into the feature vector expected
// by the classifier. Numeric fields are range-checked regardless of mode:
// online forms constrain input at entry, but uploaded data is untrusted and
// must be validated again.
func EncodeRecord(rec model.CustomerRecord, mode Mode) (model.FeatureVector, error) {
	vector := make(model.FeatureVector, 0, len(featureOrder))

	categorical := []struct {
		field string
		value string
		table map[string]float64
	}{
		{FieldSeniorCitizen, rec.SeniorCitizen, yesNo},
		{FieldDependents, rec.Dependents, yesNo},
		{FieldPhoneService, rec.PhoneService, yesNo},
		{FieldMultipleLines, rec.MultipleLines, multipleLines},
		{FieldInternetService, rec.InternetService, internetService},
		{FieldOnlineSecurity, rec.OnlineSecurity, internetAddon},
		{FieldOnlineBackup, rec.OnlineBackup, internetAddon},
		{FieldTechSupport, rec.TechSupport, internetAddon},
		{FieldStreamingTV, rec.StreamingTV, internetAddon},
		{FieldStreamingMovies, rec.StreamingMovies, internetAddon},
		{FieldContract, rec.Contract, contract},
		{FieldPaperlessBilling, rec.PaperlessBilling, yesNo},
		{FieldPaymentMethod, rec.PaymentMethod, paymentMethod},
	}

	codes := make(map[string]float64, len(featureOrder))
	for _, c := range categorical {
		code, ok := c.table[c.value]
		if !ok {
			reason := ReasonUnknownCategory
			if c.value == "" {
				reason = ReasonMissingField
			}
			return nil, &EncodingError{Field: c.field, Value: c.value, Reason: reason}
		}
		codes[c.field] = code
	}

	numeric := map[string]float64{
		FieldTenure:         rec.Tenure,
		FieldMonthlyCharges: rec.MonthlyCharges,
		FieldTotalCharges:   rec.TotalCharges,
	}
	for field, value := range numeric {
		bounds := numericRanges[field]
		if value < bounds.min || value > bounds.max {
			return nil, &EncodingError{
				Field:  field,
				Value:  strconv.FormatFloat(value, 'f', -1, 64),
				Reason: ReasonOutOfRange,
			}
		}
		codes[field] = value
	}

	for _, field := range featureOrder {
		vector = append(vector, codes[field])
	}
	return vector, nil
}

// RecordFromRow builds a customer record from one row of an uploaded table.
// Every field must be present and non-empty; numeric fields must parse.
func RecordFromRow(row map[string]string) (model.CustomerRecord, error) {
	var rec model.CustomerRecord

	get := func(field string) (string, *EncodingError) {
		v, ok := row[field]
		if !ok || v == "" {
			return "", &EncodingError{Field: field, Reason: ReasonMissingField}
		}
		return v, nil
	}

	getNumber := func(field string) (float64, *EncodingError) {
		v, encErr := get(field)
		if encErr != nil {
			return 0, encErr
		}
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, &EncodingError{Field: field, Value: v, Reason: ReasonOutOfRange}
		}
		return n, nil
	}

	var encErr *EncodingError
	if rec.SeniorCitizen, encErr = get(FieldSeniorCitizen); encErr != nil {
		return rec, encErr
	}
	if rec.Dependents, encErr = get(FieldDependents); encErr != nil {
		return rec, encErr
	}
	if rec.Tenure, encErr = getNumber(FieldTenure); encErr != nil {
		return rec, encErr
	}
	if rec.PhoneService, encErr = get(FieldPhoneService); encErr != nil {
		return rec, encErr
	}
	if rec.MultipleLines, encErr = get(FieldMultipleLines); encErr != nil {
		return rec, encErr
	}
	if rec.InternetService, encErr = get(FieldInternetService); encErr != nil {
		return rec, encErr
	}
	if rec.OnlineSecurity, encErr = get(FieldOnlineSecurity); encErr != nil {
		return rec, encErr
	}
	if rec.OnlineBackup, encErr = get(FieldOnlineBackup); encErr != nil {
		return rec, encErr
	}
	if rec.TechSupport, encErr = get(FieldTechSupport); encErr != nil {
		return rec, encErr
	}
	if rec.StreamingTV, encErr = get(FieldStreamingTV); encErr != nil {
		return rec, encErr
	}
	if rec.StreamingMovies, encErr = get(FieldStreamingMovies); encErr != nil {
		return rec, encErr
	}
	if rec.Contract, encErr = get(FieldContract); encErr != nil {
		return rec, encErr
	}
	if rec.PaperlessBilling, encErr = get(FieldPaperlessBilling); encErr != nil {
		return rec, encErr
	}
	if rec.PaymentMethod, encErr = get(FieldPaymentMethod); encErr != nil {
		return rec, encErr
	}
	if rec.MonthlyCharges, encErr = getNumber(FieldMonthlyCharges); encErr != nil {
		return rec, encErr
	}
	if rec.TotalCharges, encErr = getNumber(FieldTotalCharges); encErr != nil {
		return rec, encErr
	}
	return rec, nil
}

// RowResult is the outcome of encoding one uploaded row. Exactly one of
// Vector and Err is set.
type RowResult struct {
	Vector model.FeatureVector
	Err    *EncodingError
}

// EncodeRows encodes uploaded rows independently, preserving order.
// A failing row yields a per-row error and never aborts the rest.
func EncodeRows(rows []map[string]string) []RowResult {
	results := make([]RowResult, len(rows))
	for i, row := range rows {
		rec, err := RecordFromRow(row)
		if err != nil {
			results[i].Err = err.(*EncodingError)
			continue
		}
		vector, err := EncodeRecord(rec, ModeBatch)
		if err != nil {
			results[i].Err = err.(*EncodingError)
			continue
		}
		results[i].Vector = vector
	}
	return results
}
