package model

// CustomerRecord carries the raw attributes of a single telecom customer
// as supplied by the user, before any encoding.
type CustomerRecord struct {
	SeniorCitizen    string
	Dependents       string
	Tenure           float64
	PhoneService     string
	MultipleLines    string
	InternetService  string
	OnlineSecurity   string
	OnlineBackup     string
	TechSupport      string
	StreamingTV      string
	StreamingMovies  string
	Contract         string
	PaperlessBilling string
	PaymentMethod    string
	MonthlyCharges   float64
	TotalCharges     float64
}

// FeatureVector is the fixed-order numeric encoding consumed by the classifier.
// Its length and ordering are a compatibility contract with the model artifact.
type FeatureVector []float64

// Label is the classifier's verdict for a single customer.
type Label string

const (
	LabelWillChurn Label = "will_churn"
	LabelWillStay  Label = "will_stay"
)

// PredictionResult pairs the classifier's decision with the churn probability.
// Probability is always the probability of the churn class, regardless of label.
type PredictionResult struct {
	Label       Label
	Probability float64
}
