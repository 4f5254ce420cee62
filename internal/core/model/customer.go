package model

// Churn status labels as they appear in the dataset.
const (
	ExistingLabel = "Existing Customer"
	AttritedLabel = "Attrited Customer"
)

// CategoricalProfile is the one-hot categorical bundle of a customer. Each
// field holds a value from its closed vocabulary or "Unknown".
type CategoricalProfile struct {
	EducationLevel string `json:"education_level"`
	MaritalStatus  string `json:"marital_status"`
	IncomeRange    string `json:"income_range"`
	CardType       string `json:"card_type"`
}

// Customer is one immutable record from the churn dataset. CreditLimit and
// Balance are optional; when nil their similarity checks are skipped.
type Customer struct {
	ChurnStatus       string             `json:"churn_status"`
	Age               int                `json:"age"`
	Profile           CategoricalProfile `json:"profile"`
	MonthsOnBook      int                `json:"months_on_book"`
	ProductCount      int                `json:"product_count"`
	MonthsInactive    int                `json:"months_inactive"`
	ContactCount      int                `json:"contact_count"`
	CreditLimit       *int               `json:"credit_limit,omitempty"`
	Balance           *int               `json:"balance,omitempty"`
	TransactionAmount int                `json:"transaction_amount"`
	TransactionCount  int                `json:"transaction_count"`
	UtilizationRatio  float64            `json:"utilization_ratio"`
}

// Churned reports whether the customer has stopped using the product.
// Anything other than the existing-customer label counts as churned.
func (c Customer) Churned() bool {
	return c.ChurnStatus != ExistingLabel
}
