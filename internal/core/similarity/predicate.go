package similarity

import (
	"strconv"

	"github.com/churnlens/churnlens/internal/core/model"
)

// DefaultNeighborThreshold is the minimum number of shared attributes for
// two customers to count as neighbors in the similarity graph.
const DefaultNeighborThreshold = 2

// Trait category labels. The first five are fixed by the report format the
// downstream consumers parse; the rest name the remaining attributes.
const (
	CategoryAge               = "Age"
	CategoryEducation         = "Education Level"
	CategoryMarital           = "Marital Status"
	CategoryIncome            = "Income Range"
	CategoryCard              = "Card Type"
	CategoryMonthsOnBook      = "Months on Book"
	CategoryProducts          = "Products Purchased"
	CategoryInactive          = "Months Inactive"
	CategoryContacts          = "Contact Count"
	CategoryCreditLimit       = "Credit Limit"
	CategoryBalance           = "Card Balance"
	CategoryTransactionAmount = "Transaction Amount"
	CategoryTransactionCount  = "Transaction Count"
	CategoryUtilization       = "Utilization Ratio"
)

// Bucket label tables for the range-style attributes. Two values are "in the
// same bucket" only when both stringified raw values equal the same label
// verbatim; the labels never classify numbers into ranges. This literal
// matching is retained intentionally (see DESIGN.md).
var (
	monthsOnBookBuckets      = []string{"20-30", "30-40", "40-50", ">50"}
	creditLimitBuckets       = []string{"5000<", "5000-10000", "10000-15000", "15000-20000", "20000-25000", "25000-30000", ">30000"}
	balanceBuckets           = []string{"500<", "500-1000", "1000-1500", "1500-2000", ">2000"}
	transactionAmountBuckets = []string{"500<", "500-1000", "1000-1500", "1500-2000", ">2000"}
	transactionCountBuckets  = []string{"<10", "10-20", "20-30", "30-40", ">40"}
	utilizationBuckets       = []string{"<0.100", "0.100-0.200", "0.200-0.300", "0.300-0.400", ">0.400"}
)

// Predicate decides whether two customers are similarity-graph neighbors and
// lists the traits they share. It is symmetric by construction.
type Predicate struct {
	NeighborThreshold int
}

func NewPredicate() *Predicate {
	return &Predicate{NeighborThreshold: DefaultNeighborThreshold}
}

// IsNeighbor reports whether a and b share at least NeighborThreshold of the
// twelve checked attributes. Credit limit and balance do not participate.
func (p *Predicate) IsNeighbor(a, b model.Customer) bool {
	count := 0
	if a.Age == b.Age {
		count++
	}
	if a.Profile.EducationLevel == b.Profile.EducationLevel {
		count++
	}
	if a.Profile.MaritalStatus == b.Profile.MaritalStatus {
		count++
	}
	if a.Profile.IncomeRange == b.Profile.IncomeRange {
		count++
	}
	if a.Profile.CardType == b.Profile.CardType {
		count++
	}
	if inSameBucket(strconv.Itoa(a.MonthsOnBook), strconv.Itoa(b.MonthsOnBook), monthsOnBookBuckets) {
		count++
	}
	if a.ProductCount == b.ProductCount {
		count++
	}
	if a.MonthsInactive == b.MonthsInactive {
		count++
	}
	if a.ContactCount == b.ContactCount {
		count++
	}
	if inSameBucket(strconv.Itoa(a.TransactionAmount), strconv.Itoa(b.TransactionAmount), transactionAmountBuckets) {
		count++
	}
	if inSameBucket(strconv.Itoa(a.TransactionCount), strconv.Itoa(b.TransactionCount), transactionCountBuckets) {
		count++
	}
	if inSameBucket(formatRatio(a.UtilizationRatio), formatRatio(b.UtilizationRatio), utilizationBuckets) {
		count++
	}
	return count >= p.NeighborThreshold
}

// SharedTraits returns one formatted trait per shared attribute, in a fixed
// order. The optional credit limit and balance checks run only when both
// customers carry the field.
func (p *Predicate) SharedTraits(a, b model.Customer) []model.Trait {
	var shared []model.Trait
	if a.Age == b.Age {
		shared = append(shared, model.Trait{Category: CategoryAge, Value: strconv.Itoa(a.Age)})
	}
	if a.Profile.EducationLevel == b.Profile.EducationLevel {
		shared = append(shared, model.Trait{Category: CategoryEducation, Value: a.Profile.EducationLevel})
	}
	if a.Profile.MaritalStatus == b.Profile.MaritalStatus {
		shared = append(shared, model.Trait{Category: CategoryMarital, Value: a.Profile.MaritalStatus})
	}
	if a.Profile.IncomeRange == b.Profile.IncomeRange {
		shared = append(shared, model.Trait{Category: CategoryIncome, Value: a.Profile.IncomeRange})
	}
	if a.Profile.CardType == b.Profile.CardType {
		shared = append(shared, model.Trait{Category: CategoryCard, Value: a.Profile.CardType})
	}
	if inSameBucket(strconv.Itoa(a.MonthsOnBook), strconv.Itoa(b.MonthsOnBook), monthsOnBookBuckets) {
		shared = append(shared, model.Trait{Category: CategoryMonthsOnBook, Value: strconv.Itoa(a.MonthsOnBook)})
	}
	if a.ProductCount == b.ProductCount {
		shared = append(shared, model.Trait{Category: CategoryProducts, Value: strconv.Itoa(a.ProductCount)})
	}
	if a.MonthsInactive == b.MonthsInactive {
		shared = append(shared, model.Trait{Category: CategoryInactive, Value: strconv.Itoa(a.MonthsInactive)})
	}
	if a.ContactCount == b.ContactCount {
		shared = append(shared, model.Trait{Category: CategoryContacts, Value: strconv.Itoa(a.ContactCount)})
	}
	if a.CreditLimit != nil && b.CreditLimit != nil &&
		inSameBucket(strconv.Itoa(*a.CreditLimit), strconv.Itoa(*b.CreditLimit), creditLimitBuckets) {
		shared = append(shared, model.Trait{Category: CategoryCreditLimit, Value: strconv.Itoa(*a.CreditLimit)})
	}
	if a.Balance != nil && b.Balance != nil &&
		inSameBucket(strconv.Itoa(*a.Balance), strconv.Itoa(*b.Balance), balanceBuckets) {
		shared = append(shared, model.Trait{Category: CategoryBalance, Value: strconv.Itoa(*a.Balance)})
	}
	if inSameBucket(strconv.Itoa(a.TransactionAmount), strconv.Itoa(b.TransactionAmount), transactionAmountBuckets) {
		shared = append(shared, model.Trait{Category: CategoryTransactionAmount, Value: strconv.Itoa(a.TransactionAmount)})
	}
	if inSameBucket(strconv.Itoa(a.TransactionCount), strconv.Itoa(b.TransactionCount), transactionCountBuckets) {
		shared = append(shared, model.Trait{Category: CategoryTransactionCount, Value: strconv.Itoa(a.TransactionCount)})
	}
	if inSameBucket(formatRatio(a.UtilizationRatio), formatRatio(b.UtilizationRatio), utilizationBuckets) {
		shared = append(shared, model.Trait{Category: CategoryUtilization, Value: formatRatio(a.UtilizationRatio)})
	}
	return shared
}

func inSameBucket(a, b string, labels []string) bool {
	for _, label := range labels {
		if a == label && b == label {
			return true
		}
	}
	return false
}

func formatRatio(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
