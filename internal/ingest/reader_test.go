package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/churnlens/churnlens/internal/core/model"
)

const header = "CLIENTNUM,Attrition_Flag,Customer_Age,Gender,Dependent_count,Education_Level,Marital_Status,Income_Category,Card_Category,Months_on_book,Total_Relationship_Count,Months_Inactive_12_mon,Contacts_Count_12_mon,Credit_Limit,Total_Revolving_Bal,Avg_Open_To_Buy,Total_Amt_Chng_Q4_Q1,Total_Trans_Amt,Total_Trans_Ct,Total_Ct_Chng_Q4_Q1,Avg_Utilization_Ratio"

func row(fields ...string) string {
	return strings.Join(fields, ",")
}

func validRow() string {
	return row(
		"768805383", "Existing Customer", "45", "M", "3",
		"High School", "Married", "$60K - $80K", "Blue",
		"39", "5", "1", "3", "12691", "777", "11914", "1.335",
		"1144", "42", "1.625", "0.061",
	)
}

func TestRead_ValidRecord(t *testing.T) {
	r := NewReader()

	customers, err := r.Read(strings.NewReader(header + "\n" + validRow() + "\n"))
	require.NoError(t, err)
	require.Len(t, customers, 1)

	c := customers[0]
	assert.Equal(t, model.ExistingLabel, c.ChurnStatus)
	assert.Equal(t, 45, c.Age)
	assert.Equal(t, "High School", c.Profile.EducationLevel)
	assert.Equal(t, "Married", c.Profile.MaritalStatus)
	assert.Equal(t, "$60K - $80K", c.Profile.IncomeRange)
	assert.Equal(t, "Blue", c.Profile.CardType)
	assert.Equal(t, 39, c.MonthsOnBook)
	assert.Equal(t, 5, c.ProductCount)
	assert.Equal(t, 1, c.MonthsInactive)
	assert.Equal(t, 3, c.ContactCount)
	assert.Equal(t, 1144, c.TransactionAmount)
	assert.Equal(t, 42, c.TransactionCount)
	assert.InDelta(t, 0.061, c.UtilizationRatio, 1e-9)

	// Credit fields stay absent unless explicitly enabled.
	assert.Nil(t, c.CreditLimit)
	assert.Nil(t, c.Balance)
}

func TestRead_ParseFallbacks(t *testing.T) {
	r := NewReader()

	bad := row(
		"1", "Attrited Customer", "not-a-number", "F", "0",
		"Wizard", "Married", "$1M +", "Blue",
		"x", "y", "z", "w", "", "", "", "",
		"bad", "bad", "", "bad",
	)
	customers, err := r.Read(strings.NewReader(header + "\n" + bad + "\n"))
	require.NoError(t, err)
	require.Len(t, customers, 1)

	c := customers[0]
	assert.Equal(t, 2, c.Age)
	assert.Equal(t, Unknown, c.Profile.EducationLevel)
	assert.Equal(t, "Married", c.Profile.MaritalStatus)
	assert.Equal(t, Unknown, c.Profile.IncomeRange)
	assert.Equal(t, 0, c.MonthsOnBook)
	assert.Equal(t, 0, c.TransactionAmount)
	assert.Equal(t, 0.0, c.UtilizationRatio)
}

func TestRead_ShortRowDefaults(t *testing.T) {
	r := NewReader()

	short := row("1", "Existing Customer", "33", "M", "1", "Graduate")
	customers, err := r.Read(strings.NewReader(header + "\n" + short + "\n"))
	require.NoError(t, err)
	require.Len(t, customers, 1)

	c := customers[0]
	assert.Equal(t, 33, c.Age)
	assert.Equal(t, "Graduate", c.Profile.EducationLevel)
	assert.Equal(t, Unknown, c.Profile.MaritalStatus)
	assert.Equal(t, Unknown, c.Profile.IncomeRange)
	assert.Equal(t, Unknown, c.Profile.CardType)
	assert.Equal(t, 0, c.ContactCount)
}

func TestRead_RecordLimit(t *testing.T) {
	r := NewReader()
	r.RecordLimit = 2

	var b strings.Builder
	b.WriteString(header + "\n")
	for i := 0; i < 5; i++ {
		b.WriteString(validRow() + "\n")
	}

	customers, err := r.Read(strings.NewReader(b.String()))
	require.NoError(t, err)
	assert.Len(t, customers, 2)
}

func TestRead_MalformedRowIsFatal(t *testing.T) {
	r := NewReader()

	broken := header + "\n" + `1,"unclosed quote,2,3` + "\n"
	_, err := r.Read(strings.NewReader(broken))
	assert.Error(t, err)
}

func TestRead_EmptyInput(t *testing.T) {
	r := NewReader()

	customers, err := r.Read(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, customers)
}

func TestRead_CreditFieldsOptIn(t *testing.T) {
	r := NewReader()
	r.IncludeCreditFields = true

	customers, err := r.Read(strings.NewReader(header + "\n" + validRow() + "\n"))
	require.NoError(t, err)
	require.Len(t, customers, 1)

	c := customers[0]
	require.NotNil(t, c.CreditLimit)
	require.NotNil(t, c.Balance)
	assert.Equal(t, 12691, *c.CreditLimit)
	assert.Equal(t, 777, *c.Balance)
}
