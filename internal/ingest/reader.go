package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/churnlens/churnlens/internal/core/model"
)

// DefaultRecordLimit caps how many data rows are read from the dataset.
const DefaultRecordLimit = 1000

// Unknown is the fallback for categorical values outside their vocabulary.
const Unknown = "Unknown"

// Column layout of the BankChurners dataset (0-based, header row first).
const (
	colChurnStatus       = 1
	colAge               = 2
	colEducation         = 5
	colMarital           = 6
	colIncome            = 7
	colCard              = 8
	colMonthsOnBook      = 9
	colProductCount      = 10
	colMonthsInactive    = 11
	colContactCount      = 12
	colCreditLimit       = 13
	colBalance           = 14
	colTransactionAmount = 17
	colTransactionCount  = 18
	colUtilization       = 20
)

// Closed vocabularies per categorical family.
var (
	educationLevels = []string{"High School", "Graduate", "Uneducated", "College", "Post-Graduate", "Doctorate"}
	maritalStatuses = []string{"Married", "Single", "Divorced"}
	incomeRanges    = []string{"Less than $40K", "$40K - $60K", "$60K - $80K", "$80K - $120K", "$120K +"}
	cardTypes       = []string{"Blue", "Silver", "Gold", "Platinum"}
)

// Reader turns dataset CSV rows into customer records. Individual field
// parse failures fall back to defaults; a malformed row aborts the read.
type Reader struct {
	RecordLimit         int
	IncludeCreditFields bool
}

func NewReader() *Reader {
	return &Reader{RecordLimit: DefaultRecordLimit}
}

// ReadFile reads customers from the CSV file at path.
func (r *Reader) ReadFile(path string) ([]model.Customer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset '%s': %w", path, err)
	}
	defer f.Close()

	customers, err := r.Read(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset '%s': %w", path, err)
	}
	return customers, nil
}

// Read parses at most RecordLimit rows after the header. Rows may be shorter
// than the full layout; missing fields take their defaults.
func (r *Reader) Read(src io.Reader) ([]model.Customer, error) {
	cr := csv.NewReader(src)
	cr.FieldsPerRecord = -1

	if _, err := cr.Read(); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	limit := r.RecordLimit
	if limit <= 0 {
		limit = DefaultRecordLimit
	}

	var customers []model.Customer
	for len(customers) < limit {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("malformed record: %w", err)
		}
		customers = append(customers, r.parse(rec))
	}
	return customers, nil
}

func (r *Reader) parse(rec []string) model.Customer {
	c := model.Customer{
		ChurnStatus: fieldOr(rec, colChurnStatus, Unknown),
		Age:         intOr(rec, colAge, 2),
		Profile: model.CategoricalProfile{
			EducationLevel: normalize(field(rec, colEducation), educationLevels),
			MaritalStatus:  normalize(field(rec, colMarital), maritalStatuses),
			IncomeRange:    normalize(field(rec, colIncome), incomeRanges),
			CardType:       normalize(field(rec, colCard), cardTypes),
		},
		MonthsOnBook:      intOr(rec, colMonthsOnBook, 0),
		ProductCount:      intOr(rec, colProductCount, 0),
		MonthsInactive:    intOr(rec, colMonthsInactive, 0),
		ContactCount:      intOr(rec, colContactCount, 0),
		TransactionAmount: intOr(rec, colTransactionAmount, 0),
		TransactionCount:  intOr(rec, colTransactionCount, 0),
		UtilizationRatio:  floatOr(rec, colUtilization, 0),
	}
	if r.IncludeCreditFields {
		limit := intOr(rec, colCreditLimit, 0)
		balance := intOr(rec, colBalance, 0)
		c.CreditLimit = &limit
		c.Balance = &balance
	}
	return c
}

func field(rec []string, i int) string {
	if i < len(rec) {
		return rec[i]
	}
	return ""
}

func fieldOr(rec []string, i int, def string) string {
	if i < len(rec) {
		return rec[i]
	}
	return def
}

func intOr(rec []string, i int, def int) int {
	v, err := strconv.Atoi(field(rec, i))
	if err != nil {
		return def
	}
	return v
}

func floatOr(rec []string, i int, def float64) float64 {
	v, err := strconv.ParseFloat(field(rec, i), 64)
	if err != nil {
		return def
	}
	return v
}

// normalize maps a raw categorical value onto its family vocabulary, falling
// back to Unknown for anything outside it, including missing fields.
func normalize(value string, vocab []string) string {
	for _, v := range vocab {
		if value == v {
			return value
		}
	}
	return Unknown
}
