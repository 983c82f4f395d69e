package service

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"

	"github.com/jeleniasty/budget-aggregator/internal/core/domain"
)

var ibanPattern = regexp.MustCompile(`^[A-Z]{2}\d{2}[A-Z0-9]{1,30}$`)

// fallbackDateLayout accepts bank exports that do not emit RFC 3339.
const fallbackDateLayout = "02/01/2006 15:04:05"

// csvTransactionRow mirrors the expected upload headers. gocsv matches
// columns by header name, so column order in the file does not matter.
type csvTransactionRow struct {
	BankID          string `csv:"Bank"`
	ReferenceID     string `csv:"Reference number"`
	IBAN            string `csv:"IBAN"`
	Date            string `csv:"Date"`
	Currency        string `csv:"Currency"`
	Category        string `csv:"Category"`
	TransactionType string `csv:"Transaction type"`
	Amount          string `csv:"Amount"`
}

// CSVRowValidator implements ports.RowValidator for CSV payloads. Validation
// is permissive: a bad row is recorded as a line-scoped error and skipped,
// it never aborts the run.
type CSVRowValidator struct{}

func NewCSVRowValidator() *CSVRowValidator {
	return &CSVRowValidator{}
}

// ValidateAndMap streams the payload row by row and partitions it into
// validated records and per-line error messages. Line numbers are physical
// file lines, so the first data row is line 2.
func (v *CSVRowValidator) ValidateAndMap(r io.Reader) domain.ValidationResult {
	if r == nil {
		return domain.ValidationResult{Errors: []string{"Source stream is nil"}}
	}

	var (
		valid     []domain.TransactionRecord
		errs      []string
		totalRows int
	)

	err := gocsv.UnmarshalToCallback(r, func(row csvTransactionRow) error {
		totalRows++
		lineNum := totalRows + 1

		var rowErrors []string

		validateNotBlank(row.BankID, "Bank is empty", &rowErrors)
		validateNotBlank(row.ReferenceID, "Reference number is empty", &rowErrors)
		validateIBAN(row.IBAN, &rowErrors)
		transactionDate := validateDate(row.Date, &rowErrors)
		validateNotBlank(row.Currency, "Currency is empty", &rowErrors)
		validateNotBlank(row.Category, "Category is empty", &rowErrors)
		amount := validateAmount(row.Amount, &rowErrors)
		transactionType := validateTransactionType(row.TransactionType, &rowErrors)

		if len(rowErrors) > 0 {
			errs = append(errs, fmt.Sprintf("Line %d: %s", lineNum, strings.Join(rowErrors, ", ")))
			return nil
		}

		valid = append(valid, domain.TransactionRecord{
			BankID:          row.BankID,
			ReferenceID:     row.ReferenceID,
			IBAN:            row.IBAN,
			TransactionDate: transactionDate,
			Currency:        row.Currency,
			Category:        row.Category,
			TransactionType: transactionType,
			Amount:          amount,
		})
		return nil
	})
	if err != nil {
		errs = append(errs, "Unexpected error: "+err.Error())
	}

	return domain.ValidationResult{TotalRows: totalRows, Valid: valid, Errors: errs}
}

func validateNotBlank(value, message string, rowErrors *[]string) {
	if strings.TrimSpace(value) == "" {
		*rowErrors = append(*rowErrors, message)
	}
}

func validateIBAN(iban string, rowErrors *[]string) {
	if strings.TrimSpace(iban) == "" || !ibanPattern.MatchString(iban) {
		*rowErrors = append(*rowErrors, "Invalid IBAN")
	}
}

func validateDate(dateStr string, rowErrors *[]string) time.Time {
	t, err := parseDate(dateStr)
	if err != nil {
		*rowErrors = append(*rowErrors, "Invalid date")
	}
	return t
}

func validateAmount(amountStr string, rowErrors *[]string) decimal.Decimal {
	amount, err := decimal.NewFromString(strings.ReplaceAll(amountStr, ",", "."))
	if err != nil {
		*rowErrors = append(*rowErrors, "Invalid amount")
		return decimal.Decimal{}
	}
	if amount.IsNegative() {
		*rowErrors = append(*rowErrors, "Amount cannot be negative")
	}
	return amount
}

func validateTransactionType(typeStr string, rowErrors *[]string) domain.TransactionType {
	if strings.TrimSpace(typeStr) == "" {
		*rowErrors = append(*rowErrors, "Transaction type is empty")
		return ""
	}
	t, err := domain.ParseTransactionType(typeStr)
	if err != nil {
		*rowErrors = append(*rowErrors, "Invalid transaction type: "+typeStr)
		return ""
	}
	return t
}

func parseDate(dateStr string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, dateStr); err == nil {
		return t.UTC(), nil
	}
	t, err := time.ParseInLocation(fallbackDateLayout, dateStr, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("cannot parse date: %s", dateStr)
	}
	return t, nil
}
