package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the direction of a money movement.
type TransactionType string

const (
	TransactionTypeCredit TransactionType = "CREDIT"
	TransactionTypeDebit  TransactionType = "DEBIT"
)

// ParseTransactionType parses a transaction type case-insensitively.
func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(strings.ToUpper(s)) {
	case TransactionTypeCredit:
		return TransactionTypeCredit, nil
	case TransactionTypeDebit:
		return TransactionTypeDebit, nil
	default:
		return "", fmt.Errorf("invalid transaction type: %s", s)
	}
}

// TransactionRecord is a validated import row. The IBAN is still plaintext
// here; it never leaves the process in this form. Immutable once produced by
// the validator.
type TransactionRecord struct {
	BankID          string
	ReferenceID     string
	IBAN            string
	TransactionDate time.Time
	Currency        string
	Category        string
	TransactionType TransactionType
	Amount          decimal.Decimal
}

// Transaction is the persisted form of a record. The plaintext IBAN is
// replaced by an authenticated ciphertext token and a deterministic blind
// index digest. (BankID, ReferenceID) is unique across all imports.
type Transaction struct {
	ID              uuid.UUID       `json:"id"`
	BankID          string          `json:"bank_id"`
	ReferenceID     string          `json:"reference_id"`
	IBANCipher      string          `json:"-"`
	IBANHash        string          `json:"-"`
	TransactionDate time.Time       `json:"transaction_date"`
	Currency        string          `json:"currency"`
	Category        string          `json:"category"`
	TransactionType TransactionType `json:"transaction_type"`
	Amount          decimal.Decimal `json:"amount"`
	ImportID        uuid.UUID       `json:"import_id"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ValidationResult is the outcome of validating one tabular stream.
// TotalRows counts every row the parser reached, valid or not.
type ValidationResult struct {
	TotalRows int
	Valid     []TransactionRecord
	Errors    []string
}
