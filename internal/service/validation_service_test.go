package service

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeleniasty/budget-aggregator/internal/core/domain"
)

const csvHeader = "Bank,Reference number,IBAN,Date,Currency,Category,Transaction type,Amount\n"

func TestCSVRowValidator_ValidRows(t *testing.T) {
	payload := csvHeader +
		"mbank,REF-001,PL61109010140000071219812874,2024-01-15T10:30:00Z,PLN,groceries,DEBIT,125.50\n" +
		"revolut,REF-002,DE89370400440532013000,2024-01-16T08:00:00Z,EUR,salary,credit,3000.00\n"

	result := NewCSVRowValidator().ValidateAndMap(strings.NewReader(payload))

	assert.Equal(t, 2, result.TotalRows)
	assert.Empty(t, result.Errors)
	require.Len(t, result.Valid, 2)

	first := result.Valid[0]
	assert.Equal(t, "mbank", first.BankID)
	assert.Equal(t, "REF-001", first.ReferenceID)
	assert.Equal(t, "PL61109010140000071219812874", first.IBAN)
	assert.Equal(t, time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC), first.TransactionDate)
	assert.Equal(t, domain.TransactionTypeDebit, first.TransactionType)
	assert.True(t, decimal.RequireFromString("125.50").Equal(first.Amount))

	// transaction type is matched case-insensitively
	assert.Equal(t, domain.TransactionTypeCredit, result.Valid[1].TransactionType)
}

func TestCSVRowValidator_InvalidRowsAreSkippedNotFatal(t *testing.T) {
	payload := csvHeader +
		"mbank,REF-001,PL61109010140000071219812874,2024-01-15T10:30:00Z,PLN,groceries,DEBIT,125.50\n" +
		",REF-002,not-an-iban,garbage,EUR,,,\n" +
		"ing,REF-003,NL91ABNA0417164300,2024-02-01T12:00:00Z,EUR,rent,DEBIT,800.00\n"

	result := NewCSVRowValidator().ValidateAndMap(strings.NewReader(payload))

	assert.Equal(t, 3, result.TotalRows)
	assert.Len(t, result.Valid, 2)
	require.Len(t, result.Errors, 1)
	assert.Equal(t,
		"Line 3: Bank is empty, Invalid IBAN, Invalid date, Category is empty, Invalid amount, Transaction type is empty",
		result.Errors[0])
}

func TestCSVRowValidator_ErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		row  string
		want string
	}{
		{
			name: "blank reference number",
			row:  "mbank, ,PL61109010140000071219812874,2024-01-15T10:30:00Z,PLN,groceries,DEBIT,10",
			want: "Line 2: Reference number is empty",
		},
		{
			name: "lowercase iban rejected",
			row:  "mbank,REF-001,pl61109010140000071219812874,2024-01-15T10:30:00Z,PLN,groceries,DEBIT,10",
			want: "Line 2: Invalid IBAN",
		},
		{
			name: "iban too short",
			row:  "mbank,REF-001,PL61,2024-01-15T10:30:00Z,PLN,groceries,DEBIT,10",
			want: "Line 2: Invalid IBAN",
		},
		{
			name: "blank currency",
			row:  "mbank,REF-001,PL61109010140000071219812874,2024-01-15T10:30:00Z,,groceries,DEBIT,10",
			want: "Line 2: Currency is empty",
		},
		{
			name: "negative amount",
			row:  "mbank,REF-001,PL61109010140000071219812874,2024-01-15T10:30:00Z,PLN,groceries,DEBIT,-10.00",
			want: "Line 2: Amount cannot be negative",
		},
		{
			name: "unknown transaction type",
			row:  "mbank,REF-001,PL61109010140000071219812874,2024-01-15T10:30:00Z,PLN,groceries,TRANSFER,10",
			want: "Line 2: Invalid transaction type: TRANSFER",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NewCSVRowValidator().ValidateAndMap(strings.NewReader(csvHeader + tt.row + "\n"))
			assert.Equal(t, 1, result.TotalRows)
			assert.Empty(t, result.Valid)
			require.Len(t, result.Errors, 1)
			assert.Equal(t, tt.want, result.Errors[0])
		})
	}
}

func TestCSVRowValidator_FallbackDateFormat(t *testing.T) {
	payload := csvHeader +
		"mbank,REF-001,PL61109010140000071219812874,15/01/2024 10:30:00,PLN,groceries,DEBIT,10\n"

	result := NewCSVRowValidator().ValidateAndMap(strings.NewReader(payload))

	require.Len(t, result.Valid, 1)
	assert.Empty(t, result.Errors)
	assert.Equal(t, time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC), result.Valid[0].TransactionDate)
}

func TestCSVRowValidator_CommaDecimalSeparator(t *testing.T) {
	payload := csvHeader +
		`mbank,REF-001,PL61109010140000071219812874,2024-01-15T10:30:00Z,PLN,groceries,DEBIT,"125,50"` + "\n"

	result := NewCSVRowValidator().ValidateAndMap(strings.NewReader(payload))

	require.Len(t, result.Valid, 1)
	assert.Empty(t, result.Errors)
	assert.True(t, decimal.RequireFromString("125.50").Equal(result.Valid[0].Amount))
}

func TestCSVRowValidator_HeaderOnly(t *testing.T) {
	result := NewCSVRowValidator().ValidateAndMap(strings.NewReader(csvHeader))

	assert.Equal(t, 0, result.TotalRows)
	assert.Empty(t, result.Valid)
	assert.Empty(t, result.Errors)
}

func TestCSVRowValidator_NilReader(t *testing.T) {
	result := NewCSVRowValidator().ValidateAndMap(nil)

	assert.Equal(t, 0, result.TotalRows)
	assert.Empty(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "Source stream is nil", result.Errors[0])
}

func TestCSVRowValidator_LineNumbersTrackFile(t *testing.T) {
	payload := csvHeader +
		"mbank,REF-001,PL61109010140000071219812874,2024-01-15T10:30:00Z,PLN,groceries,DEBIT,10\n" +
		"mbank,REF-002,bad,2024-01-15T10:30:00Z,PLN,groceries,DEBIT,10\n" +
		"mbank,,PL61109010140000071219812874,2024-01-15T10:30:00Z,PLN,groceries,DEBIT,10\n"

	result := NewCSVRowValidator().ValidateAndMap(strings.NewReader(payload))

	require.Len(t, result.Errors, 2)
	assert.Equal(t, "Line 3: Invalid IBAN", result.Errors[0])
	assert.Equal(t, "Line 4: Reference number is empty", result.Errors[1])
}
