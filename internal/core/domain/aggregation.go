package domain

import "github.com/shopspring/decimal"

// AggregationFilter holds the optional stats filters. A nil field means
// "no filter". The IBAN is plaintext at this point; it is converted to its
// blind-index digest before it reaches the store and is never persisted or
// logged in this form.
type AggregationFilter struct {
	Category *string
	IBAN     *string
	Month    *string // YYYY-MM
}

// IsEmpty reports whether no filter was supplied (match-all).
func (f AggregationFilter) IsEmpty() bool {
	return f.Category == nil && f.IBAN == nil && f.Month == nil
}

// AggregationRow is one grouped row as it comes back from the store: sums
// per currency plus first-in-group carries. The IBAN is still the ciphertext
// token here.
type AggregationRow struct {
	Currency         string
	Inflow           decimal.Decimal
	Outflow          decimal.Decimal
	TransactionCount int64
	Category         string
	IBANCipher       string
	Month            string // YYYY-MM of the first grouped document
}

// AggregationSummary is one result row served to the caller. Category, IBAN
// and Month are echoed back only when the request filtered by them; the IBAN
// is decrypted to plaintext in that case and never otherwise.
type AggregationSummary struct {
	Category         *string         `json:"category,omitempty"`
	IBAN             *string         `json:"iban,omitempty"`
	Month            *string         `json:"month,omitempty"`
	Currency         string          `json:"currency"`
	Inflow           decimal.Decimal `json:"inflow"`
	Outflow          decimal.Decimal `json:"outflow"`
	Balance          decimal.Decimal `json:"balance"`
	TransactionCount int64           `json:"transaction_count"`
}
