package dto

import "github.com/shopspring/decimal"

// ImportResponse is the synchronous response of the upload boundary.
type ImportResponse struct {
	ID       string `json:"id"`
	FileName string `json:"file_name"`
	Status   string `json:"status"`
}

// ImportDetailsResponse is the full state of one import job.
type ImportDetailsResponse struct {
	ID             string   `json:"id"`
	FileName       string   `json:"file_name"`
	Status         string   `json:"status"`
	TotalRows      int      `json:"total_rows"`
	SuccessfulRows int      `json:"successful_rows"`
	Errors         []string `json:"errors"`
	CreatedAt      string   `json:"created_at"`
	UpdatedAt      string   `json:"updated_at"`
}

// AggregationQuery binds the optional stats filters from the query string.
type AggregationQuery struct {
	Category *string `form:"category"`
	IBAN     *string `form:"iban"`
	Month    *string `form:"month"`
}

// AggregationResultResponse is one per-currency aggregate. Category, IBAN
// and Month appear only when the request filtered by them.
type AggregationResultResponse struct {
	Category         *string         `json:"category,omitempty"`
	IBAN             *string         `json:"iban,omitempty"`
	Month            *string         `json:"month,omitempty"`
	Currency         string          `json:"currency"`
	Inflow           decimal.Decimal `json:"inflow"`
	Outflow          decimal.Decimal `json:"outflow"`
	Balance          decimal.Decimal `json:"balance"`
	TransactionCount int64           `json:"transaction_count"`
}
