package service

import (
	"fmt"
	"time"

	"github.com/jeleniasty/budget-aggregator/internal/core/domain"
	"github.com/jeleniasty/budget-aggregator/internal/core/ports"
	"github.com/jeleniasty/budget-aggregator/pkg/apperror"
)

// FilterProvider contributes one optional predicate to an aggregation query.
// Build returns ok=false when the filter it handles is absent from the
// request. argIdx is the next free positional placeholder number; a provider
// consumes one placeholder per argument it returns.
type FilterProvider interface {
	Build(filter domain.AggregationFilter, argIdx int) (cond string, args []any, ok bool, err error)
}

// CategoryFilter matches transactions by exact category.
type CategoryFilter struct{}

func (CategoryFilter) Build(filter domain.AggregationFilter, argIdx int) (string, []any, bool, error) {
	if filter.Category == nil {
		return "", nil, false, nil
	}
	return fmt.Sprintf("category = $%d", argIdx), []any{*filter.Category}, true, nil
}

// IBANFilter matches transactions by the blind-index digest of the requested
// IBAN. The plaintext never reaches the store.
type IBANFilter struct {
	encSvc ports.EncryptionService
}

func NewIBANFilter(encSvc ports.EncryptionService) *IBANFilter {
	return &IBANFilter{encSvc: encSvc}
}

func (f *IBANFilter) Build(filter domain.AggregationFilter, argIdx int) (string, []any, bool, error) {
	if filter.IBAN == nil {
		return "", nil, false, nil
	}
	hash, err := f.encSvc.BlindIndex(*filter.IBAN)
	if err != nil {
		return "", nil, false, apperror.ErrEncryptionFailure(fmt.Errorf("blind index filter: %w", err))
	}
	return fmt.Sprintf("iban_hash = $%d", argIdx), []any{hash}, true, nil
}

// MonthFilter matches transactions whose timestamp falls inside one calendar
// month, expressed as YYYY-MM. The range is [first day, first day of next
// month) in UTC.
type MonthFilter struct{}

func (MonthFilter) Build(filter domain.AggregationFilter, argIdx int) (string, []any, bool, error) {
	if filter.Month == nil {
		return "", nil, false, nil
	}
	start, err := time.Parse("2006-01", *filter.Month)
	if err != nil {
		return "", nil, false, apperror.ErrInvalidMonth(*filter.Month)
	}
	end := start.AddDate(0, 1, 0)
	cond := fmt.Sprintf("transaction_date >= $%d AND transaction_date < $%d", argIdx, argIdx+1)
	return cond, []any{start, end}, true, nil
}
