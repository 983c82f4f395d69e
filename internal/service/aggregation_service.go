package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jeleniasty/budget-aggregator/internal/core/domain"
	"github.com/jeleniasty/budget-aggregator/internal/core/ports"
	"github.com/jeleniasty/budget-aggregator/pkg/apperror"
)

// AggregationServiceImpl implements ports.AggregationService. The predicate
// is assembled from a fixed chain of filter providers; adding a new filter
// dimension means adding a provider, not touching the query assembly.
type AggregationServiceImpl struct {
	txRepo  ports.TransactionRepository
	encSvc  ports.EncryptionService
	filters []FilterProvider
	log     zerolog.Logger
}

// NewAggregationService creates a new AggregationServiceImpl with the
// standard filter chain.
func NewAggregationService(
	txRepo ports.TransactionRepository,
	encSvc ports.EncryptionService,
	log zerolog.Logger,
) *AggregationServiceImpl {
	return &AggregationServiceImpl{
		txRepo: txRepo,
		encSvc: encSvc,
		filters: []FilterProvider{
			CategoryFilter{},
			NewIBANFilter(encSvc),
			MonthFilter{},
		},
		log: log,
	}
}

// Aggregate groups the matching transactions by currency and returns one
// summary per currency, ordered by currency descending. The IBAN in a
// summary is decrypted only when the request filtered by IBAN; no filter
// means no decryption work at all.
func (s *AggregationServiceImpl) Aggregate(ctx context.Context, filter domain.AggregationFilter) ([]domain.AggregationSummary, error) {
	predicate, args, err := s.buildPredicate(filter)
	if err != nil {
		return nil, err
	}

	rows, err := s.txRepo.Aggregate(ctx, predicate, args)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("aggregate transactions: %w", err))
	}

	summaries := make([]domain.AggregationSummary, 0, len(rows))
	for _, row := range rows {
		summary := domain.AggregationSummary{
			Currency:         row.Currency,
			Inflow:           row.Inflow,
			Outflow:          row.Outflow,
			Balance:          row.Inflow.Sub(row.Outflow),
			TransactionCount: row.TransactionCount,
		}
		if filter.Category != nil {
			category := row.Category
			summary.Category = &category
		}
		if filter.IBAN != nil {
			iban, err := s.encSvc.Decrypt(row.IBANCipher)
			if err != nil {
				return nil, apperror.ErrEncryptionFailure(fmt.Errorf("decrypt result iban: %w", err))
			}
			summary.IBAN = &iban
		}
		if filter.Month != nil {
			month := row.Month
			summary.Month = &month
		}
		summaries = append(summaries, summary)
	}

	s.log.Debug().
		Int("groups", len(summaries)).
		Bool("filtered", !filter.IsEmpty()).
		Msg("aggregation served")

	return summaries, nil
}

func (s *AggregationServiceImpl) buildPredicate(filter domain.AggregationFilter) (string, []any, error) {
	var (
		conds []string
		args  []any
	)
	for _, provider := range s.filters {
		cond, provArgs, ok, err := provider.Build(filter, len(args)+1)
		if err != nil {
			return "", nil, err
		}
		if !ok {
			continue
		}
		conds = append(conds, cond)
		args = append(args, provArgs...)
	}
	if len(conds) == 0 {
		return "TRUE", nil, nil
	}
	return strings.Join(conds, " AND "), args, nil
}
