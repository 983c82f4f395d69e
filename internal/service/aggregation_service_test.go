package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jeleniasty/budget-aggregator/internal/core/domain"
	"github.com/jeleniasty/budget-aggregator/internal/core/ports/mocks"
	"github.com/jeleniasty/budget-aggregator/pkg/apperror"
)

type aggregationTestDeps struct {
	svc    *AggregationServiceImpl
	txRepo *mocks.MockTransactionRepository
	encSvc *mocks.MockEncryptionService
	ctrl   *gomock.Controller
}

func setupAggregationService(t *testing.T) *aggregationTestDeps {
	ctrl := gomock.NewController(t)
	d := &aggregationTestDeps{
		txRepo: mocks.NewMockTransactionRepository(ctrl),
		encSvc: mocks.NewMockEncryptionService(ctrl),
		ctrl:   ctrl,
	}
	d.svc = NewAggregationService(d.txRepo, d.encSvc, zerolog.Nop())
	return d
}

func strPtr(s string) *string { return &s }

func TestAggregationService_EmptyFilterMatchesAll(t *testing.T) {
	d := setupAggregationService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()

	d.txRepo.EXPECT().Aggregate(ctx, "TRUE", gomock.Nil()).Return([]domain.AggregationRow{
		{
			Currency:         "PLN",
			Inflow:           decimal.RequireFromString("3000.00"),
			Outflow:          decimal.RequireFromString("1250.50"),
			TransactionCount: 12,
			Category:         "groceries",
			IBANCipher:       "cipher-pln",
			Month:            "2024-01",
		},
		{
			Currency:         "EUR",
			Inflow:           decimal.RequireFromString("800.00"),
			Outflow:          decimal.RequireFromString("950.00"),
			TransactionCount: 4,
			Category:         "rent",
			IBANCipher:       "cipher-eur",
			Month:            "2024-01",
		},
	}, nil)

	summaries, err := d.svc.Aggregate(ctx, domain.AggregationFilter{})
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	// no filter: no decryption, no echoed filter fields
	assert.Nil(t, summaries[0].Category)
	assert.Nil(t, summaries[0].IBAN)
	assert.Nil(t, summaries[0].Month)
	assert.Equal(t, "PLN", summaries[0].Currency)
	assert.True(t, decimal.RequireFromString("1749.50").Equal(summaries[0].Balance))
	assert.Equal(t, int64(12), summaries[0].TransactionCount)

	assert.True(t, decimal.RequireFromString("-150.00").Equal(summaries[1].Balance))
}

func TestAggregationService_CategoryFilter(t *testing.T) {
	d := setupAggregationService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()

	d.txRepo.EXPECT().Aggregate(ctx, "category = $1", []any{"groceries"}).Return([]domain.AggregationRow{
		{Currency: "PLN", Category: "groceries", TransactionCount: 3},
	}, nil)

	summaries, err := d.svc.Aggregate(ctx, domain.AggregationFilter{Category: strPtr("groceries")})
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	require.NotNil(t, summaries[0].Category)
	assert.Equal(t, "groceries", *summaries[0].Category)
	assert.Nil(t, summaries[0].IBAN)
}

func TestAggregationService_IBANFilterDecryptsResult(t *testing.T) {
	d := setupAggregationService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	iban := "PL61109010140000071219812874"

	d.encSvc.EXPECT().BlindIndex(iban).Return("digest", nil)
	d.txRepo.EXPECT().Aggregate(ctx, "iban_hash = $1", []any{"digest"}).Return([]domain.AggregationRow{
		{Currency: "PLN", IBANCipher: "cipher", TransactionCount: 7},
	}, nil)
	d.encSvc.EXPECT().Decrypt("cipher").Return(iban, nil)

	summaries, err := d.svc.Aggregate(ctx, domain.AggregationFilter{IBAN: &iban})
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	require.NotNil(t, summaries[0].IBAN)
	assert.Equal(t, iban, *summaries[0].IBAN)
}

func TestAggregationService_MonthFilterBuildsUTCRange(t *testing.T) {
	d := setupAggregationService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()

	d.txRepo.EXPECT().
		Aggregate(ctx, "transaction_date >= $1 AND transaction_date < $2", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, args []any) ([]domain.AggregationRow, error) {
			require.Len(t, args, 2)
			assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), args[0])
			assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), args[1])
			return []domain.AggregationRow{{Currency: "PLN", Month: "2024-02"}}, nil
		})

	summaries, err := d.svc.Aggregate(ctx, domain.AggregationFilter{Month: strPtr("2024-02")})
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	require.NotNil(t, summaries[0].Month)
	assert.Equal(t, "2024-02", *summaries[0].Month)
}

func TestAggregationService_CombinedFiltersAreConjunctive(t *testing.T) {
	d := setupAggregationService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	iban := "DE89370400440532013000"

	d.encSvc.EXPECT().BlindIndex(iban).Return("digest", nil)
	d.txRepo.EXPECT().
		Aggregate(ctx,
			"category = $1 AND iban_hash = $2 AND transaction_date >= $3 AND transaction_date < $4",
			gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, args []any) ([]domain.AggregationRow, error) {
			require.Len(t, args, 4)
			assert.Equal(t, "rent", args[0])
			assert.Equal(t, "digest", args[1])
			return []domain.AggregationRow{{Currency: "EUR", Category: "rent", IBANCipher: "cipher", Month: "2024-01"}}, nil
		})
	d.encSvc.EXPECT().Decrypt("cipher").Return(iban, nil)

	summaries, err := d.svc.Aggregate(ctx, domain.AggregationFilter{
		Category: strPtr("rent"),
		IBAN:     &iban,
		Month:    strPtr("2024-01"),
	})
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.NotNil(t, summaries[0].Category)
	assert.NotNil(t, summaries[0].IBAN)
	assert.NotNil(t, summaries[0].Month)
}

func TestAggregationService_MalformedMonth(t *testing.T) {
	d := setupAggregationService(t)
	defer d.ctrl.Finish()

	_, err := d.svc.Aggregate(context.Background(), domain.AggregationFilter{Month: strPtr("January-2024")})
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VAL_002", appErr.Code)
}

func TestAggregationService_RepositoryFailure(t *testing.T) {
	d := setupAggregationService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.txRepo.EXPECT().Aggregate(ctx, gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))

	_, err := d.svc.Aggregate(ctx, domain.AggregationFilter{})
	require.Error(t, err)
}

func TestAggregationService_DecryptFailureSurfacesEncryptionError(t *testing.T) {
	d := setupAggregationService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	iban := "PL61109010140000071219812874"

	d.encSvc.EXPECT().BlindIndex(iban).Return("digest", nil)
	d.txRepo.EXPECT().Aggregate(ctx, gomock.Any(), gomock.Any()).Return([]domain.AggregationRow{
		{Currency: "PLN", IBANCipher: "corrupted"},
	}, nil)
	d.encSvc.EXPECT().Decrypt("corrupted").Return("", errors.New("cipher: message authentication failed"))

	_, err := d.svc.Aggregate(ctx, domain.AggregationFilter{IBAN: &iban})
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CRY_001", appErr.Code)
}
