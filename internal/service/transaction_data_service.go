package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jeleniasty/budget-aggregator/internal/core/domain"
	"github.com/jeleniasty/budget-aggregator/internal/core/ports"
	"github.com/jeleniasty/budget-aggregator/pkg/apperror"
)

// TransactionDataServiceImpl implements ports.BatchWriter. Each SaveBatch
// call runs in its own database transaction so a failed batch never takes
// sibling batches down with it.
type TransactionDataServiceImpl struct {
	txRepo     ports.TransactionRepository
	encSvc     ports.EncryptionService
	transactor ports.DBTransactor
	log        zerolog.Logger
}

// NewTransactionDataService creates a new TransactionDataServiceImpl.
func NewTransactionDataService(
	txRepo ports.TransactionRepository,
	encSvc ports.EncryptionService,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *TransactionDataServiceImpl {
	return &TransactionDataServiceImpl{
		txRepo:     txRepo,
		encSvc:     encSvc,
		transactor: transactor,
		log:        log,
	}
}

// SaveBatch encrypts and persists one batch of validated records atomically.
// The plaintext IBAN is replaced by an AES-GCM token plus a deterministic
// blind index before anything touches the database.
func (s *TransactionDataServiceImpl) SaveBatch(ctx context.Context, records []domain.TransactionRecord, importID uuid.UUID) error {
	if len(records) == 0 {
		return nil
	}

	now := time.Now().UTC()
	transactions := make([]domain.Transaction, 0, len(records))
	for _, rec := range records {
		ibanCipher, err := s.encSvc.Encrypt(rec.IBAN)
		if err != nil {
			return apperror.ErrEncryptionFailure(fmt.Errorf("encrypt iban: %w", err))
		}
		ibanHash, err := s.encSvc.BlindIndex(rec.IBAN)
		if err != nil {
			return apperror.ErrEncryptionFailure(fmt.Errorf("blind index iban: %w", err))
		}

		transactions = append(transactions, domain.Transaction{
			ID:              uuid.New(),
			BankID:          rec.BankID,
			ReferenceID:     rec.ReferenceID,
			IBANCipher:      ibanCipher,
			IBANHash:        ibanHash,
			TransactionDate: rec.TransactionDate,
			Currency:        rec.Currency,
			Category:        rec.Category,
			TransactionType: rec.TransactionType,
			Amount:          rec.Amount,
			ImportID:        importID,
			CreatedAt:       now,
			UpdatedAt:       now,
		})
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.txRepo.InsertBatch(ctx, dbTx, transactions); err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("insert batch: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Debug().
		Str("import_id", importID.String()).
		Int("batch_size", len(records)).
		Msg("transaction batch persisted")

	return nil
}
