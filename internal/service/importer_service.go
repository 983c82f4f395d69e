package service

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jeleniasty/budget-aggregator/internal/core/domain"
	"github.com/jeleniasty/budget-aggregator/internal/core/ports"
)

// batchSize is the number of validated records persisted per database
// transaction. Smaller batches isolate failures, larger ones amortize
// round trips.
const batchSize = 500

// TransactionImporterImpl implements ports.TransactionImporter. It drives a
// full import run: validate every row, persist valid records in fixed-size
// batches, and emit exactly one terminal status notification. It never
// returns an error; every failure is folded into the notification.
type TransactionImporterImpl struct {
	validator ports.RowValidator
	writer    ports.BatchWriter
	notifier  ports.StatusNotifier
	log       zerolog.Logger
}

// NewTransactionImporter creates a new TransactionImporterImpl.
func NewTransactionImporter(
	validator ports.RowValidator,
	writer ports.BatchWriter,
	notifier ports.StatusNotifier,
	log zerolog.Logger,
) *TransactionImporterImpl {
	return &TransactionImporterImpl{
		validator: validator,
		writer:    writer,
		notifier:  notifier,
		log:       log,
	}
}

// Run executes one import to completion. A failed batch is recorded and the
// remaining batches still run; a panic anywhere in the run downgrades the
// whole import to FAILED while keeping whatever counts were reached.
func (s *TransactionImporterImpl) Run(ctx context.Context, importID uuid.UUID, r io.Reader) {
	s.log.Info().Str("import_id", importID.String()).Msg("transaction import started")

	result := s.validator.ValidateAndMap(r)
	s.log.Info().
		Str("import_id", importID.String()).
		Int("total_rows", result.TotalRows).
		Int("valid_rows", len(result.Valid)).
		Int("validation_errors", len(result.Errors)).
		Msg("validation completed")

	savedCount := 0
	errs := result.Errors

	defer func() {
		if rec := recover(); rec != nil {
			s.log.Error().
				Str("import_id", importID.String()).
				Interface("panic", rec).
				Msg("critical failure during import")
			errs = append(errs, fmt.Sprintf("Critical failure: %v", rec))
			s.notify(ctx, domain.ImportStatusUpdate{
				ImportID:       importID,
				Status:         domain.ImportStatusFailed,
				TotalRows:      result.TotalRows,
				SuccessfulRows: savedCount,
				Errors:         errs,
			})
		}
	}()

	for start := 0; start < len(result.Valid); start += batchSize {
		end := min(start+batchSize, len(result.Valid))
		batch := result.Valid[start:end]

		if err := s.writer.SaveBatch(ctx, batch, importID); err != nil {
			s.log.Error().
				Err(err).
				Str("import_id", importID.String()).
				Int("batch_start", start).
				Int("batch_end", end).
				Msg("batch persist failed")
			errs = append(errs, err.Error())
			continue
		}
		savedCount += len(batch)
	}

	s.notify(ctx, domain.ImportStatusUpdate{
		ImportID:       importID,
		Status:         domain.CalculateImportStatus(len(result.Valid), savedCount),
		TotalRows:      result.TotalRows,
		SuccessfulRows: savedCount,
		Errors:         errs,
	})
	s.log.Info().
		Str("import_id", importID.String()).
		Int("saved", savedCount).
		Msg("transaction import completed")
}

func (s *TransactionImporterImpl) notify(ctx context.Context, update domain.ImportStatusUpdate) {
	if err := s.notifier.NotifyStatusUpdate(ctx, update); err != nil {
		s.log.Error().
			Err(err).
			Str("import_id", update.ImportID.String()).
			Msg("failed to deliver import status update")
	}
}
