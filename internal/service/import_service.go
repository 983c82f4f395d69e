package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jeleniasty/budget-aggregator/internal/core/domain"
	"github.com/jeleniasty/budget-aggregator/internal/core/ports"
	"github.com/jeleniasty/budget-aggregator/pkg/apperror"
)

// ImportServiceImpl implements ports.ImportService and ports.StatusNotifier.
// Upload handling is synchronous and cheap: it registers the job, buffers the
// payload, and hands the heavy work to the dispatcher. Callers always get a
// job handle back, even when the run itself cannot start.
type ImportServiceImpl struct {
	jobRepo    ports.ImportJobRepository
	dispatcher ports.ImportDispatcher
	log        zerolog.Logger
}

// NewImportService creates a new ImportServiceImpl.
func NewImportService(
	jobRepo ports.ImportJobRepository,
	dispatcher ports.ImportDispatcher,
	log zerolog.Logger,
) *ImportServiceImpl {
	return &ImportServiceImpl{
		jobRepo:    jobRepo,
		dispatcher: dispatcher,
		log:        log,
	}
}

// SetDispatcher late-binds the dispatcher. The worker pool runs the importer,
// the importer notifies through this service, and this service dispatches to
// the pool, so one of the three has to be bound after construction.
func (s *ImportServiceImpl) SetDispatcher(dispatcher ports.ImportDispatcher) {
	s.dispatcher = dispatcher
}

// ImportFile registers a new import job and dispatches the payload for
// asynchronous processing. The job record always exists before dispatch, so
// a client can poll it immediately with the returned ID.
func (s *ImportServiceImpl) ImportFile(ctx context.Context, fileName string, payload io.Reader) (*ports.ImportReceipt, error) {
	now := time.Now().UTC()
	job := &domain.ImportJob{
		ID:        uuid.New(),
		FileName:  fileName,
		Status:    domain.ImportStatusProcessing,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("create import job: %w", err))
	}

	// A payload that cannot be read still yields a pollable job handle,
	// it just never reaches the dispatcher.
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, payload); err != nil {
		s.log.Warn().
			Err(err).
			Str("import_id", job.ID.String()).
			Msg("import payload unreadable")
		s.failJob(ctx, job, "Unreadable payload: "+err.Error())
		return &ports.ImportReceipt{ID: job.ID, FileName: fileName, Status: job.Status}, nil
	}

	task := ports.ImportTask{
		ImportID: job.ID,
		FileName: fileName,
		Content:  buf.Bytes(),
	}
	if err := s.dispatcher.Dispatch(ctx, task); err != nil {
		s.failJob(ctx, job, "Import rejected: processing queue is full")
		if errors.Is(err, ports.ErrQueueFull) {
			return nil, apperror.ErrImportQueueFull()
		}
		return nil, apperror.InternalError(fmt.Errorf("dispatch import: %w", err))
	}

	s.log.Info().
		Str("import_id", job.ID.String()).
		Str("file_name", fileName).
		Int("payload_bytes", buf.Len()).
		Msg("import accepted")

	return &ports.ImportReceipt{ID: job.ID, FileName: fileName, Status: job.Status}, nil
}

// GetImportDetails returns the current state of an import job.
func (s *ImportServiceImpl) GetImportDetails(ctx context.Context, id uuid.UUID) (*domain.ImportJob, error) {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get import job: %w", err))
	}
	if job == nil {
		return nil, apperror.ErrImportNotFound(id.String())
	}
	return job, nil
}

// ApplyStatusUpdate overwrites a job's status, counters and errors with the
// terminal outcome of its run. The overwrite is idempotent: applying the same
// update twice leaves the record unchanged.
func (s *ImportServiceImpl) ApplyStatusUpdate(ctx context.Context, update domain.ImportStatusUpdate) error {
	s.log.Info().
		Str("import_id", update.ImportID.String()).
		Str("status", string(update.Status)).
		Int("total_rows", update.TotalRows).
		Int("successful_rows", update.SuccessfulRows).
		Int("errors", len(update.Errors)).
		Msg("applying import status update")

	job, err := s.jobRepo.GetByID(ctx, update.ImportID)
	if err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("get import job: %w", err))
	}
	if job == nil {
		return apperror.ErrImportNotFound(update.ImportID.String())
	}

	job.Status = update.Status
	job.TotalRows = update.TotalRows
	job.SuccessfulRows = update.SuccessfulRows
	job.Errors = update.Errors
	job.UpdatedAt = time.Now().UTC()

	if err := s.jobRepo.Update(ctx, job); err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("update import job: %w", err))
	}
	return nil
}

// NotifyStatusUpdate implements ports.StatusNotifier by applying the update
// directly.
func (s *ImportServiceImpl) NotifyStatusUpdate(ctx context.Context, update domain.ImportStatusUpdate) error {
	return s.ApplyStatusUpdate(ctx, update)
}

// failJob marks a job FAILED before its run ever starts, so a rejected or
// unreadable upload is never left in PROCESSING.
func (s *ImportServiceImpl) failJob(ctx context.Context, job *domain.ImportJob, reason string) {
	job.Status = domain.ImportStatusFailed
	job.Errors = []string{reason}
	job.UpdatedAt = time.Now().UTC()
	if err := s.jobRepo.Update(ctx, job); err != nil {
		s.log.Error().
			Err(err).
			Str("import_id", job.ID.String()).
			Msg("failed to mark import job as failed")
	}
}
