package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jeleniasty/budget-aggregator/internal/core/domain"
)

// ImportJobRepo implements ports.ImportJobRepository.
type ImportJobRepo struct {
	pool Pool
}

// NewImportJobRepo creates a new ImportJobRepo.
func NewImportJobRepo(pool Pool) *ImportJobRepo {
	return &ImportJobRepo{pool: pool}
}

// Create inserts a new import job record.
func (r *ImportJobRepo) Create(ctx context.Context, job *domain.ImportJob) error {
	query := `INSERT INTO import_jobs (id, file_name, status, total_rows, successful_rows, errors, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.pool.Exec(ctx, query,
		job.ID, job.FileName, job.Status, job.TotalRows,
		job.SuccessfulRows, job.Errors, job.CreatedAt, job.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert import job: %w", err)
	}
	return nil
}

// GetByID fetches an import job. Returns (nil, nil) when the id is unknown.
func (r *ImportJobRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ImportJob, error) {
	query := `SELECT id, file_name, status, total_rows, successful_rows, errors, created_at, updated_at
		FROM import_jobs WHERE id = $1`

	job := &domain.ImportJob{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&job.ID, &job.FileName, &job.Status, &job.TotalRows,
		&job.SuccessfulRows, &job.Errors, &job.CreatedAt, &job.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan import job: %w", err)
	}
	return job, nil
}

// Update overwrites the mutable fields of an import job.
func (r *ImportJobRepo) Update(ctx context.Context, job *domain.ImportJob) error {
	query := `UPDATE import_jobs SET status = $1, total_rows = $2, successful_rows = $3, errors = $4, updated_at = $5
		WHERE id = $6`

	tag, err := r.pool.Exec(ctx, query,
		job.Status, job.TotalRows, job.SuccessfulRows, job.Errors, job.UpdatedAt, job.ID,
	)
	if err != nil {
		return fmt.Errorf("update import job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("import job not found: %s", job.ID)
	}
	return nil
}
