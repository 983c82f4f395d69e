package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeleniasty/budget-aggregator/internal/core/domain"
)

func jobColumns() []string {
	return []string{"id", "file_name", "status", "total_rows", "successful_rows", "errors", "created_at", "updated_at"}
}

func newTestJob() *domain.ImportJob {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.ImportJob{
		ID:        uuid.New(),
		FileName:  "january.csv",
		Status:    domain.ImportStatusProcessing,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestImportJobRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewImportJobRepo(mock)
	job := newTestJob()

	mock.ExpectExec("INSERT INTO import_jobs").
		WithArgs(
			job.ID, job.FileName, job.Status, job.TotalRows,
			job.SuccessfulRows, job.Errors, job.CreatedAt, job.UpdatedAt,
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Create(context.Background(), job)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestImportJobRepo_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewImportJobRepo(mock)
	job := newTestJob()
	job.Status = domain.ImportStatusPartiallyCompleted
	job.TotalRows = 600
	job.SuccessfulRows = 500
	job.Errors = []string{"duplicate key"}

	mock.ExpectQuery("SELECT .+ FROM import_jobs WHERE id").
		WithArgs(job.ID).
		WillReturnRows(pgxmock.NewRows(jobColumns()).AddRow(
			job.ID, job.FileName, job.Status, job.TotalRows,
			job.SuccessfulRows, job.Errors, job.CreatedAt, job.UpdatedAt,
		))

	result, err := repo.GetByID(context.Background(), job.ID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, job.Status, result.Status)
	assert.Equal(t, 600, result.TotalRows)
	assert.Equal(t, []string{"duplicate key"}, result.Errors)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestImportJobRepo_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewImportJobRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM import_jobs WHERE id").
		WithArgs(pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows(jobColumns()))

	result, err := repo.GetByID(context.Background(), uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestImportJobRepo_Update(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewImportJobRepo(mock)
	job := newTestJob()
	job.Status = domain.ImportStatusCompleted
	job.TotalRows = 100
	job.SuccessfulRows = 100

	mock.ExpectExec("UPDATE import_jobs SET").
		WithArgs(job.Status, job.TotalRows, job.SuccessfulRows, job.Errors, job.UpdatedAt, job.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err = repo.Update(context.Background(), job)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestImportJobRepo_Update_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewImportJobRepo(mock)
	job := newTestJob()

	mock.ExpectExec("UPDATE import_jobs SET").
		WithArgs(job.Status, job.TotalRows, job.SuccessfulRows, job.Errors, job.UpdatedAt, job.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err = repo.Update(context.Background(), job)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}
