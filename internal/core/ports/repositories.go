package ports

import (
	"context"

	"github.com/jeleniasty/budget-aggregator/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

//go:generate mockgen -source=repositories.go -destination=mocks/repositories.go -package=mocks

// TransactionRepository defines persistence operations for transactions.
type TransactionRepository interface {
	// InsertBatch submits the whole slice as one bulk write inside the given
	// database transaction. Any statement failure fails the call; the caller
	// owns rollback.
	InsertBatch(ctx context.Context, tx pgx.Tx, transactions []domain.Transaction) error
	// Aggregate runs the grouped statistics query. predicate is a SQL
	// condition over the transactions table ("TRUE" = match-all) with
	// positional args starting at $1.
	Aggregate(ctx context.Context, predicate string, args []any) ([]domain.AggregationRow, error)
}

// ImportJobRepository defines persistence operations for import jobs.
// GetByID returns (nil, nil) when the id is unknown.
type ImportJobRepository interface {
	Create(ctx context.Context, job *domain.ImportJob) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ImportJob, error)
	Update(ctx context.Context, job *domain.ImportJob) error
}

// DBTransactor provides database transaction management. Each persisted
// batch runs under its own transaction so one batch's failure cannot roll
// back a previously committed one.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
