package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jeleniasty/budget-aggregator/internal/core/domain"
)

// TransactionRepo implements ports.TransactionRepository.
type TransactionRepo struct {
	pool Pool
}

// NewTransactionRepo creates a new TransactionRepo.
func NewTransactionRepo(pool Pool) *TransactionRepo {
	return &TransactionRepo{pool: pool}
}

const insertTransactionSQL = `INSERT INTO transactions (id, bank_id, reference_id, iban_cipher, iban_hash,
	transaction_date, currency, category, transaction_type, amount, import_id, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

// InsertBatch inserts all transactions as one pipelined batch inside the
// given database transaction. A constraint violation anywhere in the batch
// fails the call and rolls the whole batch back with the enclosing tx.
func (r *TransactionRepo) InsertBatch(ctx context.Context, tx pgx.Tx, transactions []domain.Transaction) error {
	batch := &pgx.Batch{}
	for _, t := range transactions {
		batch.Queue(insertTransactionSQL,
			t.ID, t.BankID, t.ReferenceID, t.IBANCipher, t.IBANHash,
			t.TransactionDate, t.Currency, t.Category, t.TransactionType,
			t.Amount, t.ImportID, t.CreatedAt, t.UpdatedAt,
		)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close() //nolint:errcheck

	for i := range transactions {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("insert transaction %d of %d: %w", i+1, len(transactions), err)
		}
	}
	return results.Close()
}

// aggregateSQL groups the matching rows by currency. Inflow sums credits,
// outflow sums debits; category, iban and month are first-in-group carries.
// The predicate placeholder is filled with internally assembled fragments
// only, never raw caller input.
const aggregateSQL = `SELECT currency,
	COALESCE(SUM(amount) FILTER (WHERE transaction_type = 'CREDIT'), 0) AS inflow,
	COALESCE(SUM(amount) FILTER (WHERE transaction_type = 'DEBIT'), 0) AS outflow,
	COUNT(*) AS transaction_count,
	(array_agg(category))[1] AS category,
	(array_agg(iban_cipher))[1] AS iban_cipher,
	to_char((array_agg(transaction_date))[1] AT TIME ZONE 'UTC', 'YYYY-MM') AS month
	FROM transactions
	WHERE %s
	GROUP BY currency
	ORDER BY currency DESC`

// Aggregate runs the grouped query under the given predicate and returns one
// row per currency, ordered by currency descending.
func (r *TransactionRepo) Aggregate(ctx context.Context, predicate string, args []any) ([]domain.AggregationRow, error) {
	query := fmt.Sprintf(aggregateSQL, predicate)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("aggregate query: %w", err)
	}
	defer rows.Close()

	var result []domain.AggregationRow
	for rows.Next() {
		var row domain.AggregationRow
		if err := rows.Scan(
			&row.Currency, &row.Inflow, &row.Outflow, &row.TransactionCount,
			&row.Category, &row.IBANCipher, &row.Month,
		); err != nil {
			return nil, fmt.Errorf("scan aggregation row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate aggregation rows: %w", err)
	}
	return result, nil
}
