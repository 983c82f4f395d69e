package integration

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jeleniasty/budget-aggregator/internal/core/domain"
)

// --- In-Memory Transaction Repo ---

type inMemoryTransactionRepo struct {
	mu           sync.RWMutex
	transactions []domain.Transaction
}

func newInMemoryTransactionRepo() *inMemoryTransactionRepo {
	return &inMemoryTransactionRepo{}
}

func (r *inMemoryTransactionRepo) InsertBatch(ctx context.Context, tx pgx.Tx, transactions []domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range transactions {
		for _, existing := range r.transactions {
			if existing.BankID == t.BankID && existing.ReferenceID == t.ReferenceID {
				return fmt.Errorf("duplicate key value violates unique constraint \"uq_transactions_bank_reference\"")
			}
		}
		r.transactions = append(r.transactions, t)
	}
	return nil
}

// Aggregate interprets the predicate the service layer builds. The filter
// chain appends conditions in a fixed order (category, iban_hash, date
// range), so args can be consumed positionally.
func (r *inMemoryTransactionRepo) Aggregate(ctx context.Context, predicate string, args []any) ([]domain.AggregationRow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	match := func(t domain.Transaction) bool { return true }
	idx := 0
	if strings.Contains(predicate, "category =") {
		category := args[idx].(string)
		idx++
		prev := match
		match = func(t domain.Transaction) bool { return prev(t) && t.Category == category }
	}
	if strings.Contains(predicate, "iban_hash =") {
		hash := args[idx].(string)
		idx++
		prev := match
		match = func(t domain.Transaction) bool { return prev(t) && t.IBANHash == hash }
	}
	if strings.Contains(predicate, "transaction_date >=") {
		start := args[idx].(time.Time)
		end := args[idx+1].(time.Time)
		prev := match
		match = func(t domain.Transaction) bool {
			return prev(t) && !t.TransactionDate.Before(start) && t.TransactionDate.Before(end)
		}
	}

	groups := make(map[string]*domain.AggregationRow)
	for _, t := range r.transactions {
		if !match(t) {
			continue
		}
		row, ok := groups[t.Currency]
		if !ok {
			row = &domain.AggregationRow{
				Currency:   t.Currency,
				Category:   t.Category,
				IBANCipher: t.IBANCipher,
				Month:      t.TransactionDate.UTC().Format("2006-01"),
			}
			groups[t.Currency] = row
		}
		if t.TransactionType == domain.TransactionTypeCredit {
			row.Inflow = row.Inflow.Add(t.Amount)
		} else {
			row.Outflow = row.Outflow.Add(t.Amount)
		}
		row.TransactionCount++
	}

	rows := make([]domain.AggregationRow, 0, len(groups))
	for _, row := range groups {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Currency > rows[j].Currency })
	return rows, nil
}

func (r *inMemoryTransactionRepo) count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.transactions)
}

func (r *inMemoryTransactionRepo) all() []domain.Transaction {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Transaction, len(r.transactions))
	copy(out, r.transactions)
	return out
}

// --- In-Memory Import Job Repo ---

type inMemoryImportJobRepo struct {
	mu   sync.RWMutex
	jobs map[uuid.UUID]*domain.ImportJob
}

func newInMemoryImportJobRepo() *inMemoryImportJobRepo {
	return &inMemoryImportJobRepo{jobs: make(map[uuid.UUID]*domain.ImportJob)}
}

func (r *inMemoryImportJobRepo) Create(ctx context.Context, job *domain.ImportJob) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *job
	r.jobs[job.ID] = &cp
	return nil
}

func (r *inMemoryImportJobRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ImportJob, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	job, ok := r.jobs[id]
	if !ok {
		return nil, nil
	}
	cp := *job
	return &cp, nil
}

func (r *inMemoryImportJobRepo) Update(ctx context.Context, job *domain.ImportJob) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.jobs[job.ID]; !ok {
		return fmt.Errorf("import job not found: %s", job.ID)
	}
	cp := *job
	r.jobs[job.ID] = &cp
	return nil
}

// --- In-Memory Transactor ---

// noopTx satisfies pgx.Tx for the in-memory repos; only Commit and Rollback
// are ever reached because inMemoryTransactionRepo writes directly.
type noopTx struct {
	pgx.Tx
}

func (noopTx) Commit(ctx context.Context) error   { return nil }
func (noopTx) Rollback(ctx context.Context) error { return nil }

type inMemoryTransactor struct{}

func newInMemoryTransactor() *inMemoryTransactor {
	return &inMemoryTransactor{}
}

func (t *inMemoryTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	return noopTx{}, nil
}
